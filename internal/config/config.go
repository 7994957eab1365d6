// Package config resolves runtime settings from defaults, an optional TOML
// file, a .env file and the environment, in increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alexanderramin/timepaisa/internal/llm"
	"github.com/alexanderramin/timepaisa/internal/logging"
)

const (
	appName    = "timepaisa"
	envPrefix  = "TIMEPAISA"
	configName = "config"
	configType = "toml"
)

// Keys understood by Load.
const (
	KeyLLMProvider = "llm.provider"
	KeyLLMModel    = "llm.model"
	KeyLLMEndpoint = "llm.endpoint"
	KeyLLMTimeout  = "llm.timeout"
	KeyLLMLogCalls = "llm.log_calls"
	KeyLLMAPIKey   = "llm.api_key"
	KeyLogLevel    = "log.level"
	KeyLogFormat   = "log.format"
	KeyDemo        = "demo"
)

// Config is the resolved runtime configuration.
type Config struct {
	LLM  LLM
	Log  Log
	Demo bool
	// File is the config file that was read, empty if none.
	File string
}

type LLM struct {
	Provider string
	Model    string
	Endpoint string
	Timeout  time.Duration
	LogCalls bool
	APIKey   string
}

type Log struct {
	Level  string
	Format string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LLM: LLM{
			Provider: string(llm.ProviderGemini),
			Model:    llm.DefaultGeminiModel,
			Timeout:  60 * time.Second,
		},
		Log: Log{Level: "warn", Format: "text"},
	}
}

// Dir is the per-user config directory ($XDG_CONFIG_HOME/timepaisa on Linux).
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// DefaultFile is the path Load searches when no file is given.
func DefaultFile() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configName+"."+configType), nil
}

// LoadDotEnv reads .env from the working directory if present. Variables
// already set in the environment win.
func LoadDotEnv() {
	_ = godotenv.Load()
}

// Load resolves the configuration into v. When file is empty the default
// location is searched and a missing file is not an error; an explicit file
// must exist.
func Load(v *viper.Viper, file string) (Config, error) {
	if v == nil {
		v = viper.New()
	}
	setDefaults(v)

	if file != "" {
		if _, err := os.Stat(file); err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		if dir, err := Dir(); err == nil {
			v.AddConfigPath(dir)
		}
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if err := v.BindEnv(KeyLLMAPIKey, envPrefix+"_LLM_API_KEY", "GEMINI_API_KEY", "API_KEY"); err != nil {
		return Config{}, fmt.Errorf("bind api key: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	cfg := Config{
		LLM: LLM{
			Provider: strings.ToLower(v.GetString(KeyLLMProvider)),
			Model:    v.GetString(KeyLLMModel),
			Endpoint: v.GetString(KeyLLMEndpoint),
			Timeout:  v.GetDuration(KeyLLMTimeout),
			LogCalls: v.GetBool(KeyLLMLogCalls),
			APIKey:   strings.TrimSpace(v.GetString(KeyLLMAPIKey)),
		},
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
		},
		Demo: v.GetBool(KeyDemo),
		File: v.ConfigFileUsed(),
	}
	if cfg.File != "" {
		if _, err := os.Stat(cfg.File); err != nil {
			cfg.File = ""
		}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault(KeyLLMProvider, d.LLM.Provider)
	v.SetDefault(KeyLLMModel, d.LLM.Model)
	v.SetDefault(KeyLLMEndpoint, d.LLM.Endpoint)
	v.SetDefault(KeyLLMTimeout, d.LLM.Timeout)
	v.SetDefault(KeyLLMLogCalls, d.LLM.LogCalls)
	v.SetDefault(KeyLogLevel, d.Log.Level)
	v.SetDefault(KeyLogFormat, d.Log.Format)
	v.SetDefault(KeyDemo, d.Demo)
}

// Validate rejects settings no component could run with. A missing API key
// passes here and fails the analysis call instead.
func (c Config) Validate() error {
	switch llm.Provider(c.LLM.Provider) {
	case llm.ProviderGemini, llm.ProviderOllama:
	default:
		return fmt.Errorf("invalid %s: %q (want gemini or ollama)", KeyLLMProvider, c.LLM.Provider)
	}
	if c.LLM.Timeout <= 0 {
		return fmt.Errorf("invalid %s: must be positive", KeyLLMTimeout)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid %s: %q (want text or json)", KeyLogFormat, c.Log.Format)
	}
	return nil
}

// LLMConfig converts the resolved settings for the llm package.
func (c Config) LLMConfig() llm.LLMConfig {
	out := llm.DefaultConfig()
	out.Provider = llm.Provider(c.LLM.Provider)
	out.Model = c.LLM.Model
	out.Endpoint = c.LLM.Endpoint
	out.Timeout = c.LLM.Timeout
	out.LogCalls = c.LLM.LogCalls
	out.APIKey = c.LLM.APIKey

	if out.Provider == llm.ProviderOllama && (out.Model == "" || out.Model == llm.DefaultGeminiModel) {
		out.Model = llm.DefaultOllamaModel
	}
	return out
}
