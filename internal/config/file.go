package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	fileMode = 0o600
	dirMode  = 0o700
)

// ErrFileExists is returned by WriteFile when the target exists and
// overwriting was not requested.
var ErrFileExists = errors.New("config file already exists")

type document struct {
	Demo bool        `toml:"demo"`
	LLM  llmDocument `toml:"llm"`
	Log  logDocument `toml:"log"`
}

type llmDocument struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	Endpoint string `toml:"endpoint"`
	Timeout  string `toml:"timeout"`
	LogCalls bool   `toml:"log_calls"`
	APIKey   string `toml:"api_key,omitempty"`
}

type logDocument struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

func toDocument(c Config) document {
	return document{
		Demo: c.Demo,
		LLM: llmDocument{
			Provider: c.LLM.Provider,
			Model:    c.LLM.Model,
			Endpoint: c.LLM.Endpoint,
			Timeout:  c.LLM.Timeout.String(),
			LogCalls: c.LLM.LogCalls,
			APIKey:   c.LLM.APIKey,
		},
		Log: logDocument{Level: c.Log.Level, Format: c.Log.Format},
	}
}

// Encode renders c as TOML.
func Encode(c Config) ([]byte, error) {
	data, err := toml.Marshal(toDocument(c))
	if err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return data, nil
}

// Masked returns a copy of c safe to print.
func (c Config) Masked() Config {
	c.LLM.APIKey = MaskKey(c.LLM.APIKey)
	return c
}

// MaskKey keeps the first and last four characters of long keys.
func MaskKey(key string) string {
	switch {
	case key == "":
		return ""
	case len(key) <= 8:
		return "********"
	default:
		return key[:4] + "****" + key[len(key)-4:]
	}
}

// WriteFile writes c to path as TOML, creating parent directories. An
// existing file is only replaced when overwrite is set.
func WriteFile(path string, c Config, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s", ErrFileExists, path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("stat config file: %w", err)
		}
	}

	data, err := Encode(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, fileMode); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
