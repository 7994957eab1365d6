package llm

import "time"

// TaskType identifies the kind of LLM task being performed.
type TaskType string

const (
	TaskInsight TaskType = "insight"
)

// Provider selects the backend that serves generation requests.
type Provider string

const (
	ProviderGemini Provider = "gemini"
	ProviderOllama Provider = "ollama"
)

// TaskConfig holds per-task LLM parameters.
type TaskConfig struct {
	Temperature float64
	Timeout     time.Duration // overrides global if > 0
}

// LLMConfig holds all configuration for the LLM subsystem.
type LLMConfig struct {
	Provider Provider
	// Endpoint overrides the provider's base URL. Empty means the provider
	// default.
	Endpoint string
	Model    string
	APIKey   string
	Timeout  time.Duration
	LogCalls bool
	Tasks    map[TaskType]TaskConfig
}

const (
	DefaultGeminiModel    = "gemini-2.0-flash"
	DefaultGeminiEndpoint = "https://generativelanguage.googleapis.com/"
	DefaultOllamaModel    = "llama3.2"
	DefaultOllamaEndpoint = "http://localhost:11434"
)

// DefaultConfig returns an LLMConfig targeting Gemini with no API key set.
func DefaultConfig() LLMConfig {
	return LLMConfig{
		Provider: ProviderGemini,
		Model:    DefaultGeminiModel,
		Timeout:  60 * time.Second,
		Tasks: map[TaskType]TaskConfig{
			TaskInsight: {Temperature: 0.7},
		},
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c LLMConfig) TaskTimeout(task TaskType) time.Duration {
	if tc, ok := c.Tasks[task]; ok && tc.Timeout > 0 {
		return tc.Timeout
	}
	return c.Timeout
}
