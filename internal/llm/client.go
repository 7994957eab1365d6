package llm

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
)

// GenerateRequest is one prompt sent to a provider.
type GenerateRequest struct {
	Task         TaskType
	SystemPrompt string
	UserPrompt   string
	// ResponseSchema asks the provider for JSON of this shape. Nil means
	// free text.
	ResponseSchema *Schema
}

// GenerateResponse is the raw text a provider answered with.
type GenerateResponse struct {
	Text      string
	Model     string
	LatencyMs int64
}

// LLMClient generates text from a prompt. Implementations make exactly one
// attempt per call.
type LLMClient interface {
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error)
}

// NewClient picks the implementation for cfg.Provider. An empty provider
// means Gemini.
func NewClient(cfg LLMConfig, observer Observer) (LLMClient, error) {
	switch cfg.Provider {
	case "", ProviderGemini:
		return NewGeminiClient(cfg, observer), nil
	case ProviderOllama:
		return NewOllamaClient(cfg, observer), nil
	}
	return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
}

// classify rewrites transport failures as ErrTimeout or ErrUnavailable.
// Other errors pass through untouched.
func classify(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return err
}

func observeCall(o Observer, task TaskType, provider Provider, model string, start time.Time, err error) {
	o.OnCallComplete(LLMCallEvent{
		Task:      task,
		Provider:  provider,
		Model:     model,
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
		ErrorCode: errorCode(err),
	})
}

var errorCodes = []struct {
	target error
	code   string
}{
	{ErrTimeout, "TIMEOUT"},
	{ErrUnavailable, "UNAVAILABLE"},
	{ErrMissingAPIKey, "NO_API_KEY"},
	{ErrProviderStatus, "STATUS"},
	{ErrEmptyResponse, "EMPTY"},
	{ErrInvalidOutput, "INVALID_OUTPUT"},
}

// errorCode maps err onto a short code for call events.
func errorCode(err error) string {
	if err == nil {
		return ""
	}
	for _, c := range errorCodes {
		if errors.Is(err, c.target) {
			return c.code
		}
	}
	return "UNKNOWN"
}
