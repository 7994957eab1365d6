package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOllamaConfig(endpoint string) LLMConfig {
	cfg := DefaultConfig()
	cfg.Provider = ProviderOllama
	cfg.Model = DefaultOllamaModel
	cfg.Endpoint = endpoint
	return cfg
}

func ollamaReply(text string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(ollamaResponse{Model: DefaultOllamaModel, Response: text})
	}
}

func TestOllamaClient_Generate_SendsPromptAndSchema(t *testing.T) {
	var got ollamaRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		ollamaReply(`{"ok":true}`)(w, r)
	}))
	defer srv.Close()

	// trailing slash on the endpoint must not double up in the URL
	client := NewOllamaClient(testOllamaConfig(srv.URL+"/"), NoopObserver{})
	resp, err := client.Generate(context.Background(), GenerateRequest{
		Task:           TaskInsight,
		SystemPrompt:   "be blunt",
		UserPrompt:     "totals: {}",
		ResponseSchema: &Schema{Type: TypeObject},
	})
	require.NoError(t, err)

	assert.Equal(t, DefaultOllamaModel, got.Model)
	assert.False(t, got.Stream)
	assert.Equal(t, "be blunt", got.System)
	assert.Equal(t, "totals: {}", got.Prompt)
	assert.Equal(t, "object", got.Format["type"])

	assert.Equal(t, `{"ok":true}`, resp.Text)
	assert.Equal(t, DefaultOllamaModel, resp.Model)
	assert.GreaterOrEqual(t, resp.LatencyMs, int64(0))
}

func TestOllamaClient_Generate_NoSchemaOmitsFormat(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		ollamaReply("plain")(w, r)
	}))
	defer srv.Close()

	client := NewOllamaClient(testOllamaConfig(srv.URL), nil)
	resp, err := client.Generate(context.Background(), GenerateRequest{Task: TaskInsight, UserPrompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "plain", resp.Text)
	assert.NotContains(t, body, "format")
}

func TestOllamaClient_Generate_Failures(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(300 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name     string
		handler  http.Handler
		endpoint string
		want     error
		code     string
	}{
		{
			name: "server error",
			handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "model not loaded", http.StatusInternalServerError)
			}),
			want: ErrProviderStatus,
			code: "STATUS",
		},
		{
			name:    "blank response",
			handler: ollamaReply("   "),
			want:    ErrEmptyResponse,
			code:    "EMPTY",
		},
		{
			name: "garbage body",
			handler: http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, "<html>")
			}),
			want: ErrInvalidOutput,
			code: "INVALID_OUTPUT",
		},
		{
			name:    "too slow",
			handler: slow,
			want:    ErrTimeout,
			code:    "TIMEOUT",
		},
		{
			name:     "nothing listening",
			endpoint: "http://127.0.0.1:1",
			want:     ErrUnavailable,
			code:     "UNAVAILABLE",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			endpoint := tt.endpoint
			if tt.handler != nil {
				srv := httptest.NewServer(tt.handler)
				defer srv.Close()
				endpoint = srv.URL
			}
			cfg := testOllamaConfig(endpoint)
			cfg.Tasks = map[TaskType]TaskConfig{TaskInsight: {Timeout: 100 * time.Millisecond}}

			var events []LLMCallEvent
			obs := &captureObserver{fn: func(e LLMCallEvent) { events = append(events, e) }}
			_, err := NewOllamaClient(cfg, obs).Generate(context.Background(), GenerateRequest{Task: TaskInsight, UserPrompt: "x"})

			assert.ErrorIs(t, err, tt.want)
			require.Len(t, events, 1)
			assert.False(t, events[0].Success)
			assert.Equal(t, tt.code, events[0].ErrorCode)
		})
	}
}

func TestOllamaClient_Generate_SingleAttempt(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewOllamaClient(testOllamaConfig(srv.URL), NoopObserver{}).
		Generate(context.Background(), GenerateRequest{Task: TaskInsight, UserPrompt: "x"})
	require.Error(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestOllamaClient_ErrorBodyIsTruncated(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, strings.Repeat("x", 4*maxErrorBody))
	}))
	defer srv.Close()

	_, err := NewOllamaClient(testOllamaConfig(srv.URL), NoopObserver{}).
		Generate(context.Background(), GenerateRequest{Task: TaskInsight, UserPrompt: "x"})
	require.Error(t, err)
	assert.Less(t, len(err.Error()), 2*maxErrorBody)
}

func TestOllamaClient_ObserverOnSuccess(t *testing.T) {
	srv := httptest.NewServer(ollamaReply("ok"))
	defer srv.Close()

	var captured LLMCallEvent
	obs := &captureObserver{fn: func(e LLMCallEvent) { captured = e }}
	_, err := NewOllamaClient(testOllamaConfig(srv.URL), obs).
		Generate(context.Background(), GenerateRequest{Task: TaskInsight, UserPrompt: "x"})

	require.NoError(t, err)
	assert.Equal(t, TaskInsight, captured.Task)
	assert.Equal(t, ProviderOllama, captured.Provider)
	assert.Equal(t, DefaultOllamaModel, captured.Model)
	assert.True(t, captured.Success)
	assert.Empty(t, captured.ErrorCode)
}

func TestErrorCode(t *testing.T) {
	assert.Equal(t, "", errorCode(nil))
	assert.Equal(t, "NO_API_KEY", errorCode(fmt.Errorf("gemini: %w", ErrMissingAPIKey)))
	assert.Equal(t, "UNKNOWN", errorCode(errors.New("boom")))
}

type captureObserver struct {
	fn func(LLMCallEvent)
}

func (o *captureObserver) OnCallComplete(e LLMCallEvent) { o.fn(e) }
