package llm

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	obs.OnCallComplete(LLMCallEvent{Task: TaskInsight, Provider: ProviderGemini, Model: "gemini-2.5-flash", Success: true})
	obs.OnCallComplete(LLMCallEvent{Task: TaskInsight, Provider: ProviderGemini, ErrorCode: "TIMEOUT"})

	out := buf.String()
	assert.Contains(t, out, "level=INFO msg=llm_call task=insight provider=gemini model=gemini-2.5-flash")
	assert.Contains(t, out, "status=ok")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "status=err:TIMEOUT")
}
