package llm

import (
	"context"
	"log/slog"
)

// LLMCallEvent is emitted once per Generate call, successful or not.
type LLMCallEvent struct {
	Task      TaskType
	Provider  Provider
	Model     string
	LatencyMs int64
	Success   bool
	ErrorCode string
}

// Observer is told about every finished provider call.
type Observer interface {
	OnCallComplete(event LLMCallEvent)
}

// NoopObserver discards events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(LLMCallEvent) {}

// LogObserver turns call events into "llm_call" log records. Failures are
// warnings.
type LogObserver struct {
	logger *slog.Logger
}

// NewLogObserver falls back to slog.Default when logger is nil.
func NewLogObserver(logger *slog.Logger) *LogObserver {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogObserver{logger: logger}
}

func (o *LogObserver) OnCallComplete(event LLMCallEvent) {
	level, status := slog.LevelInfo, "ok"
	if !event.Success {
		level, status = slog.LevelWarn, "err:"+event.ErrorCode
	}
	o.logger.LogAttrs(context.Background(), level, "llm_call",
		slog.String("task", string(event.Task)),
		slog.String("provider", string(event.Provider)),
		slog.String("model", event.Model),
		slog.Int64("latency_ms", event.LatencyMs),
		slog.String("status", status),
	)
}
