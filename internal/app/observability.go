package app

import (
	"context"
	"log/slog"
	"sort"
	"time"
)

// UseCaseEvent describes one finished Dashboard operation.
type UseCaseEvent struct {
	Name      string
	StartedAt time.Time
	Duration  time.Duration
	Err       error
	Fields    map[string]any
}

// Success reports whether the operation returned without error.
func (e UseCaseEvent) Success() bool { return e.Err == nil }

// UseCaseObserver is notified after every Dashboard operation.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver drops events.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

const useCaseMessage = "dashboard_use_case"

type slogUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver returns an observer that writes one record per event.
// Failed operations are logged at error level, everything else at info.
func NewLogUseCaseObserver(logger *slog.Logger) UseCaseObserver {
	if logger == nil {
		return NoopUseCaseObserver{}
	}
	return slogUseCaseObserver{logger: logger}
}

func (o slogUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	level := slog.LevelInfo
	if event.Err != nil {
		level = slog.LevelError
	}
	o.logger.LogAttrs(ctx, level, useCaseMessage, eventAttrs(event)...)
}

// eventAttrs flattens an event into attributes. Extra fields are sorted so
// the output is stable between runs.
func eventAttrs(event UseCaseEvent) []slog.Attr {
	keys := make([]string, 0, len(event.Fields))
	for k := range event.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := []slog.Attr{
		slog.String("use_case", event.Name),
		slog.Int64("duration_ms", event.Duration.Milliseconds()),
		slog.Bool("success", event.Success()),
	}
	for _, k := range keys {
		attrs = append(attrs, slog.Any(k, event.Fields[k]))
	}
	if event.Err != nil {
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}
	return attrs
}
