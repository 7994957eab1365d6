// Package insight turns logged entries into an AI-written weekly analysis.
package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/timepaisa/internal/aggregate"
	"github.com/alexanderramin/timepaisa/internal/domain"
	"github.com/alexanderramin/timepaisa/internal/llm"
)

// ErrAnalysisFailed is returned for every insight failure. The underlying
// cause stays in the error chain for logging.
var ErrAnalysisFailed = errors.New("analysis failed")

const DefaultTimeout = 60 * time.Second

// Service requests insights from an LLM.
type Service struct {
	client  llm.LLMClient
	timeout time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithTimeout bounds each request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// NewService creates a Service backed by client.
func NewService(client llm.LLMClient, opts ...Option) *Service {
	s := &Service{client: client, timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RequestInsight summarises the entries per category, asks the model for an
// analysis and returns it only if the reply matches the response schema in
// full. Each call issues a fresh request.
func (s *Service) RequestInsight(ctx context.Context, timeEntries []domain.TimeEntry, moneyEntries []domain.MoneyEntry) (*domain.AIInsight, error) {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	prompt, err := buildUserPrompt(timeEntries, moneyEntries)
	if err != nil {
		return nil, fail(err)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:           llm.TaskInsight,
		SystemPrompt:   systemPrompt,
		UserPrompt:     prompt,
		ResponseSchema: responseSchema,
	})
	if err != nil {
		return nil, fail(err)
	}

	result, err := llm.DecodeJSON(resp.Text, responseSchema, validateInsight)
	if err != nil {
		return nil, fail(err)
	}
	return &result, nil
}

func buildUserPrompt(timeEntries []domain.TimeEntry, moneyEntries []domain.MoneyEntry) (string, error) {
	timeJSON, err := json.Marshal(aggregate.TimeTotals(timeEntries))
	if err != nil {
		return "", fmt.Errorf("encoding time totals: %w", err)
	}
	moneyJSON, err := json.Marshal(aggregate.MoneyTotals(moneyEntries))
	if err != nil {
		return "", fmt.Errorf("encoding money totals: %w", err)
	}
	return fmt.Sprintf(userPromptTemplate, timeJSON, moneyJSON), nil
}

func validateInsight(in domain.AIInsight) error {
	if in.ProductivityScore < 0 || in.ProductivityScore > 100 {
		return fmt.Errorf("productivityScore %d out of range [0,100]", in.ProductivityScore)
	}
	if in.FinancialScore < 0 || in.FinancialScore > 100 {
		return fmt.Errorf("financialScore %d out of range [0,100]", in.FinancialScore)
	}
	return nil
}

func fail(err error) error {
	return fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
}
