package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	genai "google.golang.org/api/aiplatform/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// geminiClient implements LLMClient on models.generateContent. The request
// and response types come from the aiplatform client, which speaks the same
// generateContent wire format; the service is pointed at the Gemini API
// host so an AI Studio key works.
type geminiClient struct {
	cfg      LLMConfig
	observer Observer

	mu  sync.Mutex
	svc *genai.Service
}

// NewGeminiClient creates an LLMClient backed by Google Gemini. A missing
// API key is not an error here; every Generate call fails with
// ErrMissingAPIKey until one is configured.
func NewGeminiClient(cfg LLMConfig, observer Observer) LLMClient {
	if observer == nil {
		observer = NoopObserver{}
	}
	if cfg.Model == "" {
		cfg.Model = DefaultGeminiModel
	}
	return &geminiClient{cfg: cfg, observer: observer}
}

func (c *geminiClient) Generate(ctx context.Context, req GenerateRequest) (*GenerateResponse, error) {
	start := time.Now()

	text, err := c.generate(ctx, req)
	observeCall(c.observer, req.Task, ProviderGemini, c.cfg.Model, start, err)
	if err != nil {
		return nil, err
	}
	return &GenerateResponse{
		Text:      text,
		Model:     c.cfg.Model,
		LatencyMs: time.Since(start).Milliseconds(),
	}, nil
}

func (c *geminiClient) generate(ctx context.Context, req GenerateRequest) (string, error) {
	svc, err := c.service()
	if err != nil {
		return "", err
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.TaskTimeout(req.Task))
	defer cancel()

	body := &genai.GoogleCloudAiplatformV1GenerateContentRequest{
		Contents: []*genai.GoogleCloudAiplatformV1Content{{
			Role:  "user",
			Parts: []*genai.GoogleCloudAiplatformV1Part{{Text: req.UserPrompt}},
		}},
		GenerationConfig: &genai.GoogleCloudAiplatformV1GenerationConfig{
			Temperature: c.cfg.Tasks[req.Task].Temperature,
		},
	}
	if req.SystemPrompt != "" {
		body.SystemInstruction = &genai.GoogleCloudAiplatformV1Content{
			Parts: []*genai.GoogleCloudAiplatformV1Part{{Text: req.SystemPrompt}},
		}
	}
	if req.ResponseSchema != nil {
		body.GenerationConfig.ResponseMimeType = "application/json"
		body.GenerationConfig.ResponseSchema = toGeminiSchema(req.ResponseSchema)
	}

	resp, err := svc.Publishers.Models.GenerateContent(modelResource(c.cfg.Model), body).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) {
			return "", fmt.Errorf("%w: gemini status %d: %s", ErrProviderStatus, apiErr.Code, apiErr.Message)
		}
		return "", classify(ctx, err)
	}

	text := candidateText(resp)
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// service builds the API service on first use so that a missing key only
// surfaces when a call is attempted.
func (c *geminiClient) service() (*genai.Service, error) {
	if c.cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.svc != nil {
		return c.svc, nil
	}

	endpoint := c.cfg.Endpoint
	if endpoint == "" {
		endpoint = DefaultGeminiEndpoint
	}
	svc, err := genai.NewService(context.Background(),
		option.WithAPIKey(c.cfg.APIKey),
		option.WithEndpoint(strings.TrimRight(endpoint, "/")+"/"),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: creating gemini service: %v", ErrUnavailable, err)
	}
	c.svc = svc
	return svc, nil
}

// candidateText joins the text parts of the first candidate.
func candidateText(resp *genai.GoogleCloudAiplatformV1GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}
	var b strings.Builder
	for _, p := range content.Parts {
		if p != nil {
			b.WriteString(p.Text)
		}
	}
	return b.String()
}

func modelResource(model string) string {
	if strings.HasPrefix(model, "models/") {
		return model
	}
	return "models/" + model
}

func toGeminiSchema(s *Schema) *genai.GoogleCloudAiplatformV1Schema {
	if s == nil {
		return nil
	}
	out := &genai.GoogleCloudAiplatformV1Schema{
		Type:        string(s.Type),
		Description: s.Description,
		Items:       toGeminiSchema(s.Items),
		Required:    append([]string(nil), s.Required...),
	}
	if len(s.Properties) > 0 {
		out.Properties = make(map[string]genai.GoogleCloudAiplatformV1Schema, len(s.Properties))
		for name, p := range s.Properties {
			out.Properties[name] = *toGeminiSchema(p)
		}
	}
	return out
}
