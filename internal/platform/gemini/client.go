// Package gemini is a minimal client for the Gemini generateContent API, used to
// produce JSON-only study plans and tutor tips.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/yungbote/edubridge-backend/internal/observability"
	"github.com/yungbote/edubridge-backend/internal/platform/ctxutil"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-1.5-flash"

	maxErrorBody = 2 << 10
)

var (
	ErrNotConfigured   = errors.New("gemini api key not configured")
	ErrEmptyResponse   = errors.New("gemini returned an empty response")
	ErrInvalidResponse = errors.New("gemini response format was invalid")
)

// UpstreamError is a non-2xx answer from the Gemini API.
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Gemini API error: %d %s", e.StatusCode, e.Body)
}

func (e *UpstreamError) HTTPStatusCode() int { return e.StatusCode }

type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type GenerateOptions struct {
	Temperature float64
	// Endpoint labels metrics and spans, e.g. "study_plan".
	Endpoint string
}

// Client generates a single JSON object from a prompt.
// Requests are attempted once; callers decide how to degrade on failure.
type Client interface {
	GenerateJSON(ctx context.Context, prompt string, opts GenerateOptions) (map[string]any, error)
}

type client struct {
	log        *logger.Logger
	metrics    *observability.Metrics
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewClient(log *logger.Logger, metrics *observability.Metrics, cfg Config) (Client, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, ErrNotConfigured
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &client{
		log:        log.With("service", "GeminiClient"),
		metrics:    metrics,
		baseURL:    baseURL,
		apiKey:     apiKey,
		model:      model,
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type part struct {
	Text string `json:"text,omitempty"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	Temperature      float64 `json:"temperature"`
	ResponseMimeType string  `json:"responseMimeType"`
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content *content `json:"content"`
	} `json:"candidates"`
}

func (c *client) GenerateJSON(ctx context.Context, prompt string, opts GenerateOptions) (map[string]any, error) {
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = "generate"
	}
	ctx, span := otel.Tracer("edubridge/gemini").Start(ctx, "gemini.generateContent")
	span.SetAttributes(
		attribute.String("gemini.model", c.model),
		attribute.String("gemini.endpoint", endpoint),
	)
	defer span.End()

	start := time.Now()
	obj, err := c.generateObject(ctx, prompt, opts.Temperature)
	status := statusLabel(err)
	c.metrics.ObserveLLMRequest(c.model, endpoint, status, time.Since(start))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, status)
		fields := append([]interface{}{"endpoint", endpoint, "status", status, "error", err}, ctxutil.LogFields(ctx)...)
		c.log.Warn("Gemini request failed", fields...)
		return nil, err
	}
	return obj, nil
}

func (c *client) generateObject(ctx context.Context, prompt string, temperature float64) (map[string]any, error) {
	text, err := c.generate(ctx, prompt, temperature)
	if err != nil {
		return nil, err
	}
	var obj map[string]any
	if err := json.Unmarshal([]byte(text), &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return obj, nil
}

func (c *client) generate(ctx context.Context, prompt string, temperature float64) (string, error) {
	body := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:      temperature,
			ResponseMimeType: "application/json",
		},
	}
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(body); err != nil {
		return "", err
	}

	path := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.baseURL, url.PathEscape(c.model))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, path, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("gemini request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("gemini read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(raw) > maxErrorBody {
			raw = raw[:maxErrorBody]
		}
		return "", &UpstreamError{StatusCode: resp.StatusCode, Body: string(raw)}
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("%w: decode envelope: %v", ErrInvalidResponse, err)
	}
	if len(out.Candidates) == 0 || out.Candidates[0].Content == nil || len(out.Candidates[0].Content.Parts) == 0 {
		return "", ErrEmptyResponse
	}
	text := out.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

func statusLabel(err error) string {
	var upstream *UpstreamError
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &upstream):
		return fmt.Sprintf("http_%d", upstream.StatusCode)
	case errors.Is(err, ErrEmptyResponse):
		return "empty"
	case errors.Is(err, ErrInvalidResponse):
		return "invalid_json"
	case errors.Is(err, context.DeadlineExceeded):
		return "timeout"
	case errors.Is(err, context.Canceled):
		return "canceled"
	default:
		return "transport_error"
	}
}
