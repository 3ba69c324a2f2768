package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/yungbote/edubridge-backend/internal/clients/cache"
	"github.com/yungbote/edubridge-backend/internal/domain"
	"github.com/yungbote/edubridge-backend/internal/observability"
	"github.com/yungbote/edubridge-backend/internal/platform/apierr"
	"github.com/yungbote/edubridge-backend/internal/platform/ctxutil"
	"github.com/yungbote/edubridge-backend/internal/platform/gemini"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
)

const (
	CodeAINotConfigured   = "ai_not_configured"
	CodeAIUpstreamError   = "ai_upstream_error"
	CodeAIInvalidResponse = "ai_invalid_response"

	studyPlanTemperature = 0.5
	tutorTipTemperature  = 0.6

	maxPlanItems = 3

	sharedCallTimeout = 90 * time.Second
)

var errNotConfigured = apierr.New(http.StatusServiceUnavailable, CodeAINotConfigured,
	errors.New("GEMINI_API_KEY is not configured on the server."))

type AIService interface {
	StudyPlan(ctx context.Context, req domain.StudyPlanRequest) (*domain.StudyPlan, error)
	TutorTip(ctx context.Context, req domain.TutorTipRequest) (*domain.TutorTip, error)
}

type aiService struct {
	log     *logger.Logger
	client  gemini.Client
	cache   cache.Cache
	metrics *observability.Metrics
	group   singleflight.Group
}

// NewAIService builds the LLM proxy. A nil client means no API key is configured and
// every call fails with 503; a nil cache disables response caching.
func NewAIService(log *logger.Logger, client gemini.Client, c cache.Cache, metrics *observability.Metrics) AIService {
	return &aiService{
		log:     log.With("service", "AIService"),
		client:  client,
		cache:   c,
		metrics: metrics,
	}
}

func (s *aiService) StudyPlan(ctx context.Context, req domain.StudyPlanRequest) (*domain.StudyPlan, error) {
	if s.client == nil {
		return nil, errNotConfigured
	}
	prompt, err := studyPlanPrompt(req)
	if err != nil {
		return nil, apierr.New(http.StatusBadRequest, "invalid_request", err)
	}
	var plan domain.StudyPlan
	err = s.generate(ctx, "study_plan", prompt, studyPlanTemperature, &plan, func(raw map[string]any) (any, error) {
		return parseStudyPlan(raw)
	})
	if err != nil {
		return nil, err
	}
	return &plan, nil
}

func (s *aiService) TutorTip(ctx context.Context, req domain.TutorTipRequest) (*domain.TutorTip, error) {
	if s.client == nil {
		return nil, errNotConfigured.WithDetails(domain.FallbackTutorTip)
	}
	var tip domain.TutorTip
	err := s.generate(ctx, "tutor_tip", tutorTipPrompt(req), tutorTipTemperature, &tip, func(raw map[string]any) (any, error) {
		return parseTutorTip(raw)
	})
	if err != nil {
		var ae *apierr.Error
		if errors.As(err, &ae) {
			return nil, ae.WithDetails(domain.FallbackTutorTip)
		}
		return nil, err
	}
	return &tip, nil
}

// generate serves a validated response from cache when possible, otherwise asks the
// model once. Identical concurrent prompts share a single upstream call.
func (s *aiService) generate(
	ctx context.Context,
	endpoint, prompt string,
	temperature float64,
	out any,
	parse func(map[string]any) (any, error),
) error {
	key := cache.Key(endpoint, prompt)
	if b, ok := s.cacheGet(ctx, key); ok {
		if err := json.Unmarshal(b, out); err == nil {
			return nil
		}
	}

	// The shared call outlives any single caller; each caller stops waiting on its own ctx.
	ch := s.group.DoChan(key, func() (any, error) {
		callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sharedCallTimeout)
		defer cancel()

		raw, err := s.client.GenerateJSON(callCtx, prompt, gemini.GenerateOptions{
			Temperature: temperature,
			Endpoint:    endpoint,
		})
		if err != nil {
			return nil, mapGeminiError(err)
		}
		parsed, err := parse(raw)
		if err != nil {
			return nil, apierr.New(http.StatusBadGateway, CodeAIInvalidResponse, err)
		}
		b, err := json.Marshal(parsed)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", endpoint, err)
		}
		s.cacheSet(callCtx, key, b)
		return b, nil
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return mapGeminiError(ctx.Err())
	case res = <-ch:
	}
	if res.Err != nil {
		fields := append([]interface{}{"endpoint", endpoint, "error", res.Err}, ctxutil.LogFields(ctx)...)
		s.log.Warn("AI request failed", fields...)
		return res.Err
	}
	if res.Shared {
		s.log.Debug("AI request shared with concurrent caller", "endpoint", endpoint)
	}
	return json.Unmarshal(res.Val.([]byte), out)
}

func (s *aiService) cacheGet(ctx context.Context, key string) ([]byte, bool) {
	if s.cache == nil {
		return nil, false
	}
	b, ok, err := s.cache.Get(ctx, key)
	switch {
	case err != nil:
		s.metrics.ObserveCacheLookup(s.cache.Backend(), "error")
		s.log.Warn("AI cache read failed", "backend", s.cache.Backend(), "error", err)
		return nil, false
	case ok:
		s.metrics.ObserveCacheLookup(s.cache.Backend(), "hit")
		return b, true
	default:
		s.metrics.ObserveCacheLookup(s.cache.Backend(), "miss")
		return nil, false
	}
}

func (s *aiService) cacheSet(ctx context.Context, key string, b []byte) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, b); err != nil {
		s.log.Warn("AI cache write failed", "backend", s.cache.Backend(), "error", err)
	}
}

func mapGeminiError(err error) error {
	var upstream *gemini.UpstreamError
	switch {
	case errors.Is(err, gemini.ErrNotConfigured):
		return errNotConfigured
	case errors.As(err, &upstream):
		return apierr.New(http.StatusBadGateway, CodeAIUpstreamError, err)
	case errors.Is(err, gemini.ErrEmptyResponse), errors.Is(err, gemini.ErrInvalidResponse):
		return apierr.New(http.StatusBadGateway, CodeAIInvalidResponse, err)
	default:
		return apierr.New(http.StatusBadGateway, CodeAIUpstreamError, fmt.Errorf("Gemini request failed: %w", err))
	}
}

func studyPlanPrompt(req domain.StudyPlanRequest) (string, error) {
	answers := req.Answers
	if answers == nil {
		answers = []string{}
	}
	initial := req.InitialSurvey
	if initial == nil {
		initial = map[string]any{}
	}
	final := req.FinalSurvey
	if final == nil {
		final = map[string]any{}
	}
	a, err := compactJSON(answers)
	if err != nil {
		return "", err
	}
	i, err := compactJSON(initial)
	if err != nil {
		return "", err
	}
	f, err := compactJSON(final)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(`
You are an educational planning assistant.
Generate a JSON object only with this exact shape:
{
  "weeklyGoals": string[],
  "recommendedMethod": string,
  "practiceBlocks": [
    { "subject": string, "duration": string, "task": string }
  ]
}

Rules:
- Exactly 3 weeklyGoals.
- Exactly 3 practiceBlocks.
- Durations should be realistic like "30 mins" or "45 mins".
- recommendedMethod should be specific and actionable.
- Base recommendations on diagnostic answers, learning style, and personality/preferences.
- No markdown, no code fences, JSON only.

Diagnostic answers: ` + a + `
Initial survey: ` + i + `
Final survey: ` + f), nil
}

func tutorTipPrompt(req domain.TutorTipRequest) string {
	return strings.TrimSpace(`
Give concise study guidance for a student.
Return JSON only with shape: { "tip": string, "microPlan": string[] }
Rules:
- tip: 1-2 sentences
- microPlan: exactly 3 short steps

Subject: ` + orDefault(req.Subject, "Unknown") + `
Task: ` + orDefault(req.Task, "Unknown") + `
Learning style: ` + orDefault(req.LearningStyle, "Not provided"))
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func compactJSON(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", err
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func parseStudyPlan(raw map[string]any) (*domain.StudyPlan, error) {
	goals, ok := raw["weeklyGoals"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: weeklyGoals is not an array", gemini.ErrInvalidResponse)
	}
	method, ok := raw["recommendedMethod"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: recommendedMethod is not a string", gemini.ErrInvalidResponse)
	}
	blocks, ok := raw["practiceBlocks"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: practiceBlocks is not an array", gemini.ErrInvalidResponse)
	}

	plan := &domain.StudyPlan{
		WeeklyGoals:       make([]string, 0, maxPlanItems),
		RecommendedMethod: method,
		PracticeBlocks:    make([]domain.PracticeBlock, 0, maxPlanItems),
	}
	for _, g := range goals[:min(maxPlanItems, len(goals))] {
		s, ok := g.(string)
		if !ok {
			return nil, fmt.Errorf("%w: weeklyGoals item is not a string", gemini.ErrInvalidResponse)
		}
		plan.WeeklyGoals = append(plan.WeeklyGoals, s)
	}
	for _, b := range blocks[:min(maxPlanItems, len(blocks))] {
		obj, ok := b.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: practiceBlocks item is not an object", gemini.ErrInvalidResponse)
		}
		var pb domain.PracticeBlock
		var err error
		if pb.Subject, err = optionalString(obj, "subject"); err != nil {
			return nil, err
		}
		if pb.Duration, err = optionalString(obj, "duration"); err != nil {
			return nil, err
		}
		if pb.Task, err = optionalString(obj, "task"); err != nil {
			return nil, err
		}
		plan.PracticeBlocks = append(plan.PracticeBlocks, pb)
	}
	return plan, nil
}

func parseTutorTip(raw map[string]any) (*domain.TutorTip, error) {
	tip, ok := raw["tip"].(string)
	if !ok {
		return nil, fmt.Errorf("%w: tip is not a string", gemini.ErrInvalidResponse)
	}
	steps, ok := raw["microPlan"].([]any)
	if !ok {
		return nil, fmt.Errorf("%w: microPlan is not an array", gemini.ErrInvalidResponse)
	}
	out := &domain.TutorTip{Tip: tip, MicroPlan: make([]string, 0, maxPlanItems)}
	for _, st := range steps[:min(maxPlanItems, len(steps))] {
		s, ok := st.(string)
		if !ok {
			return nil, fmt.Errorf("%w: microPlan item is not a string", gemini.ErrInvalidResponse)
		}
		out.MicroPlan = append(out.MicroPlan, s)
	}
	return out, nil
}

// optionalString treats a missing field as empty but rejects non-string values.
func optionalString(obj map[string]any, field string) (string, error) {
	v, present := obj[field]
	if !present || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: practiceBlocks.%s is not a string", gemini.ErrInvalidResponse, field)
	}
	return s, nil
}
