package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/yungbote/edubridge-backend/internal/domain"
	"github.com/yungbote/edubridge-backend/internal/platform/apierr"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
	"github.com/yungbote/edubridge-backend/internal/services"
)

func serve(t *testing.T, method, path, body string, register func(r *gin.Engine)) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	register(r)

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

type errorBody struct {
	Error struct {
		Message string `json:"message"`
		Code    string `json:"code"`
	} `json:"error"`
	Fallback *domain.TutorTip `json:"fallback"`
}

func TestRecommendationHandler(t *testing.T) {
	t.Parallel()

	h := NewRecommendationHandler(services.NewRecommendationService(logger.NewNop(), nil))
	register := func(r *gin.Engine) { r.POST("/api/recommendations", h.Recommend) }

	body := `{"initialSurvey":{"learningStyle":"Visual"},"moodEntries":[{"rating":4,"date":"2026-10-19"}]}`
	rec := serve(t, http.MethodPost, "/api/recommendations", body, register)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d body=%s", rec.Code, rec.Body.String())
	}
	got := decode[domain.PersonalizedRecommendations](t, rec)
	if got.TopMethod.Name != "Concept Mapping Studio" {
		t.Fatalf("top method: got=%q", got.TopMethod.Name)
	}
	if len(got.AlternateMethods) != 3 || len(got.Explanation) != 3 {
		t.Fatalf("unexpected shape: %+v", got)
	}

	rec = serve(t, http.MethodPost, "/api/recommendations", `{"studyPlan":`, register)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("malformed body: got=%d", rec.Code)
	}
	if e := decode[errorBody](t, rec); e.Error.Code != "invalid_request" {
		t.Fatalf("code: got=%q", e.Error.Code)
	}

	rec = serve(t, http.MethodPost, "/api/recommendations", "", register)
	if rec.Code != http.StatusOK {
		t.Fatalf("empty body should use defaults: got=%d", rec.Code)
	}
}

type stubAI struct {
	plan *domain.StudyPlan
	tip  *domain.TutorTip
	err  error
}

func (s stubAI) StudyPlan(context.Context, domain.StudyPlanRequest) (*domain.StudyPlan, error) {
	return s.plan, s.err
}

func (s stubAI) TutorTip(context.Context, domain.TutorTipRequest) (*domain.TutorTip, error) {
	return s.tip, s.err
}

func TestAIHandler(t *testing.T) {
	t.Parallel()

	t.Run("study plan ok", func(t *testing.T) {
		h := NewAIHandlerWithDeps(AIHandlerDeps{AI: stubAI{plan: &domain.StudyPlan{RecommendedMethod: "Interleaving"}}})
		rec := serve(t, http.MethodPost, "/api/ai/study-plan", `{"answers":["a"]}`, func(r *gin.Engine) {
			r.POST("/api/ai/study-plan", h.StudyPlan)
		})
		if rec.Code != http.StatusOK {
			t.Fatalf("status: got=%d", rec.Code)
		}
		if got := decode[domain.StudyPlan](t, rec); got.RecommendedMethod != "Interleaving" {
			t.Fatalf("plan: %+v", got)
		}
	})

	t.Run("tutor tip not configured", func(t *testing.T) {
		h := NewAIHandlerWithDeps(AIHandlerDeps{AI: services.NewAIService(logger.NewNop(), nil, nil, nil)})
		rec := serve(t, http.MethodPost, "/api/ai/tutor-tip", `{"subject":"Math"}`, func(r *gin.Engine) {
			r.POST("/api/ai/tutor-tip", h.TutorTip)
		})
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("status: got=%d", rec.Code)
		}
		e := decode[errorBody](t, rec)
		if e.Error.Code != services.CodeAINotConfigured {
			t.Fatalf("code: got=%q", e.Error.Code)
		}
		if e.Error.Message != "GEMINI_API_KEY is not configured on the server." {
			t.Fatalf("message: got=%q", e.Error.Message)
		}
		if e.Fallback == nil || len(e.Fallback.MicroPlan) != 3 {
			t.Fatalf("fallback tip missing: %+v", e.Fallback)
		}
	})

	t.Run("upstream failure", func(t *testing.T) {
		err := apierr.New(http.StatusBadGateway, services.CodeAIUpstreamError, errors.New("Gemini API error: 500 oops"))
		h := NewAIHandlerWithDeps(AIHandlerDeps{AI: stubAI{err: err}})
		rec := serve(t, http.MethodPost, "/api/ai/study-plan", `{}`, func(r *gin.Engine) {
			r.POST("/api/ai/study-plan", h.StudyPlan)
		})
		if rec.Code != http.StatusBadGateway {
			t.Fatalf("status: got=%d", rec.Code)
		}
		if e := decode[errorBody](t, rec); e.Error.Message != "Gemini API error: 500 oops" {
			t.Fatalf("message: got=%q", e.Error.Message)
		}
	})
}

func TestProgressHandlerExport(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	h := NewProgressHandler(services.NewProgressService(logger.NewNop(), func() time.Time { return now }))
	body := `{"studentName":"Sam","state":{"studyPlan":{"weeklyGoals":["Read ch. 4"],"recommendedMethod":"x","practiceBlocks":[]}}}`

	rec := serve(t, http.MethodPost, "/api/progress/export", body, func(r *gin.Engine) {
		r.POST("/api/progress/export", h.Export)
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got=%d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("content type: got=%q", ct)
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "edubridge-progress-summary.txt") {
		t.Fatalf("content disposition: got=%q", cd)
	}
	if !strings.HasPrefix(rec.Body.String(), "Student: Sam\n") {
		t.Fatalf("unexpected body:\n%s", rec.Body.String())
	}

	rec = serve(t, http.MethodPost, "/api/progress/summary", body, func(r *gin.Engine) {
		r.POST("/api/progress/summary", h.Summary)
	})
	got := decode[domain.ProgressSummary](t, rec)
	if len(got.Last7Days) != 7 || got.Last7Days[6].Date != "2026-10-19" {
		t.Fatalf("unexpected summary: %+v", got)
	}
}

func TestDiagnosticHandler(t *testing.T) {
	t.Parallel()

	h := NewDiagnosticHandler(services.NewDiagnosticService(logger.NewNop()))
	register := func(r *gin.Engine) {
		r.GET("/api/diagnostic/questions", h.Questions)
		r.POST("/api/diagnostic/plan", h.Plan)
	}

	rec := serve(t, http.MethodGet, "/api/diagnostic/questions", "", register)
	qs := decode[struct {
		Questions []domain.DiagnosticQuestion `json:"questions"`
	}](t, rec)
	if len(qs.Questions) != 5 {
		t.Fatalf("questions: got=%d", len(qs.Questions))
	}

	answers := make([]string, len(qs.Questions))
	for i, q := range qs.Questions {
		answers[i] = q.Options[1]
	}
	payload, _ := json.Marshal(domain.DiagnosticSubmission{Answers: answers})
	rec = serve(t, http.MethodPost, "/api/diagnostic/plan", string(payload), register)
	if rec.Code != http.StatusOK {
		t.Fatalf("plan status: got=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = serve(t, http.MethodPost, "/api/diagnostic/plan", `{"answers":["nope"]}`, register)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("invalid answers: got=%d", rec.Code)
	}
	if e := decode[errorBody](t, rec); e.Error.Code != services.CodeInvalidAnswer {
		t.Fatalf("code: got=%q", e.Error.Code)
	}
}

type downChecker struct{}

func (downChecker) HealthCheck(context.Context) bool { return false }

func TestHealthHandler(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler(services.NewHealthService(logger.NewNop(), downChecker{}, nil))
	register := func(r *gin.Engine) {
		r.GET("/healthcheck", h.HealthCheck)
		r.GET("/api/health", h.Status)
	}

	rec := serve(t, http.MethodGet, "/healthcheck", "", register)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("liveness: got=%d %q", rec.Code, rec.Body.String())
	}

	rec = serve(t, http.MethodGet, "/api/health", "", register)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("health status: got=%d", rec.Code)
	}
	if got := decode[services.HealthStatus](t, rec); got.Database != "down" {
		t.Fatalf("database: got=%q", got.Database)
	}
}

func TestAIHandlerLogsFailures(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.InfoLevel)
	log := &logger.Logger{SugaredLogger: zap.New(core).Sugar()}
	err := apierr.New(http.StatusBadGateway, services.CodeAIInvalidResponse, errors.New("Gemini returned an empty response."))
	h := NewAIHandlerWithDeps(AIHandlerDeps{Log: log, AI: stubAI{err: err}})

	rec := serve(t, http.MethodPost, "/api/ai/tutor-tip", `{}`, func(r *gin.Engine) {
		r.POST("/api/ai/tutor-tip", h.TutorTip)
	})
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status: got=%d", rec.Code)
	}

	entries := logs.FilterMessage("AI proxy request failed").All()
	if len(entries) != 1 {
		t.Fatalf("expected one failure log entry, got %d", len(entries))
	}
	ctx := entries[0].ContextMap()
	if ctx["endpoint"] != "tutor_tip" || ctx["code"] != services.CodeAIInvalidResponse {
		t.Fatalf("unexpected log fields: %v", ctx)
	}
}
