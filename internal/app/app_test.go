package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"
)

func TestNewWiresRouterAgainstSQLite(t *testing.T) {
	t.Setenv(configPathEnv, writeConfig(t, ""))
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "file:"+filepath.Join(t.TempDir(), "edubridge.db"))
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("REDIS_ADDR", "")
	t.Setenv("OTEL_ENABLED", "")
	t.Setenv("HTTP_ADDR", "127.0.0.1:0")

	a, err := New(context.Background())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)

	if a.Clients.Gemini != nil {
		t.Fatalf("gemini client should be nil without an API key")
	}
	if a.Clients.AICache == nil || a.Clients.AICache.Backend() != "lru" {
		t.Fatalf("expected in-process AI cache")
	}

	rec := httptest.NewRecorder()
	a.Router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("health: got=%d body=%s", rec.Code, rec.Body.String())
	}
}

func TestRunStopsOnContextCancel(t *testing.T) {
	t.Setenv(configPathEnv, writeConfig(t, ""))
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_DSN", "file:"+filepath.Join(t.TempDir(), "edubridge.db"))
	t.Setenv("HTTP_ADDR", "127.0.0.1:0")
	t.Setenv("OTEL_ENABLED", "")
	t.Setenv("REDIS_ADDR", "")

	a, err := New(context.Background())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(a.Close)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- a.Run(ctx) }()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("Run did not return after cancel")
	}

	if hb, err := a.Clients.Store.Heartbeat(context.Background()); err != nil || hb == nil {
		t.Fatalf("expected a recorded heartbeat, got %v (%v)", hb, err)
	}
}
