package app

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gin-gonic/gin"

	httpapi "github.com/yungbote/edubridge-backend/internal/http"
	"github.com/yungbote/edubridge-backend/internal/observability"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
)

const heartbeatInterval = 30 * time.Second

type App struct {
	Log      *logger.Logger
	Cfg      Config
	Clients  Clients
	Services Services
	Router   *gin.Engine

	server       *httpapi.Server
	otelShutdown func(context.Context) error
}

func New(ctx context.Context) (*App, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	if cfg.LogMode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	otelShutdown := observability.InitOTel(ctx, log, observability.OtelConfig{
		ServiceName: cfg.ServiceName,
		Environment: cfg.LogMode,
	})

	clients, err := wireClients(log, cfg)
	if err != nil {
		_ = otelShutdown(ctx)
		log.Sync()
		return nil, err
	}

	serviceset := wireServices(log, clients)
	handlerset := wireHandlers(log, serviceset)

	srv := httpapi.NewServer(httpapi.ServerConfig{
		Addr:              cfg.HTTP.Addr,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}, httpapi.RouterConfig{
		Log:                   log,
		Metrics:               clients.Metrics,
		ServiceName:           cfg.ServiceName,
		CORSOrigins:           cfg.HTTP.CORSOrigins,
		MaxRequestBytes:       cfg.HTTP.MaxRequestBytes,
		HealthHandler:         handlerset.Health,
		RecommendationHandler: handlerset.Recommendation,
		AIHandler:             handlerset.AI,
		ProgressHandler:       handlerset.Progress,
		DiagnosticHandler:     handlerset.Diagnostic,
	})

	return &App{
		Log:          log,
		Cfg:          cfg,
		Clients:      clients,
		Services:     serviceset,
		Router:       srv.Engine,
		server:       srv,
		otelShutdown: otelShutdown,
	}, nil
}

// Run serves HTTP until ctx is cancelled or the listener fails, then shuts down gracefully.
func (a *App) Run(ctx context.Context) error {
	if a == nil || a.server == nil {
		return fmt.Errorf("app not initialized")
	}

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.heartbeatLoop(runCtx)

	errCh := make(chan error, 1)
	go func() {
		a.Log.Info("HTTP server listening", "addr", a.server.Addr())
		errCh <- a.server.Run()
	}()

	select {
	case <-ctx.Done():
		a.Log.Info("Shutting down HTTP server...")
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.Cfg.HTTP.ShutdownTimeout)
		defer cancelShutdown()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			a.Log.Warn("HTTP server shutdown failed", "error", err)
		}
		return nil
	case err := <-errCh:
		return err
	}
}

// heartbeatLoop records liveness in the app_state table so operators can see when an
// instance was last up.
func (a *App) heartbeatLoop(ctx context.Context) {
	store := a.Clients.Store
	if store == nil {
		return
	}
	instance, _ := os.Hostname()
	if instance == "" {
		instance = "unknown"
	}

	beat := func() {
		beatCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := store.RecordHeartbeat(beatCtx, instance, time.Now().UTC()); err != nil {
			a.Log.Warn("Heartbeat write failed", "error", err)
		}
	}

	beat()
	t := time.NewTicker(heartbeatInterval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			beat()
		}
	}
}

func (a *App) Close() {
	if a == nil {
		return
	}
	if err := a.Clients.Close(); err != nil && a.Log != nil {
		a.Log.Warn("Closing clients failed", "error", err)
	}
	if a.otelShutdown != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := a.otelShutdown(ctx); err != nil && a.Log != nil {
			a.Log.Warn("OpenTelemetry shutdown failed", "error", err)
		}
	}
	if a.Log != nil {
		a.Log.Sync()
	}
}
