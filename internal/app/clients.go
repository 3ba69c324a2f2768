package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/yungbote/edubridge-backend/internal/clients/cache"
	"github.com/yungbote/edubridge-backend/internal/clients/redis"
	"github.com/yungbote/edubridge-backend/internal/db"
	"github.com/yungbote/edubridge-backend/internal/observability"
	"github.com/yungbote/edubridge-backend/internal/platform/gemini"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
)

type Clients struct {
	Store   *db.Store
	Gemini  gemini.Client
	AICache cache.Cache
	Metrics *observability.Metrics

	closers []func() error
}

func wireClients(log *logger.Logger, cfg Config) (Clients, error) {
	log.Info("Wiring clients...")
	var out Clients

	if cfg.Metrics.Enabled {
		out.Metrics = observability.NewMetrics()
	}

	// Storage
	store, err := db.Open(log, db.Config{Driver: cfg.DB.Driver, DSN: cfg.DB.DSN})
	if err != nil {
		return Clients{}, fmt.Errorf("init store: %w", err)
	}
	if err := store.AutoMigrate(); err != nil {
		_ = store.Close()
		return Clients{}, fmt.Errorf("store automigrate: %w", err)
	}
	out.Store = store
	out.closers = append(out.closers, store.Close)

	// Gemini
	gc, err := gemini.NewClient(log, out.Metrics, gemini.Config{
		APIKey:  cfg.Gemini.APIKey,
		BaseURL: cfg.Gemini.BaseURL,
		Model:   cfg.Gemini.Model,
		Timeout: cfg.Gemini.Timeout,
	})
	switch {
	case errors.Is(err, gemini.ErrNotConfigured):
		log.Warn("GEMINI_API_KEY not set; AI endpoints will respond 503")
	case err != nil:
		_ = out.Close()
		return Clients{}, fmt.Errorf("init gemini client: %w", err)
	default:
		out.Gemini = gc
	}

	// AI response cache
	if strings.TrimSpace(cfg.Cache.RedisAddr) != "" {
		rc, err := redis.NewAICache(log, cfg.Cache.RedisAddr, cfg.Cache.TTL)
		if err != nil {
			_ = out.Close()
			return Clients{}, fmt.Errorf("init redis AI cache: %w", err)
		}
		out.AICache = rc
		if c, ok := rc.(interface{ Close() error }); ok {
			out.closers = append(out.closers, c.Close)
		}
	} else {
		out.AICache = cache.NewLRU(cfg.Cache.LRUSize, cfg.Cache.TTL)
	}

	return out, nil
}

func (c Clients) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
