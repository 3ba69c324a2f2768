package db

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yungbote/edubridge-backend/internal/domain"
	"github.com/yungbote/edubridge-backend/internal/platform/logger"
)

const heartbeatKey = "heartbeat"

type Config struct {
	// Driver is "postgres" or "sqlite".
	Driver string
	DSN    string
}

// Store is the persistence stub: the service is stateless, the database only answers health probes.
type Store struct {
	db  *gorm.DB
	log *logger.Logger
}

func Open(log *logger.Logger, cfg Config) (*Store, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	storeLog := log.With("service", "Store", "driver", cfg.Driver)

	var dialector gorm.Dialector
	switch strings.ToLower(strings.TrimSpace(cfg.Driver)) {
	case "postgres":
		dialector = postgres.Open(cfg.DSN)
	case "sqlite", "":
		dsn := cfg.DSN
		if dsn == "" {
			dsn = "file:edubridge.db?cache=shared"
		}
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}

	storeLog.Info("Connecting to database...")
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		storeLog.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("open database: %w", err)
	}
	return &Store{db: db, log: storeLog}, nil
}

func (s *Store) AutoMigrate() error {
	s.log.Info("Auto migrating tables...")
	if err := s.db.AutoMigrate(&domain.AppState{}); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

// HealthCheck reports whether the app_state table can be read.
func (s *Store) HealthCheck(ctx context.Context) bool {
	if s == nil || s.db == nil {
		return false
	}
	var rows []domain.AppState
	if err := s.db.WithContext(ctx).Limit(1).Find(&rows).Error; err != nil {
		s.log.Warn("Database health check failed", "error", err)
		return false
	}
	return true
}

// RecordHeartbeat upserts the heartbeat row with the given time and instance label.
func (s *Store) RecordHeartbeat(ctx context.Context, instance string, at time.Time) error {
	payload, err := json.Marshal(map[string]any{
		"instance": instance,
		"at":       at.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}
	row := domain.AppState{Key: heartbeatKey, Payload: datatypes.JSON(payload)}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "state_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"payload", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("record heartbeat: %w", err)
	}
	return nil
}

// Heartbeat returns the stored heartbeat row, if any.
func (s *Store) Heartbeat(ctx context.Context) (*domain.AppState, error) {
	var row domain.AppState
	res := s.db.WithContext(ctx).Where("state_key = ?", heartbeatKey).Limit(1).Find(&row)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
