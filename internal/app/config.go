package app

import (
	"bytes"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yungbote/edubridge-backend/internal/platform/envutil"
)

const (
	configPathEnv     = "EDUBRIDGE_CONFIG_PATH"
	defaultConfigPath = "config/config.yaml"
)

type Config struct {
	LogMode     string        `yaml:"log_mode"`
	ServiceName string        `yaml:"service_name"`
	HTTP        HTTPConfig    `yaml:"http"`
	Gemini      GeminiConfig  `yaml:"gemini"`
	DB          DBConfig      `yaml:"db"`
	Cache       CacheConfig   `yaml:"cache"`
	Metrics     MetricsConfig `yaml:"metrics"`
}

type HTTPConfig struct {
	Addr              string        `yaml:"addr"`
	ReadHeaderTimeout time.Duration `yaml:"read_header_timeout"`
	WriteTimeout      time.Duration `yaml:"write_timeout"`
	IdleTimeout       time.Duration `yaml:"idle_timeout"`
	ShutdownTimeout   time.Duration `yaml:"shutdown_timeout"`
	MaxRequestBytes   int64         `yaml:"max_request_bytes"`
	CORSOrigins       []string      `yaml:"cors_origins"`
}

type GeminiConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Model   string        `yaml:"model"`
	Timeout time.Duration `yaml:"timeout"`
}

type DBConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

type CacheConfig struct {
	// RedisAddr selects the shared Redis cache; empty keeps responses in process.
	RedisAddr string        `yaml:"redis_addr"`
	TTL       time.Duration `yaml:"ttl"`
	LRUSize   int           `yaml:"lru_size"`
}

type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
}

func defaultConfig() Config {
	return Config{
		LogMode:     "development",
		ServiceName: "edubridge-api",
		HTTP: HTTPConfig{
			Addr:              ":5000",
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      90 * time.Second,
			IdleTimeout:       120 * time.Second,
			ShutdownTimeout:   15 * time.Second,
			MaxRequestBytes:   1 << 20,
		},
		Gemini: GeminiConfig{
			Timeout: 60 * time.Second,
		},
		DB: DBConfig{
			Driver: "sqlite",
		},
		Cache: CacheConfig{
			TTL:     10 * time.Minute,
			LRUSize: 256,
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}

// LoadConfig applies defaults, then the optional YAML file, then environment overrides.
func LoadConfig() (Config, error) {
	cfg := defaultConfig()

	path := envutil.String(configPathEnv, "")
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	if err := mergeConfigFile(&cfg, path, explicit); err != nil {
		return Config{}, err
	}

	applyEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// mergeConfigFile overlays the YAML at path onto cfg. A missing file is only an error when
// the path was set explicitly.
func mergeConfigFile(cfg *Config, path string, explicit bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.LogMode = envutil.String("LOG_MODE", cfg.LogMode)

	if port := envutil.String("PORT", ""); port != "" {
		cfg.HTTP.Addr = ":" + strings.TrimPrefix(port, ":")
	}
	cfg.HTTP.Addr = envutil.String("HTTP_ADDR", cfg.HTTP.Addr)
	cfg.HTTP.MaxRequestBytes = int64(envutil.Int("MAX_REQUEST_BYTES", int(cfg.HTTP.MaxRequestBytes)))
	if origins := envutil.String("CORS_ORIGINS", ""); origins != "" {
		cfg.HTTP.CORSOrigins = splitList(origins)
	}

	cfg.Gemini.APIKey = envutil.String("GEMINI_API_KEY", cfg.Gemini.APIKey)
	cfg.Gemini.BaseURL = envutil.String("GEMINI_BASE_URL", cfg.Gemini.BaseURL)
	cfg.Gemini.Model = envutil.String("GEMINI_MODEL", cfg.Gemini.Model)
	cfg.Gemini.Timeout = envutil.Seconds("GEMINI_TIMEOUT_SECONDS", cfg.Gemini.Timeout)

	cfg.DB.Driver = envutil.String("DB_DRIVER", cfg.DB.Driver)
	cfg.DB.DSN = envutil.String("DB_DSN", cfg.DB.DSN)
	if strings.EqualFold(cfg.DB.Driver, "postgres") && cfg.DB.DSN == "" {
		cfg.DB.DSN = postgresDSNFromEnv()
	}

	cfg.Cache.RedisAddr = envutil.String("REDIS_ADDR", cfg.Cache.RedisAddr)
	cfg.Cache.TTL = envutil.Seconds("AI_CACHE_TTL_SECONDS", cfg.Cache.TTL)
	cfg.Cache.LRUSize = envutil.Int("AI_CACHE_LRU_SIZE", cfg.Cache.LRUSize)

	cfg.Metrics.Enabled = envutil.Bool("METRICS_ENABLED", cfg.Metrics.Enabled)
}

func postgresDSNFromEnv() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(envutil.String("POSTGRES_USER", "postgres"), envutil.String("POSTGRES_PASSWORD", "")),
		Host:     envutil.String("POSTGRES_HOST", "localhost") + ":" + envutil.String("POSTGRES_PORT", "5432"),
		Path:     "/" + envutil.String("POSTGRES_NAME", "edubridge"),
		RawQuery: "sslmode=" + envutil.String("POSTGRES_SSLMODE", "disable"),
	}
	return u.String()
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) Validate() error {
	var errs []error
	switch strings.ToLower(strings.TrimSpace(c.DB.Driver)) {
	case "postgres", "sqlite":
	default:
		errs = append(errs, fmt.Errorf("db.driver: unsupported value %q", c.DB.Driver))
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errs = append(errs, errors.New("http.addr: must not be empty"))
	}
	if c.HTTP.MaxRequestBytes <= 0 {
		errs = append(errs, errors.New("http.max_request_bytes: must be positive"))
	}
	if c.Cache.LRUSize <= 0 {
		errs = append(errs, errors.New("cache.lru_size: must be positive"))
	}
	if c.Cache.TTL <= 0 {
		errs = append(errs, errors.New("cache.ttl: must be positive"))
	}
	if c.Gemini.Timeout <= 0 {
		errs = append(errs, errors.New("gemini.timeout: must be positive"))
	}
	return errors.Join(errs...)
}
