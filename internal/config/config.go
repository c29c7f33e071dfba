package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	App       AppConfig
	Corpus    CorpusConfig
	Extractor ExtractorConfig
	JobsAPI   JobsAPIConfig
	SearchAPI SearchAPIConfig
	Catalog   CatalogConfig
	Database  DatabaseConfig
	Auth      AuthConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type CorpusConfig struct {
	Path string
}

type ExtractorConfig struct {
	BaseURL string
	Timeout time.Duration
}

type JobsAPIConfig struct {
	URL      string
	Key      string
	Host     string
	MaxPages int
}

type SearchAPIConfig struct {
	URL string
	Key string
}

type CatalogConfig struct {
	BaseURL  string
	Headless bool
}

type DatabaseConfig struct {
	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	ConnectTimeout        time.Duration
	PoolMaxConns          int32
	PoolMinConns          int32
	PoolMaxConnLifetime   time.Duration
	PoolMaxConnIdleTime   time.Duration
	PoolHealthCheckPeriod time.Duration
}

type AuthConfig struct {
	AccessSecret string
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key, fallback string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			return fallback
		}
		return v
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Corpus = CorpusConfig{
		Path: opt("CORPUS_PATH", "job_listings.csv"),
	}

	cfg.Extractor = ExtractorConfig{
		BaseURL: opt("EXTRACTOR_BASE_URL", ""),
		Timeout: optDuration("EXTRACTOR_TIMEOUT", 10*time.Second),
	}

	cfg.JobsAPI = JobsAPIConfig{
		URL:      opt("JOBS_API_URL", "https://jobs-api14.p.rapidapi.com/v2/list"),
		Key:      opt("JOBS_API_KEY", ""),
		Host:     opt("JOBS_API_HOST", "jobs-api14.p.rapidapi.com"),
		MaxPages: optInt("JOBS_API_MAX_PAGES", 5),
	}

	cfg.SearchAPI = SearchAPIConfig{
		URL: opt("SEARCH_API_URL", "https://findwork.dev/api/jobs/"),
		Key: opt("SEARCH_API_KEY", ""),
	}

	cfg.Catalog = CatalogConfig{
		BaseURL:  opt("CATALOG_BASE_URL", "https://www.coursera.org"),
		Headless: optBool("CATALOG_HEADLESS", false),
	}

	cfg.Database = DatabaseConfig{
		DBHost:     opt("DB_HOST", ""),
		DBPort:     opt("DB_PORT", ""),
		DBName:     opt("DB_NAME", ""),
		DBUser:     opt("DB_USER", ""),
		DBPassword: opt("DB_PASSWORD", ""),
		DBSSLMode:  opt("DB_SSL_MODE", "disable"),

		ConnectTimeout:        optDuration("DB_CONNECT_TIMEOUT", 5*time.Second),
		PoolMaxConns:          int32(optInt("DB_POOL_MAX_CONNS", 0)),
		PoolMinConns:          int32(optInt("DB_POOL_MIN_CONNS", 0)),
		PoolMaxConnLifetime:   optDuration("DB_POOL_MAX_CONN_LIFETIME", 0),
		PoolMaxConnIdleTime:   optDuration("DB_POOL_MAX_CONN_IDLE_TIME", 0),
		PoolHealthCheckPeriod: optDuration("DB_POOL_HEALTH_CHECK_PERIOD", 0),
	}

	cfg.Auth = AuthConfig{
		AccessSecret: opt("JWT_ACCESS_SECRET", ""),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func (c DatabaseConfig) Configured() bool {
	return strings.TrimSpace(c.DBHost) != "" && strings.TrimSpace(c.DBName) != ""
}

func optInt(key string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}

func optBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return v
}

func optDuration(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return v
}
