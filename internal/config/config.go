package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port        string
	DBDSN       string
	CatalogURL  string
	FetchLimit  int
	CacheTTL    time.Duration
	HTTPTimeout time.Duration
	LogFile     string
}

func Load() Config {
	// .env is optional; env vars win either way.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "veltora.db" // sqlite file in project root
	}
	catalogURL := os.Getenv("CATALOG_API_URL")
	if catalogURL == "" {
		catalogURL = "https://dummyjson.com"
	}
	logFile := os.Getenv("LOG_FILE")

	cfg := Config{
		Port:        port,
		DBDSN:       dsn,
		CatalogURL:  catalogURL,
		FetchLimit:  intEnv("CATALOG_FETCH_LIMIT", 100),
		CacheTTL:    durEnv("CATALOG_CACHE_TTL", 24*time.Hour),
		HTTPTimeout: durEnv("CATALOG_HTTP_TIMEOUT", 10*time.Second),
		LogFile:     logFile,
	}
	logrus.WithFields(logrus.Fields{
		"port":        cfg.Port,
		"db_dsn":      cfg.DBDSN,
		"catalog_url": cfg.CatalogURL,
		"fetch_limit": cfg.FetchLimit,
		"cache_ttl":   cfg.CacheTTL.String(),
	}).Info("config loaded")
	return cfg
}

func intEnv(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		logrus.WithField("key", key).Warn("ignoring invalid value")
		return def
	}
	return n
}

func durEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		logrus.WithField("key", key).Warn("ignoring invalid value")
		return def
	}
	return d
}
