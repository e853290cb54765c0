package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPriceURL = "https://docs.google.com/spreadsheets/d/19PRNpA6F_HMI6iHSCg2iJF52PnN203ckY1WnqY_t5fc/export?format=csv"
	defaultStockURL = "https://docs.google.com/spreadsheets/d/1o0e3-E20mQsWToYVQpCHZgLcbizCafLRpoPdxr8Rqfw/export?format=csv"
)

type Config struct {
	PriceURL     string
	StockURL     string
	SourceFormat string // "csv" or "xlsx"
	CatalogPath  string
	SummaryPath  string
	FetchTimeout time.Duration
	LogLevel     string
	StrictExit   bool

	// Optional sinks, disabled when empty.
	DatabaseURL string
	RedisURL    string
	// MetricsPort serves /metrics only while the run lasts, which suits
	// local debugging. Scheduled runs should set MetricsTextfile for the
	// node exporter textfile collector instead.
	MetricsPort     string
	MetricsTextfile string
}

func Load() *Config {
	// .env in the working directory is optional
	_ = godotenv.Load()
	return &Config{
		PriceURL:        getEnv("PRICE_URL", defaultPriceURL),
		StockURL:        getEnv("STOCK_URL", defaultStockURL),
		SourceFormat:    getEnv("SOURCE_FORMAT", "csv"),
		CatalogPath:     getEnv("CATALOG_PATH", "data.json"),
		SummaryPath:     getEnv("SUMMARY_PATH", "update_stats.json"),
		FetchTimeout:    getDuration("FETCH_TIMEOUT", 30*time.Second),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		StrictExit:      getBool("STRICT_EXIT", false),
		DatabaseURL:     os.Getenv("DATABASE_URL"),
		RedisURL:        os.Getenv("REDIS_URL"),
		MetricsPort:     os.Getenv("METRICS_PORT"),
		MetricsTextfile: os.Getenv("METRICS_TEXTFILE"),
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getDuration(k string, d time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(k))
	if err != nil || v <= 0 {
		return d
	}
	return v
}

func getBool(k string, d bool) bool {
	v, err := strconv.ParseBool(os.Getenv(k))
	if err != nil {
		return d
	}
	return v
}
