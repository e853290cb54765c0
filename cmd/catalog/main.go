package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	"catalogbuilder/internal/config"
	"catalogbuilder/internal/db"
	"catalogbuilder/internal/notify"
	"catalogbuilder/internal/observability"
	"catalogbuilder/internal/pipeline"
	"catalogbuilder/internal/repository"
	"catalogbuilder/internal/sheet"
)

// go run ./cmd/catalog
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

// run returns an error only when STRICT_EXIT is set; otherwise a failed build
// still leaves an empty catalog and the process exits 0.
func run() error {
	cfg := config.Load()
	log := observability.NewLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsPort != "" {
		observability.Start(cfg.MetricsPort, log)
	}

	format, err := sheet.ParseFormat(cfg.SourceFormat)
	if err != nil {
		log.WithError(err).Warn("falling back to csv")
		format = sheet.FormatCSV
	}

	runner := &pipeline.Runner{
		Fetcher:     sheet.NewClient(cfg.FetchTimeout, format),
		PriceURL:    cfg.PriceURL,
		StockURL:    cfg.StockURL,
		CatalogPath: cfg.CatalogPath,
		SummaryPath: cfg.SummaryPath,
		Log:         log,
		Notifier:    &notify.LogNotifier{Log: log},
	}

	if cfg.DatabaseURL != "" {
		sqlDB, err := db.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Warn("catalog snapshot disabled")
		} else {
			defer sqlDB.Close()
			runner.Catalog = &repository.CatalogRepository{DB: sqlDB}
		}

		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.WithError(err).Warn("run history disabled")
		} else {
			defer pool.Close()
			runner.Runs = &repository.RunRepository{DB: pool}
		}
	}

	if cfg.RedisURL != "" {
		client := newRedisClient(cfg.RedisURL)
		defer client.Close()
		runner.Summaries = &repository.SummaryCache{Client: client}
	}

	log.Info("building catalog")
	_, runErr := runner.Run(ctx)

	if cfg.MetricsTextfile != "" {
		if err := observability.WriteTextfile(cfg.MetricsTextfile); err != nil {
			log.WithError(err).Warn("writing metrics textfile failed")
		}
	}

	if cfg.StrictExit {
		return runErr
	}
	return nil
}

// newRedisClient accepts either a redis:// URL or a bare host:port.
func newRedisClient(url string) *redis.Client {
	opts, err := redis.ParseURL(url)
	if err != nil {
		opts = &redis.Options{Addr: url}
	}
	return redis.NewClient(opts)
}
