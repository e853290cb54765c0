package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"catalogbuilder/internal/catalog"
	"catalogbuilder/internal/model"
	"catalogbuilder/internal/notify"
	"catalogbuilder/internal/observability"
	"catalogbuilder/internal/output"
	"catalogbuilder/internal/sheet"
	"catalogbuilder/internal/stock"
)

const previewItems = 3

type Fetcher interface {
	Fetch(ctx context.Context, source, url string) (*sheet.Table, error)
}

type CatalogStore interface {
	Save(ctx context.Context, items []model.CatalogItem) error
}

type RunStore interface {
	Save(ctx context.Context, runID uuid.UUID, s model.RunSummary) error
}

type SummaryStore interface {
	Save(ctx context.Context, s model.RunSummary) error
}

// Runner performs one catalog build. The sinks and the notifier are optional.
type Runner struct {
	Fetcher     Fetcher
	PriceURL    string
	StockURL    string
	CatalogPath string
	SummaryPath string
	Log         logrus.FieldLogger
	Now         func() time.Time

	Catalog   CatalogStore
	Runs      RunStore
	Summaries SummaryStore
	Notifier  notify.Notifier
}

// Run builds and writes the catalog. On any failure the catalog file is
// replaced with an empty array and the cause is returned.
func (r *Runner) Run(ctx context.Context) (model.RunSummary, error) {
	runID := uuid.New()
	log := r.Log.WithField("run_id", runID.String())

	items, s, err := r.run(ctx, log)
	if err != nil {
		observability.RunsTotal.WithLabelValues(failureKind(err)).Inc()
		log.WithError(err).Error("catalog build failed, writing empty catalog")
		if werr := output.WriteEmptyCatalog(r.CatalogPath); werr != nil {
			return s, errors.Join(err, fmt.Errorf("write empty catalog: %w", werr))
		}
		return s, err
	}
	observability.RunsTotal.WithLabelValues("success").Inc()

	r.publish(ctx, log, runID, items, s)
	return s, nil
}

func (r *Runner) run(ctx context.Context, log logrus.FieldLogger) ([]model.CatalogItem, model.RunSummary, error) {
	items, err := r.Build(ctx, log)
	if err != nil {
		return nil, model.RunSummary{}, err
	}

	if err := output.WriteCatalog(r.CatalogPath, items); err != nil {
		return nil, model.RunSummary{}, err
	}
	s := catalog.Summarize(items, r.now())
	if err := output.WriteSummary(r.SummaryPath, s); err != nil {
		return nil, model.RunSummary{}, err
	}

	log.WithFields(logrus.Fields{
		"items":     s.TotalProducts,
		"available": s.AvailableProducts,
		"restocked": s.RestockedProducts,
		"path":      r.CatalogPath,
	}).Info("catalog written")
	logPreview(log, items)

	observability.CatalogItems.Set(float64(s.TotalProducts))
	observability.AvailableItems.Set(float64(s.AvailableProducts))
	observability.LastSuccess.Set(float64(s.Timestamp.Unix()))
	return items, s, nil
}

// Build fetches both tables and returns the joined, enriched catalog.
func (r *Runner) Build(ctx context.Context, log logrus.FieldLogger) ([]model.CatalogItem, error) {
	log.WithField("url", r.PriceURL).Info("fetching price list")
	priceTable, err := r.Fetcher.Fetch(ctx, "price", r.PriceURL)
	if err != nil {
		return nil, err
	}
	log.WithField("columns", priceTable.Header).Info("price table columns")

	log.WithField("url", r.StockURL).Info("fetching stock levels")
	stockTable, err := r.Fetcher.Fetch(ctx, "stock", r.StockURL)
	if err != nil {
		return nil, err
	}
	log.WithField("columns", stockTable.Header).Info("stock table columns")

	prices, err := catalog.PriceRecords(priceTable)
	if err != nil {
		return nil, err
	}
	stockRecords, err := catalog.StockRecords(stockTable)
	if err != nil {
		return nil, err
	}

	levels := stock.NewLevels(stockRecords)
	if levels.Duplicates > 0 {
		log.WithField("duplicates", levels.Duplicates).Warn("duplicate stock codes, first row kept")
	}
	log.WithFields(logrus.Fields{
		"price_rows": len(prices),
		"stock_rows": len(stockRecords),
	}).Info("joining stock onto price list")

	return catalog.Build(prices, levels), nil
}

// publish hands a successful run to the optional sinks. Their errors are
// logged and do not affect the written files.
func (r *Runner) publish(ctx context.Context, log logrus.FieldLogger, runID uuid.UUID, items []model.CatalogItem, s model.RunSummary) {
	if r.Catalog != nil {
		if err := r.Catalog.Save(ctx, items); err != nil {
			log.WithError(err).Warn("saving catalog snapshot failed")
		}
	}
	if r.Runs != nil {
		if err := r.Runs.Save(ctx, runID, s); err != nil {
			log.WithError(err).Warn("saving run history failed")
		}
	}
	if r.Summaries != nil {
		if err := r.Summaries.Save(ctx, s); err != nil {
			log.WithError(err).Warn("caching run summary failed")
		}
	}
	if r.Notifier != nil {
		if err := r.Notifier.Notify(ctx, s); err != nil {
			log.WithError(err).Warn("sending notification failed")
		}
	}
}

func (r *Runner) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}
	return time.Now()
}

func failureKind(err error) string {
	var fetchErr *sheet.FetchError
	switch {
	case errors.Is(err, sheet.ErrColumnNotFound):
		return "column_error"
	case errors.As(err, &fetchErr):
		return "fetch_error"
	default:
		return "error"
	}
}

func logPreview(log logrus.FieldLogger, items []model.CatalogItem) {
	for i, it := range items {
		if i == previewItems {
			break
		}
		log.WithFields(logrus.Fields{
			"code":       it.Code,
			"price":      it.Price,
			"quantity":   it.Quantity,
			"power":      it.Power,
			"circuits":   it.Circuits,
			"wifi":       it.WiFi,
			"image":      it.ImagePath,
			"category":   it.Category,
			"power_tier": it.PowerTier,
		}).Info(truncate(it.Model, 30))
	}
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
