package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

var (
	Registry = prometheus.NewRegistry()

	RunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_runs_total",
			Help: "Catalog builds by result",
		},
		[]string{"result"},
	)
	CatalogItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Items written in the last successful catalog",
		},
	)
	AvailableItems = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_available_items",
			Help: "Items with stock in the last successful catalog",
		},
	)
	LastSuccess = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_last_success_timestamp_seconds",
			Help: "Unix time of the last successful catalog build",
		},
	)
)

func init() {
	Registry.MustRegister(RunsTotal, CatalogItems, AvailableItems, LastSuccess)
}

// Start serves /metrics on port for as long as the process lives. A batch
// run exits within seconds, so WriteTextfile is the path for scraping.
func Start(port string, log logrus.FieldLogger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(Registry, promhttp.HandlerOpts{}))
	go func() {
		if err := http.ListenAndServe(":"+port, mux); err != nil {
			log.WithError(err).Warn("metrics server stopped")
		}
	}()
}

// WriteTextfile dumps the registry for the node exporter textfile collector.
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, Registry)
}
