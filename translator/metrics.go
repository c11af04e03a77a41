package translator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	sserrors "github.com/c360studio/semstreams/pkg/errs"

	"github.com/hamhec/FLOCI/fuzzydl"
)

// Metrics holds Prometheus metrics for translation runs. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	runsTotal        *prometheus.CounterVec   // By status (ok/unsupported/error)
	clausesTotal     prometheus.Counter       // Clauses written
	diagnosticsTotal *prometheus.CounterVec   // By construct
	runDuration      *prometheus.HistogramVec // By status
}

// NewMetrics creates and registers translation metrics on a fresh registry.
func NewMetrics() (*Metrics, error) {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		runsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "floci",
			Subsystem: "translator",
			Name:      "runs_total",
			Help:      "Total number of translation runs",
		}, []string{"status"}),

		clausesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "floci",
			Subsystem: "translator",
			Name:      "clauses_total",
			Help:      "Total number of fuzzyDL clauses written",
		}),

		diagnosticsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "floci",
			Subsystem: "translator",
			Name:      "unsupported_total",
			Help:      "Total number of unsupported constructs skipped",
		}, []string{"construct"}),

		runDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "floci",
			Subsystem: "translator",
			Name:      "run_duration_seconds",
			Help:      "Translation run duration in seconds",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5}, // Millisecond to seconds
		}, []string{"status"}),
	}

	for _, c := range []prometheus.Collector{m.runsTotal, m.clausesTotal, m.diagnosticsTotal, m.runDuration} {
		if err := m.registry.Register(c); err != nil {
			return nil, sserrors.WrapFatal(err, "Metrics", "NewMetrics", "register collector")
		}
	}

	return m, nil
}

// Registry returns the Prometheus registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// recordRun records a completed or failed run.
func (m *Metrics) recordRun(report *Report, err error) {
	if m == nil {
		return
	}

	status := "ok"
	switch {
	case err != nil:
		status = "error"
	case len(report.Diagnostics) > 0:
		status = "unsupported"
	}

	m.runsTotal.WithLabelValues(status).Inc()
	m.runDuration.WithLabelValues(status).Observe(report.Duration.Seconds())
	m.clausesTotal.Add(float64(report.Clauses))
	m.recordDiagnostics(report.Diagnostics)
}

func (m *Metrics) recordDiagnostics(diags []fuzzydl.Diagnostic) {
	for _, d := range diags {
		m.diagnosticsTotal.WithLabelValues(d.Construct).Inc()
	}
}

// Handler returns an HTTP handler serving the metrics and a /health probe.
func (m *Metrics) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	return mux
}

// Serve exposes the metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger *slog.Logger) error {
	if m == nil {
		return sserrors.WrapFatal(fmt.Errorf("nil metrics"), "Metrics", "Serve", "start metrics server")
	}
	if logger == nil {
		logger = slog.Default()
	}

	server := &http.Server{
		Addr:              addr,
		Handler:           m.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("Metrics server started", "addr", addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return sserrors.WrapFatal(err, "Metrics", "Serve", "listen")
	}
	return nil
}
