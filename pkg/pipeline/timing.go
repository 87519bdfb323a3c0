package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics publishes per-route request durations.
type Metrics struct {
	durations *prometheus.HistogramVec
}

// NewMetrics registers the pipeline duration histogram on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	durations := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "commons",
		Subsystem: "pipeline",
		Name:      "request_duration_seconds",
		Help:      "Wall-clock duration of the full stage chain and handler, per route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})
	reg.MustRegister(durations)
	return &Metrics{durations: durations}
}

// Observe records one request duration for path.
func (m *Metrics) Observe(path string, d time.Duration) {
	if m == nil {
		return
	}
	m.durations.WithLabelValues(path).Observe(d.Seconds())
}

// timingStage measures the full inner chain including the handler. It never
// touches the result or the error; it only records.
type timingStage struct {
	metrics *Metrics
	logger  *slog.Logger
}

func newTimingStage(metrics *Metrics, logger *slog.Logger) *timingStage {
	return &timingStage{metrics: metrics, logger: logger}
}

func (s *timingStage) Name() string { return "timing" }

func (s *timingStage) Before(ctx context.Context, inv *Invocation) error {
	inv.Start = time.Now()
	s.logger.Debug("service started", slog.String("path", inv.Route.Path))
	return nil
}

func (s *timingStage) After(ctx context.Context, inv *Invocation) {
	d := time.Since(inv.Start)
	s.metrics.Observe(inv.Route.Path, d)
	s.logger.Info("service finished",
		slog.String("path", inv.Route.Path),
		slog.Duration("duration", d),
	)
}
