package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/GarciaLabastidaMiguelAngel/commons/internal/config"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/channel"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/messages"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/outbound"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/pipeline"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/session"
)

// Server hosts the sample routes behind the full interception pipeline.
type Server struct {
	Router *chi.Mux
	Port   int
	logger *slog.Logger
}

// New assembles the router: request ID and logging middleware, panic
// recovery, OpenTelemetry instrumentation, the Prometheus endpoint, and the
// demo routes mounted through the pipeline.
func New(cfg *config.Config, logger *slog.Logger, channels channel.Registry, sessions session.Store) *Server {
	r := chi.NewRouter()

	// Apply middleware in order
	r.Use(RequestIDMiddleware)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "commons-sample")
	})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	catalog := messages.NewCatalog(cfg.Messages.Templates, cfg.Messages.CatalogOptions()...)
	p := pipeline.New(pipeline.Config{
		Logger:                logger,
		Channels:              channels,
		Sessions:              sessions,
		Catalog:               catalog,
		Metrics:               pipeline.NewMetrics(reg),
		Locale:                cfg.Channel.Locale,
		BypassChannelRegistry: cfg.Channel.BypassRegistry,
		GenericMessageCode:    cfg.Messages.Generic.MessageCode,
		GenericErrorCode:      cfg.Messages.Generic.ErrorCode,
	})

	clientOpts := []outbound.Option{outbound.WithLogger(logger)}
	if len(cfg.Propagation.IgnoreHeaders) > 0 {
		clientOpts = append(clientOpts, outbound.WithIgnoreHeaders(cfg.Propagation.IgnoreHeaders...))
	}
	if cfg.Propagation.TraceHeaders {
		clientOpts = append(clientOpts, outbound.WithHeaderTracing())
	}

	h := newHandlers(sessions, outbound.NewClient(clientOpts...), cfg.Propagation.DownstreamURL, logger)
	p.Mount(r, h.routes())

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	return &Server{
		Router: r,
		Port:   cfg.Server.Port,
		logger: logger,
	}
}

// Addr returns the listen address for the configured port.
func (s *Server) Addr() string {
	return fmt.Sprintf(":%d", s.Port)
}

func (s *Server) Start() error {
	s.logger.Info("starting server", slog.Int("port", s.Port))
	return http.ListenAndServe(fmt.Sprintf(":%d", s.Port), s.Router)
}
