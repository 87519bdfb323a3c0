package pipeline

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/channel"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/envelope"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/messages"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/requestctx"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/session"
)

// Stage is one interceptor in the chain.
type Stage interface {
	Name() string
}

// BeforeStage runs ahead of the handler and may short-circuit the request by
// returning an error.
type BeforeStage interface {
	Stage
	Before(ctx context.Context, inv *Invocation) error
}

// AfterStage runs after the handler (or after a short-circuit) and may
// inspect or replace the result. It must not swallow inv.Err.
type AfterStage interface {
	Stage
	After(ctx context.Context, inv *Invocation)
}

// Config wires the pipeline's collaborators. Channels and Sessions may be
// nil only when every route skips the corresponding checks.
type Config struct {
	Logger   *slog.Logger
	Channels channel.Registry
	Sessions session.Store
	Catalog  *messages.Catalog
	Metrics  *Metrics

	// Locale selects the day-name abbreviations for hours-of-service
	// checks. Defaults to "es".
	Locale string
	// BypassChannelRegistry skips the registry lookup entirely, for
	// environments without a channel collection. Channel access and hours
	// checks then allow every caller.
	BypassChannelRegistry bool

	// GenericMessageCode and GenericErrorCode render untyped faults.
	// Default -1 / MSCM0.
	GenericMessageCode int
	GenericErrorCode   string
	// SuccessMessageCode keys the catalog template for enveloped success
	// responses. Default 0.
	SuccessMessageCode int
}

// Pipeline composes the ordered stage chain and the exception translator.
type Pipeline struct {
	before     []BeforeStage
	after      []AfterStage
	translator *Translator
	logger     *slog.Logger
}

// New builds a pipeline with the fixed stage order. The order is decided
// here, once, and session validation deliberately precedes role
// authorization so the role stage can trust that a missing principal means
// the route opted out of sessions.
func New(cfg Config) *Pipeline {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Catalog == nil {
		cfg.Catalog = messages.NewCatalog(nil)
	}
	if cfg.Locale == "" {
		cfg.Locale = "es"
	}
	if cfg.GenericMessageCode == 0 {
		cfg.GenericMessageCode = messages.CodeGenericError
	}
	if cfg.GenericErrorCode == "" {
		cfg.GenericErrorCode = messages.ErrCodeGeneric
	}

	timing := newTimingStage(cfg.Metrics, cfg.Logger)
	return &Pipeline{
		before: []BeforeStage{
			timing,
			newSessionStage(cfg.Sessions, cfg.Logger),
			newRoleStage(cfg.Logger),
			newHoursStage(cfg.Channels, cfg.Locale, cfg.BypassChannelRegistry, cfg.Logger),
			newChannelAccessStage(cfg.Channels, cfg.BypassChannelRegistry, cfg.Logger),
		},
		after: []AfterStage{
			newEnvelopeStage(cfg.SuccessMessageCode, cfg.Catalog),
			timing,
		},
		translator: NewTranslator(cfg.Catalog, cfg.Logger, cfg.GenericMessageCode, cfg.GenericErrorCode),
		logger:     cfg.Logger,
	}
}

// Translator exposes the pipeline's exception translator, for callers that
// need to render errors outside the stage chain.
func (p *Pipeline) Translator() *Translator { return p.translator }

// Wrap turns a route into an http.HandlerFunc running the full chain.
func (p *Pipeline) Wrap(route Route) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := requestctx.WithHeaders(r.Context(), r.Header)
		r = r.WithContext(ctx)
		inv := &Invocation{Route: route, Request: r}

		for _, s := range p.before {
			if err := s.Before(ctx, inv); err != nil {
				inv.Err = err
				break
			}
		}

		if inv.Err == nil {
			hctx := ctx
			if inv.Principal != nil {
				hctx = requestctx.WithPrincipal(ctx, inv.Principal)
			}
			inv.Result, inv.Err = route.Handler(hctx, r.WithContext(hctx))
		}

		for _, s := range p.after {
			s.After(ctx, inv)
		}

		p.write(ctx, w, inv)
	}
}

// Mount registers every route on the router with the chain applied.
func (p *Pipeline) Mount(r chi.Router, routes []Route) {
	for _, rt := range routes {
		r.Method(rt.Method, rt.Path, p.Wrap(rt))
	}
}

// write renders the invocation outcome. Translated errors always go out with
// a successful transport status; failure lives in codigoDeOperacion only.
func (p *Pipeline) write(ctx context.Context, w http.ResponseWriter, inv *Invocation) {
	body := inv.Result
	if inv.Err != nil {
		body = p.translator.Translate(ctx, inv.Err)
	}
	if body == nil {
		w.WriteHeader(http.StatusOK)
		return
	}

	w.Header().Set("Content-Type", envelope.ContentType)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		p.logger.Error("writing response", slog.String("path", inv.Route.Path), slog.String("error", err.Error()))
	}
}
