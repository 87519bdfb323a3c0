package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/envelope"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/messages"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/outbound"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/pipeline"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/requestctx"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/session"
)

// handlers are the demo endpoints exercising each capability flag.
type handlers struct {
	sessions      session.Store
	outbound      *outbound.Client
	downstreamURL string
	logger        *slog.Logger
}

func newHandlers(sessions session.Store, client *outbound.Client, downstreamURL string, logger *slog.Logger) *handlers {
	return &handlers{sessions: sessions, outbound: client, downstreamURL: downstreamURL, logger: logger}
}

func (h *handlers) routes() []pipeline.Route {
	return []pipeline.Route{
		{
			Method:  http.MethodGet,
			Path:    "/health",
			Handler: h.health,
			Options: pipeline.RouteOptions{SkipChannelCheck: true, SkipSessionCheck: true},
		},
		{
			Method:  http.MethodPost,
			Path:    "/login",
			Handler: h.login,
			Options: pipeline.RouteOptions{SkipSessionCheck: true},
		},
		{
			Method:  http.MethodGet,
			Path:    "/profile",
			Handler: h.profile,
		},
		{
			Method:  http.MethodGet,
			Path:    "/admin/report",
			Handler: h.adminReport,
			Options: pipeline.RouteOptions{RequiredRoles: []string{"ADMIN"}},
		},
		{
			Method:  http.MethodPost,
			Path:    "/transfers",
			Handler: h.createTransfer,
			Options: pipeline.RouteOptions{ValidateHours: true},
		},
		{
			Method:  http.MethodGet,
			Path:    "/downstream/health",
			Handler: h.downstreamHealth,
			Options: pipeline.RouteOptions{SkipSessionCheck: true},
		},
	}
}

type healthStatus struct {
	Status string `json:"status"`
}

func (healthStatus) EnvelopeData() {}

func (h *handlers) health(ctx context.Context, r *http.Request) (any, error) {
	return healthStatus{Status: "ok"}, nil
}

type loginRequest struct {
	UserName  string `json:"userName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (loginResponse) EnvelopeData() {}

// login creates a session for the given user and hands back the token the
// caller must present in x-auth-token from then on.
func (h *handlers) login(ctx context.Context, r *http.Request) (any, error) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		verr := messages.NewValidationError()
		verr.Add("body: malformed JSON")
		return nil, verr
	}
	if req.UserName == "" {
		verr := messages.NewValidationError()
		verr.Add("userName: must not be blank")
		return nil, verr
	}

	token := uuid.New().String()
	principal := &session.PrincipalUser{
		UserID:     req.UserName,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Roles:      []string{"CUSTOMER"},
		Enabled:    true,
		LastAccess: time.Now(),
	}
	if err := h.sessions.Put(ctx, token, principal); err != nil {
		return nil, messages.NewErrorWithTrace(messages.CodeGenericError, messages.ErrCodeGeneric,
			"storing session for "+req.UserName, err)
	}

	h.logger.Info("session issued", slog.String("user", req.UserName))
	return loginResponse{Token: token}, nil
}

type profileResponse struct {
	UserName   string    `json:"userName"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Roles      []string  `json:"roles"`
	LastAccess time.Time `json:"lastAccess"`
}

func (profileResponse) EnvelopeData() {}

func (h *handlers) profile(ctx context.Context, r *http.Request) (any, error) {
	principal := requestctx.Principal(ctx)
	if principal == nil {
		return nil, messages.NewError(messages.CodeSessionExpired, messages.ErrCodeSessionExpired)
	}
	return profileResponse{
		UserName:   principal.UserID,
		FirstName:  principal.FirstName,
		LastName:   principal.LastName,
		Roles:      principal.Roles,
		LastAccess: principal.LastAccess,
	}, nil
}

type reportResponse struct {
	ActiveSessions int    `json:"activeSessions"`
	GeneratedBy    string `json:"generatedBy"`
}

func (reportResponse) EnvelopeData() {}

func (h *handlers) adminReport(ctx context.Context, r *http.Request) (any, error) {
	principal := requestctx.Principal(ctx)
	generatedBy := ""
	if principal != nil {
		generatedBy = principal.UserID
	}
	return reportResponse{GeneratedBy: generatedBy}, nil
}

type transferRequest struct {
	Account string  `json:"account"`
	Amount  float64 `json:"amount"`
}

type transferResponse struct {
	Folio   string  `json:"folio"`
	Account string  `json:"account"`
	Amount  float64 `json:"amount"`
}

func (transferResponse) EnvelopeData() {}

// createTransfer only runs inside the channel's service window; the hours
// stage rejects it outside with OUT_OF_SERVICE.
func (h *handlers) createTransfer(ctx context.Context, r *http.Request) (any, error) {
	var req transferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		verr := messages.NewValidationError()
		verr.Add("body: malformed JSON")
		return nil, verr
	}
	verr := messages.NewValidationError()
	if req.Account == "" {
		verr.Add("account: must not be blank")
	}
	if req.Amount <= 0 {
		verr.Add("amount: must be greater than zero")
	}
	if len(verr.Violations) > 0 {
		return nil, verr
	}

	return transferResponse{
		Folio:   uuid.New().String(),
		Account: req.Account,
		Amount:  req.Amount,
	}, nil
}

type downstreamStatus struct {
	Folio string `json:"folio"`
}

func (downstreamStatus) EnvelopeData() {}

// downstreamHealth calls the configured dependency through the outbound
// client. A downstream error envelope surfaces here as a PropagationError and
// re-renders with the original codes.
func (h *handlers) downstreamHealth(ctx context.Context, r *http.Request) (any, error) {
	if h.downstreamURL == "" {
		return nil, messages.NewError(messages.CodeGenericError, messages.ErrCodeGeneric)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.downstreamURL+"/health", nil)
	if err != nil {
		return nil, messages.NewErrorWithTrace(messages.CodeGenericError, messages.ErrCodeGeneric,
			"building downstream request", err)
	}
	resp, err := h.outbound.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var env envelope.Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, messages.NewErrorWithTrace(messages.CodeGenericError, messages.ErrCodeGeneric,
			"decoding downstream health response", err)
	}
	return downstreamStatus{Folio: env.OperationFolio}, nil
}
