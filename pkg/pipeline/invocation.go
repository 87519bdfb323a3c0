package pipeline

import (
	"context"
	"net/http"
	"time"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/session"
)

// Handler is the business entry point behind the stage chain. It returns the
// business result (typically an envelope.Response) or an error; typed errors
// from pkg/messages become their envelope, anything else becomes the generic
// error envelope.
type Handler func(ctx context.Context, r *http.Request) (any, error)

// RouteOptions are the per-route capability flags consulted by the stages.
// The zero value gives the strict defaults: channel and session are
// validated, hours are not restricted and no role is required.
type RouteOptions struct {
	// SkipChannelCheck exempts the route from caller-channel validation.
	SkipChannelCheck bool
	// SkipSessionCheck exempts the route from session validation; role
	// authorization then sees no principal and allows.
	SkipSessionCheck bool
	// ValidateHours restricts the route to the channel's service window.
	ValidateHours bool
	// RequiredRoles lists the roles of which the principal needs at least
	// one. Empty means any authenticated caller.
	RequiredRoles []string
}

// Route binds a handler to a method, path and its capability flags.
type Route struct {
	Method  string
	Path    string
	Handler Handler
	Options RouteOptions
}

// Invocation is the mutable state threaded through the stages for one
// request.
type Invocation struct {
	Route     Route
	Request   *http.Request
	Principal *session.PrincipalUser
	Result    any
	Err       error
	Start     time.Time
}
