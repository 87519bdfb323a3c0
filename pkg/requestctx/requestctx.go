// Package requestctx carries request-scoped values down the call chain as
// explicit context entries. There is no ambient "current request" lookup;
// the pipeline stores what outbound calls and handlers need and everything
// else reads it back from the context it was handed.
package requestctx

import (
	"context"
	"net/http"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/session"
)

// Headers required on inbound calls.
const (
	HeaderChannel      = "x-channel"
	HeaderSessionToken = "x-auth-token"
)

type headersKey struct{}

type principalKey struct{}

// WithHeaders stores the inbound request headers so outbound calls issued
// while serving this request can propagate them.
func WithHeaders(ctx context.Context, h http.Header) context.Context {
	return context.WithValue(ctx, headersKey{}, h)
}

// Headers returns the inbound request headers, or nil when the context does
// not belong to an inbound request.
func Headers(ctx context.Context) http.Header {
	h, _ := ctx.Value(headersKey{}).(http.Header)
	return h
}

// Channel returns the inbound caller channel, empty when absent.
func Channel(ctx context.Context) string {
	return Headers(ctx).Get(HeaderChannel)
}

// SessionToken returns the inbound session token, empty when absent.
func SessionToken(ctx context.Context) string {
	return Headers(ctx).Get(HeaderSessionToken)
}

// WithPrincipal binds the authenticated principal for this request.
func WithPrincipal(ctx context.Context, p *session.PrincipalUser) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// Principal returns the authenticated principal, nil when the request was
// served without session validation.
func Principal(ctx context.Context) *session.PrincipalUser {
	p, _ := ctx.Value(principalKey{}).(*session.PrincipalUser)
	return p
}
