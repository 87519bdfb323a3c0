// Package outbound wraps every call a service makes to another service:
// headers from the inbound request are propagated forward and the response
// envelope is inspected so downstream errors resurface in the caller's own
// error model with their codes intact.
package outbound

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/requestctx"
)

// PropagationTransport is an http.RoundTripper that forwards inbound request
// headers to outbound calls. The caller channel always propagates first;
// then every other inbound header not already set downstream is copied,
// minus the ignore list. GET requests are sent without a Content-Type.
type PropagationTransport struct {
	// Base performs the actual round trip. Defaults to http.DefaultTransport.
	Base http.RoundTripper
	// IgnoreHeaders are never propagated and are scrubbed from the outbound
	// request even when set explicitly.
	IgnoreHeaders []string
	// TraceHeaders logs each header decision at debug level.
	TraceHeaders bool
	Logger       *slog.Logger
}

func (t *PropagationTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Round trippers must not mutate the caller's request.
	out := req.Clone(req.Context())

	inbound := requestctx.Headers(req.Context())
	if ch := inbound.Get(requestctx.HeaderChannel); ch != "" && out.Header.Get(requestctx.HeaderChannel) == "" {
		out.Header.Set(requestctx.HeaderChannel, ch)
	}

	for name, values := range inbound {
		if t.ignored(name) {
			t.trace("skipping ignored header", name)
			continue
		}
		if _, exists := out.Header[http.CanonicalHeaderKey(name)]; exists {
			continue
		}
		t.trace("propagating header", name)
		for _, v := range values {
			out.Header.Add(name, v)
		}
	}

	if out.Method == http.MethodGet {
		t.trace("removing content type from GET request", "Content-Type")
		out.Header.Del("Content-Type")
	}
	for _, name := range t.IgnoreHeaders {
		if _, exists := out.Header[http.CanonicalHeaderKey(name)]; exists {
			t.trace("scrubbing non-propagatable header", name)
			out.Header.Del(name)
		}
	}

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(out)
}

func (t *PropagationTransport) ignored(name string) bool {
	for _, h := range t.IgnoreHeaders {
		if strings.EqualFold(h, name) {
			return true
		}
	}
	return false
}

func (t *PropagationTransport) trace(msg, header string) {
	if !t.TraceHeaders || t.Logger == nil {
		return
	}
	t.Logger.Debug(msg, slog.String("header", header))
}
