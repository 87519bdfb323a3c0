package outbound

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"time"

	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/envelope"
	"github.com/GarciaLabastidaMiguelAngel/commons/pkg/messages"
)

// Client issues service-to-service calls and inspects every JSON response
// for the standard envelope. A negative codigoDeOperacion becomes a
// PropagationError carrying the downstream codes untouched; a positive one
// is logged as a warning and the response passes through; anything that is
// not an envelope is opaque and passes through unchanged.
//
// Timeouts are the caller's responsibility via the request context; a
// deadline hit surfaces as the transport's error, never as a typed business
// error.
type Client struct {
	http   *http.Client
	logger *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The caller keeps
// responsibility for wiring a PropagationTransport if header propagation is
// still wanted.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the client logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithIgnoreHeaders sets the propagation ignore list on the default
// transport.
func WithIgnoreHeaders(headers ...string) Option {
	return func(c *Client) {
		if t, ok := c.http.Transport.(*PropagationTransport); ok {
			t.IgnoreHeaders = headers
		}
	}
}

// WithHeaderTracing logs every header propagation decision at debug level.
func WithHeaderTracing() Option {
	return func(c *Client) {
		if t, ok := c.http.Transport.(*PropagationTransport); ok {
			t.TraceHeaders = true
		}
	}
}

// NewClient builds a client with header propagation enabled.
func NewClient(opts ...Option) *Client {
	logger := slog.Default()
	c := &Client{
		http: &http.Client{
			Transport: &PropagationTransport{Logger: logger},
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if t, ok := c.http.Transport.(*PropagationTransport); ok && t.Logger == nil {
		t.Logger = c.logger
	}
	return c
}

// Do sends the request and validates the response envelope. On a negative
// operation code the response body is consumed and a PropagationError is
// returned; otherwise the response is returned with its body intact.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	url := req.URL.String()
	c.logger.Debug("outbound call starting",
		slog.String("method", req.Method),
		slog.String("url", url),
	)
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("outbound call answered",
		slog.String("url", url),
		slog.Int("status", resp.StatusCode),
	)

	if err := c.checkEnvelope(resp, url); err != nil {
		resp.Body.Close()
		return nil, err
	}
	c.logger.Info("outbound call finished",
		slog.String("url", url),
		slog.Duration("duration", time.Since(start)),
	)
	return resp, nil
}

func (c *Client) checkEnvelope(resp *http.Response, url string) error {
	mediaType, _, err := mime.ParseMediaType(resp.Header.Get("Content-Type"))
	if err != nil || mediaType != envelope.ContentType {
		c.logger.Debug("skipping envelope validation, response is not JSON", slog.String("url", url))
		return nil
	}

	body, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("outbound: reading response from %s: %w", url, err)
	}
	// Hand the body back so the caller can still decode it.
	resp.Body = io.NopCloser(bytes.NewReader(body))

	env, err := envelope.Decode(body)
	if err != nil {
		c.logger.Debug("response is not a service envelope", slog.String("url", url))
		return nil
	}
	code, ok := env.Code()
	if !ok {
		c.logger.Debug("response JSON carries no operation code", slog.String("url", url))
		return nil
	}

	switch {
	case code == 0:
		c.logger.Info("downstream service succeeded", slog.String("url", url))
	case code > 0:
		c.logger.Warn("downstream service succeeded with warning",
			slog.String("url", url),
			slog.Int("code", code),
			slog.String("message", env.Text()),
		)
	default:
		c.logger.Error("downstream service reported an error",
			slog.String("url", url),
			slog.Int("code", code),
			slog.String("error_code", env.ErrorCode()),
			slog.String("message", env.Text()),
		)
		return messages.NewPropagationError(code, env.ErrorCode(), env.Text(),
			"error reported by service "+url)
	}
	return nil
}
