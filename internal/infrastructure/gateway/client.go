// Package gateway is the single door to the remote JobHub API. Every call is
// one attempt; its outcome is classified so call sites can word each failure.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/api/metrics"
	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

const (
	defaultTimeout = 10 * time.Second
	maxBodyBytes   = 10 << 20
)

// Config captures how to reach the remote API.
type Config struct {
	BaseURL string
	// Timeout applies to requests that set none of their own.
	Timeout time.Duration
	// SessionCookie is the name of the ambient credential cookie.
	SessionCookie string
}

// Client performs requests against the remote API with the session cookie
// attached from its jar.
type Client struct {
	base    *url.URL
	http    *http.Client
	jar     *credentialJar
	timeout time.Duration
	log     zerolog.Logger
}

// New builds a Client. The credential store backs the session cookie so it
// survives restarts; call Restore to load it.
func New(cfg Config, creds ports.CredentialStore, log zerolog.Logger) (*Client, error) {
	base, err := url.Parse(cfg.BaseURL)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("gateway: invalid base url %q", cfg.BaseURL)
	}
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("gateway: cookie jar: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	jar := &credentialJar{
		inner: inner,
		base:  base,
		name:  cfg.SessionCookie,
		store: creds,
		now:   time.Now,
		log:   log,
	}
	return &Client{
		base:    base,
		http:    &http.Client{Jar: jar},
		jar:     jar,
		timeout: timeout,
		log:     log,
	}, nil
}

// Do sends req and returns the reply of a 2xx response. Any other result
// is a *domain.RejectedError, domain.ErrTimeout, domain.ErrNetworkUnreachable
// or a *domain.UnexpectedError.
func (c *Client) Do(ctx context.Context, req ports.Request) (resp *ports.Response, err error) {
	start := time.Now()
	defer func() {
		kind := domain.Classify(err)
		metrics.GatewayRequestsTotal.WithLabelValues(req.Path, kind.String()).Inc()
		metrics.GatewayRequestDuration.WithLabelValues(req.Path).Observe(time.Since(start).Seconds())
		c.log.Debug().
			Str("method", req.Method).
			Str("endpoint", req.Path).
			Str("outcome", kind.String()).
			Dur("duration", time.Since(start)).
			Msg("remote call")
	}()

	timeout := req.Timeout
	if timeout <= 0 {
		timeout = c.timeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	method := req.Method
	if method == "" {
		method = http.MethodGet
	}
	httpReq, err := http.NewRequestWithContext(ctx, method, c.endpoint(req.Path, req.Query), req.Body)
	if err != nil {
		return nil, &domain.UnexpectedError{Raw: err.Error()}
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.ContentType != "" {
		httpReq.Header.Set("Content-Type", req.ContentType)
	}

	httpResp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer httpResp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(httpResp.Body, maxBodyBytes))
	if err != nil {
		return nil, classifyTransport(err)
	}

	switch {
	case httpResp.StatusCode >= 200 && httpResp.StatusCode < 300:
		return &ports.Response{StatusCode: httpResp.StatusCode, Body: body}, nil
	case httpResp.StatusCode >= 400:
		return nil, &domain.RejectedError{StatusCode: httpResp.StatusCode, Message: serverMessage(body)}
	default:
		return nil, &domain.UnexpectedError{Raw: fmt.Sprintf("unexpected status %d", httpResp.StatusCode)}
	}
}

func (c *Client) endpoint(path string, query url.Values) string {
	u := *c.base
	u.Path = strings.TrimRight(c.base.Path, "/") + "/" + strings.TrimLeft(path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Ping reports whether the remote API answers at all. Any HTTP reply, even
// an error status, counts as reachable.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.Do(ctx, ports.Request{Method: http.MethodGet, Path: "/"})
	var re *domain.RejectedError
	if err == nil || errors.As(err, &re) {
		return nil
	}
	return err
}

// Restore loads the persisted session cookie into the jar. An expired
// credential is discarded.
func (c *Client) Restore(ctx context.Context) error {
	return c.jar.restore(ctx)
}

// CredentialSubject returns the subject claim of the session token.
func (c *Client) CredentialSubject() string {
	claims, ok := c.jar.claims()
	if !ok {
		return ""
	}
	return claims.Subject
}

// ForgetCredential removes the session cookie from the jar and the store.
func (c *Client) ForgetCredential(ctx context.Context) error {
	return c.jar.forget(ctx)
}

var (
	_ ports.Gateway          = (*Client)(nil)
	_ ports.CredentialKeeper = (*Client)(nil)
)
