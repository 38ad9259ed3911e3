package ports

import (
	"context"
	"io"
	"net/url"
	"time"
)

// Request describes one outbound call to the remote API.
type Request struct {
	Method      string
	Path        string
	Query       url.Values
	Body        io.Reader
	ContentType string
	// Timeout overrides the gateway default when positive.
	Timeout time.Duration
}

// Response is a successful (2xx) reply.
type Response struct {
	StatusCode int
	Body       []byte
}

// Gateway performs a single attempt against the remote API and classifies
// every failure as a rejected, timeout, unreachable or unexpected outcome.
type Gateway interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// CredentialKeeper gives access to the ambient session credential held by
// the gateway.
type CredentialKeeper interface {
	// CredentialSubject returns the subject claim of the session token, or
	// "" when there is none.
	CredentialSubject() string
	// ForgetCredential drops the session credential locally.
	ForgetCredential(ctx context.Context) error
}
