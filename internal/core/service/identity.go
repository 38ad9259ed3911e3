package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

// IdentityClient verifies the ambient credential against the remote API.
type IdentityClient struct {
	gw         ports.Gateway
	credential ports.CredentialKeeper
	verifyPath string
}

func NewIdentityClient(gw ports.Gateway, credential ports.CredentialKeeper, verifyPath string) *IdentityClient {
	return &IdentityClient{gw: gw, credential: credential, verifyPath: verifyPath}
}

type identityBody struct {
	Status      string `json:"status"`
	Email       string `json:"email"`
	FullName    string `json:"full_name"`
	DisplayName string `json:"display_name"`
	Username    string `json:"username"`
}

// VerifyIdentity succeeds only on a 200 reply. The remote check may answer
// with a bare status; the email then comes from the session token subject.
func (c *IdentityClient) VerifyIdentity(ctx context.Context) (*domain.Identity, error) {
	resp, err := c.gw.Do(ctx, ports.Request{Method: http.MethodGet, Path: c.verifyPath})
	if err != nil {
		return nil, fmt.Errorf("verify identity: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("verify identity: status %d: %w", resp.StatusCode, domain.ErrNotAuthenticated)
	}

	var body identityBody
	if len(resp.Body) > 0 {
		if err := json.Unmarshal(resp.Body, &body); err != nil {
			return nil, fmt.Errorf("verify identity: %w", &domain.UnexpectedError{Raw: err.Error()})
		}
	}

	identity := &domain.Identity{
		Email:       strings.TrimSpace(body.Email),
		DisplayName: firstNonEmpty(body.DisplayName, body.FullName, body.Username),
	}
	if identity.Email == "" && c.credential != nil {
		identity.Email = c.credential.CredentialSubject()
	}
	return identity, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

var _ ports.IdentityVerifier = (*IdentityClient)(nil)
