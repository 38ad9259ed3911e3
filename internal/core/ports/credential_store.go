package ports

import (
	"context"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

// CredentialStore persists the ambient session credential across restarts.
// Load returns domain.ErrNoCredential when nothing is stored.
type CredentialStore interface {
	Save(ctx context.Context, cred domain.Credential) error
	Load(ctx context.Context) (*domain.Credential, error)
	Clear(ctx context.Context) error
}
