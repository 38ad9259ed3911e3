package ports

import (
	"context"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

// IdentityVerifier asks the remote API who the ambient credential belongs to.
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context) (*domain.Identity, error)
}

// SessionReader exposes read-only session snapshots.
type SessionReader interface {
	Snapshot() domain.Session
}

// SessionWriter is the write side of the session store.
type SessionWriter interface {
	Login(identity domain.Identity)
	Logout()
}
