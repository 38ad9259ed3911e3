// Package memory holds process-local adapters used when no external store is
// configured, and in tests.
package memory

import (
	"context"
	"sync"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

// CredentialStore keeps the session credential for the life of the process.
type CredentialStore struct {
	mu   sync.Mutex
	cred *domain.Credential
}

func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

func (s *CredentialStore) Save(_ context.Context, cred domain.Credential) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = &cred
	return nil
}

func (s *CredentialStore) Load(_ context.Context) (*domain.Credential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cred == nil {
		return nil, domain.ErrNoCredential
	}
	cred := *s.cred
	return &cred, nil
}

func (s *CredentialStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cred = nil
	return nil
}

var _ ports.CredentialStore = (*CredentialStore)(nil)
