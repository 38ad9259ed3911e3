package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

// sessionTTL bounds credentials that carry no expiry of their own; it matches
// the remote API's default token lifetime.
const sessionTTL = 30 * time.Minute

// CredentialStore keeps the session cookie in Redis so a restarted dashboard
// can resume the session.
// Key format: dashboard:credential:<cookie name>
type CredentialStore struct {
	client *redis.Client
	key    string
	now    func() time.Time
}

// NewCredentialStore creates a CredentialStore for the named session cookie.
func NewCredentialStore(client *redis.Client, cookieName string) *CredentialStore {
	return &CredentialStore{
		client: client,
		key:    fmt.Sprintf("dashboard:credential:%s", cookieName),
		now:    time.Now,
	}
}

// Save stores the credential until it expires.
func (s *CredentialStore) Save(ctx context.Context, cred domain.Credential) error {
	ttl := sessionTTL
	if !cred.ExpiresAt.IsZero() {
		ttl = cred.ExpiresAt.Sub(s.now())
		if ttl <= 0 {
			return s.Clear(ctx)
		}
	}

	payload, err := json.Marshal(cred)
	if err != nil {
		return fmt.Errorf("encode credential: %w", err)
	}
	if err := s.client.Set(ctx, s.key, payload, ttl).Err(); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}
	return nil
}

// Load returns domain.ErrNoCredential when nothing is stored.
func (s *CredentialStore) Load(ctx context.Context) (*domain.Credential, error) {
	payload, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrNoCredential
	}
	if err != nil {
		return nil, fmt.Errorf("load credential: %w", err)
	}

	var cred domain.Credential
	if err := json.Unmarshal(payload, &cred); err != nil {
		return nil, fmt.Errorf("decode credential: %w", err)
	}
	return &cred, nil
}

func (s *CredentialStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("clear credential: %w", err)
	}
	return nil
}

var _ ports.CredentialStore = (*CredentialStore)(nil)
