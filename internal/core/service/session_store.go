package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

const subscriberBuffer = 16

// SessionStore is the single source of truth for who is logged in. Verify,
// Login and Logout are the only writers; everyone else reads snapshots.
type SessionStore struct {
	verifier ports.IdentityVerifier
	log      zerolog.Logger

	mu        sync.RWMutex
	verifying bool
	identity  *domain.Identity
	verified  bool
	// decided is set by Login and Logout; a verification that settles
	// afterwards must not overwrite that decision.
	decided bool
	subs    []chan domain.Session

	once      sync.Once
	verifyErr error
	done      chan struct{}
}

// NewSessionStore returns a store in the verifying phase.
func NewSessionStore(verifier ports.IdentityVerifier, log zerolog.Logger) *SessionStore {
	return &SessionStore{
		verifier:  verifier,
		log:       log,
		verifying: true,
		done:      make(chan struct{}),
	}
}

// Verify asks the remote API whether the ambient credential is still good.
// Only the first call performs a request; later calls return its result.
// The store leaves the verifying phase exactly once, whatever the outcome.
func (s *SessionStore) Verify(ctx context.Context) error {
	s.once.Do(func() {
		s.verifyErr = s.verify(ctx)
	})
	return s.verifyErr
}

func (s *SessionStore) verify(ctx context.Context) (err error) {
	var identity *domain.Identity
	defer func() {
		if r := recover(); r != nil {
			err = &domain.UnexpectedError{Raw: "identity verification panicked"}
			identity = nil
			s.log.Error().Interface("panic", r).Msg("session verification panicked")
		}
		s.settle(identity, err)
	}()

	identity, err = s.verifier.VerifyIdentity(ctx)
	if err == nil && identity == nil {
		err = domain.ErrNotAuthenticated
	}
	return err
}

func (s *SessionStore) settle(identity *domain.Identity, err error) {
	s.mu.Lock()
	if !s.decided {
		if err != nil {
			s.identity = nil
			s.verified = false
		} else {
			id := *identity
			s.identity = &id
			s.verified = true
		}
	}
	s.verifying = false
	snap := s.snapshotLocked()
	s.publishLocked(snap)
	s.mu.Unlock()
	close(s.done)

	if err != nil {
		s.log.Info().Err(err).Msg("session not verified")
		return
	}
	s.log.Info().Str("email", identity.Email).Msg("session verified")
}

// Done is closed once the startup verification has settled.
func (s *SessionStore) Done() <-chan struct{} {
	return s.done
}

// Login records an identity the caller has already confirmed. No request
// is made; the session counts as authenticated as soon as this returns.
func (s *SessionStore) Login(identity domain.Identity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = &identity
	s.decided = true
	s.publishLocked(s.snapshotLocked())
}

// Logout forgets the identity and the verification flag.
func (s *SessionStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.identity = nil
	s.verified = false
	s.decided = true
	s.publishLocked(s.snapshotLocked())
}

// Snapshot returns a copy of the current state.
func (s *SessionStore) Snapshot() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *SessionStore) snapshotLocked() domain.Session {
	snap := domain.Session{Verified: s.verified}
	if s.identity != nil {
		id := *s.identity
		snap.Identity = &id
	}
	switch {
	case s.verifying:
		snap.Phase = domain.PhaseVerifying
	case s.identity != nil:
		snap.Phase = domain.PhaseAuthenticated
	default:
		snap.Phase = domain.PhaseUnauthenticated
	}
	return snap
}

// Subscribe returns a channel that receives a snapshot after every
// transition. Slow readers miss snapshots rather than block writers.
func (s *SessionStore) Subscribe() <-chan domain.Session {
	ch := make(chan domain.Session, subscriberBuffer)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *SessionStore) publishLocked(snap domain.Session) {
	for _, ch := range s.subs {
		select {
		case ch <- snap:
		default:
			s.log.Warn().Str("phase", snap.Phase.String()).Msg("session subscriber lagging, snapshot dropped")
		}
	}
}

var (
	_ ports.SessionReader = (*SessionStore)(nil)
	_ ports.SessionWriter = (*SessionStore)(nil)
)
