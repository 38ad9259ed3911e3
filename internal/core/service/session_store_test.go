package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

func waitDone(t *testing.T, s *SessionStore) {
	t.Helper()
	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatalf("verification never settled")
	}
}

func TestSessionStore_StartsVerifying(t *testing.T) {
	s := NewSessionStore(&stubVerifier{}, zerolog.Nop())

	snap := s.Snapshot()
	if !snap.Verifying() || snap.IsAuthenticated() || snap.Verified {
		t.Fatalf("unexpected initial snapshot: %+v", snap)
	}
}

func TestSessionStore_VerifySuccess(t *testing.T) {
	v := &stubVerifier{verifyFn: func(context.Context) (*domain.Identity, error) {
		return &domain.Identity{Email: "ada@example.com"}, nil
	}}
	s := NewSessionStore(v, zerolog.Nop())

	if err := s.Verify(context.Background()); err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}

	snap := s.Snapshot()
	if snap.Phase != domain.PhaseAuthenticated || !snap.Verified {
		t.Fatalf("expected verified authenticated session, got %+v", snap)
	}
	if snap.Identity == nil || snap.Identity.Email != "ada@example.com" {
		t.Fatalf("unexpected identity: %+v", snap.Identity)
	}
}

func TestSessionStore_VerifyFailureClearsSession(t *testing.T) {
	v := &stubVerifier{verifyFn: func(context.Context) (*domain.Identity, error) {
		return nil, &domain.RejectedError{StatusCode: 401}
	}}
	s := NewSessionStore(v, zerolog.Nop())

	if err := s.Verify(context.Background()); err == nil {
		t.Fatalf("expected error from failed verification")
	}

	snap := s.Snapshot()
	if snap.Phase != domain.PhaseUnauthenticated || snap.Verified || snap.Identity != nil {
		t.Fatalf("expected cleared session, got %+v", snap)
	}
}

func TestSessionStore_VerifyRunsOnce(t *testing.T) {
	v := &stubVerifier{verifyFn: func(context.Context) (*domain.Identity, error) {
		return nil, domain.ErrTimeout
	}}
	s := NewSessionStore(v, zerolog.Nop())

	first := s.Verify(context.Background())
	second := s.Verify(context.Background())

	if v.count() != 1 {
		t.Fatalf("expected 1 verification call, got %d", v.count())
	}
	if !errors.Is(first, domain.ErrTimeout) || !errors.Is(second, domain.ErrTimeout) {
		t.Fatalf("expected both calls to report the first result, got %v / %v", first, second)
	}
}

func TestSessionStore_LeavesVerifyingExactlyOnce(t *testing.T) {
	v := &stubVerifier{verifyFn: func(context.Context) (*domain.Identity, error) {
		return &domain.Identity{Email: "ada@example.com"}, nil
	}}
	s := NewSessionStore(v, zerolog.Nop())
	updates := s.Subscribe()

	_ = s.Verify(context.Background())
	_ = s.Verify(context.Background())

	select {
	case snap := <-updates:
		if snap.Verifying() {
			t.Fatalf("expected settled snapshot, got %+v", snap)
		}
	default:
		t.Fatalf("expected a transition to be published")
	}
	select {
	case snap := <-updates:
		t.Fatalf("unexpected second transition: %+v", snap)
	default:
	}
}

func TestSessionStore_PanickingVerifierStillSettles(t *testing.T) {
	v := &stubVerifier{verifyFn: func(context.Context) (*domain.Identity, error) {
		panic("boom")
	}}
	s := NewSessionStore(v, zerolog.Nop())

	if err := s.Verify(context.Background()); domain.Classify(err) != domain.KindUnexpected {
		t.Fatalf("expected unexpected error, got %v", err)
	}
	waitDone(t, s)
	if s.Snapshot().Verifying() {
		t.Fatalf("store stuck in verifying phase")
	}
}

func TestSessionStore_NilIdentityIsNotAuthenticated(t *testing.T) {
	v := &stubVerifier{verifyFn: func(context.Context) (*domain.Identity, error) {
		return nil, nil
	}}
	s := NewSessionStore(v, zerolog.Nop())

	if err := s.Verify(context.Background()); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if s.Snapshot().IsAuthenticated() {
		t.Fatalf("expected unauthenticated session")
	}
}

func TestSessionStore_LoginDuringVerificationWins(t *testing.T) {
	release := make(chan struct{})
	v := &stubVerifier{verifyFn: func(context.Context) (*domain.Identity, error) {
		<-release
		return nil, &domain.RejectedError{StatusCode: 401}
	}}
	s := NewSessionStore(v, zerolog.Nop())
	go func() { _ = s.Verify(context.Background()) }()

	s.Login(domain.Identity{Email: "ada@example.com"})
	if snap := s.Snapshot(); !snap.Verifying() || !snap.IsAuthenticated() {
		t.Fatalf("expected verifying snapshot with identity, got %+v", snap)
	}

	close(release)
	waitDone(t, s)

	snap := s.Snapshot()
	if snap.Phase != domain.PhaseAuthenticated || snap.Identity.Email != "ada@example.com" {
		t.Fatalf("stale verification overwrote login: %+v", snap)
	}
	if snap.Verified {
		t.Fatalf("login must not mark the session verified")
	}
}

func TestSessionStore_LoginAndLogout(t *testing.T) {
	v := &stubVerifier{verifyFn: func(context.Context) (*domain.Identity, error) {
		return nil, domain.ErrNetworkUnreachable
	}}
	s := NewSessionStore(v, zerolog.Nop())
	_ = s.Verify(context.Background())

	s.Login(domain.Identity{Email: "ada@example.com"})
	if !s.Snapshot().IsAuthenticated() {
		t.Fatalf("expected authenticated after Login")
	}

	s.Logout()
	snap := s.Snapshot()
	if snap.IsAuthenticated() || snap.Verified || snap.Phase != domain.PhaseUnauthenticated {
		t.Fatalf("expected cleared session after Logout, got %+v", snap)
	}
}

func TestSessionStore_SnapshotIsACopy(t *testing.T) {
	s := NewSessionStore(&stubVerifier{}, zerolog.Nop())
	s.Login(domain.Identity{Email: "ada@example.com"})

	snap := s.Snapshot()
	snap.Identity.Email = "mallory@example.com"

	if got := s.Snapshot().Identity.Email; got != "ada@example.com" {
		t.Fatalf("snapshot mutation leaked into store: %s", got)
	}
}
