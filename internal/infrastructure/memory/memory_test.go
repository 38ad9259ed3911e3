package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

func TestCredentialStore_RoundTrip(t *testing.T) {
	s := NewCredentialStore()
	ctx := context.Background()

	if _, err := s.Load(ctx); !errors.Is(err, domain.ErrNoCredential) {
		t.Fatalf("expected ErrNoCredential, got %v", err)
	}

	_ = s.Save(ctx, domain.Credential{Name: "session_token", Value: "abc"})
	cred, err := s.Load(ctx)
	if err != nil || cred.Value != "abc" {
		t.Fatalf("unexpected credential: %+v (%v)", cred, err)
	}

	_ = s.Clear(ctx)
	if _, err := s.Load(ctx); !errors.Is(err, domain.ErrNoCredential) {
		t.Fatalf("expected cleared store, got %v", err)
	}
}

func TestApplicationRepository_ListByEmailNewestFirst(t *testing.T) {
	r := NewApplicationRepository()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	_ = r.Create(ctx, &domain.Application{ID: "a", Email: "ada@example.com", SubmittedAt: base})
	_ = r.Create(ctx, &domain.Application{ID: "b", Email: "ada@example.com", SubmittedAt: base.Add(time.Hour)})
	_ = r.Create(ctx, &domain.Application{ID: "c", Email: "bob@example.com", SubmittedAt: base})

	apps, err := r.ListByEmail(ctx, "ada@example.com")
	if err != nil {
		t.Fatalf("ListByEmail returned error: %v", err)
	}
	if len(apps) != 2 || apps[0].ID != "b" || apps[1].ID != "a" {
		t.Fatalf("unexpected applications: %+v", apps)
	}
}
