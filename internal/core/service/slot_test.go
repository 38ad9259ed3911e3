package service

import (
	"context"
	"errors"
	"testing"
)

func TestSlot_NewerFetchCancelsOlder(t *testing.T) {
	s := NewSlot[string]("test")

	firstCtx, first := s.Begin(context.Background())
	_, second := s.Begin(context.Background())

	if !errors.Is(firstCtx.Err(), context.Canceled) {
		t.Fatalf("expected first fetch to be cancelled, got %v", firstCtx.Err())
	}
	if s.Commit(first, "stale", nil) {
		t.Fatalf("stale token must not commit")
	}
	if !s.Commit(second, "fresh", nil) {
		t.Fatalf("current token must commit")
	}

	res, ok := s.Current()
	if !ok || res.Value != "fresh" {
		t.Fatalf("expected fresh result, got %+v (%v)", res, ok)
	}
}

func TestSlot_EmptyUntilCommitted(t *testing.T) {
	s := NewSlot[int]("test")
	if _, ok := s.Current(); ok {
		t.Fatalf("expected empty slot")
	}

	ctx, token := s.Begin(context.Background())
	s.Commit(token, 0, errors.New("boom"))

	res, ok := s.Current()
	if !ok || res.Err == nil {
		t.Fatalf("expected committed error, got %+v", res)
	}
	if ctx.Err() == nil {
		t.Fatalf("expected fetch context released after commit")
	}
}
