package service

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

type recordedRequest struct {
	ports.Request
	body string
}

type stubGateway struct {
	mu    sync.Mutex
	calls []recordedRequest
	doFn  func(ctx context.Context, req ports.Request) (*ports.Response, error)
}

func (g *stubGateway) Do(ctx context.Context, req ports.Request) (*ports.Response, error) {
	rec := recordedRequest{Request: req}
	if req.Body != nil {
		b, _ := io.ReadAll(req.Body)
		rec.body = string(b)
		req.Body = bytes.NewReader(b)
	}
	g.mu.Lock()
	g.calls = append(g.calls, rec)
	g.mu.Unlock()
	return g.doFn(ctx, req)
}

func (g *stubGateway) requests() []recordedRequest {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]recordedRequest(nil), g.calls...)
}

func okJSON(body string) (*ports.Response, error) {
	return &ports.Response{StatusCode: 200, Body: []byte(body)}, nil
}

type stubVerifier struct {
	mu       sync.Mutex
	calls    int
	verifyFn func(ctx context.Context) (*domain.Identity, error)
}

func (v *stubVerifier) VerifyIdentity(ctx context.Context) (*domain.Identity, error) {
	v.mu.Lock()
	v.calls++
	v.mu.Unlock()
	return v.verifyFn(ctx)
}

func (v *stubVerifier) count() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.calls
}

type stubKeeper struct {
	subject   string
	forgotten int
	forgetErr error
}

func (k *stubKeeper) CredentialSubject() string { return k.subject }

func (k *stubKeeper) ForgetCredential(context.Context) error {
	k.forgotten++
	return k.forgetErr
}

type stubSessions struct {
	identity *domain.Identity
	logouts  int
}

func (s *stubSessions) Login(identity domain.Identity) { s.identity = &identity }

func (s *stubSessions) Logout() {
	s.identity = nil
	s.logouts++
}
