package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
	"github.com/aijobhub/dashboard/internal/infrastructure/http/handlers"
)

type stubSessions struct {
	mu   sync.Mutex
	snap domain.Session
}

func (s *stubSessions) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap
}

func (s *stubSessions) set(snap domain.Session) {
	s.mu.Lock()
	s.snap = snap
	s.mu.Unlock()
}

type stubAuth struct{}

func (stubAuth) Login(_ context.Context, email, _ string) (*domain.Identity, error) {
	if email == "ada@example.com" {
		return &domain.Identity{Email: email}, nil
	}
	return nil, &domain.ActionError{
		Kind:    domain.KindRejected,
		Message: "Login failed. Please check your credentials.",
		Err:     &domain.RejectedError{StatusCode: http.StatusUnauthorized},
	}
}

func (stubAuth) Register(context.Context, ports.Registration) error { return nil }
func (stubAuth) Logout(context.Context)                             {}

type stubJobs struct{}

func (stubJobs) Search(context.Context, string, string) (*domain.Job, error) {
	return nil, &domain.ActionError{Kind: domain.KindTimeout, Message: "Job search timed out. Please try again.", Err: domain.ErrTimeout}
}
func (stubJobs) Selected() (*domain.Job, error) { return nil, nil }
func (stubJobs) Listing(context.Context, domain.FilterCriteria, bool) ([]domain.Job, int, error) {
	return []domain.Job{{Title: "Go Engineer"}}, 1, nil
}
func (stubJobs) Collection(context.Context) ([]domain.Job, error) { return nil, nil }

// The prometheus middleware registers collectors globally, so the router is
// built once per test binary.
var (
	routerOnce     sync.Once
	testRouter     *echo.Echo
	testSessions = &stubSessions{}
)

func router() (*echo.Echo, *stubSessions) {
	routerOnce.Do(func() {
		testRouter = NewRouter(Deps{
			Log:       zerolog.Nop(),
			Sessions:  testSessions,
			Auth:      stubAuth{},
			Jobs:      stubJobs{},
			Readiness: map[string]handlers.Pinger{},
		})
	})
	return testRouter, testSessions
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRouter_RootRedirectsToLogin(t *testing.T) {
	e, _ := router()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusSeeOther || rec.Header().Get(echo.HeaderLocation) != "/login" {
		t.Fatalf("expected redirect to /login, got %d %q", rec.Code, rec.Header().Get(echo.HeaderLocation))
	}
}

func TestRouter_GuardFollowsSession(t *testing.T) {
	e, sessions := router()

	sessions.set(domain.Session{Phase: domain.PhaseVerifying})
	if rec := serve(e, httptest.NewRequest(http.MethodGet, "/jobs", nil)); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 while verifying, got %d", rec.Code)
	}

	sessions.set(domain.Session{Phase: domain.PhaseUnauthenticated})
	if rec := serve(e, httptest.NewRequest(http.MethodGet, "/jobs", nil)); rec.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 when logged out, got %d", rec.Code)
	}

	sessions.set(domain.Session{
		Phase:    domain.PhaseAuthenticated,
		Identity: &domain.Identity{Email: "ada@example.com"},
		Verified: true,
	})
	rec := serve(e, httptest.NewRequest(http.MethodGet, "/jobs", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 when logged in, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Go Engineer") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestRouter_PublicScreensIgnoreVerification(t *testing.T) {
	e, sessions := router()
	sessions.set(domain.Session{Phase: domain.PhaseVerifying})

	for _, path := range []string{"/login", "/register", "/session", "/health"} {
		if rec := serve(e, httptest.NewRequest(http.MethodGet, path, nil)); rec.Code != http.StatusOK {
			t.Fatalf("expected 200 for %s, got %d", path, rec.Code)
		}
	}
}

func TestRouter_RendersActionErrors(t *testing.T) {
	e, sessions := router()

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"bob@example.com","password":"nope"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := serve(e, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var resp errorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Error != "Login failed. Please check your credentials." || resp.Kind != "rejected" {
		t.Fatalf("unexpected envelope: %+v", resp)
	}

	sessions.set(domain.Session{
		Phase:    domain.PhaseAuthenticated,
		Identity: &domain.Identity{Email: "ada@example.com"},
	})
	req = httptest.NewRequest(http.MethodPost, "/home/search", strings.NewReader(`{"company":"Acme","job_title":"Go"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if rec := serve(e, req); rec.Code != http.StatusGatewayTimeout {
		t.Fatalf("expected 504, got %d", rec.Code)
	}
}

func TestRouter_NavigationLinksAreRouted(t *testing.T) {
	e, sessions := router()
	sessions.set(domain.Session{
		Phase:    domain.PhaseAuthenticated,
		Identity: &domain.Identity{Email: "ada@example.com"},
	})

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/session", nil))
	var resp struct {
		Links []struct {
			Path   string `json:"path"`
			Method string `json:"method"`
		} `json:"links"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Links) == 0 {
		t.Fatalf("expected navigation links")
	}

	routed := map[string]bool{}
	for _, r := range e.Routes() {
		routed[r.Method+" "+r.Path] = true
	}
	for _, l := range resp.Links {
		if !routed[l.Method+" "+l.Path] {
			t.Fatalf("link %s %s has no route", l.Method, l.Path)
		}
	}
}
