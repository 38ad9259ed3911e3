package handler

import (
	"context"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

type stubAuthService struct {
	loginFn    func(ctx context.Context, email, password string) (*domain.Identity, error)
	registerFn func(ctx context.Context, reg ports.Registration) error
	logouts    int
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.Identity, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Register(ctx context.Context, reg ports.Registration) error {
	return s.registerFn(ctx, reg)
}

func (s *stubAuthService) Logout(ctx context.Context) { s.logouts++ }

type stubSessions struct {
	snap domain.Session
}

func (s *stubSessions) Snapshot() domain.Session { return s.snap }

type stubJobService struct {
	searchFn     func(ctx context.Context, company, title string) (*domain.Job, error)
	selectedFn   func() (*domain.Job, error)
	listingFn    func(ctx context.Context, criteria domain.FilterCriteria, refresh bool) ([]domain.Job, int, error)
	collectionFn func(ctx context.Context) ([]domain.Job, error)
}

func (s *stubJobService) Search(ctx context.Context, company, title string) (*domain.Job, error) {
	return s.searchFn(ctx, company, title)
}

func (s *stubJobService) Selected() (*domain.Job, error) { return s.selectedFn() }

func (s *stubJobService) Listing(ctx context.Context, criteria domain.FilterCriteria, refresh bool) ([]domain.Job, int, error) {
	return s.listingFn(ctx, criteria, refresh)
}

func (s *stubJobService) Collection(ctx context.Context) ([]domain.Job, error) {
	return s.collectionFn(ctx)
}

type stubStatsService struct {
	trendsFn    func(ctx context.Context) (*domain.Trends, error)
	breakdownFn func(jobs []domain.Job) domain.Breakdown
}

func (s *stubStatsService) Trends(ctx context.Context) (*domain.Trends, error) {
	return s.trendsFn(ctx)
}

func (s *stubStatsService) Breakdown(jobs []domain.Job) domain.Breakdown {
	return s.breakdownFn(jobs)
}

type stubEligibilityService struct {
	checkFn func(ctx context.Context, req domain.EligibilityRequest) (*domain.EligibilityResult, error)
}

func (s *stubEligibilityService) Check(ctx context.Context, req domain.EligibilityRequest) (*domain.EligibilityResult, error) {
	return s.checkFn(ctx, req)
}

type stubApplicationService struct {
	applyFn func(ctx context.Context, identity domain.Identity, in ports.ApplyInput) (*domain.Application, error)
	listFn  func(ctx context.Context, identity domain.Identity) ([]domain.Application, error)
}

func (s *stubApplicationService) Apply(ctx context.Context, identity domain.Identity, in ports.ApplyInput) (*domain.Application, error) {
	return s.applyFn(ctx, identity, in)
}

func (s *stubApplicationService) List(ctx context.Context, identity domain.Identity) ([]domain.Application, error) {
	return s.listFn(ctx, identity)
}
