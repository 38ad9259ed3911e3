package ports

import (
	"context"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

// Registration is the sign-up form as submitted.
type Registration struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
}

type AuthService interface {
	Login(ctx context.Context, email, password string) (*domain.Identity, error)
	Register(ctx context.Context, reg Registration) error
	Logout(ctx context.Context)
}

type JobService interface {
	Search(ctx context.Context, company, title string) (*domain.Job, error)
	Selected() (*domain.Job, error)
	Listing(ctx context.Context, criteria domain.FilterCriteria, refresh bool) ([]domain.Job, int, error)
	Collection(ctx context.Context) ([]domain.Job, error)
}

type StatsService interface {
	Trends(ctx context.Context) (*domain.Trends, error)
	Breakdown(jobs []domain.Job) domain.Breakdown
}

type EligibilityService interface {
	Check(ctx context.Context, req domain.EligibilityRequest) (*domain.EligibilityResult, error)
}

// ApplyInput is the application form. Job fields fall back to the job
// currently selected on the home screen.
type ApplyInput struct {
	JobTitle    string
	CompanyName string
	Resume      *domain.Document
	CoverLetter *domain.Document
}

type ApplicationService interface {
	Apply(ctx context.Context, identity domain.Identity, in ApplyInput) (*domain.Application, error)
	List(ctx context.Context, identity domain.Identity) ([]domain.Application, error)
}
