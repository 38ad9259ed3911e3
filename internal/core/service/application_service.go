package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

// ApplicationService records job applications made from the dashboard.
type ApplicationService struct {
	repo ports.ApplicationRepository
	jobs interface {
		Selected() (*domain.Job, error)
	}
	now func() time.Time
	log zerolog.Logger
}

func NewApplicationService(repo ports.ApplicationRepository, jobs ports.JobService, log zerolog.Logger) *ApplicationService {
	return &ApplicationService{repo: repo, jobs: jobs, now: time.Now, log: log}
}

// Apply checks both documents and stores the application. When the form
// names no job, the job selected on the home screen is used.
func (s *ApplicationService) Apply(ctx context.Context, identity domain.Identity, in ports.ApplyInput) (*domain.Application, error) {
	if in.Resume.Empty() || in.CoverLetter.Empty() {
		return nil, domain.NewValidationError("Please upload both your resume and cover letter")
	}
	if !AcceptDocument(in.Resume) || !AcceptDocument(in.CoverLetter) {
		return nil, domain.NewValidationError(invalidDocumentMessage)
	}

	title, company := strings.TrimSpace(in.JobTitle), strings.TrimSpace(in.CompanyName)
	if title == "" {
		selected, err := s.jobs.Selected()
		if err == nil && selected != nil {
			title, company = selected.Title, selected.CompanyName
		}
	}
	if title == "" {
		return nil, domain.NewValidationError("Please search for a job before applying.")
	}

	app := &domain.Application{
		ID:              uuid.NewString(),
		Email:           identity.Email,
		JobTitle:        title,
		CompanyName:     company,
		ResumeName:      in.Resume.Filename,
		CoverLetterName: in.CoverLetter.Filename,
		SubmittedAt:     s.now().UTC(),
	}
	if err := s.repo.Create(ctx, app); err != nil {
		return nil, fmt.Errorf("apply: %w", err)
	}

	s.log.Info().Str("application_id", app.ID).Str("job_title", title).Msg("application submitted")
	return app, nil
}

// List returns the applications the user has submitted.
func (s *ApplicationService) List(ctx context.Context, identity domain.Identity) ([]domain.Application, error) {
	apps, err := s.repo.ListByEmail(ctx, identity.Email)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	return apps, nil
}

var _ ports.ApplicationService = (*ApplicationService)(nil)
