package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/filter"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

// JobPaths are the remote job endpoints.
type JobPaths struct {
	Search string
	List   string
}

// JobService backs the home search screen and the job listings screen.
type JobService struct {
	gw     ports.Gateway
	paths  JobPaths
	engine *filter.Engine
	search *Slot[*domain.Job]
	list   *Slot[[]domain.Job]
	log    zerolog.Logger
}

func NewJobService(gw ports.Gateway, paths JobPaths, engine *filter.Engine, log zerolog.Logger) *JobService {
	return &JobService{
		gw:     gw,
		paths:  paths,
		engine: engine,
		search: NewSlot[*domain.Job]("job_search"),
		list:   NewSlot[[]domain.Job]("job_list"),
		log:    log,
	}
}

// Search looks up one job by company and title. A newer search supersedes
// this one; its result is then dropped and ErrSuperseded returned.
func (s *JobService) Search(ctx context.Context, company, title string) (*domain.Job, error) {
	company, title = strings.TrimSpace(company), strings.TrimSpace(title)
	if company == "" || title == "" {
		return nil, domain.NewValidationError("Please enter both a company name and a job title.")
	}

	fetchCtx, token := s.search.Begin(ctx)
	q := url.Values{}
	q.Set("company", company)
	q.Set("job_title", title)

	var job *domain.Job
	resp, err := s.gw.Do(fetchCtx, ports.Request{Method: http.MethodGet, Path: s.paths.Search, Query: q})
	if err == nil {
		job, err = decodeJob(resp.Body)
	}
	err = jobSearchMessages.explain(err)

	if !s.search.Commit(token, job, err) {
		s.log.Debug().Str("slot", s.search.Name()).Msg("stale result dropped")
		return nil, fmt.Errorf("job search: %w", domain.ErrSuperseded)
	}
	return job, err
}

// decodeJob accepts either a single job object or a list of jobs, taking the
// first element of a list.
func decodeJob(body []byte) (*domain.Job, error) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var jobs []domain.Job
		if err := json.Unmarshal(body, &jobs); err != nil {
			return nil, &domain.UnexpectedError{Raw: err.Error()}
		}
		if len(jobs) == 0 {
			return nil, &domain.RejectedError{StatusCode: http.StatusNotFound}
		}
		return &jobs[0], nil
	}
	var job domain.Job
	if err := json.Unmarshal(body, &job); err != nil {
		return nil, &domain.UnexpectedError{Raw: err.Error()}
	}
	return &job, nil
}

// Selected returns the job the last search committed, which the apply
// screen uses as its default target.
func (s *JobService) Selected() (*domain.Job, error) {
	res, ok := s.search.Current()
	if !ok {
		return nil, nil
	}
	if res.Err != nil {
		return nil, res.Err
	}
	if res.Value == nil {
		return nil, nil
	}
	job := *res.Value
	return &job, nil
}

// Listing applies the criteria to the job collection, loading it first when
// it has never been loaded or refresh is set. It returns the visible jobs
// and the collection size.
func (s *JobService) Listing(ctx context.Context, criteria domain.FilterCriteria, refresh bool) ([]domain.Job, int, error) {
	if refresh || !s.engine.Loaded() {
		if err := s.load(ctx); err != nil {
			return nil, 0, err
		}
	}
	visible := s.engine.Filter(criteria)
	return visible, len(s.engine.Collection()), nil
}

// Collection returns the full job collection, loading it on first use.
func (s *JobService) Collection(ctx context.Context) ([]domain.Job, error) {
	if !s.engine.Loaded() {
		if err := s.load(ctx); err != nil {
			return nil, err
		}
	}
	return s.engine.Collection(), nil
}

func (s *JobService) load(ctx context.Context) error {
	fetchCtx, token := s.list.Begin(ctx)

	var jobs []domain.Job
	resp, err := s.gw.Do(fetchCtx, ports.Request{Method: http.MethodGet, Path: s.paths.List})
	if err == nil {
		if jerr := json.Unmarshal(resp.Body, &jobs); jerr != nil {
			err = &domain.UnexpectedError{Raw: jerr.Error()}
		}
	}
	err = jobListMessages.explain(err)

	if !s.list.Commit(token, jobs, err) {
		return fmt.Errorf("job listings: %w", domain.ErrSuperseded)
	}
	if err != nil {
		return err
	}
	s.engine.SetCollection(jobs)
	s.log.Debug().Int("jobs", len(jobs)).Msg("job collection loaded")
	return nil
}

var _ ports.JobService = (*JobService)(nil)
