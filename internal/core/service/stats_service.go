package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
	"github.com/aijobhub/dashboard/internal/core/viewmodel"
)

// StatsService backs the trends and statistics screens.
type StatsService struct {
	gw     ports.Gateway
	path   string
	trends *Slot[*domain.Trends]
	log    zerolog.Logger
}

func NewStatsService(gw ports.Gateway, path string, log zerolog.Logger) *StatsService {
	return &StatsService{
		gw:     gw,
		path:   path,
		trends: NewSlot[*domain.Trends]("stats"),
		log:    log,
	}
}

// Trends fetches the aggregate statistics and normalizes every series.
func (s *StatsService) Trends(ctx context.Context) (*domain.Trends, error) {
	fetchCtx, token := s.trends.Begin(ctx)

	var trends *domain.Trends
	resp, err := s.gw.Do(fetchCtx, ports.Request{Method: http.MethodGet, Path: s.path})
	if err == nil {
		var container map[string]any
		container, err = statsContainer(resp.Body)
		if err == nil {
			t := viewmodel.NormalizeStats(container)
			trends = &t
		}
	}
	err = statsMessages.explain(err)

	if !s.trends.Commit(token, trends, err) {
		return nil, fmt.Errorf("stats: %w", domain.ErrSuperseded)
	}
	return trends, err
}

// statsContainer unwraps the aggregation reply, which is a list holding one
// container. An empty list is an empty container.
func statsContainer(body []byte) (map[string]any, error) {
	if strings.HasPrefix(strings.TrimSpace(string(body)), "{") {
		var container map[string]any
		if err := json.Unmarshal(body, &container); err != nil {
			return nil, &domain.UnexpectedError{Raw: err.Error()}
		}
		return container, nil
	}
	var list []map[string]any
	if err := json.Unmarshal(body, &list); err != nil {
		return nil, &domain.UnexpectedError{Raw: err.Error()}
	}
	if len(list) == 0 {
		return map[string]any{}, nil
	}
	return list[0], nil
}

// Breakdown summarises a job collection for the statistics screen.
func (s *StatsService) Breakdown(jobs []domain.Job) domain.Breakdown {
	return viewmodel.Breakdown(jobs)
}

var _ ports.StatsService = (*StatsService)(nil)
