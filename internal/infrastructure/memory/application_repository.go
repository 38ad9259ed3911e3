package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/aijobhub/dashboard/internal/core/domain"
	"github.com/aijobhub/dashboard/internal/core/ports"
)

// ApplicationRepository stores applications in a map keyed by ID.
type ApplicationRepository struct {
	mu   sync.RWMutex
	apps map[string]domain.Application
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{apps: make(map[string]domain.Application)}
}

func (r *ApplicationRepository) Create(_ context.Context, app *domain.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.apps[app.ID] = *app
	return nil
}

// ListByEmail returns the user's applications, newest first.
func (r *ApplicationRepository) ListByEmail(_ context.Context, email string) ([]domain.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Application, 0)
	for _, a := range r.apps {
		if a.Email == email {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SubmittedAt.After(out[j].SubmittedAt) })
	return out, nil
}

var _ ports.ApplicationRepository = (*ApplicationRepository)(nil)
