package ports

import (
	"context"

	"github.com/aijobhub/dashboard/internal/core/domain"
)

// ApplicationRepository persists submitted job applications.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	ListByEmail(ctx context.Context, email string) ([]domain.Application, error)
}
