package ports

import (
	"context"
	"time"

	"github.com/raksshana/SlugSync/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error
	DeleteEndedBefore(ctx context.Context, cutoff time.Time) ([]int64, error)
}
