package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/raksshana/SlugSync/internal/domain"
)

type FavoriteRepo interface {
	Add(ctx context.Context, userID uuid.UUID, eventID int64) error
	Remove(ctx context.Context, userID uuid.UUID, eventID int64) error
	ListIDsByUser(ctx context.Context, userID uuid.UUID) (domain.FavoriteSet, error)
}
