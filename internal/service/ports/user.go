package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/raksshana/SlugSync/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByGoogleSub(ctx context.Context, sub string) (*domain.User, error)
}
