package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/raksshana/SlugSync/internal/domain"
	"github.com/raksshana/SlugSync/internal/service/ports"
)

type FavoriteService struct {
	repo      ports.FavoriteRepo
	eventRepo ports.EventRepo
}

func NewFavoriteService(repo ports.FavoriteRepo, eventRepo ports.EventRepo) *FavoriteService {
	return &FavoriteService{
		repo:      repo,
		eventRepo: eventRepo,
	}
}

func (s *FavoriteService) Add(ctx context.Context, userID uuid.UUID, eventID int64) error {
	// Surface a clean not-found before relying on the FK constraint.
	if _, err := s.eventRepo.GetByID(ctx, eventID); err != nil {
		return fmt.Errorf("check event: %w", err)
	}

	if err := s.repo.Add(ctx, userID, eventID); err != nil {
		return fmt.Errorf("add favorite: %w", err)
	}

	return nil
}

func (s *FavoriteService) Remove(ctx context.Context, userID uuid.UUID, eventID int64) error {
	return s.repo.Remove(ctx, userID, eventID)
}

func (s *FavoriteService) ListIDs(ctx context.Context, userID uuid.UUID) (domain.FavoriteSet, error) {
	return s.repo.ListIDsByUser(ctx, userID)
}
