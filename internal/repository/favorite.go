package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/raksshana/SlugSync/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type FavoriteRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewFavoriteRepo(db *dbpg.DB) *FavoriteRepository {
	return &FavoriteRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *FavoriteRepository) Add(ctx context.Context, userID uuid.UUID, eventID int64) error {
	query := `INSERT INTO favorites (user_id, event_id, created_at)
			  VALUES ($1, $2, $3)`
	_, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID, eventID, time.Now().UTC())
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return domain.ErrAlreadyFavorite
			case "23503":
				return domain.ErrEventNotFound
			}
		}
		return fmt.Errorf("insert favorite: %w", err)
	}

	return nil
}

func (r *FavoriteRepository) Remove(ctx context.Context, userID uuid.UUID, eventID int64) error {
	query := `DELETE FROM favorites WHERE user_id=$1 AND event_id=$2`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, userID, eventID)
	if err != nil {
		return fmt.Errorf("delete favorite: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("favorite rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrFavoriteNotFound
	}

	return nil
}

func (r *FavoriteRepository) ListIDsByUser(ctx context.Context, userID uuid.UUID) (domain.FavoriteSet, error) {
	query := `SELECT event_id FROM favorites WHERE user_id=$1`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	defer rows.Close()

	set := domain.FavoriteSet{}
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan favorite: %w", err)
		}
		set[id] = struct{}{}
	}

	return set, rows.Err()
}
