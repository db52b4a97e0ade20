package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/raksshana/SlugSync/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, name, location, starts_at, ends_at, host, description, tags, owner_id, created_at, updated_at`

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (name, location, starts_at, ends_at, host, description, tags, owner_id, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			  RETURNING id`
	now := time.Now().UTC()
	row, err := r.db.QueryRowWithRetry(
		ctx, r.strategy, query,
		e.Name, e.Location, e.StartsAt, e.EndsAt,
		e.Host, e.Description, e.Tags, e.OwnerID, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	if err = row.Scan(&e.ID); err != nil {
		return fmt.Errorf("scan event id: %w", err)
	}
	e.CreatedAt, e.UpdatedAt = now, now

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = scanEvent(row.Scan, &e); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  ORDER BY starts_at ASC, id ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = scanEvent(rows.Scan, &e); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `UPDATE events
			  SET name=$2, location=$3, starts_at=$4, ends_at=$5, host=$6, description=$7, tags=$8, updated_at=$9
			  WHERE id=$1`
	now := time.Now().UTC()
	res, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Name, e.Location, e.StartsAt, e.EndsAt,
		e.Host, e.Description, e.Tags, now,
	)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}
	e.UpdatedAt = now

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM events WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// DeleteEndedBefore removes events whose end (start when no end is
// set) is older than the cutoff. Used by the retention sweep.
func (r *EventRepository) DeleteEndedBefore(ctx context.Context, cutoff time.Time) ([]int64, error) {
	query := `DELETE FROM events
			  WHERE COALESCE(ends_at, starts_at) < $1
			  RETURNING id`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, cutoff)
	if err != nil {
		return nil, fmt.Errorf("delete ended events: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan deleted event id: %w", err)
		}
		ids = append(ids, id)
	}

	return ids, rows.Err()
}

func scanEvent(scan func(dest ...any) error, e *domain.Event) error {
	return scan(
		&e.ID, &e.Name, &e.Location, &e.StartsAt, &e.EndsAt,
		&e.Host, &e.Description, &e.Tags, &e.OwnerID,
		&e.CreatedAt, &e.UpdatedAt,
	)
}
