package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/raksshana/SlugSync/internal/domain"
	"github.com/raksshana/SlugSync/internal/service/ports"
)

type EventService struct {
	repo      ports.EventRepo
	retention time.Duration
}

// NewEventService builds the event CRUD service. retention bounds how
// long ended events are kept before the sweep removes them; zero
// disables sweeping.
func NewEventService(repo ports.EventRepo, retention time.Duration) *EventService {
	return &EventService{
		repo:      repo,
		retention: retention,
	}
}

func (s *EventService) Create(ctx context.Context, ownerID uuid.UUID, input domain.EventInput) (*domain.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event := &domain.Event{
		Name:        input.Name,
		Location:    input.Location,
		StartsAt:    input.StartsAt.UTC(),
		EndsAt:      utcOrNil(input.EndsAt),
		Host:        input.Host,
		Description: input.Description,
		Tags:        NormalizeTags(input.Tags),
		OwnerID:     ownerID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) Update(ctx context.Context, callerID uuid.UUID, id int64, input domain.EventInput) (*domain.Event, error) {
	if err := validateEventInput(input); err != nil {
		return nil, err
	}

	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event.OwnerID != callerID {
		return nil, domain.ErrForbidden
	}

	event.Name = input.Name
	event.Location = input.Location
	event.StartsAt = input.StartsAt.UTC()
	event.EndsAt = utcOrNil(input.EndsAt)
	event.Host = input.Host
	event.Description = input.Description
	event.Tags = NormalizeTags(input.Tags)

	if err = s.repo.Update(ctx, event); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return event, nil
}

func (s *EventService) Delete(ctx context.Context, callerID uuid.UUID, id int64) error {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if event.OwnerID != callerID {
		return domain.ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}

func (s *EventService) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

// SweepEnded removes events that ended longer than the retention
// window ago. Called by the scheduler.
func (s *EventService) SweepEnded(ctx context.Context) ([]int64, error) {
	if s.retention <= 0 {
		return nil, nil
	}

	cutoff := time.Now().UTC().Add(-s.retention)
	ids, err := s.repo.DeleteEndedBefore(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("sweep ended events: %w", err)
	}

	return ids, nil
}

func validateEventInput(input domain.EventInput) error {
	if input.Name == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if len(input.Name) > domain.MaxNameLen {
		return fmt.Errorf("%w: name exceeds %d characters", domain.ErrValidation, domain.MaxNameLen)
	}
	if input.Location == "" {
		return fmt.Errorf("%w: location is required", domain.ErrValidation)
	}
	if len(input.Location) > domain.MaxLocationLen {
		return fmt.Errorf("%w: location exceeds %d characters", domain.ErrValidation, domain.MaxLocationLen)
	}
	if len(input.Host) > domain.MaxHostLen {
		return fmt.Errorf("%w: host exceeds %d characters", domain.ErrValidation, domain.MaxHostLen)
	}
	if len(input.Description) > domain.MaxDescriptionLen {
		return fmt.Errorf("%w: description exceeds %d characters", domain.ErrValidation, domain.MaxDescriptionLen)
	}
	if input.StartsAt.IsZero() {
		return fmt.Errorf("%w: starts_at is required", domain.ErrValidation)
	}
	if input.EndsAt != nil && input.EndsAt.Before(input.StartsAt) {
		return fmt.Errorf("%w: ends_at must not be before starts_at", domain.ErrValidation)
	}
	return nil
}

// NormalizeTags canonicalizes the comma-joined tags string: lowercase,
// trimmed labels, empties dropped.
func NormalizeTags(tags string) string {
	parts := strings.Split(tags, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, ",")
}

func utcOrNil(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}
