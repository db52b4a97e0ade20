package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/raksshana/SlugSync/internal/domain"
	"github.com/raksshana/SlugSync/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validInput() domain.EventInput {
	return domain.EventInput{
		Name:     "Spring Concert",
		Location: "Quarry Amphitheater",
		StartsAt: time.Date(2026, 4, 10, 18, 0, 0, 0, time.UTC),
		Tags:     "music,concert",
	}
}

func TestEventService_Create_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 0)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	ownerID := uuid.New()
	event, err := svc.Create(context.Background(), ownerID, validInput())

	require.NoError(t, err)
	assert.Equal(t, "Spring Concert", event.Name)
	assert.Equal(t, ownerID, event.OwnerID)
	assert.Equal(t, "music,concert", event.Tags)
	assert.Nil(t, event.EndsAt)
}

func TestEventService_Create_NormalizesTags(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 0)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	input := validInput()
	input.Tags = " Music , CONCERT ,, band "

	event, err := svc.Create(context.Background(), uuid.New(), input)

	require.NoError(t, err)
	assert.Equal(t, "music,concert,band", event.Tags)
}

func TestEventService_Create_StoresUTC(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 0)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	pacific, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)

	input := validInput()
	input.StartsAt = time.Date(2026, 4, 10, 11, 0, 0, 0, pacific)
	end := time.Date(2026, 4, 10, 13, 0, 0, 0, pacific)
	input.EndsAt = &end

	event, err := svc.Create(context.Background(), uuid.New(), input)

	require.NoError(t, err)
	assert.Equal(t, time.UTC, event.StartsAt.Location())
	require.NotNil(t, event.EndsAt)
	assert.Equal(t, time.UTC, event.EndsAt.Location())
	assert.True(t, event.StartsAt.Equal(input.StartsAt))
}

func TestEventService_Create_Validation(t *testing.T) {
	svc := NewEventService(nil, 0)

	tests := []struct {
		name   string
		mutate func(*domain.EventInput)
	}{
		{"empty name", func(in *domain.EventInput) { in.Name = "" }},
		{"name too long", func(in *domain.EventInput) { in.Name = strings.Repeat("x", domain.MaxNameLen+1) }},
		{"empty location", func(in *domain.EventInput) { in.Location = "" }},
		{"location too long", func(in *domain.EventInput) { in.Location = strings.Repeat("x", domain.MaxLocationLen+1) }},
		{"host too long", func(in *domain.EventInput) { in.Host = strings.Repeat("x", domain.MaxHostLen+1) }},
		{"zero start", func(in *domain.EventInput) { in.StartsAt = time.Time{} }},
		{"end before start", func(in *domain.EventInput) {
			end := in.StartsAt.Add(-time.Hour)
			in.EndsAt = &end
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			_, err := svc.Create(context.Background(), uuid.New(), input)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_Create_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 0)

	repoErr := errors.New("db error")
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(repoErr)

	_, err := svc.Create(context.Background(), uuid.New(), validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestEventService_Update_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 0)

	ownerID := uuid.New()
	stored := &domain.Event{ID: 1, Name: "Old", Location: "Old Hall", OwnerID: ownerID}

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(stored, nil)
	repo.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Update(context.Background(), ownerID, 1, validInput())

	require.NoError(t, err)
	assert.Equal(t, "Spring Concert", event.Name)
	assert.Equal(t, ownerID, event.OwnerID)
}

func TestEventService_Update_Forbidden(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 0)

	stored := &domain.Event{ID: 1, OwnerID: uuid.New()}
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(stored, nil)

	_, err := svc.Update(context.Background(), uuid.New(), 1, validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_Update_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 0)

	repo.EXPECT().GetByID(mock.Anything, int64(99)).Return(nil, domain.ErrEventNotFound)

	_, err := svc.Update(context.Background(), uuid.New(), 99, validInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Delete_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 0)

	ownerID := uuid.New()
	stored := &domain.Event{ID: 1, OwnerID: ownerID}

	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(stored, nil)
	repo.EXPECT().Delete(mock.Anything, int64(1)).Return(nil)

	err := svc.Delete(context.Background(), ownerID, 1)

	require.NoError(t, err)
}

func TestEventService_Delete_Forbidden(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, 0)

	stored := &domain.Event{ID: 1, OwnerID: uuid.New()}
	repo.EXPECT().GetByID(mock.Anything, int64(1)).Return(stored, nil)

	err := svc.Delete(context.Background(), uuid.New(), 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestEventService_SweepEnded_Disabled(t *testing.T) {
	svc := NewEventService(nil, 0)

	ids, err := svc.SweepEnded(context.Background())

	require.NoError(t, err)
	assert.Nil(t, ids)
}

func TestEventService_SweepEnded_UsesRetentionCutoff(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	retention := 90 * 24 * time.Hour
	svc := NewEventService(repo, retention)

	var cutoff time.Time
	repo.EXPECT().DeleteEndedBefore(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, before time.Time) {
			cutoff = before
		}).
		Return([]int64{4, 7}, nil)

	ids, err := svc.SweepEnded(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []int64{4, 7}, ids)
	assert.WithinDuration(t, time.Now().UTC().Add(-retention), cutoff, time.Minute)
}

func TestEventService_SweepEnded_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, time.Hour)

	repoErr := errors.New("db error")
	repo.EXPECT().DeleteEndedBefore(mock.Anything, mock.Anything).Return(nil, repoErr)

	_, err := svc.SweepEnded(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, repoErr)
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Music,Concert", "music,concert"},
		{" a , b ", "a,b"},
		{",,", ""},
		{"", ""},
		{"one", "one"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeTags(tt.in))
	}
}
