package dto

import (
	"time"

	"github.com/raksshana/SlugSync/internal/domain"
	"github.com/raksshana/SlugSync/internal/feed"
)

// EventResponse is an event plus the derived display fields the mobile
// feed renders directly.
type EventResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Location    string `json:"location"`
	StartsAt    string `json:"starts_at"`
	EndsAt      string `json:"ends_at,omitempty"`
	Host        string `json:"host,omitempty"`
	Description string `json:"description,omitempty"`
	Tags        string `json:"tags"`
	OwnerID     string `json:"owner_id"`
	Category    string `json:"category"`
	AllDay      bool   `json:"all_day"`
	MultiDay    bool   `json:"multi_day"`
	DateLabel   string `json:"date_label"`
	TimeLabel   string `json:"time_label"`
	IsFavorite  bool   `json:"is_favorite"`
	CreatedAt   string `json:"created_at"`
}

type UserResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	CreatedAt   string `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

// ToRecord flattens a stored event into the wire form the feed
// pipeline consumes.
func ToRecord(e *domain.Event) feed.Record {
	r := feed.Record{
		ID:          e.ID,
		Name:        e.Name,
		Location:    e.Location,
		Description: e.Description,
		Host:        e.Host,
		Tags:        e.Tags,
		StartsAt:    e.StartsAt.UTC().Format(time.RFC3339Nano),
	}
	if e.EndsAt != nil {
		r.EndsAt = e.EndsAt.UTC().Format(time.RFC3339Nano)
	}
	return r
}

func ToEventResponse(it feed.Item, ownerID string, createdAt time.Time, loc *time.Location) EventResponse {
	return EventResponse{
		ID:          it.ID,
		Name:        it.Name,
		Location:    it.Location,
		StartsAt:    it.StartsAt,
		EndsAt:      it.EndsAt,
		Host:        it.Host,
		Description: it.Description,
		Tags:        it.Tags,
		OwnerID:     ownerID,
		Category:    it.Category,
		AllDay:      it.Times.AllDay(loc),
		MultiDay:    it.Times.MultiDay(loc),
		DateLabel:   it.Times.DateLabel(loc),
		TimeLabel:   it.Times.TimeLabel(loc),
		IsFavorite:  it.Favorite,
		CreatedAt:   createdAt.UTC().Format(time.RFC3339),
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID.String(),
		Email:       u.Email,
		DisplayName: u.DisplayName,
		CreatedAt:   u.CreatedAt.Format(time.RFC3339),
	}
}
