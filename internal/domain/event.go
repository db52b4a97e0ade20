package domain

import (
	"time"

	"github.com/google/uuid"
)

// Field limits enforced at create/update time. They mirror the wire
// contract the mobile client validates against.
const (
	MaxNameLen        = 120
	MaxLocationLen    = 160
	MaxHostLen        = 300
	MaxDescriptionLen = 10000
)

type Event struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Location    string     `json:"location"`
	StartsAt    time.Time  `json:"starts_at"`
	EndsAt      *time.Time `json:"ends_at,omitempty"`
	Host        string     `json:"host,omitempty"`
	Description string     `json:"description,omitempty"`
	Tags        string     `json:"tags"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// EventInput carries the caller-supplied fields for create and update.
// Tags is the comma-joined label string used at the API boundary.
type EventInput struct {
	Name        string
	Location    string
	StartsAt    time.Time
	EndsAt      *time.Time
	Host        string
	Description string
	Tags        string
}
