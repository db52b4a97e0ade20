package domain

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	GoogleSub    *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type RegisterInput struct {
	Email       string
	DisplayName string
	Password    string
}

// Token is the bearer credential issued by /token and /auth/google.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// GoogleIdentity is the subset of a verified Google ID token the auth
// service cares about.
type GoogleIdentity struct {
	Sub   string
	Email string
	Name  string
}
