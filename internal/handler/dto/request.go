package dto

// EventRequest is the body for both create and update. Timestamps are
// ISO-8601 strings; tags is the comma-joined label string of the wire
// contract.
type EventRequest struct {
	Name        string `json:"name" binding:"required"`
	StartsAt    string `json:"starts_at" binding:"required"`
	EndsAt      string `json:"ends_at"`
	Location    string `json:"location" binding:"required"`
	Description string `json:"description"`
	Host        string `json:"host"`
	Tags        string `json:"tags"`
}

type FavoriteRequest struct {
	EventID int64 `json:"event_id" binding:"required"`
}

// TokenRequest is the form-encoded OAuth2 password grant body.
type TokenRequest struct {
	GrantType string `form:"grant_type" binding:"required"`
	Username  string `form:"username" binding:"required"`
	Password  string `form:"password" binding:"required"`
}

type GoogleAuthRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

type RegisterRequest struct {
	Email       string `json:"email" binding:"required,email"`
	DisplayName string `json:"display_name"`
	Password    string `json:"password" binding:"required"`
}
