package domain

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrFavoriteNotFound = errors.New("favorite not found")
)

var (
	ErrForbidden       = errors.New("caller is not the event owner")
	ErrEmailTaken      = errors.New("email is already registered")
	ErrAlreadyFavorite = errors.New("event is already a favorite")
	ErrBadCredentials  = errors.New("invalid credentials")
)

var (
	ErrValidation = errors.New("validation error")
)
