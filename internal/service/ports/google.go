package ports

import (
	"context"

	"github.com/raksshana/SlugSync/internal/domain"
)

// GoogleVerifier validates a Google ID token and returns the identity
// it asserts.
type GoogleVerifier interface {
	Verify(ctx context.Context, idToken string) (*domain.GoogleIdentity, error)
}
