package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const userIDKey = "user_id"

// Auth requires a valid bearer token and stores the caller's user id
// in the request context.
func Auth(secret []byte) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		userID, ok := parseBearer(c, secret)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"error": "invalid or missing bearer token"},
			)
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

// OptionalAuth resolves the caller when a valid token is present and
// lets anonymous requests through untouched. Used on read endpoints
// where authentication only adds the favorite flags.
func OptionalAuth(secret []byte) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if userID, ok := parseBearer(c, secret); ok {
			c.Set(userIDKey, userID)
		}
		c.Next()
	}
}

// UserID returns the authenticated caller set by Auth or OptionalAuth.
func UserID(c *ginext.Context) (uuid.UUID, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return uuid.UUID{}, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func parseBearer(c *ginext.Context, secret []byte) (uuid.UUID, bool) {
	header := c.GetHeader("Authorization")
	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found || raw == "" {
		return uuid.UUID{}, false
	}

	claims := jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(raw, &claims,
		func(*jwt.Token) (any, error) { return secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return uuid.UUID{}, false
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.UUID{}, false
	}

	return userID, true
}
