package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/raksshana/SlugSync/internal/domain"
	"github.com/raksshana/SlugSync/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

const (
	tokenIssuer    = "slugsync"
	minPasswordLen = 8
)

type AuthService struct {
	users    ports.UserRepo
	google   ports.GoogleVerifier
	secret   []byte
	tokenTTL time.Duration
	logger   logger.Logger
}

func NewAuthService(
	users ports.UserRepo,
	google ports.GoogleVerifier,
	secret string,
	tokenTTL time.Duration,
	logger logger.Logger,
) *AuthService {
	return &AuthService{
		users:    users,
		google:   google,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
	}
}

func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (*domain.User, error) {
	if !strings.Contains(input.Email, "@") {
		return nil, fmt.Errorf("%w: email is invalid", domain.ErrValidation)
	}
	if len(input.Password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrValidation, minPasswordLen)
	}

	hash, err := HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(input.Email),
		DisplayName:  input.DisplayName,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}

	if err = s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	s.logger.Info("user registered",
		logger.String("user_id", user.ID.String()),
	)

	return user, nil
}

// PasswordToken implements the OAuth2 password grant: verify the
// credentials and issue a bearer token. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *AuthService) PasswordToken(ctx context.Context, email, password string) (*domain.Token, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrBadCredentials
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	if user.PasswordHash == "" || !VerifyPassword(password, user.PasswordHash) {
		return nil, domain.ErrBadCredentials
	}

	return s.issue(user)
}

// GoogleToken exchanges a verified Google ID token for a bearer token,
// creating the account on first sign-in. An existing account with the
// same email is reused.
func (s *AuthService) GoogleToken(ctx context.Context, idToken string) (*domain.Token, error) {
	identity, err := s.google.Verify(ctx, idToken)
	if err != nil {
		s.logger.Warn("google token rejected",
			logger.String("error", err.Error()),
		)
		return nil, fmt.Errorf("%w: google token rejected", domain.ErrBadCredentials)
	}

	user, err := s.users.GetByGoogleSub(ctx, identity.Sub)
	if errors.Is(err, domain.ErrUserNotFound) {
		user, err = s.createGoogleUser(ctx, identity)
	}
	if err != nil {
		return nil, err
	}

	return s.issue(user)
}

func (s *AuthService) createGoogleUser(ctx context.Context, identity *domain.GoogleIdentity) (*domain.User, error) {
	sub := identity.Sub
	user := &domain.User{
		ID:          uuid.New(),
		Email:       strings.ToLower(identity.Email),
		DisplayName: identity.Name,
		GoogleSub:   &sub,
		CreatedAt:   time.Now().UTC(),
	}

	err := s.users.Create(ctx, user)
	if errors.Is(err, domain.ErrEmailTaken) {
		// The email registered with a password first; sign into that
		// account instead of duplicating it.
		return s.users.GetByEmail(ctx, user.Email)
	}
	if err != nil {
		return nil, fmt.Errorf("create google user: %w", err)
	}

	s.logger.Info("google user registered",
		logger.String("user_id", user.ID.String()),
	)

	return user, nil
}

func (s *AuthService) issue(user *domain.User) (*domain.Token, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &domain.Token{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   int(s.tokenTTL.Seconds()),
	}, nil
}
