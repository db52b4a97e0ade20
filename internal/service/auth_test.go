package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/raksshana/SlugSync/internal/domain"
	"github.com/raksshana/SlugSync/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newAuthService(t *testing.T, users *mocks.MockUserRepo, google *mocks.MockGoogleVerifier) *AuthService {
	t.Helper()
	return NewAuthService(users, google, "test-secret", 24*time.Hour, newTestLogger(t))
}

func TestAuthService_Register_Success(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := newAuthService(t, users, nil)

	var created *domain.User
	users.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, user *domain.User) {
			created = user
		}).
		Return(nil)

	user, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:       "Sammy@UCSC.edu",
		DisplayName: "Sammy",
		Password:    "banana-slug",
	})

	require.NoError(t, err)
	assert.Equal(t, "sammy@ucsc.edu", user.Email)
	assert.Equal(t, "Sammy", user.DisplayName)
	assert.NotEqual(t, uuid.UUID{}, user.ID)
	require.NotNil(t, created)
	assert.NotEmpty(t, created.PasswordHash)
	assert.NotContains(t, created.PasswordHash, "banana-slug")
}

func TestAuthService_Register_InvalidEmail(t *testing.T) {
	svc := newAuthService(t, nil, nil)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "not-an-email",
		Password: "banana-slug",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_ShortPassword(t *testing.T) {
	svc := newAuthService(t, nil, nil)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "sammy@ucsc.edu",
		Password: "short",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := newAuthService(t, users, nil)

	users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Register(context.Background(), domain.RegisterInput{
		Email:    "taken@ucsc.edu",
		Password: "banana-slug",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestAuthService_PasswordToken_RoundTrip(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := newAuthService(t, users, nil)

	hash, err := HashPassword("banana-slug")
	require.NoError(t, err)

	userID := uuid.New()
	user := &domain.User{ID: userID, Email: "sammy@ucsc.edu", PasswordHash: hash}
	users.EXPECT().GetByEmail(mock.Anything, "sammy@ucsc.edu").Return(user, nil)

	token, err := svc.PasswordToken(context.Background(), "Sammy@UCSC.edu", "banana-slug")

	require.NoError(t, err)
	assert.Equal(t, "Bearer", token.TokenType)
	assert.Equal(t, int((24 * time.Hour).Seconds()), token.ExpiresIn)

	// The issued token parses back to the user's id.
	claims := jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token.AccessToken, &claims,
		func(*jwt.Token) (any, error) { return []byte("test-secret"), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, "slugsync", claims.Issuer)
}

func TestAuthService_PasswordToken_WrongPassword(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := newAuthService(t, users, nil)

	hash, err := HashPassword("banana-slug")
	require.NoError(t, err)

	user := &domain.User{ID: uuid.New(), Email: "sammy@ucsc.edu", PasswordHash: hash}
	users.EXPECT().GetByEmail(mock.Anything, "sammy@ucsc.edu").Return(user, nil)

	_, err = svc.PasswordToken(context.Background(), "sammy@ucsc.edu", "wrong-password")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestAuthService_PasswordToken_UnknownEmail(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := newAuthService(t, users, nil)

	users.EXPECT().GetByEmail(mock.Anything, "ghost@ucsc.edu").Return(nil, domain.ErrUserNotFound)

	_, err := svc.PasswordToken(context.Background(), "ghost@ucsc.edu", "whatever-pass")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestAuthService_PasswordToken_GoogleOnlyAccount(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	svc := newAuthService(t, users, nil)

	// No password hash: the account was created via Google sign-in.
	user := &domain.User{ID: uuid.New(), Email: "sammy@ucsc.edu"}
	users.EXPECT().GetByEmail(mock.Anything, "sammy@ucsc.edu").Return(user, nil)

	_, err := svc.PasswordToken(context.Background(), "sammy@ucsc.edu", "banana-slug")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}

func TestAuthService_GoogleToken_ExistingUser(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	google := mocks.NewMockGoogleVerifier(t)
	svc := newAuthService(t, users, google)

	identity := &domain.GoogleIdentity{Sub: "google-sub-1", Email: "sammy@ucsc.edu", Name: "Sammy"}
	google.EXPECT().Verify(mock.Anything, "id-token").Return(identity, nil)

	sub := "google-sub-1"
	user := &domain.User{ID: uuid.New(), Email: "sammy@ucsc.edu", GoogleSub: &sub}
	users.EXPECT().GetByGoogleSub(mock.Anything, "google-sub-1").Return(user, nil)

	token, err := svc.GoogleToken(context.Background(), "id-token")

	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
}

func TestAuthService_GoogleToken_FirstSignIn(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	google := mocks.NewMockGoogleVerifier(t)
	svc := newAuthService(t, users, google)

	identity := &domain.GoogleIdentity{Sub: "google-sub-2", Email: "New@UCSC.edu", Name: "New Slug"}
	google.EXPECT().Verify(mock.Anything, "id-token").Return(identity, nil)
	users.EXPECT().GetByGoogleSub(mock.Anything, "google-sub-2").Return(nil, domain.ErrUserNotFound)

	var created *domain.User
	users.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, user *domain.User) {
			created = user
		}).
		Return(nil)

	token, err := svc.GoogleToken(context.Background(), "id-token")

	require.NoError(t, err)
	assert.NotEmpty(t, token.AccessToken)
	require.NotNil(t, created)
	assert.Equal(t, "new@ucsc.edu", created.Email)
	require.NotNil(t, created.GoogleSub)
	assert.Equal(t, "google-sub-2", *created.GoogleSub)
	assert.Empty(t, created.PasswordHash)
}

func TestAuthService_GoogleToken_EmailAlreadyRegistered(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	google := mocks.NewMockGoogleVerifier(t)
	svc := newAuthService(t, users, google)

	identity := &domain.GoogleIdentity{Sub: "google-sub-3", Email: "sammy@ucsc.edu"}
	google.EXPECT().Verify(mock.Anything, "id-token").Return(identity, nil)
	users.EXPECT().GetByGoogleSub(mock.Anything, "google-sub-3").Return(nil, domain.ErrUserNotFound)
	users.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	existing := &domain.User{ID: uuid.New(), Email: "sammy@ucsc.edu"}
	users.EXPECT().GetByEmail(mock.Anything, "sammy@ucsc.edu").Return(existing, nil)

	token, err := svc.GoogleToken(context.Background(), "id-token")

	require.NoError(t, err)

	claims := jwt.RegisteredClaims{}
	_, err = jwt.ParseWithClaims(token.AccessToken, &claims,
		func(*jwt.Token) (any, error) { return []byte("test-secret"), nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	require.NoError(t, err)
	assert.Equal(t, existing.ID.String(), claims.Subject)
}

func TestAuthService_GoogleToken_Rejected(t *testing.T) {
	users := mocks.NewMockUserRepo(t)
	google := mocks.NewMockGoogleVerifier(t)
	svc := newAuthService(t, users, google)

	google.EXPECT().Verify(mock.Anything, "bad-token").Return(nil, errors.New("aud mismatch"))

	_, err := svc.GoogleToken(context.Background(), "bad-token")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadCredentials)
}
