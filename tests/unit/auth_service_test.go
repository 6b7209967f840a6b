package unit_test

import (
	"context"
	"testing"
	"time"

	"github.com/HasanRzayev/FIRSATTO.PRO/internal/config"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/domain"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/repository"
	"github.com/HasanRzayev/FIRSATTO.PRO/internal/service/auth"
	"github.com/HasanRzayev/FIRSATTO.PRO/tests/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 7 * 24 * time.Hour,
	}
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	input := domain.CreateUserInput{
		Email:    "rider@example.com",
		Password: "password123",
		FullName: "Test Rider",
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, nil, testAuthConfig())

		userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
		userRepo.On("Create", ctx, mock.MatchedBy(func(u *domain.User) bool {
			return u.Email == input.Email && u.Role == "member" && u.PasswordHash != input.Password
		})).Return(nil).Once()
		sessionRepo.On("Create", ctx, mock.AnythingOfType("*repository.Session")).Return(nil).Once()

		user, tokens, err := svc.Register(ctx, input)

		assert.NoError(t, err)
		assert.Equal(t, input.Email, user.Email)
		assert.NotEmpty(t, tokens.AccessToken)
		assert.NotEmpty(t, tokens.RefreshToken)
		userRepo.AssertExpectations(t)
	})

	t.Run("Email Taken", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, nil, testAuthConfig())

		userRepo.On("ExistsByEmail", ctx, input.Email).Return(true, nil).Once()

		_, _, err := svc.Register(ctx, input)

		assert.ErrorIs(t, err, auth.ErrEmailExists)
		userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Username Taken", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, nil, testAuthConfig())

		username := "rider"
		withUsername := input
		withUsername.Username = &username

		userRepo.On("ExistsByEmail", ctx, input.Email).Return(false, nil).Once()
		userRepo.On("ExistsByUsername", ctx, username).Return(true, nil).Once()

		_, _, err := svc.Register(ctx, withUsername)

		assert.ErrorIs(t, err, auth.ErrUsernameExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	assert.NoError(t, err)

	stored := &domain.User{
		ID:           uuid.New(),
		Email:        "rider@example.com",
		PasswordHash: string(hash),
		FullName:     "Test Rider",
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, nil, testAuthConfig())

		userRepo.On("GetByEmail", ctx, stored.Email).Return(stored, nil).Once()
		sessionRepo.On("Create", ctx, mock.AnythingOfType("*repository.Session")).Return(nil).Once()

		user, tokens, err := svc.Login(ctx, domain.LoginInput{Email: stored.Email, Password: "correct-horse"}, auth.ClientMeta{})

		assert.NoError(t, err)
		assert.Equal(t, stored.ID, user.ID)

		claims, err := svc.ValidateAccessToken(tokens.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, stored.ID, claims.UserID)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, nil, testAuthConfig())

		userRepo.On("GetByEmail", ctx, stored.Email).Return(stored, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: stored.Email, Password: "wrong"}, auth.ClientMeta{})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
		sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Unknown Email", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, nil, testAuthConfig())

		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, nil).Once()

		_, _, err := svc.Login(ctx, domain.LoginInput{Email: "nobody@example.com", Password: "x"}, auth.ClientMeta{})

		assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctx := context.Background()

	t.Run("Rotates Session", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, nil, testAuthConfig())

		user := &domain.User{ID: uuid.New(), Email: "rider@example.com"}
		session := &repository.Session{ID: uuid.New(), UserID: user.ID}

		sessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(session, nil).Once()
		userRepo.On("GetByID", ctx, user.ID).Return(user, nil).Once()
		sessionRepo.On("Revoke", ctx, session.ID).Return(nil).Once()
		sessionRepo.On("Create", ctx, mock.AnythingOfType("*repository.Session")).Return(nil).Once()

		tokens, err := svc.RefreshToken(ctx, "some-refresh-token", auth.ClientMeta{})

		assert.NoError(t, err)
		assert.NotEmpty(t, tokens.AccessToken)
		sessionRepo.AssertExpectations(t)
	})

	t.Run("Unknown Token", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, nil, testAuthConfig())

		sessionRepo.On("GetByTokenHash", ctx, mock.AnythingOfType("string")).Return(nil, nil).Once()

		_, err := svc.RefreshToken(ctx, "bogus", auth.ClientMeta{})

		assert.ErrorIs(t, err, auth.ErrInvalidToken)
	})
}

func TestAuthService_ValidateAccessToken_Garbage(t *testing.T) {
	svc := auth.NewService(new(mocks.UserRepository), new(mocks.SessionRepository), nil, testAuthConfig())

	_, err := svc.ValidateAccessToken("not.a.jwt")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestAuthService_ResetPassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Expired Token", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, nil, testAuthConfig())

		expired := time.Now().Add(-time.Minute)
		user := &domain.User{ID: uuid.New(), PasswordResetExpiresAt: &expired}
		userRepo.On("GetUserByResetToken", ctx, "token").Return(user, nil).Once()

		err := svc.ResetPassword(ctx, "token", "new-password")

		assert.ErrorIs(t, err, auth.ErrTokenExpired)
	})

	t.Run("Success Revokes Sessions", func(t *testing.T) {
		userRepo := new(mocks.UserRepository)
		sessionRepo := new(mocks.SessionRepository)
		svc := auth.NewService(userRepo, sessionRepo, nil, testAuthConfig())

		future := time.Now().Add(time.Hour)
		user := &domain.User{ID: uuid.New(), PasswordResetExpiresAt: &future}
		userRepo.On("GetUserByResetToken", ctx, "token").Return(user, nil).Once()
		userRepo.On("Update", ctx, mock.AnythingOfType("*domain.User")).Return(nil).Once()
		userRepo.On("ClearPasswordResetToken", ctx, user.ID).Return(nil).Once()
		sessionRepo.On("RevokeAllForUser", ctx, user.ID).Return(nil).Once()

		err := svc.ResetPassword(ctx, "token", "new-password")

		assert.NoError(t, err)
		sessionRepo.AssertExpectations(t)
	})
}
