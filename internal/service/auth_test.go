package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository/mocks"
	"github.com/zach0583-rgb/ThatZachGuy/internal/service"
	"github.com/zach0583-rgb/ThatZachGuy/internal/token"
)

func newTestTokens(t *testing.T) *token.Manager {
	t.Helper()
	tokens, err := token.NewManager("test-secret", time.Hour)
	require.NoError(t, err)
	return tokens
}

func TestAuthService_Register_Success(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo, newTestTokens(t))
	ctx := context.Background()
	name := "Ada"
	email := "ada@example.com"
	password := "StrongPass123"

	mockUserRepo.On("FindByEmail", ctx, email).
		Return(nil, repository.ErrNotFound).
		Once()

	mockUserRepo.On("Save", ctx, mock.MatchedBy(func(user *domain.User) bool {
		assert.Equal(t, name, user.Name)
		assert.Equal(t, email, user.Email)
		assert.True(t, user.IsOnline)
		return true
	})).
		Run(func(args mock.Arguments) {
			user := args.Get(1).(*domain.User)
			// Checked here, not in MatchedBy: testify re-runs matchers in
			// AssertExpectations, after Register has cleared user.Password.
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)))
			user.ID = 5
		}).
		Return(nil).
		Once()

	user, tok, err := authService.Register(ctx, name, email, password)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, uint(5), user.ID)
	assert.Empty(t, user.Password, "password hash must not leak out")
	assert.NotEmpty(t, tok)

	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Register_EmailTaken(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo, newTestTokens(t))
	ctx := context.Background()
	email := "taken@example.com"

	mockUserRepo.On("FindByEmail", ctx, email).
		Return(&domain.User{ID: 10, Email: email}, nil).
		Once()

	_, _, err := authService.Register(ctx, "Someone", email, "password")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrEmailTaken))

	mockUserRepo.AssertExpectations(t)
	mockUserRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestAuthService_Register_SaveRace_DuplicateEntry(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo, newTestTokens(t))
	ctx := context.Background()
	email := "raced@example.com"

	// The pre-check misses a concurrent registration; the unique index
	// rejects the insert and the caller still sees a conflict.
	mockUserRepo.On("FindByEmail", ctx, email).Return(nil, repository.ErrNotFound).Once()
	mockUserRepo.On("Save", ctx, mock.AnythingOfType("*domain.User")).Return(repository.ErrDuplicateEntry).Once()

	_, _, err := authService.Register(ctx, "Racer", email, "password")

	require.Error(t, err)
	assert.True(t, errors.Is(err, service.ErrEmailTaken))
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Login_Success(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo, newTestTokens(t))
	ctx := context.Background()
	email := "ada@example.com"
	password := "password123"
	hashed, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)

	mockUserRepo.On("FindByEmail", ctx, email).
		Return(&domain.User{ID: 1, Email: email, Password: string(hashed)}, nil).
		Once()
	mockUserRepo.On("Update", ctx, uint(1), mock.MatchedBy(func(fields map[string]interface{}) bool {
		return fields["is_online"] == true
	})).Return(nil).Once()

	user, tok, err := authService.Login(ctx, email, password)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.True(t, user.IsOnline)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, tok)

	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo, newTestTokens(t))
	ctx := context.Background()

	mockUserRepo.On("FindByEmail", ctx, "nobody@example.com").
		Return(nil, repository.ErrNotFound).
		Once()

	_, tok, err := authService.Login(ctx, "nobody@example.com", "password")

	require.Error(t, err)
	assert.Empty(t, tok)
	assert.True(t, errors.Is(err, service.ErrAuthenticationFailed))
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo, newTestTokens(t))
	ctx := context.Background()
	email := "ada@example.com"
	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)

	mockUserRepo.On("FindByEmail", ctx, email).
		Return(&domain.User{ID: 1, Email: email, Password: string(hashed)}, nil).
		Once()

	_, tok, err := authService.Login(ctx, email, "wrong")

	require.Error(t, err)
	assert.Empty(t, tok)
	// Same failure as an unknown email: callers cannot probe for
	// registered addresses.
	assert.True(t, errors.Is(err, service.ErrAuthenticationFailed))
	mockUserRepo.AssertExpectations(t)
	mockUserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_UpdateProfile_PartialFields(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo, newTestTokens(t))
	ctx := context.Background()
	newName := "Ada L."

	mockUserRepo.On("Update", ctx, uint(1), mock.MatchedBy(func(fields map[string]interface{}) bool {
		_, hasAvatar := fields["avatar"]
		return fields["name"] == newName && !hasAvatar
	})).Return(nil).Once()
	mockUserRepo.On("FindByID", ctx, uint(1)).
		Return(&domain.User{ID: 1, Name: newName, Email: "ada@example.com"}, nil).
		Once()

	user, err := authService.UpdateProfile(ctx, 1, service.ProfileUpdate{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, newName, user.Name)
	mockUserRepo.AssertExpectations(t)
}

func TestAuthService_UpdateProfile_NoFields(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	authService := service.NewAuthService(mockUserRepo, newTestTokens(t))
	ctx := context.Background()

	mockUserRepo.On("FindByID", ctx, uint(1)).
		Return(&domain.User{ID: 1, Name: "Ada"}, nil).
		Once()

	user, err := authService.UpdateProfile(ctx, 1, service.ProfileUpdate{})

	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	mockUserRepo.AssertExpectations(t)
	mockUserRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestAuthService_Logout_ClearsPresenceOnly(t *testing.T) {
	mockUserRepo := new(mocks.UserRepository)
	tokens := newTestTokens(t)
	authService := service.NewAuthService(mockUserRepo, tokens)
	ctx := context.Background()

	raw, err := tokens.Issue(1)
	require.NoError(t, err)

	mockUserRepo.On("Update", ctx, uint(1), map[string]interface{}{"is_online": false}).
		Return(nil).
		Once()

	require.NoError(t, authService.Logout(ctx, 1))

	// Logout is not revocation: the token still validates.
	userID, err := tokens.Validate(raw)
	assert.NoError(t, err)
	assert.Equal(t, uint(1), userID)
	mockUserRepo.AssertExpectations(t)
}
