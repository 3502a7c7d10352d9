package service

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/zach0583-rgb/ThatZachGuy/internal/domain"
	"github.com/zach0583-rgb/ThatZachGuy/internal/repository"
	"github.com/zach0583-rgb/ThatZachGuy/internal/token"
)

// AuthService handles registration, login, profile management and
// presence. Tokens come from the injected token manager; logout never
// invalidates outstanding tokens, it only clears the presence flag.
type AuthService struct {
	userRepo repository.UserRepository
	tokens   *token.Manager
}

// NewAuthService creates an AuthService.
func NewAuthService(userRepo repository.UserRepository, tokens *token.Manager) *AuthService {
	if userRepo == nil {
		panic("UserRepository cannot be nil for AuthService")
	}
	if tokens == nil {
		panic("token manager cannot be nil for AuthService")
	}
	return &AuthService{userRepo: userRepo, tokens: tokens}
}

// Register creates an account and returns the new user with a freshly
// issued token. A taken email is a conflict, and no second user
// document is ever created for it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*domain.User, string, error) {
	logCtx := logrus.WithFields(logrus.Fields{"email": email})

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		logCtx.Warn("Registration failed: email already registered")
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		logCtx.WithError(err).Error("Database error checking email during registration")
		return nil, "", ErrInternalServer
	}

	hashed, err := hashPassword(password)
	if err != nil {
		logCtx.WithError(err).Error("Failed to hash password during registration")
		return nil, "", ErrInternalServer
	}

	user := &domain.User{
		Name:     name,
		Email:    email,
		Password: hashed,
		IsOnline: true,
		LastSeen: time.Now().UTC(),
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		// The email check above races with concurrent registrations;
		// the unique index is the authority.
		if errors.Is(err, repository.ErrDuplicateEntry) {
			logCtx.Warn("Registration failed: email already registered (unique index)")
			return nil, "", ErrEmailTaken
		}
		logCtx.WithError(err).Error("Database error during user creation")
		return nil, "", ErrInternalServer
	}

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue token during registration")
		return nil, "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User registered successfully")
	user.Password = ""
	return user, tok, nil
}

// Login verifies credentials, marks the user online and returns the
// user with a fresh token. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	logCtx := logrus.WithField("email", email)

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			logCtx.Warn("Login attempt failed: user not found")
		} else {
			logCtx.WithError(err).Warn("Login attempt failed: error finding user")
		}
		return nil, "", ErrAuthenticationFailed
	}

	if !checkPassword(password, user.Password) {
		logCtx.Warn("Login attempt failed: invalid password")
		return nil, "", ErrAuthenticationFailed
	}

	now := time.Now().UTC()
	if err := s.userRepo.Update(ctx, user.ID, map[string]interface{}{
		"is_online": true,
		"last_seen": now,
	}); err != nil {
		logCtx.WithError(err).Error("Failed to update presence during login")
		return nil, "", ErrInternalServer
	}
	user.IsOnline = true
	user.LastSeen = now

	tok, err := s.tokens.Issue(user.ID)
	if err != nil {
		logCtx.WithError(err).Error("Failed to issue token during login")
		return nil, "", ErrInternalServer
	}

	logCtx.WithField("user_id", user.ID).Info("User logged in successfully")
	user.Password = ""
	return user, tok, nil
}

// Profile returns the user's own account.
func (s *AuthService) Profile(ctx context.Context, userID uint) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to load profile")
		return nil, ErrInternalServer
	}
	user.Password = ""
	return user, nil
}

// ProfileUpdate carries the optional profile fields; nil means leave
// untouched.
type ProfileUpdate struct {
	Name   *string
	Avatar *string
}

// UpdateProfile applies only the supplied fields and returns the
// updated user.
func (s *AuthService) UpdateProfile(ctx context.Context, userID uint, update ProfileUpdate) (*domain.User, error) {
	logCtx := logrus.WithField("user_id", userID)

	fields := map[string]interface{}{}
	if update.Name != nil {
		fields["name"] = *update.Name
	}
	if update.Avatar != nil {
		fields["avatar"] = *update.Avatar
	}
	if len(fields) > 0 {
		if err := s.userRepo.Update(ctx, userID, fields); err != nil {
			logCtx.WithError(err).Error("Failed to update profile")
			return nil, ErrInternalServer
		}
	}
	return s.Profile(ctx, userID)
}

// Logout clears the presence flag. Outstanding tokens stay valid.
func (s *AuthService) Logout(ctx context.Context, userID uint) error {
	if err := s.userRepo.Update(ctx, userID, map[string]interface{}{"is_online": false}); err != nil {
		logrus.WithError(err).WithField("user_id", userID).Error("Failed to clear presence on logout")
		return ErrInternalServer
	}
	logrus.WithField("user_id", userID).Info("User logged out")
	return nil
}

func hashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func checkPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
