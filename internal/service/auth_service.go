package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/ideashelf/backend/internal/apperr"
	"github.com/ideashelf/backend/internal/models"
	"github.com/ideashelf/backend/internal/policy"
	"github.com/ideashelf/backend/internal/repository"
	"github.com/ideashelf/backend/internal/session"
	"github.com/ideashelf/backend/internal/utils"
	"github.com/ideashelf/backend/pkg/logger"
)

type AuthService struct {
	userRepo *repository.UserRepository
	sessions session.Store
}

func NewAuthService(userRepo *repository.UserRepository, sessions session.Store) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		sessions: sessions,
	}
}

// Register creates an account and immediately opens a session for it, the
// same contract the registration form expects.
func (s *AuthService) Register(ctx context.Context, username, password string) (*models.User, string, error) {
	start := time.Now()

	username = strings.TrimSpace(username)

	if err := validateRegisterInput(username, password); err != nil {
		logger.Log.Warn("Registration validation failed",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, "", err
	}

	existing, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to check username existence",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, "", apperr.Storage(err)
	}
	if existing != nil {
		return nil, "", apperr.Conflict("username already registered")
	}

	hashStart := time.Now()
	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		logger.Log.Error("Failed to hash password", zap.Error(err))
		return nil, "", apperr.Storage(err)
	}
	hashDuration := time.Since(hashStart)

	user := &models.User{
		Username:     username,
		PasswordHash: passwordHash,
	}

	if err := s.userRepo.CreateUser(user); err != nil {
		// The existence pre-check races with concurrent registrations; the
		// unique index is what actually decides.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", apperr.Conflict("username already registered")
		}
		logger.Log.Error("Failed to create user",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, "", apperr.Storage(err)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		logger.Log.Error("Failed to create session",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		return nil, "", apperr.Storage(err)
	}

	logger.Log.Info("User registered successfully",
		zap.Int64("user_id", user.ID),
		zap.String("username", username),
		zap.Duration("hash_duration", hashDuration),
		zap.Duration("total_duration", time.Since(start)),
	)

	return user, token, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*models.User, string, error) {
	if strings.TrimSpace(username) == "" {
		return nil, "", apperr.Validation("username", "missing fields")
	}
	if password == "" {
		return nil, "", apperr.Validation("password", "missing fields")
	}

	user, err := s.userRepo.GetUserByUsername(username)
	if err != nil {
		logger.Log.Error("Failed to get user by username",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, "", apperr.Storage(err)
	}
	if user == nil {
		logger.Log.Warn("Login failed: user not found",
			zap.String("username", username),
		)
		return nil, "", apperr.AuthenticationRequired("invalid credentials")
	}

	valid, err := utils.VerifyPassword(password, user.PasswordHash)
	if err != nil {
		logger.Log.Error("Failed to verify password",
			zap.String("username", username),
			zap.Error(err),
		)
		return nil, "", apperr.Storage(err)
	}
	if !valid {
		logger.Log.Warn("Login failed: invalid password",
			zap.String("username", username),
			zap.Int64("user_id", user.ID),
		)
		return nil, "", apperr.AuthenticationRequired("invalid credentials")
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		logger.Log.Error("Failed to create session",
			zap.Int64("user_id", user.ID),
			zap.Error(err),
		)
		return nil, "", apperr.Storage(err)
	}

	logger.Log.Info("User logged in successfully",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return user, token, nil
}

// Logout destroys the session behind token. Unknown tokens are ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := s.sessions.Destroy(ctx, token); err != nil {
		logger.Log.Error("Failed to destroy session", zap.Error(err))
		return apperr.Storage(err)
	}
	return nil
}

// DeleteAccount removes the actor's account with its full cascade (likes on
// their ideas, their likes, their ideas, the user row) as one transaction,
// then kills the session.
func (s *AuthService) DeleteAccount(ctx context.Context, actor *policy.Actor, token string) error {
	if actor == nil {
		return apperr.AuthenticationRequired("login required")
	}

	if err := s.userRepo.DeleteUserCascade(actor.ID); err != nil {
		logger.Log.Error("Account deletion failed",
			zap.Int64("user_id", actor.ID),
			zap.Error(err),
		)
		return apperr.Storage(err)
	}

	if token != "" {
		if err := s.sessions.Destroy(ctx, token); err != nil {
			// Account is gone; the session will age out via TTL.
			logger.Log.Warn("Failed to destroy session after account deletion",
				zap.Int64("user_id", actor.ID),
				zap.Error(err),
			)
		}
	}

	logger.Log.Info("Account deleted",
		zap.Int64("user_id", actor.ID),
		zap.String("username", actor.Username),
	)

	return nil
}

// GetAllUsers lists every account for the admin surface.
func (s *AuthService) GetAllUsers() ([]*models.User, error) {
	users, err := s.userRepo.GetAllUsers()
	if err != nil {
		logger.Log.Error("Failed to fetch all users", zap.Error(err))
		return nil, apperr.Storage(err)
	}
	return users, nil
}

func validateRegisterInput(username, password string) error {
	if username == "" {
		return apperr.Validation("username", "missing fields")
	}
	if len(username) < 3 {
		return apperr.Validation("username", "must be at least 3 characters")
	}
	if len(username) > 50 {
		return apperr.Validation("username", "must be at most 50 characters")
	}

	if password == "" {
		return apperr.Validation("password", "missing fields")
	}
	if len(password) < 8 {
		return apperr.Validation("password", "must be at least 8 characters")
	}
	if len(password) > 128 {
		return apperr.Validation("password", "too long")
	}

	return nil
}
