package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"edubridge_backend/internal/auth"
	"edubridge_backend/internal/logger"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/repositories"
	"edubridge_backend/internal/services/dto"
	"edubridge_backend/internal/validator"
	"edubridge_backend/pkg/apperrors"
)

const refreshTokenTTL = 30 * 24 * time.Hour

// AuthService issues and rotates staff sessions: a short-lived JWT plus a
// stored refresh token.
type AuthService struct {
	userRepo  repositories.UserRepository
	validator *validator.Validator
}

func NewAuthService(userRepo repositories.UserRepository, v *validator.Validator) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		validator: v,
	}
}

// Login verifies credentials and issues a session. Banned accounts are
// rejected even with a correct password.
func (s *AuthService) Login(ctx context.Context, db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		// Same response as a wrong password, no account enumeration.
		return nil, apperrors.ErrInvalidCredentials
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if user.BanActive(time.Now()) {
		return nil, apperrors.ErrUserBanned
	}

	return s.issueSession(ctx, db, user)
}

// Refresh rotates a refresh token: the old one is consumed, a new pair is
// issued.
func (s *AuthService) Refresh(ctx context.Context, db *gorm.DB, req *dto.RefreshRequest) (*dto.AuthResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	stored, err := s.userRepo.FindRefreshToken(db, req.RefreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}
	if time.Now().After(stored.ExpiresAt) {
		_ = s.userRepo.DeleteRefreshToken(db, req.RefreshToken)
		return nil, apperrors.NewUnauthorizedError("Refresh token expired")
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}
	if user.BanActive(time.Now()) {
		return nil, apperrors.ErrUserBanned
	}

	if err := s.userRepo.DeleteRefreshToken(db, req.RefreshToken); err != nil {
		return nil, asAppError(err, nil)
	}

	return s.issueSession(ctx, db, user)
}

// Logout revokes one refresh token.
func (s *AuthService) Logout(ctx context.Context, db *gorm.DB, req *dto.LogoutRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return asAppError(err, nil)
	}

	if err := s.userRepo.DeleteRefreshToken(db, req.RefreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrTokenNotFound) {
			// Already revoked, logout stays idempotent.
			return nil
		}
		return asAppError(err, nil)
	}
	return nil
}

// ChangePassword verifies the current password, stores the new hash and
// revokes every existing session for the user.
func (s *AuthService) ChangePassword(ctx context.Context, db *gorm.DB, userID string, req *dto.ChangePasswordRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return asAppError(err, nil)
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return asAppError(err, repositories.ErrUserNotFound)
	}

	if !auth.CheckPasswordHash(req.CurrentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return asAppError(err, nil)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Update(tx, userID, map[string]interface{}{
			"password_hash": hash,
		}); err != nil {
			return err
		}
		return s.userRepo.DeleteUserRefreshTokens(tx, userID)
	})
}

// Me returns the profile behind a valid session.
func (s *AuthService) Me(ctx context.Context, db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, asAppError(err, repositories.ErrUserNotFound)
	}
	return dto.NewUserResponse(user), nil
}

func (s *AuthService) issueSession(ctx context.Context, db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	accessToken, err := auth.GenerateToken(user)
	if err != nil {
		return nil, asAppError(err, nil)
	}

	refreshToken := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(refreshTokenTTL),
	}
	if err := s.userRepo.CreateRefreshToken(db, refreshToken); err != nil {
		return nil, asAppError(err, nil)
	}

	logger.CtxInfo(ctx, "session issued", "user_id", user.ID, "role", user.Role)

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken.Token,
		User:         user.Public(),
	}, nil
}
