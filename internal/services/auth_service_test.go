package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"edubridge_backend/internal/auth"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/services/dto"
	"edubridge_backend/pkg/apperrors"
)

func init() {
	auth.Init("test-secret", 60)
}

func createAccount(t *testing.T, db *gorm.DB, sc *ServiceContainer, email, password string, role models.UserRole) *dto.UserResponse {
	t.Helper()
	resp, err := sc.User.Create(context.Background(), db, &dto.CreateUserRequest{
		Name:     "Test Account",
		Email:    email,
		Password: password,
		Role:     role,
	})
	require.NoError(t, err)
	return resp
}

func TestLoginIssuesSession(t *testing.T) {
	sc, db := newTestContainer(t)
	createAccount(t, db, sc, "admin@example.com", "s3cretpass", models.UserRoleAdmin)

	resp, err := sc.Auth.Login(context.Background(), db, &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)
	require.NotNil(t, resp.User)
	assert.Equal(t, models.UserRoleAdmin, resp.User.Role)

	claims, err := auth.ParseToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
}

func TestLoginRejectsWrongPasswordAndUnknownEmailAlike(t *testing.T) {
	sc, db := newTestContainer(t)
	createAccount(t, db, sc, "admin@example.com", "s3cretpass", models.UserRoleAdmin)

	_, errWrong := sc.Auth.Login(context.Background(), db, &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "wrong-password",
	})
	_, errUnknown := sc.Auth.Login(context.Background(), db, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "s3cretpass",
	})

	require.Error(t, errWrong)
	require.Error(t, errUnknown)
	// The two failures must be indistinguishable.
	assert.Equal(t, errWrong.Error(), errUnknown.Error())
}

func TestLoginRejectsBannedAccount(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	account := createAccount(t, db, sc, "banned@example.com", "s3cretpass", models.UserRoleCounselor)

	_, err := sc.User.Ban(ctx, db, account.ID, &dto.BanUserRequest{Reason: "policy violation"})
	require.NoError(t, err)

	_, err = sc.Auth.Login(ctx, db, &dto.LoginRequest{
		Email:    "banned@example.com",
		Password: "s3cretpass",
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 403, appErr.HTTPCode)
}

func TestExpiredBanAllowsLogin(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	account := createAccount(t, db, sc, "paroled@example.com", "s3cretpass", models.UserRoleCounselor)

	past := time.Now().Add(-time.Hour)
	_, err := sc.User.Ban(ctx, db, account.ID, &dto.BanUserRequest{
		Reason:    "short suspension",
		ExpiresAt: &past,
	})
	require.NoError(t, err)

	_, err = sc.Auth.Login(ctx, db, &dto.LoginRequest{
		Email:    "paroled@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)
}

func TestRefreshRotatesToken(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	createAccount(t, db, sc, "admin@example.com", "s3cretpass", models.UserRoleAdmin)

	session, err := sc.Auth.Login(ctx, db, &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	rotated, err := sc.Auth.Refresh(ctx, db, &dto.RefreshRequest{RefreshToken: session.RefreshToken})
	require.NoError(t, err)
	assert.NotEqual(t, session.RefreshToken, rotated.RefreshToken)

	// The consumed token is dead.
	_, err = sc.Auth.Refresh(ctx, db, &dto.RefreshRequest{RefreshToken: session.RefreshToken})
	require.Error(t, err)
}

func TestLogoutIsIdempotent(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	createAccount(t, db, sc, "admin@example.com", "s3cretpass", models.UserRoleAdmin)

	session, err := sc.Auth.Login(ctx, db, &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	require.NoError(t, sc.Auth.Logout(ctx, db, &dto.LogoutRequest{RefreshToken: session.RefreshToken}))
	require.NoError(t, sc.Auth.Logout(ctx, db, &dto.LogoutRequest{RefreshToken: session.RefreshToken}))

	_, err = sc.Auth.Refresh(ctx, db, &dto.RefreshRequest{RefreshToken: session.RefreshToken})
	require.Error(t, err)
}

func TestChangePasswordRevokesSessions(t *testing.T) {
	sc, db := newTestContainer(t)
	ctx := context.Background()
	account := createAccount(t, db, sc, "admin@example.com", "s3cretpass", models.UserRoleAdmin)

	session, err := sc.Auth.Login(ctx, db, &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "s3cretpass",
	})
	require.NoError(t, err)

	err = sc.Auth.ChangePassword(ctx, db, account.ID, &dto.ChangePasswordRequest{
		CurrentPassword: "s3cretpass",
		NewPassword:     "brandNewPass1",
	})
	require.NoError(t, err)

	_, err = sc.Auth.Refresh(ctx, db, &dto.RefreshRequest{RefreshToken: session.RefreshToken})
	require.Error(t, err, "old sessions must be revoked")

	_, err = sc.Auth.Login(ctx, db, &dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "brandNewPass1",
	})
	require.NoError(t, err)
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	sc, db := newTestContainer(t)
	createAccount(t, db, sc, "dup@example.com", "s3cretpass", models.UserRoleCounselor)

	_, err := sc.User.Create(context.Background(), db, &dto.CreateUserRequest{
		Name:     "Duplicate",
		Email:    "dup@example.com",
		Password: "s3cretpass",
		Role:     models.UserRoleCounselor,
	})
	require.Error(t, err)
	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, 409, appErr.HTTPCode)
}
