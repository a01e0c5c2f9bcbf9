package services

import (
	"context"

	"gorm.io/gorm"

	"edubridge_backend/internal/auth"
	"edubridge_backend/internal/logger"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/repositories"
	"edubridge_backend/internal/services/dto"
	"edubridge_backend/internal/validator"
	"edubridge_backend/pkg/apperrors"
)

// UserService is the admin-facing staff directory: creating accounts,
// editing profiles and roles, banning.
type UserService struct {
	userRepo  repositories.UserRepository
	validator *validator.Validator
}

func NewUserService(userRepo repositories.UserRepository, v *validator.Validator) *UserService {
	return &UserService{
		userRepo:  userRepo,
		validator: v,
	}
}

func (s *UserService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, asAppError(err, nil)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hash,
		Role:         req.Role,
	}

	if err := s.userRepo.Create(db, user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err)
		}
		return nil, asAppError(err, nil)
	}

	logger.CtxInfo(ctx, "staff account created", "user_id", user.ID, "role", user.Role)

	return dto.NewUserResponse(user), nil
}

func (s *UserService) GetByID(ctx context.Context, db *gorm.DB, id string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		return nil, asAppError(err, repositories.ErrUserNotFound)
	}
	return dto.NewUserResponse(user), nil
}

func (s *UserService) List(ctx context.Context, db *gorm.DB, q *dto.UserListQuery) (*dto.ListResponse[dto.UserResponse], error) {
	q.ApplyDefaults()
	if err := validatePagination(q.PaginationQuery); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(q); err != nil {
		return nil, asAppError(err, nil)
	}

	rows, total, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		Role:   models.UserRole(q.Role),
		Banned: q.Banned,
		Search: q.Search,
		Page:   q.Page,
		Limit:  q.Limit,
	})
	if err != nil {
		return nil, asAppError(err, nil)
	}

	return &dto.ListResponse[dto.UserResponse]{
		Rows:  dto.NewUserResponseList(rows),
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
	}, nil
}

// ListAssignable returns the staff members who can carry enquiries of the
// given role, for the assignment dropdowns.
func (s *UserService) ListAssignable(ctx context.Context, db *gorm.DB, role models.UserRole) ([]dto.UserResponse, error) {
	if role != models.UserRoleCounselor && role != models.UserRoleHR && role != models.UserRoleAgent {
		return nil, apperrors.NewBadRequestError("role must be COUNSELOR, HR or AGENT")
	}

	banned := false
	rows, _, err := s.userRepo.FindWithFilter(db, repositories.UserFilter{
		Role:   role,
		Banned: &banned,
		Page:   1,
		Limit:  dto.MaxLimit,
	})
	if err != nil {
		return nil, asAppError(err, nil)
	}
	return dto.NewUserResponseList(rows), nil
}

func (s *UserService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateUserRequest) (*dto.UserResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	values := map[string]interface{}{}
	if req.Name != nil {
		values["name"] = *req.Name
	}
	if req.Phone != nil {
		values["phone"] = *req.Phone
	}
	if req.Image != nil {
		values["image"] = *req.Image
	}
	if req.Role != nil {
		values["role"] = *req.Role
	}

	if err := s.userRepo.Update(db, id, values); err != nil {
		return nil, asAppError(err, repositories.ErrUserNotFound)
	}

	return s.GetByID(ctx, db, id)
}

// Ban blocks the account and revokes all of its sessions.
func (s *UserService) Ban(ctx context.Context, db *gorm.DB, id string, req *dto.BanUserRequest) (*dto.UserResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Update(tx, id, map[string]interface{}{
			"banned":      true,
			"ban_reason":  req.Reason,
			"ban_expires": req.ExpiresAt,
		}); err != nil {
			return err
		}
		return s.userRepo.DeleteUserRefreshTokens(tx, id)
	})
	if err != nil {
		return nil, asAppError(err, repositories.ErrUserNotFound)
	}

	logger.CtxWarn(ctx, "staff account banned", "user_id", id, "reason", req.Reason)

	return s.GetByID(ctx, db, id)
}

func (s *UserService) Unban(ctx context.Context, db *gorm.DB, id string) (*dto.UserResponse, error) {
	err := s.userRepo.Update(db, id, map[string]interface{}{
		"banned":      false,
		"ban_reason":  "",
		"ban_expires": nil,
	})
	if err != nil {
		return nil, asAppError(err, repositories.ErrUserNotFound)
	}

	logger.CtxInfo(ctx, "staff account unbanned", "user_id", id)

	return s.GetByID(ctx, db, id)
}

func (s *UserService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.userRepo.Delete(db, id); err != nil {
		return asAppError(err, repositories.ErrUserNotFound)
	}
	logger.CtxInfo(ctx, "staff account deleted", "user_id", id)
	return nil
}
