package dto

import (
	"time"

	"edubridge_backend/internal/models"
)

type CreateUserRequest struct {
	Name     string          `json:"name" validate:"required,min=2,max=100"`
	Email    string          `json:"email" validate:"required,email"`
	Phone    string          `json:"phone" validate:"omitempty,min=7,max=20"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     models.UserRole `json:"role" validate:"required,oneof=ADMIN STUDENT INSTRUCTOR COUNSELOR HR CONTENT_WRITER AGENT"`
}

type UpdateUserRequest struct {
	Name  *string          `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Phone *string          `json:"phone,omitempty" validate:"omitempty,min=7,max=20"`
	Image *string          `json:"image,omitempty" validate:"omitempty,url"`
	Role  *models.UserRole `json:"role,omitempty" validate:"omitempty,oneof=ADMIN STUDENT INSTRUCTOR COUNSELOR HR CONTENT_WRITER AGENT"`
}

type BanUserRequest struct {
	Reason    string     `json:"reason" validate:"required,max=500"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

type UserListQuery struct {
	PaginationQuery
	Role   string `form:"role" json:"role" validate:"omitempty,oneof=ADMIN STUDENT INSTRUCTOR COUNSELOR HR CONTENT_WRITER AGENT"`
	Banned *bool  `form:"banned" json:"banned"`
	Search string `form:"search" json:"search" validate:"omitempty,max=100"`
}

type UserResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Phone         string          `json:"phone"`
	Image         string          `json:"image"`
	Role          models.UserRole `json:"role"`
	Banned        bool            `json:"banned"`
	BanReason     string          `json:"ban_reason,omitempty"`
	BanExpires    *time.Time      `json:"ban_expires,omitempty"`
	EmailVerified bool            `json:"email_verified"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func NewUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:            u.ID,
		Name:          u.Name,
		Email:         u.Email,
		Phone:         u.Phone,
		Image:         u.Image,
		Role:          u.Role,
		Banned:        u.Banned,
		BanReason:     u.BanReason,
		BanExpires:    u.BanExpires,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
		UpdatedAt:     u.UpdatedAt,
	}
}

func NewUserResponseList(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, *NewUserResponse(&users[i]))
	}
	return responses
}
