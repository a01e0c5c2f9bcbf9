package dto

import (
	"time"

	"edubridge_backend/internal/models"
)

// Public form payload, required fields and upper bounds only.
type CreateEnterpriseEnquiryRequest struct {
	CompanyName string `json:"company_name" validate:"required,max=150"`
	Email       string `json:"email" validate:"required,email"`
	Phone       string `json:"phone" validate:"required,max=20"`
	Duration    string `json:"duration" validate:"max=100"`
	Message     string `json:"message" validate:"max=2000"`
}

type UpdateEnterpriseEnquiryRequest struct {
	CompanyName *string `json:"company_name,omitempty" validate:"omitempty,max=150"`
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone       *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	Duration    *string `json:"duration,omitempty" validate:"omitempty,max=100"`
	Message     *string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

type ChangeEnterpriseStatusRequest struct {
	Status models.EnterpriseEnquiryStatus `json:"status" validate:"required,enterprise_status"`
}

type EnterpriseEnquiryListQuery struct {
	PaginationQuery
	Status     string `form:"status" json:"status" validate:"omitempty,enterprise_status"`
	Assignment string `form:"assignment" json:"assignment" validate:"omitempty,oneof=unassigned assigned"`
	Search     string `form:"search" json:"search" validate:"omitempty,max=100"`
}

type EnterpriseEnquiryResponse struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Duration    string `json:"duration"`
	Message     string `json:"message"`
	Note        string `json:"note"`
	Remark      string `json:"remark"`

	Status       models.EnterpriseEnquiryStatus `json:"status"`
	AssignedToID *string                        `json:"assigned_to_id,omitempty"`
	AssignedTo   *models.PublicProfile          `json:"assigned_to,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEnterpriseEnquiryResponse(e *models.EnterpriseEnquiry) *EnterpriseEnquiryResponse {
	return &EnterpriseEnquiryResponse{
		ID:           e.ID,
		CompanyName:  e.CompanyName,
		Email:        e.Email,
		Phone:        e.Phone,
		Duration:     e.Duration,
		Message:      e.Message,
		Note:         e.Note,
		Remark:       e.Remark,
		Status:       e.Status,
		AssignedToID: e.AssignedToID,
		AssignedTo:   e.AssignedTo.Public(),
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func NewEnterpriseEnquiryResponseList(enquiries []models.EnterpriseEnquiry) []EnterpriseEnquiryResponse {
	responses := make([]EnterpriseEnquiryResponse, 0, len(enquiries))
	for i := range enquiries {
		responses = append(responses, *NewEnterpriseEnquiryResponse(&enquiries[i]))
	}
	return responses
}
