package dto

import (
	"time"

	"edubridge_backend/internal/models"
)

// CreateEnquiryRequest carries the public form payload. Validation is
// deliberately minimal, presence plus upper bounds only, so short real-world
// input ("A", a 3-digit extension) is never turned away.
type CreateEnquiryRequest struct {
	Name     string  `json:"name" validate:"required,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Phone    string  `json:"phone" validate:"required,max=20"`
	CourseID *string `json:"course_id,omitempty" validate:"omitempty,uuid"`
	Message  string  `json:"message" validate:"max=2000"`
	AgentID  *string `json:"agent_id,omitempty" validate:"omitempty,uuid"`
}

// UpdateEnquiryRequest uses pointer fields so only the provided keys are
// written. Status, assignment and timestamps have dedicated operations and
// are not reachable from here.
type UpdateEnquiryRequest struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,max=100"`
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=20"`
	CourseID *string `json:"course_id,omitempty" validate:"omitempty,uuid"`
	Message  *string `json:"message,omitempty" validate:"omitempty,max=2000"`
}

type UpdateNotesRequest struct {
	Note   *string `json:"note,omitempty" validate:"omitempty,max=2000"`
	Remark *string `json:"remark,omitempty" validate:"omitempty,max=2000"`
}

type AssignEnquiryRequest struct {
	AssignedToID string `json:"assigned_to_id" validate:"required,uuid"`
}

type ChangeEnquiryStatusRequest struct {
	Status models.EnquiryStatus `json:"status" validate:"required,enquiry_status"`
}

type EnquiryListQuery struct {
	PaginationQuery
	Status     string `form:"status" json:"status" validate:"omitempty,enquiry_status"`
	Assignment string `form:"assignment" json:"assignment" validate:"omitempty,oneof=unassigned assigned"`
	CourseID   string `form:"course_id" json:"course_id" validate:"omitempty,uuid"`
	AgentID    string `form:"agent_id" json:"agent_id" validate:"omitempty,uuid"`
	Search     string `form:"search" json:"search" validate:"omitempty,max=100"`
}

type EnquiryResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    string  `json:"phone"`
	CourseID *string `json:"course_id,omitempty"`
	Message  string  `json:"message"`
	Note     string  `json:"note"`
	Remark   string  `json:"remark"`

	Status       models.EnquiryStatus  `json:"status"`
	AssignedToID *string               `json:"assigned_to_id,omitempty"`
	AssignedTo   *models.PublicProfile `json:"assigned_to,omitempty"`
	AgentID      *string               `json:"agent_id,omitempty"`
	Agent        *models.PublicProfile `json:"agent,omitempty"`
	AssignedAt   *time.Time            `json:"assigned_at,omitempty"`

	Course *models.Course `json:"course,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewEnquiryResponse(e *models.Enquiry) *EnquiryResponse {
	return &EnquiryResponse{
		ID:           e.ID,
		Name:         e.Name,
		Email:        e.Email,
		Phone:        e.Phone,
		CourseID:     e.CourseID,
		Message:      e.Message,
		Note:         e.Note,
		Remark:       e.Remark,
		Status:       e.Status,
		AssignedToID: e.AssignedToID,
		AssignedTo:   e.AssignedTo.Public(),
		AgentID:      e.AgentID,
		Agent:        e.Agent.Public(),
		AssignedAt:   e.AssignedAt,
		Course:       e.Course,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
}

func NewEnquiryResponseList(enquiries []models.Enquiry) []EnquiryResponse {
	responses := make([]EnquiryResponse, 0, len(enquiries))
	for i := range enquiries {
		responses = append(responses, *NewEnquiryResponse(&enquiries[i]))
	}
	return responses
}
