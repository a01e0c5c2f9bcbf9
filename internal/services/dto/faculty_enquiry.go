package dto

import (
	"time"

	"edubridge_backend/internal/models"
)

// Public form payload, required fields and upper bounds only.
type CreateFacultyEnquiryRequest struct {
	Name          string     `json:"name" validate:"required,max=100"`
	Email         string     `json:"email" validate:"required,email"`
	Phone         string     `json:"phone" validate:"required,max=20"`
	Message       string     `json:"message" validate:"max=2000"`
	Resume        string     `json:"resume" validate:"omitempty,url"`
	AvailableDate *time.Time `json:"available_date,omitempty"`
}

type UpdateFacultyEnquiryRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,max=100"`
	Email         *string    `json:"email,omitempty" validate:"omitempty,email"`
	Phone         *string    `json:"phone,omitempty" validate:"omitempty,max=20"`
	Message       *string    `json:"message,omitempty" validate:"omitempty,max=2000"`
	Resume        *string    `json:"resume,omitempty" validate:"omitempty,url"`
	AvailableDate *time.Time `json:"available_date,omitempty"`
}

type ChangeFacultyStatusRequest struct {
	Status models.FacultyEnquiryStatus `json:"status" validate:"required,faculty_status"`
}

type FacultyEnquiryListQuery struct {
	PaginationQuery
	Status     string `form:"status" json:"status" validate:"omitempty,faculty_status"`
	Assignment string `form:"assignment" json:"assignment" validate:"omitempty,oneof=unassigned assigned"`
	Search     string `form:"search" json:"search" validate:"omitempty,max=100"`
}

type FacultyEnquiryResponse struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Message       string     `json:"message"`
	Resume        string     `json:"resume"`
	AvailableDate *time.Time `json:"available_date,omitempty"`
	Note          string     `json:"note"`
	Remark        string     `json:"remark"`

	Status       models.FacultyEnquiryStatus `json:"status"`
	AssignedToID *string                     `json:"assigned_to_id,omitempty"`
	AssignedTo   *models.PublicProfile       `json:"assigned_to,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewFacultyEnquiryResponse(e *models.FacultyEnquiry) *FacultyEnquiryResponse {
	return &FacultyEnquiryResponse{
		ID:            e.ID,
		Name:          e.Name,
		Email:         e.Email,
		Phone:         e.Phone,
		Message:       e.Message,
		Resume:        e.Resume,
		AvailableDate: e.AvailableDate,
		Note:          e.Note,
		Remark:        e.Remark,
		Status:        e.Status,
		AssignedToID:  e.AssignedToID,
		AssignedTo:    e.AssignedTo.Public(),
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
}

func NewFacultyEnquiryResponseList(enquiries []models.FacultyEnquiry) []FacultyEnquiryResponse {
	responses := make([]FacultyEnquiryResponse, 0, len(enquiries))
	for i := range enquiries {
		responses = append(responses, *NewFacultyEnquiryResponse(&enquiries[i]))
	}
	return responses
}
