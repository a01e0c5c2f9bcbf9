package models

import "time"

// Enquiry is a prospective-student lead captured from a public form.
type Enquiry struct {
	BaseModel
	Name     string  `gorm:"not null" json:"name"`
	Email    string  `gorm:"not null;index" json:"email"`
	Phone    string  `gorm:"not null" json:"phone"`
	CourseID *string `gorm:"type:uuid;index" json:"course_id,omitempty"`
	Message  string  `json:"message"`
	Note     string  `json:"note"`
	Remark   string  `json:"remark"`

	Status       EnquiryStatus `gorm:"type:varchar(20);not null;default:'NEW';index" json:"status"`
	AssignedToID *string       `gorm:"type:uuid;index" json:"assigned_to_id,omitempty"`
	AgentID      *string       `gorm:"type:uuid;index" json:"agent_id,omitempty"`
	AssignedAt   *time.Time    `json:"assigned_at,omitempty"`

	Course     *Course `gorm:"foreignKey:CourseID" json:"course,omitempty"`
	AssignedTo *User   `gorm:"foreignKey:AssignedToID" json:"-"`
	Agent      *User   `gorm:"foreignKey:AgentID" json:"-"`
}

// EnterpriseEnquiry is a corporate-training lead from a company contact.
type EnterpriseEnquiry struct {
	BaseModel
	CompanyName string `gorm:"not null" json:"company_name"`
	Email       string `gorm:"not null;index" json:"email"`
	Phone       string `gorm:"not null" json:"phone"`
	Duration    string `json:"duration"`
	Message     string `json:"message"`
	Note        string `json:"note"`
	Remark      string `json:"remark"`

	Status       EnterpriseEnquiryStatus `gorm:"type:varchar(20);not null;default:'NEW';index" json:"status"`
	AssignedToID *string                 `gorm:"type:uuid;index" json:"assigned_to_id,omitempty"`

	AssignedTo *User `gorm:"foreignKey:AssignedToID" json:"-"`
}

// FacultyEnquiry is an instructor job application.
type FacultyEnquiry struct {
	BaseModel
	Name          string     `gorm:"not null" json:"name"`
	Email         string     `gorm:"not null;index" json:"email"`
	Phone         string     `gorm:"not null" json:"phone"`
	Message       string     `json:"message"`
	Resume        string     `json:"resume"`
	AvailableDate *time.Time `json:"available_date,omitempty"`
	Note          string     `json:"note"`
	Remark        string     `json:"remark"`

	Status       FacultyEnquiryStatus `gorm:"type:varchar(20);not null;default:'NEW';index" json:"status"`
	AssignedToID *string              `gorm:"type:uuid;index" json:"assigned_to_id,omitempty"`

	AssignedTo *User `gorm:"foreignKey:AssignedToID" json:"-"`
}
