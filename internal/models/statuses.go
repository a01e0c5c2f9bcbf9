package models

type UserRole string
type EnquiryStatus string
type EnterpriseEnquiryStatus string
type FacultyEnquiryStatus string
type OutboxStatus string

const (
	UserRoleAdmin         UserRole = "ADMIN"
	UserRoleStudent       UserRole = "STUDENT"
	UserRoleInstructor    UserRole = "INSTRUCTOR"
	UserRoleCounselor     UserRole = "COUNSELOR"
	UserRoleHR            UserRole = "HR"
	UserRoleContentWriter UserRole = "CONTENT_WRITER"
	UserRoleAgent         UserRole = "AGENT"

	EnquiryStatusNew       EnquiryStatus = "NEW"
	EnquiryStatusContacted EnquiryStatus = "CONTACTED"
	EnquiryStatusEnrolled  EnquiryStatus = "ENROLLED"
	EnquiryStatusDead      EnquiryStatus = "DEAD"
	EnquiryStatusArchived  EnquiryStatus = "ARCHIVED"

	EnterpriseStatusNew       EnterpriseEnquiryStatus = "NEW"
	EnterpriseStatusContacted EnterpriseEnquiryStatus = "CONTACTED"
	EnterpriseStatusCompleted EnterpriseEnquiryStatus = "COMPLETED"
	EnterpriseStatusClosed    EnterpriseEnquiryStatus = "CLOSED"
	EnterpriseStatusArchived  EnterpriseEnquiryStatus = "ARCHIVED"

	FacultyStatusNew       FacultyEnquiryStatus = "NEW"
	FacultyStatusContacted FacultyEnquiryStatus = "CONTACTED"
	FacultyStatusHired     FacultyEnquiryStatus = "HIRED"
	FacultyStatusClosed    FacultyEnquiryStatus = "CLOSED"
	FacultyStatusArchived  FacultyEnquiryStatus = "ARCHIVED"

	OutboxStatusPending OutboxStatus = "pending"
	OutboxStatusSent    OutboxStatus = "sent"
	OutboxStatusFailed  OutboxStatus = "failed"
)

// Transition tables. A status may always be re-set to itself (idempotent
// staff corrections), ARCHIVED is reachable from every state and terminal.

var enquiryTransitions = map[EnquiryStatus][]EnquiryStatus{
	EnquiryStatusNew:       {EnquiryStatusContacted, EnquiryStatusDead},
	EnquiryStatusContacted: {EnquiryStatusEnrolled, EnquiryStatusDead},
	EnquiryStatusEnrolled:  {},
	EnquiryStatusDead:      {},
	EnquiryStatusArchived:  {},
}

var enterpriseTransitions = map[EnterpriseEnquiryStatus][]EnterpriseEnquiryStatus{
	EnterpriseStatusNew:       {EnterpriseStatusContacted, EnterpriseStatusClosed},
	EnterpriseStatusContacted: {EnterpriseStatusCompleted, EnterpriseStatusClosed},
	EnterpriseStatusCompleted: {},
	EnterpriseStatusClosed:    {},
	EnterpriseStatusArchived:  {},
}

var facultyTransitions = map[FacultyEnquiryStatus][]FacultyEnquiryStatus{
	FacultyStatusNew:       {FacultyStatusContacted, FacultyStatusClosed},
	FacultyStatusContacted: {FacultyStatusHired, FacultyStatusClosed},
	FacultyStatusHired:     {},
	FacultyStatusClosed:    {},
	FacultyStatusArchived:  {},
}

func (s EnquiryStatus) Valid() bool {
	_, ok := enquiryTransitions[s]
	return ok
}

func (s EnquiryStatus) CanTransitionTo(next EnquiryStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if next == EnquiryStatusArchived {
		return true
	}
	for _, allowed := range enquiryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s EnterpriseEnquiryStatus) Valid() bool {
	_, ok := enterpriseTransitions[s]
	return ok
}

func (s EnterpriseEnquiryStatus) CanTransitionTo(next EnterpriseEnquiryStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if next == EnterpriseStatusArchived {
		return true
	}
	for _, allowed := range enterpriseTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s FacultyEnquiryStatus) Valid() bool {
	_, ok := facultyTransitions[s]
	return ok
}

func (s FacultyEnquiryStatus) CanTransitionTo(next FacultyEnquiryStatus) bool {
	if !s.Valid() || !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	if next == FacultyStatusArchived {
		return true
	}
	for _, allowed := range facultyTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}
