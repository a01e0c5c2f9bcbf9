package services

import (
	"context"
	"fmt"
	"time"

	"edubridge_backend/internal/email"
	"edubridge_backend/internal/logger"
	"edubridge_backend/internal/metrics"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/repositories"
	"edubridge_backend/internal/services/dto"
	"edubridge_backend/internal/validator"
	"edubridge_backend/pkg/apperrors"

	"gorm.io/gorm"
)

const enquiryDomain = "enquiry"

// EnquiryService owns the lifecycle of student enquiries: capture from the
// public form, assignment to a counselor, status progression and the
// dashboard counts.
type EnquiryService struct {
	enquiryRepo repositories.EnquiryRepository
	userRepo    repositories.UserRepository
	outboxRepo  repositories.OutboxRepository
	validator   *validator.Validator
}

func NewEnquiryService(
	enquiryRepo repositories.EnquiryRepository,
	userRepo repositories.UserRepository,
	outboxRepo repositories.OutboxRepository,
	v *validator.Validator,
) *EnquiryService {
	return &EnquiryService{
		enquiryRepo: enquiryRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		validator:   v,
	}
}

// Create captures a lead from the public form. The acknowledgement email is
// enqueued in the same transaction as the row, so a lead is never persisted
// without its email and vice versa.
func (s *EnquiryService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateEnquiryRequest) (*dto.EnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	if req.AgentID != nil {
		agent, err := s.userRepo.FindByID(db, *req.AgentID)
		if err != nil {
			return nil, apperrors.ErrInvalidAssignee(enquiryDomain, "Referring agent not found")
		}
		if agent.Role != models.UserRoleAgent {
			return nil, apperrors.ErrInvalidAssignee(enquiryDomain, "Referrer must have the AGENT role")
		}
	}

	enquiry := &models.Enquiry{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		CourseID: req.CourseID,
		Message:  req.Message,
		AgentID:  req.AgentID,
		Status:   models.EnquiryStatusNew,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.enquiryRepo.Create(tx, enquiry); err != nil {
			return err
		}

		subject, text, html := email.StudentEnquiryAck(enquiry.Name)
		return s.outboxRepo.Enqueue(tx, &models.EmailOutbox{
			ToEmail:  enquiry.Email,
			Subject:  subject,
			Body:     text,
			HTMLBody: html,
		})
	})
	if err != nil {
		return nil, asAppError(err, nil)
	}

	metrics.RecordEnquiryCreated("student")
	logger.CtxInfo(ctx, "student enquiry captured", "enquiry_id", enquiry.ID)

	return dto.NewEnquiryResponse(enquiry), nil
}

// GetByID fetches one enquiry. A restricted scope only sees its own
// assignments; anything else reads as not found so counselors cannot probe
// for other leads.
func (s *EnquiryService) GetByID(ctx context.Context, db *gorm.DB, id string, scope ListScope) (*dto.EnquiryResponse, error) {
	enquiry, err := s.enquiryRepo.FindByID(db, id)
	if err != nil {
		return nil, asAppError(err, repositories.ErrEnquiryNotFound)
	}
	if !s.inScope(enquiry, scope) {
		return nil, apperrors.ErrNotFound(repositories.ErrEnquiryNotFound)
	}
	return dto.NewEnquiryResponse(enquiry), nil
}

func (s *EnquiryService) inScope(enquiry *models.Enquiry, scope ListScope) bool {
	if !scope.restricted() {
		return true
	}
	if scope.AssignedToID != "" {
		return enquiry.AssignedToID != nil && *enquiry.AssignedToID == scope.AssignedToID
	}
	return enquiry.AgentID != nil && *enquiry.AgentID == scope.AgentID
}

// List returns one page plus the total matching count, both read from the
// same snapshot. The scope filter is merged into the criteria before any
// client-supplied filters so a restricted caller can never widen it.
func (s *EnquiryService) List(ctx context.Context, db *gorm.DB, q *dto.EnquiryListQuery, scope ListScope) (*dto.ListResponse[dto.EnquiryResponse], error) {
	q.ApplyDefaults()
	if err := validatePagination(q.PaginationQuery); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(q); err != nil {
		return nil, asAppError(err, nil)
	}

	criteria := repositories.EnquiryFilter{
		Status:       models.EnquiryStatus(q.Status),
		Assignment:   q.Assignment,
		AssignedToID: scope.AssignedToID,
		AgentID:      q.AgentID,
		CourseID:     q.CourseID,
		Search:       q.Search,
		Page:         q.Page,
		Limit:        q.Limit,
	}
	if scope.AgentID != "" {
		criteria.AgentID = scope.AgentID
	}
	if scope.AssignedToID != "" {
		// An assignment sub-filter makes no sense inside a personal scope.
		criteria.Assignment = ""
	}

	rows, total, err := s.enquiryRepo.FindWithFilter(db, criteria)
	if err != nil {
		return nil, asAppError(err, nil)
	}

	return &dto.ListResponse[dto.EnquiryResponse]{
		Rows:  dto.NewEnquiryResponseList(rows),
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
	}, nil
}

// GetCounts returns the dashboard funnel aggregate.
func (s *EnquiryService) GetCounts(ctx context.Context, db *gorm.DB) (*repositories.EnquiryCounts, error) {
	counts, err := s.enquiryRepo.GetCounts(db)
	if err != nil {
		return nil, asAppError(err, nil)
	}
	return counts, nil
}

// Assign routes the enquiry to a counselor. Only users holding the
// COUNSELOR role can carry student leads.
func (s *EnquiryService) Assign(ctx context.Context, db *gorm.DB, id string, req *dto.AssignEnquiryRequest) (*dto.EnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	assignee, err := s.userRepo.FindByID(db, req.AssignedToID)
	if err != nil {
		return nil, asAppError(err, repositories.ErrUserNotFound)
	}
	if assignee.Role != models.UserRoleCounselor {
		return nil, apperrors.ErrInvalidAssignee(enquiryDomain,
			fmt.Sprintf("Student enquiries can only be assigned to a COUNSELOR, %s has role %s", assignee.Name, assignee.Role))
	}

	now := time.Now()
	err = s.enquiryRepo.Update(db, id, map[string]interface{}{
		"assigned_to_id": req.AssignedToID,
		"assigned_at":    now,
	})
	if err != nil {
		return nil, asAppError(err, repositories.ErrEnquiryNotFound)
	}

	logger.CtxInfo(ctx, "enquiry assigned", "enquiry_id", id, "assigned_to_id", req.AssignedToID)

	return s.GetByID(ctx, db, id, ListScope{})
}

// Unassign puts the enquiry back into the unassigned pool.
func (s *EnquiryService) Unassign(ctx context.Context, db *gorm.DB, id string) (*dto.EnquiryResponse, error) {
	err := s.enquiryRepo.Update(db, id, map[string]interface{}{
		"assigned_to_id": nil,
		"assigned_at":    nil,
	})
	if err != nil {
		return nil, asAppError(err, repositories.ErrEnquiryNotFound)
	}

	logger.CtxInfo(ctx, "enquiry unassigned", "enquiry_id", id)

	return s.GetByID(ctx, db, id, ListScope{})
}

// ChangeStatus moves the enquiry along the funnel. Re-setting the current
// status is a no-op success, any other move must be allowed by the
// transition table.
func (s *EnquiryService) ChangeStatus(ctx context.Context, db *gorm.DB, id string, req *dto.ChangeEnquiryStatusRequest, scope ListScope) (*dto.EnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	enquiry, err := s.enquiryRepo.FindByID(db, id)
	if err != nil {
		return nil, asAppError(err, repositories.ErrEnquiryNotFound)
	}
	if !s.inScope(enquiry, scope) {
		return nil, apperrors.ErrNotFound(repositories.ErrEnquiryNotFound)
	}

	if enquiry.Status == req.Status {
		return dto.NewEnquiryResponse(enquiry), nil
	}
	if !enquiry.Status.CanTransitionTo(req.Status) {
		return nil, apperrors.ErrInvalidTransition(enquiryDomain,
			fmt.Sprintf("Cannot move enquiry from %s to %s", enquiry.Status, req.Status))
	}

	err = s.enquiryRepo.Update(db, id, map[string]interface{}{
		"status": req.Status,
	})
	if err != nil {
		return nil, asAppError(err, repositories.ErrEnquiryNotFound)
	}

	logger.CtxInfo(ctx, "enquiry status changed",
		"enquiry_id", id, "from", enquiry.Status, "to", req.Status)

	return s.GetByID(ctx, db, id, ListScope{})
}

// UpdateNotes writes the staff-facing note and remark fields.
func (s *EnquiryService) UpdateNotes(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateNotesRequest, scope ListScope) (*dto.EnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	enquiry, err := s.enquiryRepo.FindByID(db, id)
	if err != nil {
		return nil, asAppError(err, repositories.ErrEnquiryNotFound)
	}
	if !s.inScope(enquiry, scope) {
		return nil, apperrors.ErrNotFound(repositories.ErrEnquiryNotFound)
	}

	values := map[string]interface{}{}
	if req.Note != nil {
		values["note"] = *req.Note
	}
	if req.Remark != nil {
		values["remark"] = *req.Remark
	}

	if err := s.enquiryRepo.Update(db, id, values); err != nil {
		return nil, asAppError(err, repositories.ErrEnquiryNotFound)
	}

	return s.GetByID(ctx, db, id, ListScope{})
}

// Update applies a partial edit of the contact fields. The DTO's pointer
// fields are the allow-list: status, assignment and timestamps are not
// reachable from here.
func (s *EnquiryService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateEnquiryRequest) (*dto.EnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	values := map[string]interface{}{}
	if req.Name != nil {
		values["name"] = *req.Name
	}
	if req.Email != nil {
		values["email"] = *req.Email
	}
	if req.Phone != nil {
		values["phone"] = *req.Phone
	}
	if req.CourseID != nil {
		values["course_id"] = *req.CourseID
	}
	if req.Message != nil {
		values["message"] = *req.Message
	}

	if err := s.enquiryRepo.Update(db, id, values); err != nil {
		return nil, asAppError(err, repositories.ErrEnquiryNotFound)
	}

	return s.GetByID(ctx, db, id, ListScope{})
}

// Delete removes the enquiry permanently.
func (s *EnquiryService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.enquiryRepo.Delete(db, id); err != nil {
		return asAppError(err, repositories.ErrEnquiryNotFound)
	}
	logger.CtxInfo(ctx, "enquiry deleted", "enquiry_id", id)
	return nil
}
