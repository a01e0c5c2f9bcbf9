package services

import (
	"context"
	"fmt"

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

const facultyDomain = "faculty_enquiry"

// FacultyEnquiryService handles instructor job applications. Routing goes
// to HR only.
type FacultyEnquiryService struct {
	enquiryRepo repositories.FacultyEnquiryRepository
	userRepo    repositories.UserRepository
	outboxRepo  repositories.OutboxRepository
	validator   *validator.Validator
}

func NewFacultyEnquiryService(
	enquiryRepo repositories.FacultyEnquiryRepository,
	userRepo repositories.UserRepository,
	outboxRepo repositories.OutboxRepository,
	v *validator.Validator,
) *FacultyEnquiryService {
	return &FacultyEnquiryService{
		enquiryRepo: enquiryRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		validator:   v,
	}
}

func (s *FacultyEnquiryService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateFacultyEnquiryRequest) (*dto.FacultyEnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	enquiry := &models.FacultyEnquiry{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Message:       req.Message,
		Resume:        req.Resume,
		AvailableDate: req.AvailableDate,
		Status:        models.FacultyStatusNew,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.enquiryRepo.Create(tx, enquiry); err != nil {
			return err
		}

		subject, text, html := email.FacultyEnquiryAck(enquiry.Name)
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

	metrics.RecordEnquiryCreated("faculty")
	logger.CtxInfo(ctx, "faculty enquiry captured", "enquiry_id", enquiry.ID)

	return dto.NewFacultyEnquiryResponse(enquiry), nil
}

func (s *FacultyEnquiryService) GetByID(ctx context.Context, db *gorm.DB, id string, scope ListScope) (*dto.FacultyEnquiryResponse, error) {
	enquiry, err := s.enquiryRepo.FindByID(db, id)
	if err != nil {
		return nil, asAppError(err, repositories.ErrFacultyEnquiryNotFound)
	}
	if !s.inScope(enquiry, scope) {
		return nil, apperrors.ErrNotFound(repositories.ErrFacultyEnquiryNotFound)
	}
	return dto.NewFacultyEnquiryResponse(enquiry), nil
}

func (s *FacultyEnquiryService) inScope(enquiry *models.FacultyEnquiry, scope ListScope) bool {
	if !scope.restricted() {
		return true
	}
	return enquiry.AssignedToID != nil && *enquiry.AssignedToID == scope.AssignedToID
}

func (s *FacultyEnquiryService) List(ctx context.Context, db *gorm.DB, q *dto.FacultyEnquiryListQuery, scope ListScope) (*dto.ListResponse[dto.FacultyEnquiryResponse], error) {
	q.ApplyDefaults()
	if err := validatePagination(q.PaginationQuery); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(q); err != nil {
		return nil, asAppError(err, nil)
	}

	criteria := repositories.FacultyEnquiryFilter{
		Status:       models.FacultyEnquiryStatus(q.Status),
		Assignment:   q.Assignment,
		AssignedToID: scope.AssignedToID,
		Search:       q.Search,
		Page:         q.Page,
		Limit:        q.Limit,
	}
	if scope.AssignedToID != "" {
		criteria.Assignment = ""
	}

	rows, total, err := s.enquiryRepo.FindWithFilter(db, criteria)
	if err != nil {
		return nil, asAppError(err, nil)
	}

	return &dto.ListResponse[dto.FacultyEnquiryResponse]{
		Rows:  dto.NewFacultyEnquiryResponseList(rows),
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
	}, nil
}

func (s *FacultyEnquiryService) GetCounts(ctx context.Context, db *gorm.DB) (*repositories.FacultyEnquiryCounts, error) {
	counts, err := s.enquiryRepo.GetCounts(db)
	if err != nil {
		return nil, asAppError(err, nil)
	}
	return counts, nil
}

func (s *FacultyEnquiryService) Assign(ctx context.Context, db *gorm.DB, id string, req *dto.AssignEnquiryRequest) (*dto.FacultyEnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	assignee, err := s.userRepo.FindByID(db, req.AssignedToID)
	if err != nil {
		return nil, asAppError(err, repositories.ErrUserNotFound)
	}
	if assignee.Role != models.UserRoleHR {
		return nil, apperrors.ErrInvalidAssignee(facultyDomain,
			fmt.Sprintf("Faculty applications can only be assigned to HR, %s has role %s", assignee.Name, assignee.Role))
	}

	err = s.enquiryRepo.Update(db, id, map[string]interface{}{
		"assigned_to_id": req.AssignedToID,
	})
	if err != nil {
		return nil, asAppError(err, repositories.ErrFacultyEnquiryNotFound)
	}

	logger.CtxInfo(ctx, "faculty enquiry assigned", "enquiry_id", id, "assigned_to_id", req.AssignedToID)

	return s.GetByID(ctx, db, id, ListScope{})
}

func (s *FacultyEnquiryService) Unassign(ctx context.Context, db *gorm.DB, id string) (*dto.FacultyEnquiryResponse, error) {
	err := s.enquiryRepo.Update(db, id, map[string]interface{}{
		"assigned_to_id": nil,
	})
	if err != nil {
		return nil, asAppError(err, repositories.ErrFacultyEnquiryNotFound)
	}
	return s.GetByID(ctx, db, id, ListScope{})
}

func (s *FacultyEnquiryService) ChangeStatus(ctx context.Context, db *gorm.DB, id string, req *dto.ChangeFacultyStatusRequest, scope ListScope) (*dto.FacultyEnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	enquiry, err := s.enquiryRepo.FindByID(db, id)
	if err != nil {
		return nil, asAppError(err, repositories.ErrFacultyEnquiryNotFound)
	}
	if !s.inScope(enquiry, scope) {
		return nil, apperrors.ErrNotFound(repositories.ErrFacultyEnquiryNotFound)
	}

	if enquiry.Status == req.Status {
		return dto.NewFacultyEnquiryResponse(enquiry), nil
	}
	if !enquiry.Status.CanTransitionTo(req.Status) {
		return nil, apperrors.ErrInvalidTransition(facultyDomain,
			fmt.Sprintf("Cannot move application from %s to %s", enquiry.Status, req.Status))
	}

	err = s.enquiryRepo.Update(db, id, map[string]interface{}{
		"status": req.Status,
	})
	if err != nil {
		return nil, asAppError(err, repositories.ErrFacultyEnquiryNotFound)
	}

	logger.CtxInfo(ctx, "faculty enquiry status changed",
		"enquiry_id", id, "from", enquiry.Status, "to", req.Status)

	return s.GetByID(ctx, db, id, ListScope{})
}

func (s *FacultyEnquiryService) UpdateNotes(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateNotesRequest, scope ListScope) (*dto.FacultyEnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	enquiry, err := s.enquiryRepo.FindByID(db, id)
	if err != nil {
		return nil, asAppError(err, repositories.ErrFacultyEnquiryNotFound)
	}
	if !s.inScope(enquiry, scope) {
		return nil, apperrors.ErrNotFound(repositories.ErrFacultyEnquiryNotFound)
	}

	values := map[string]interface{}{}
	if req.Note != nil {
		values["note"] = *req.Note
	}
	if req.Remark != nil {
		values["remark"] = *req.Remark
	}

	if err := s.enquiryRepo.Update(db, id, values); err != nil {
		return nil, asAppError(err, repositories.ErrFacultyEnquiryNotFound)
	}

	return s.GetByID(ctx, db, id, ListScope{})
}

func (s *FacultyEnquiryService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateFacultyEnquiryRequest) (*dto.FacultyEnquiryResponse, error) {
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
	if req.Message != nil {
		values["message"] = *req.Message
	}
	if req.Resume != nil {
		values["resume"] = *req.Resume
	}
	if req.AvailableDate != nil {
		values["available_date"] = *req.AvailableDate
	}

	if err := s.enquiryRepo.Update(db, id, values); err != nil {
		return nil, asAppError(err, repositories.ErrFacultyEnquiryNotFound)
	}

	return s.GetByID(ctx, db, id, ListScope{})
}

func (s *FacultyEnquiryService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.enquiryRepo.Delete(db, id); err != nil {
		return asAppError(err, repositories.ErrFacultyEnquiryNotFound)
	}
	logger.CtxInfo(ctx, "faculty enquiry deleted", "enquiry_id", id)
	return nil
}
