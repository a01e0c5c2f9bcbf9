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

const enterpriseDomain = "enterprise_enquiry"

// EnterpriseEnquiryService handles corporate training leads. Same lifecycle
// as student enquiries but with its own status set and a wider assignee
// pool: both counselors and HR can carry these.
type EnterpriseEnquiryService struct {
	enquiryRepo repositories.EnterpriseEnquiryRepository
	userRepo    repositories.UserRepository
	outboxRepo  repositories.OutboxRepository
	validator   *validator.Validator
}

func NewEnterpriseEnquiryService(
	enquiryRepo repositories.EnterpriseEnquiryRepository,
	userRepo repositories.UserRepository,
	outboxRepo repositories.OutboxRepository,
	v *validator.Validator,
) *EnterpriseEnquiryService {
	return &EnterpriseEnquiryService{
		enquiryRepo: enquiryRepo,
		userRepo:    userRepo,
		outboxRepo:  outboxRepo,
		validator:   v,
	}
}

func (s *EnterpriseEnquiryService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateEnterpriseEnquiryRequest) (*dto.EnterpriseEnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	enquiry := &models.EnterpriseEnquiry{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Phone:       req.Phone,
		Duration:    req.Duration,
		Message:     req.Message,
		Status:      models.EnterpriseStatusNew,
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := s.enquiryRepo.Create(tx, enquiry); err != nil {
			return err
		}

		subject, text, html := email.EnterpriseEnquiryAck(enquiry.CompanyName)
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

	metrics.RecordEnquiryCreated("enterprise")
	logger.CtxInfo(ctx, "enterprise enquiry captured", "enquiry_id", enquiry.ID)

	return dto.NewEnterpriseEnquiryResponse(enquiry), nil
}

func (s *EnterpriseEnquiryService) GetByID(ctx context.Context, db *gorm.DB, id string, scope ListScope) (*dto.EnterpriseEnquiryResponse, error) {
	enquiry, err := s.enquiryRepo.FindByID(db, id)
	if err != nil {
		return nil, asAppError(err, repositories.ErrEnterpriseEnquiryNotFound)
	}
	if !s.inScope(enquiry, scope) {
		return nil, apperrors.ErrNotFound(repositories.ErrEnterpriseEnquiryNotFound)
	}
	return dto.NewEnterpriseEnquiryResponse(enquiry), nil
}

func (s *EnterpriseEnquiryService) inScope(enquiry *models.EnterpriseEnquiry, scope ListScope) bool {
	if !scope.restricted() {
		return true
	}
	return enquiry.AssignedToID != nil && *enquiry.AssignedToID == scope.AssignedToID
}

func (s *EnterpriseEnquiryService) List(ctx context.Context, db *gorm.DB, q *dto.EnterpriseEnquiryListQuery, scope ListScope) (*dto.ListResponse[dto.EnterpriseEnquiryResponse], error) {
	q.ApplyDefaults()
	if err := validatePagination(q.PaginationQuery); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(q); err != nil {
		return nil, asAppError(err, nil)
	}

	criteria := repositories.EnterpriseEnquiryFilter{
		Status:       models.EnterpriseEnquiryStatus(q.Status),
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

	return &dto.ListResponse[dto.EnterpriseEnquiryResponse]{
		Rows:  dto.NewEnterpriseEnquiryResponseList(rows),
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
	}, nil
}

func (s *EnterpriseEnquiryService) GetCounts(ctx context.Context, db *gorm.DB) (*repositories.EnterpriseEnquiryCounts, error) {
	counts, err := s.enquiryRepo.GetCounts(db)
	if err != nil {
		return nil, asAppError(err, nil)
	}
	return counts, nil
}

func (s *EnterpriseEnquiryService) Assign(ctx context.Context, db *gorm.DB, id string, req *dto.AssignEnquiryRequest) (*dto.EnterpriseEnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	assignee, err := s.userRepo.FindByID(db, req.AssignedToID)
	if err != nil {
		return nil, asAppError(err, repositories.ErrUserNotFound)
	}
	if assignee.Role != models.UserRoleCounselor && assignee.Role != models.UserRoleHR {
		return nil, apperrors.ErrInvalidAssignee(enterpriseDomain,
			fmt.Sprintf("Enterprise enquiries can only be assigned to COUNSELOR or HR, %s has role %s", assignee.Name, assignee.Role))
	}

	err = s.enquiryRepo.Update(db, id, map[string]interface{}{
		"assigned_to_id": req.AssignedToID,
	})
	if err != nil {
		return nil, asAppError(err, repositories.ErrEnterpriseEnquiryNotFound)
	}

	logger.CtxInfo(ctx, "enterprise enquiry assigned", "enquiry_id", id, "assigned_to_id", req.AssignedToID)

	return s.GetByID(ctx, db, id, ListScope{})
}

func (s *EnterpriseEnquiryService) Unassign(ctx context.Context, db *gorm.DB, id string) (*dto.EnterpriseEnquiryResponse, error) {
	err := s.enquiryRepo.Update(db, id, map[string]interface{}{
		"assigned_to_id": nil,
	})
	if err != nil {
		return nil, asAppError(err, repositories.ErrEnterpriseEnquiryNotFound)
	}
	return s.GetByID(ctx, db, id, ListScope{})
}

func (s *EnterpriseEnquiryService) ChangeStatus(ctx context.Context, db *gorm.DB, id string, req *dto.ChangeEnterpriseStatusRequest, scope ListScope) (*dto.EnterpriseEnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	enquiry, err := s.enquiryRepo.FindByID(db, id)
	if err != nil {
		return nil, asAppError(err, repositories.ErrEnterpriseEnquiryNotFound)
	}
	if !s.inScope(enquiry, scope) {
		return nil, apperrors.ErrNotFound(repositories.ErrEnterpriseEnquiryNotFound)
	}

	if enquiry.Status == req.Status {
		return dto.NewEnterpriseEnquiryResponse(enquiry), nil
	}
	if !enquiry.Status.CanTransitionTo(req.Status) {
		return nil, apperrors.ErrInvalidTransition(enterpriseDomain,
			fmt.Sprintf("Cannot move enquiry from %s to %s", enquiry.Status, req.Status))
	}

	err = s.enquiryRepo.Update(db, id, map[string]interface{}{
		"status": req.Status,
	})
	if err != nil {
		return nil, asAppError(err, repositories.ErrEnterpriseEnquiryNotFound)
	}

	logger.CtxInfo(ctx, "enterprise enquiry status changed",
		"enquiry_id", id, "from", enquiry.Status, "to", req.Status)

	return s.GetByID(ctx, db, id, ListScope{})
}

func (s *EnterpriseEnquiryService) UpdateNotes(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateNotesRequest, scope ListScope) (*dto.EnterpriseEnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	enquiry, err := s.enquiryRepo.FindByID(db, id)
	if err != nil {
		return nil, asAppError(err, repositories.ErrEnterpriseEnquiryNotFound)
	}
	if !s.inScope(enquiry, scope) {
		return nil, apperrors.ErrNotFound(repositories.ErrEnterpriseEnquiryNotFound)
	}

	values := map[string]interface{}{}
	if req.Note != nil {
		values["note"] = *req.Note
	}
	if req.Remark != nil {
		values["remark"] = *req.Remark
	}

	if err := s.enquiryRepo.Update(db, id, values); err != nil {
		return nil, asAppError(err, repositories.ErrEnterpriseEnquiryNotFound)
	}

	return s.GetByID(ctx, db, id, ListScope{})
}

func (s *EnterpriseEnquiryService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateEnterpriseEnquiryRequest) (*dto.EnterpriseEnquiryResponse, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	values := map[string]interface{}{}
	if req.CompanyName != nil {
		values["company_name"] = *req.CompanyName
	}
	if req.Email != nil {
		values["email"] = *req.Email
	}
	if req.Phone != nil {
		values["phone"] = *req.Phone
	}
	if req.Duration != nil {
		values["duration"] = *req.Duration
	}
	if req.Message != nil {
		values["message"] = *req.Message
	}

	if err := s.enquiryRepo.Update(db, id, values); err != nil {
		return nil, asAppError(err, repositories.ErrEnterpriseEnquiryNotFound)
	}

	return s.GetByID(ctx, db, id, ListScope{})
}

func (s *EnterpriseEnquiryService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.enquiryRepo.Delete(db, id); err != nil {
		return asAppError(err, repositories.ErrEnterpriseEnquiryNotFound)
	}
	logger.CtxInfo(ctx, "enterprise enquiry deleted", "enquiry_id", id)
	return nil
}
