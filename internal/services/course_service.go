package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"edubridge_backend/internal/logger"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/repositories"
	"edubridge_backend/internal/services/dto"
	"edubridge_backend/internal/validator"
	"edubridge_backend/pkg/apperrors"
)

// CourseService manages the public course catalog. Public reads only see
// published courses; staff operations see everything.
type CourseService struct {
	courseRepo repositories.CourseRepository
	validator  *validator.Validator
}

func NewCourseService(courseRepo repositories.CourseRepository, v *validator.Validator) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
		validator:  v,
	}
}

func topicsJSON(topics []string) (datatypes.JSON, error) {
	if topics == nil {
		topics = []string{}
	}
	raw, err := json.Marshal(topics)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (s *CourseService) Create(ctx context.Context, db *gorm.DB, req *dto.CreateCourseRequest) (*models.Course, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	topics, err := topicsJSON(req.Topics)
	if err != nil {
		return nil, asAppError(err, nil)
	}

	course := &models.Course{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		Duration:    req.Duration,
		Price:       req.Price,
		Level:       req.Level,
		Topics:      topics,
		Image:       req.Image,
		Published:   req.Published,
		CategoryID:  req.CategoryID,
	}

	if err := s.courseRepo.Create(db, course); err != nil {
		return nil, asAppError(err, nil)
	}

	logger.CtxInfo(ctx, "course created", "course_id", course.ID, "slug", course.Slug)

	return course, nil
}

func (s *CourseService) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Course, error) {
	course, err := s.courseRepo.FindByID(db, id)
	if err != nil {
		return nil, asAppError(err, repositories.ErrCourseNotFound)
	}
	return course, nil
}

// GetPublishedBySlug backs the public course page. Unpublished courses read
// as not found.
func (s *CourseService) GetPublishedBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Course, error) {
	course, err := s.courseRepo.FindBySlug(db, slug)
	if err != nil {
		return nil, asAppError(err, repositories.ErrCourseNotFound)
	}
	if !course.Published {
		return nil, apperrors.ErrNotFound(repositories.ErrCourseNotFound)
	}
	return course, nil
}

func (s *CourseService) List(ctx context.Context, db *gorm.DB, q *dto.CourseListQuery, publicOnly bool) (*dto.ListResponse[models.Course], error) {
	q.ApplyDefaults()
	if err := validatePagination(q.PaginationQuery); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(q); err != nil {
		return nil, asAppError(err, nil)
	}

	criteria := repositories.CourseFilter{
		CategoryID: q.CategoryID,
		Published:  q.Published,
		Search:     q.Search,
		Page:       q.Page,
		Limit:      q.Limit,
	}
	if publicOnly {
		published := true
		criteria.Published = &published
	}

	rows, total, err := s.courseRepo.FindWithFilter(db, criteria)
	if err != nil {
		return nil, asAppError(err, nil)
	}

	return &dto.ListResponse[models.Course]{
		Rows:  rows,
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
	}, nil
}

func (s *CourseService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateCourseRequest) (*models.Course, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	values := map[string]interface{}{}
	if req.Title != nil {
		values["title"] = *req.Title
	}
	if req.Slug != nil {
		values["slug"] = *req.Slug
	}
	if req.Description != nil {
		values["description"] = *req.Description
	}
	if req.Image != nil {
		values["image"] = *req.Image
	}
	if req.Duration != nil {
		values["duration"] = *req.Duration
	}
	if req.Price != nil {
		values["price"] = *req.Price
	}
	if req.Level != nil {
		values["level"] = *req.Level
	}
	if req.Topics != nil {
		topics, err := topicsJSON(*req.Topics)
		if err != nil {
			return nil, asAppError(err, nil)
		}
		values["topics"] = topics
	}
	if req.CategoryID != nil {
		values["category_id"] = *req.CategoryID
	}
	if req.Published != nil {
		values["published"] = *req.Published
	}

	if err := s.courseRepo.Update(db, id, values); err != nil {
		return nil, asAppError(err, repositories.ErrCourseNotFound)
	}

	return s.GetByID(ctx, db, id)
}

func (s *CourseService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.courseRepo.Delete(db, id); err != nil {
		return asAppError(err, repositories.ErrCourseNotFound)
	}
	logger.CtxInfo(ctx, "course deleted", "course_id", id)
	return nil
}

func (s *CourseService) CreateCategory(ctx context.Context, db *gorm.DB, req *dto.CreateCategoryRequest) (*models.CourseCategory, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	category := &models.CourseCategory{Name: req.Name}
	if err := s.courseRepo.CreateCategory(db, category); err != nil {
		return nil, asAppError(err, nil)
	}
	return category, nil
}

func (s *CourseService) ListCategories(ctx context.Context, db *gorm.DB) ([]models.CourseCategory, error) {
	categories, err := s.courseRepo.ListCategories(db)
	if err != nil {
		return nil, asAppError(err, nil)
	}
	return categories, nil
}

func (s *CourseService) DeleteCategory(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.courseRepo.DeleteCategory(db, id); err != nil {
		return asAppError(err, repositories.ErrCourseCategoryNotFound)
	}
	return nil
}
