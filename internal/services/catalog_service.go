package services

import (
	"context"

	"gorm.io/gorm"

	"edubridge_backend/internal/models"
	"edubridge_backend/internal/repositories"
	"edubridge_backend/internal/services/dto"
	"edubridge_backend/internal/validator"
)

// CatalogService manages the showcase content blocks of the public site:
// instructor profiles, testimonials, placements and FAQs.
type CatalogService struct {
	catalogRepo repositories.CatalogRepository
	validator   *validator.Validator
}

func NewCatalogService(catalogRepo repositories.CatalogRepository, v *validator.Validator) *CatalogService {
	return &CatalogService{
		catalogRepo: catalogRepo,
		validator:   v,
	}
}

// Faculty profiles

func (s *CatalogService) CreateFaculty(ctx context.Context, db *gorm.DB, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	faculty := &models.Faculty{
		Name:        req.Name,
		Designation: req.Designation,
		Bio:         req.Bio,
		Image:       req.Image,
		Experience:  req.Experience,
	}
	if err := s.catalogRepo.CreateFaculty(db, faculty); err != nil {
		return nil, asAppError(err, nil)
	}
	return faculty, nil
}

func (s *CatalogService) ListFaculty(ctx context.Context, db *gorm.DB) ([]models.Faculty, error) {
	faculty, err := s.catalogRepo.ListFaculty(db)
	if err != nil {
		return nil, asAppError(err, nil)
	}
	return faculty, nil
}

func (s *CatalogService) UpdateFaculty(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateFacultyRequest) error {
	if err := s.validator.Validate(req); err != nil {
		return asAppError(err, nil)
	}

	values := map[string]interface{}{}
	if req.Name != nil {
		values["name"] = *req.Name
	}
	if req.Designation != nil {
		values["designation"] = *req.Designation
	}
	if req.Bio != nil {
		values["bio"] = *req.Bio
	}
	if req.Image != nil {
		values["image"] = *req.Image
	}
	if req.Experience != nil {
		values["experience"] = *req.Experience
	}

	if err := s.catalogRepo.UpdateFaculty(db, id, values); err != nil {
		return asAppError(err, repositories.ErrFacultyNotFound)
	}
	return nil
}

func (s *CatalogService) DeleteFaculty(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.catalogRepo.DeleteFaculty(db, id); err != nil {
		return asAppError(err, repositories.ErrFacultyNotFound)
	}
	return nil
}

// Testimonials

func (s *CatalogService) CreateTestimonial(ctx context.Context, db *gorm.DB, req *dto.CreateTestimonialRequest) (*models.Testimonial, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	testimonial := &models.Testimonial{
		Name:    req.Name,
		Course:  req.Course,
		Content: req.Content,
		Rating:  req.Rating,
		Image:   req.Image,
	}
	if err := s.catalogRepo.CreateTestimonial(db, testimonial); err != nil {
		return nil, asAppError(err, nil)
	}
	return testimonial, nil
}

func (s *CatalogService) ListTestimonials(ctx context.Context, db *gorm.DB) ([]models.Testimonial, error) {
	testimonials, err := s.catalogRepo.ListTestimonials(db)
	if err != nil {
		return nil, asAppError(err, nil)
	}
	return testimonials, nil
}

func (s *CatalogService) DeleteTestimonial(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.catalogRepo.DeleteTestimonial(db, id); err != nil {
		return asAppError(err, repositories.ErrTestimonialNotFound)
	}
	return nil
}

// Placements

func (s *CatalogService) CreatePlacement(ctx context.Context, db *gorm.DB, req *dto.CreatePlacementRequest) (*models.Placement, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	placement := &models.Placement{
		StudentName: req.StudentName,
		Company:     req.Company,
		Role:        req.Role,
		Package:     req.Package,
		Image:       req.Image,
		Year:        req.Year,
	}
	if err := s.catalogRepo.CreatePlacement(db, placement); err != nil {
		return nil, asAppError(err, nil)
	}
	return placement, nil
}

func (s *CatalogService) ListPlacements(ctx context.Context, db *gorm.DB) ([]models.Placement, error) {
	placements, err := s.catalogRepo.ListPlacements(db)
	if err != nil {
		return nil, asAppError(err, nil)
	}
	return placements, nil
}

func (s *CatalogService) DeletePlacement(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.catalogRepo.DeletePlacement(db, id); err != nil {
		return asAppError(err, repositories.ErrPlacementNotFound)
	}
	return nil
}

// FAQs

func (s *CatalogService) CreateFAQ(ctx context.Context, db *gorm.DB, req *dto.CreateFAQRequest) (*models.FAQ, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	faq := &models.FAQ{
		Question:   req.Question,
		Answer:     req.Answer,
		CategoryID: req.CategoryID,
	}
	if err := s.catalogRepo.CreateFAQ(db, faq); err != nil {
		return nil, asAppError(err, nil)
	}
	return faq, nil
}

func (s *CatalogService) ListFAQs(ctx context.Context, db *gorm.DB, categoryID string) ([]models.FAQ, error) {
	faqs, err := s.catalogRepo.ListFAQs(db, categoryID)
	if err != nil {
		return nil, asAppError(err, nil)
	}
	return faqs, nil
}

func (s *CatalogService) DeleteFAQ(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.catalogRepo.DeleteFAQ(db, id); err != nil {
		return asAppError(err, repositories.ErrFAQNotFound)
	}
	return nil
}

func (s *CatalogService) CreateFAQCategory(ctx context.Context, db *gorm.DB, req *dto.CreateCategoryRequest) (*models.FAQCategory, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	category := &models.FAQCategory{Name: req.Name}
	if err := s.catalogRepo.CreateFAQCategory(db, category); err != nil {
		return nil, asAppError(err, nil)
	}
	return category, nil
}

func (s *CatalogService) ListFAQCategories(ctx context.Context, db *gorm.DB) ([]models.FAQCategory, error) {
	categories, err := s.catalogRepo.ListFAQCategories(db)
	if err != nil {
		return nil, asAppError(err, nil)
	}
	return categories, nil
}

func (s *CatalogService) DeleteFAQCategory(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.catalogRepo.DeleteFAQCategory(db, id); err != nil {
		return asAppError(err, repositories.ErrFAQCategoryNotFound)
	}
	return nil
}
