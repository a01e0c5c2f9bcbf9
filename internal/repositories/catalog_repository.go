package repositories

import (
	"errors"
	"time"

	"edubridge_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrFacultyNotFound     = errors.New("faculty profile not found")
	ErrTestimonialNotFound = errors.New("testimonial not found")
	ErrPlacementNotFound   = errors.New("placement not found")
	ErrFAQNotFound         = errors.New("faq not found")
	ErrFAQCategoryNotFound = errors.New("faq category not found")
)

// CatalogRepository covers the small public-site showcase entities. They
// are low-volume, so lists return everything without pagination.
type CatalogRepository interface {
	CreateFaculty(db *gorm.DB, faculty *models.Faculty) error
	ListFaculty(db *gorm.DB) ([]models.Faculty, error)
	UpdateFaculty(db *gorm.DB, id string, values map[string]interface{}) error
	DeleteFaculty(db *gorm.DB, id string) error

	CreateTestimonial(db *gorm.DB, testimonial *models.Testimonial) error
	ListTestimonials(db *gorm.DB) ([]models.Testimonial, error)
	DeleteTestimonial(db *gorm.DB, id string) error

	CreatePlacement(db *gorm.DB, placement *models.Placement) error
	ListPlacements(db *gorm.DB) ([]models.Placement, error)
	DeletePlacement(db *gorm.DB, id string) error

	CreateFAQ(db *gorm.DB, faq *models.FAQ) error
	ListFAQs(db *gorm.DB, categoryID string) ([]models.FAQ, error)
	DeleteFAQ(db *gorm.DB, id string) error

	CreateFAQCategory(db *gorm.DB, category *models.FAQCategory) error
	ListFAQCategories(db *gorm.DB) ([]models.FAQCategory, error)
	DeleteFAQCategory(db *gorm.DB, id string) error
}

type CatalogRepositoryImpl struct{}

func NewCatalogRepository() CatalogRepository {
	return &CatalogRepositoryImpl{}
}

func (r *CatalogRepositoryImpl) CreateFaculty(db *gorm.DB, faculty *models.Faculty) error {
	return db.Create(faculty).Error
}

func (r *CatalogRepositoryImpl) ListFaculty(db *gorm.DB) ([]models.Faculty, error) {
	var faculty []models.Faculty
	err := db.Order("name ASC").Find(&faculty).Error
	return faculty, err
}

func (r *CatalogRepositoryImpl) UpdateFaculty(db *gorm.DB, id string, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now()

	result := db.Model(&models.Faculty{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFacultyNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) DeleteFaculty(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Faculty{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFacultyNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) CreateTestimonial(db *gorm.DB, testimonial *models.Testimonial) error {
	return db.Create(testimonial).Error
}

func (r *CatalogRepositoryImpl) ListTestimonials(db *gorm.DB) ([]models.Testimonial, error) {
	var testimonials []models.Testimonial
	err := db.Order("created_at DESC").Find(&testimonials).Error
	return testimonials, err
}

func (r *CatalogRepositoryImpl) DeleteTestimonial(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Testimonial{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTestimonialNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) CreatePlacement(db *gorm.DB, placement *models.Placement) error {
	return db.Create(placement).Error
}

func (r *CatalogRepositoryImpl) ListPlacements(db *gorm.DB) ([]models.Placement, error) {
	var placements []models.Placement
	err := db.Order("year DESC, created_at DESC").Find(&placements).Error
	return placements, err
}

func (r *CatalogRepositoryImpl) DeletePlacement(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Placement{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlacementNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) CreateFAQ(db *gorm.DB, faq *models.FAQ) error {
	return db.Create(faq).Error
}

func (r *CatalogRepositoryImpl) ListFAQs(db *gorm.DB, categoryID string) ([]models.FAQ, error) {
	var faqs []models.FAQ
	query := db.Preload("Category")
	if categoryID != "" {
		query = query.Where("category_id = ?", categoryID)
	}
	err := query.Order("created_at ASC").Find(&faqs).Error
	return faqs, err
}

func (r *CatalogRepositoryImpl) DeleteFAQ(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.FAQ{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFAQNotFound
	}
	return nil
}

func (r *CatalogRepositoryImpl) CreateFAQCategory(db *gorm.DB, category *models.FAQCategory) error {
	return db.Create(category).Error
}

func (r *CatalogRepositoryImpl) ListFAQCategories(db *gorm.DB) ([]models.FAQCategory, error) {
	var categories []models.FAQCategory
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CatalogRepositoryImpl) DeleteFAQCategory(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.FAQCategory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrFAQCategoryNotFound
	}
	return nil
}
