package repositories

import (
	"errors"
	"strings"
	"time"

	"edubridge_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCourseNotFound         = errors.New("course not found")
	ErrCourseCategoryNotFound = errors.New("course category not found")
)

type CourseFilter struct {
	CategoryID string
	Published  *bool
	Search     string
	Page       int
	Limit      int
}

type CourseRepository interface {
	Create(db *gorm.DB, course *models.Course) error
	FindByID(db *gorm.DB, id string) (*models.Course, error)
	FindBySlug(db *gorm.DB, slug string) (*models.Course, error)
	FindWithFilter(db *gorm.DB, criteria CourseFilter) ([]models.Course, int64, error)
	Update(db *gorm.DB, id string, values map[string]interface{}) error
	Delete(db *gorm.DB, id string) error

	CreateCategory(db *gorm.DB, category *models.CourseCategory) error
	ListCategories(db *gorm.DB) ([]models.CourseCategory, error)
	DeleteCategory(db *gorm.DB, id string) error
}

type CourseRepositoryImpl struct{}

func NewCourseRepository() CourseRepository {
	return &CourseRepositoryImpl{}
}

func (r *CourseRepositoryImpl) Create(db *gorm.DB, course *models.Course) error {
	return db.Create(course).Error
}

func (r *CourseRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Course, error) {
	var course models.Course
	err := db.Preload("Category").First(&course, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

func (r *CourseRepositoryImpl) FindBySlug(db *gorm.DB, slug string) (*models.Course, error) {
	var course models.Course
	err := db.Preload("Category").First(&course, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCourseNotFound
		}
		return nil, err
	}
	return &course, nil
}

// FindWithFilter orders by title ascending, the catalog convention.
func (r *CourseRepositoryImpl) FindWithFilter(db *gorm.DB, criteria CourseFilter) ([]models.Course, int64, error) {
	var courses []models.Course
	var total int64

	offset := (criteria.Page - 1) * criteria.Limit

	err := db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Course{})

		if criteria.CategoryID != "" {
			query = query.Where("category_id = ?", criteria.CategoryID)
		}
		if criteria.Published != nil {
			query = query.Where("published = ?", *criteria.Published)
		}
		if criteria.Search != "" {
			search := "%" + strings.ToLower(criteria.Search) + "%"
			query = query.Where("lower(title) LIKE ?", search)
		}

		if err := query.Count(&total).Error; err != nil {
			return err
		}

		return query.Preload("Category").
			Order("title ASC").
			Limit(criteria.Limit).Offset(offset).
			Find(&courses).Error
	})

	return courses, total, err
}

func (r *CourseRepositoryImpl) Update(db *gorm.DB, id string, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now()

	result := db.Model(&models.Course{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Course{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseNotFound
	}
	return nil
}

func (r *CourseRepositoryImpl) CreateCategory(db *gorm.DB, category *models.CourseCategory) error {
	return db.Create(category).Error
}

func (r *CourseRepositoryImpl) ListCategories(db *gorm.DB) ([]models.CourseCategory, error) {
	var categories []models.CourseCategory
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *CourseRepositoryImpl) DeleteCategory(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.CourseCategory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCourseCategoryNotFound
	}
	return nil
}
