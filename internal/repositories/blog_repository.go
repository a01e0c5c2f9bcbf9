package repositories

import (
	"errors"
	"strings"
	"time"

	"edubridge_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrBlogNotFound         = errors.New("blog not found")
	ErrBlogCategoryNotFound = errors.New("blog category not found")
)

type BlogFilter struct {
	CategoryID string
	AuthorID   string
	Published  *bool
	Search     string
	Page       int
	Limit      int
}

type BlogRepository interface {
	Create(db *gorm.DB, blog *models.Blog) error
	FindByID(db *gorm.DB, id string) (*models.Blog, error)
	FindBySlug(db *gorm.DB, slug string) (*models.Blog, error)
	FindWithFilter(db *gorm.DB, criteria BlogFilter) ([]models.Blog, int64, error)
	Update(db *gorm.DB, id string, values map[string]interface{}) error
	Delete(db *gorm.DB, id string) error

	CreateCategory(db *gorm.DB, category *models.BlogCategory) error
	ListCategories(db *gorm.DB) ([]models.BlogCategory, error)
	DeleteCategory(db *gorm.DB, id string) error
}

type BlogRepositoryImpl struct{}

func NewBlogRepository() BlogRepository {
	return &BlogRepositoryImpl{}
}

func (r *BlogRepositoryImpl) Create(db *gorm.DB, blog *models.Blog) error {
	return db.Create(blog).Error
}

func (r *BlogRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Blog, error) {
	var blog models.Blog
	err := db.Preload("Category").First(&blog, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepositoryImpl) FindBySlug(db *gorm.DB, slug string) (*models.Blog, error) {
	var blog models.Blog
	err := db.Preload("Category").First(&blog, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBlogNotFound
		}
		return nil, err
	}
	return &blog, nil
}

func (r *BlogRepositoryImpl) FindWithFilter(db *gorm.DB, criteria BlogFilter) ([]models.Blog, int64, error) {
	var blogs []models.Blog
	var total int64

	offset := (criteria.Page - 1) * criteria.Limit

	err := db.Transaction(func(tx *gorm.DB) error {
		query := tx.Model(&models.Blog{})

		if criteria.CategoryID != "" {
			query = query.Where("category_id = ?", criteria.CategoryID)
		}
		if criteria.AuthorID != "" {
			query = query.Where("author_id = ?", criteria.AuthorID)
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
			Order("created_at DESC").
			Limit(criteria.Limit).Offset(offset).
			Find(&blogs).Error
	})

	return blogs, total, err
}

func (r *BlogRepositoryImpl) Update(db *gorm.DB, id string, values map[string]interface{}) error {
	if len(values) == 0 {
		return nil
	}
	values["updated_at"] = time.Now()

	result := db.Model(&models.Blog{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepositoryImpl) Delete(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.Blog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlogNotFound
	}
	return nil
}

func (r *BlogRepositoryImpl) CreateCategory(db *gorm.DB, category *models.BlogCategory) error {
	return db.Create(category).Error
}

func (r *BlogRepositoryImpl) ListCategories(db *gorm.DB) ([]models.BlogCategory, error) {
	var categories []models.BlogCategory
	err := db.Order("name ASC").Find(&categories).Error
	return categories, err
}

func (r *BlogRepositoryImpl) DeleteCategory(db *gorm.DB, id string) error {
	result := db.Where("id = ?", id).Delete(&models.BlogCategory{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBlogCategoryNotFound
	}
	return nil
}
