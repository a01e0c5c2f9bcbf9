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

// BlogService manages the marketing blog. Authorship is stamped from the
// authenticated content writer.
type BlogService struct {
	blogRepo  repositories.BlogRepository
	validator *validator.Validator
}

func NewBlogService(blogRepo repositories.BlogRepository, v *validator.Validator) *BlogService {
	return &BlogService{
		blogRepo:  blogRepo,
		validator: v,
	}
}

func tagsJSON(tags []string) (datatypes.JSON, error) {
	if tags == nil {
		tags = []string{}
	}
	raw, err := json.Marshal(tags)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(raw), nil
}

func (s *BlogService) Create(ctx context.Context, db *gorm.DB, authorID string, req *dto.CreateBlogRequest) (*models.Blog, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	tags, err := tagsJSON(req.Tags)
	if err != nil {
		return nil, asAppError(err, nil)
	}

	blog := &models.Blog{
		Title:      req.Title,
		Slug:       req.Slug,
		Content:    req.Content,
		Image:      req.Image,
		Tags:       tags,
		Published:  req.Published,
		CategoryID: req.CategoryID,
	}
	if authorID != "" {
		blog.AuthorID = &authorID
	}

	if err := s.blogRepo.Create(db, blog); err != nil {
		return nil, asAppError(err, nil)
	}

	logger.CtxInfo(ctx, "blog post created", "blog_id", blog.ID, "slug", blog.Slug)

	return blog, nil
}

func (s *BlogService) GetByID(ctx context.Context, db *gorm.DB, id string) (*models.Blog, error) {
	blog, err := s.blogRepo.FindByID(db, id)
	if err != nil {
		return nil, asAppError(err, repositories.ErrBlogNotFound)
	}
	return blog, nil
}

func (s *BlogService) GetPublishedBySlug(ctx context.Context, db *gorm.DB, slug string) (*models.Blog, error) {
	blog, err := s.blogRepo.FindBySlug(db, slug)
	if err != nil {
		return nil, asAppError(err, repositories.ErrBlogNotFound)
	}
	if !blog.Published {
		return nil, apperrors.ErrNotFound(repositories.ErrBlogNotFound)
	}
	return blog, nil
}

func (s *BlogService) List(ctx context.Context, db *gorm.DB, q *dto.BlogListQuery, publicOnly bool) (*dto.ListResponse[models.Blog], error) {
	q.ApplyDefaults()
	if err := validatePagination(q.PaginationQuery); err != nil {
		return nil, err
	}
	if err := s.validator.Validate(q); err != nil {
		return nil, asAppError(err, nil)
	}

	criteria := repositories.BlogFilter{
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

	rows, total, err := s.blogRepo.FindWithFilter(db, criteria)
	if err != nil {
		return nil, asAppError(err, nil)
	}

	return &dto.ListResponse[models.Blog]{
		Rows:  rows,
		Total: total,
		Page:  q.Page,
		Limit: q.Limit,
	}, nil
}

func (s *BlogService) Update(ctx context.Context, db *gorm.DB, id string, req *dto.UpdateBlogRequest) (*models.Blog, error) {
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
	if req.Content != nil {
		values["content"] = *req.Content
	}
	if req.Image != nil {
		values["image"] = *req.Image
	}
	if req.Tags != nil {
		tags, err := tagsJSON(*req.Tags)
		if err != nil {
			return nil, asAppError(err, nil)
		}
		values["tags"] = tags
	}
	if req.CategoryID != nil {
		values["category_id"] = *req.CategoryID
	}
	if req.Published != nil {
		values["published"] = *req.Published
	}

	if err := s.blogRepo.Update(db, id, values); err != nil {
		return nil, asAppError(err, repositories.ErrBlogNotFound)
	}

	return s.GetByID(ctx, db, id)
}

func (s *BlogService) Delete(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.blogRepo.Delete(db, id); err != nil {
		return asAppError(err, repositories.ErrBlogNotFound)
	}
	logger.CtxInfo(ctx, "blog post deleted", "blog_id", id)
	return nil
}

func (s *BlogService) CreateCategory(ctx context.Context, db *gorm.DB, req *dto.CreateCategoryRequest) (*models.BlogCategory, error) {
	if err := s.validator.Validate(req); err != nil {
		return nil, asAppError(err, nil)
	}

	category := &models.BlogCategory{Name: req.Name}
	if err := s.blogRepo.CreateCategory(db, category); err != nil {
		return nil, asAppError(err, nil)
	}
	return category, nil
}

func (s *BlogService) ListCategories(ctx context.Context, db *gorm.DB) ([]models.BlogCategory, error) {
	categories, err := s.blogRepo.ListCategories(db)
	if err != nil {
		return nil, asAppError(err, nil)
	}
	return categories, nil
}

func (s *BlogService) DeleteCategory(ctx context.Context, db *gorm.DB, id string) error {
	if err := s.blogRepo.DeleteCategory(db, id); err != nil {
		return asAppError(err, repositories.ErrBlogCategoryNotFound)
	}
	return nil
}
