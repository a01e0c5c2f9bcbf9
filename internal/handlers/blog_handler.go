package handlers

import (
	"github.com/gin-gonic/gin"

	"edubridge_backend/internal/middleware"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/services"
	"edubridge_backend/internal/services/dto"
)

type BlogHandler struct {
	BaseHandler
	blogService *services.BlogService
}

func NewBlogHandler(blogService *services.BlogService) *BlogHandler {
	return &BlogHandler{blogService: blogService}
}

func (h *BlogHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/blogs", h.ListPublic)
	rg.GET("/blogs/:slug", h.GetBySlug)
	rg.GET("/blog-categories", h.ListCategories)
}

func (h *BlogHandler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	content := middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleContentWriter)

	blogs := rg.Group("/blogs", content)
	{
		blogs.POST("", h.Create)
		blogs.GET("", h.List)
		blogs.GET("/:id", h.GetByID)
		blogs.PUT("/:id", h.Update)
		blogs.DELETE("/:id", h.Delete)
	}

	categories := rg.Group("/blog-categories", content)
	{
		categories.POST("", h.CreateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *BlogHandler) Create(c *gin.Context) {
	var req dto.CreateBlogRequest
	if !h.BindJSON(c, &req) {
		return
	}

	blog, err := h.blogService.Create(c.Request.Context(), h.GetDB(c), middleware.GetUserID(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, blog)
}

func (h *BlogHandler) ListPublic(c *gin.Context) {
	var q dto.BlogListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	resp, err := h.blogService.List(c.Request.Context(), h.GetDB(c), &q, true)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *BlogHandler) List(c *gin.Context) {
	var q dto.BlogListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	resp, err := h.blogService.List(c.Request.Context(), h.GetDB(c), &q, false)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *BlogHandler) GetBySlug(c *gin.Context) {
	blog, err := h.blogService.GetPublishedBySlug(c.Request.Context(), h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, blog)
}

func (h *BlogHandler) GetByID(c *gin.Context) {
	blog, err := h.blogService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, blog)
}

func (h *BlogHandler) Update(c *gin.Context) {
	var req dto.UpdateBlogRequest
	if !h.BindJSON(c, &req) {
		return
	}

	blog, err := h.blogService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, blog)
}

func (h *BlogHandler) Delete(c *gin.Context) {
	if err := h.blogService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *BlogHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	category, err := h.blogService.CreateCategory(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, category)
}

func (h *BlogHandler) ListCategories(c *gin.Context) {
	categories, err := h.blogService.ListCategories(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, categories)
}

func (h *BlogHandler) DeleteCategory(c *gin.Context) {
	if err := h.blogService.DeleteCategory(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
