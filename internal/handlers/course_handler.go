package handlers

import (
	"github.com/gin-gonic/gin"

	"edubridge_backend/internal/middleware"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/services"
	"edubridge_backend/internal/services/dto"
)

// CourseHandler serves the public catalog and the content-management
// surface behind it.
type CourseHandler struct {
	BaseHandler
	courseService *services.CourseService
}

func NewCourseHandler(courseService *services.CourseService) *CourseHandler {
	return &CourseHandler{courseService: courseService}
}

func (h *CourseHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/courses", h.ListPublic)
	rg.GET("/courses/:slug", h.GetBySlug)
	rg.GET("/course-categories", h.ListCategories)
}

func (h *CourseHandler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	content := middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleContentWriter)

	courses := rg.Group("/courses", content)
	{
		courses.POST("", h.Create)
		courses.GET("", h.List)
		courses.GET("/:id", h.GetByID)
		courses.PUT("/:id", h.Update)
		courses.DELETE("/:id", h.Delete)
	}

	categories := rg.Group("/course-categories", content)
	{
		categories.POST("", h.CreateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

func (h *CourseHandler) Create(c *gin.Context) {
	var req dto.CreateCourseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	course, err := h.courseService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, course)
}

func (h *CourseHandler) ListPublic(c *gin.Context) {
	var q dto.CourseListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	resp, err := h.courseService.List(c.Request.Context(), h.GetDB(c), &q, true)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *CourseHandler) List(c *gin.Context) {
	var q dto.CourseListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	resp, err := h.courseService.List(c.Request.Context(), h.GetDB(c), &q, false)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *CourseHandler) GetBySlug(c *gin.Context) {
	course, err := h.courseService.GetPublishedBySlug(c.Request.Context(), h.GetDB(c), c.Param("slug"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, course)
}

func (h *CourseHandler) GetByID(c *gin.Context) {
	course, err := h.courseService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, course)
}

func (h *CourseHandler) Update(c *gin.Context) {
	var req dto.UpdateCourseRequest
	if !h.BindJSON(c, &req) {
		return
	}

	course, err := h.courseService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, course)
}

func (h *CourseHandler) Delete(c *gin.Context) {
	if err := h.courseService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CourseHandler) CreateCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	category, err := h.courseService.CreateCategory(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, category)
}

func (h *CourseHandler) ListCategories(c *gin.Context) {
	categories, err := h.courseService.ListCategories(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, categories)
}

func (h *CourseHandler) DeleteCategory(c *gin.Context) {
	if err := h.courseService.DeleteCategory(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
