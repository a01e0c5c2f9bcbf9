package handlers

import (
	"github.com/gin-gonic/gin"

	"edubridge_backend/internal/middleware"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/services"
	"edubridge_backend/internal/services/dto"
)

// CatalogHandler serves the showcase blocks of the public site and their
// content-management endpoints.
type CatalogHandler struct {
	BaseHandler
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

func (h *CatalogHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.GET("/faculty", h.ListFaculty)
	rg.GET("/testimonials", h.ListTestimonials)
	rg.GET("/placements", h.ListPlacements)
	rg.GET("/faqs", h.ListFAQs)
	rg.GET("/faq-categories", h.ListFAQCategories)
}

func (h *CatalogHandler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	content := middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleContentWriter)

	faculty := rg.Group("/faculty", content)
	{
		faculty.POST("", h.CreateFaculty)
		faculty.PUT("/:id", h.UpdateFaculty)
		faculty.DELETE("/:id", h.DeleteFaculty)
	}

	testimonials := rg.Group("/testimonials", content)
	{
		testimonials.POST("", h.CreateTestimonial)
		testimonials.DELETE("/:id", h.DeleteTestimonial)
	}

	placements := rg.Group("/placements", content)
	{
		placements.POST("", h.CreatePlacement)
		placements.DELETE("/:id", h.DeletePlacement)
	}

	faqs := rg.Group("/faqs", content)
	{
		faqs.POST("", h.CreateFAQ)
		faqs.DELETE("/:id", h.DeleteFAQ)
	}

	faqCategories := rg.Group("/faq-categories", content)
	{
		faqCategories.POST("", h.CreateFAQCategory)
		faqCategories.DELETE("/:id", h.DeleteFAQCategory)
	}
}

func (h *CatalogHandler) CreateFaculty(c *gin.Context) {
	var req dto.CreateFacultyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	faculty, err := h.catalogService.CreateFaculty(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, faculty)
}

func (h *CatalogHandler) ListFaculty(c *gin.Context) {
	faculty, err := h.catalogService.ListFaculty(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, faculty)
}

func (h *CatalogHandler) UpdateFaculty(c *gin.Context) {
	var req dto.UpdateFacultyRequest
	if !h.BindJSON(c, &req) {
		return
	}

	if err := h.catalogService.UpdateFaculty(c.Request.Context(), h.GetDB(c), c.Param("id"), &req); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CatalogHandler) DeleteFaculty(c *gin.Context) {
	if err := h.catalogService.DeleteFaculty(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CatalogHandler) CreateTestimonial(c *gin.Context) {
	var req dto.CreateTestimonialRequest
	if !h.BindJSON(c, &req) {
		return
	}

	testimonial, err := h.catalogService.CreateTestimonial(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, testimonial)
}

func (h *CatalogHandler) ListTestimonials(c *gin.Context) {
	testimonials, err := h.catalogService.ListTestimonials(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, testimonials)
}

func (h *CatalogHandler) DeleteTestimonial(c *gin.Context) {
	if err := h.catalogService.DeleteTestimonial(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CatalogHandler) CreatePlacement(c *gin.Context) {
	var req dto.CreatePlacementRequest
	if !h.BindJSON(c, &req) {
		return
	}

	placement, err := h.catalogService.CreatePlacement(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, placement)
}

func (h *CatalogHandler) ListPlacements(c *gin.Context) {
	placements, err := h.catalogService.ListPlacements(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, placements)
}

func (h *CatalogHandler) DeletePlacement(c *gin.Context) {
	if err := h.catalogService.DeletePlacement(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CatalogHandler) CreateFAQ(c *gin.Context) {
	var req dto.CreateFAQRequest
	if !h.BindJSON(c, &req) {
		return
	}

	faq, err := h.catalogService.CreateFAQ(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, faq)
}

func (h *CatalogHandler) ListFAQs(c *gin.Context) {
	faqs, err := h.catalogService.ListFAQs(c.Request.Context(), h.GetDB(c), c.Query("category_id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, faqs)
}

func (h *CatalogHandler) DeleteFAQ(c *gin.Context) {
	if err := h.catalogService.DeleteFAQ(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}

func (h *CatalogHandler) CreateFAQCategory(c *gin.Context) {
	var req dto.CreateCategoryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	category, err := h.catalogService.CreateFAQCategory(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, category)
}

func (h *CatalogHandler) ListFAQCategories(c *gin.Context) {
	categories, err := h.catalogService.ListFAQCategories(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, categories)
}

func (h *CatalogHandler) DeleteFAQCategory(c *gin.Context) {
	if err := h.catalogService.DeleteFAQCategory(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
