package handlers

import (
	"github.com/gin-gonic/gin"

	"edubridge_backend/internal/middleware"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/services"
	"edubridge_backend/internal/services/dto"
)

// EnterpriseEnquiryHandler routes corporate training leads. Counselors and
// HR both work these, scoped to their own assignments.
type EnterpriseEnquiryHandler struct {
	BaseHandler
	enquiryService *services.EnterpriseEnquiryService
}

func NewEnterpriseEnquiryHandler(enquiryService *services.EnterpriseEnquiryService) *EnterpriseEnquiryHandler {
	return &EnterpriseEnquiryHandler{enquiryService: enquiryService}
}

func (h *EnterpriseEnquiryHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/enterprise-enquiries", h.Create)
}

func (h *EnterpriseEnquiryHandler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	enquiries := rg.Group("/enterprise-enquiries")
	{
		work := middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleCounselor, models.UserRoleHR)
		admin := middleware.RequireRoles(models.UserRoleAdmin)

		enquiries.GET("", work, h.List)
		enquiries.GET("/counts", admin, h.GetCounts)
		enquiries.GET("/:id", work, h.GetByID)

		enquiries.PATCH("/:id/status", work, h.ChangeStatus)
		enquiries.PATCH("/:id/notes", work, h.UpdateNotes)

		enquiries.POST("/:id/assign", admin, h.Assign)
		enquiries.POST("/:id/unassign", admin, h.Unassign)
		enquiries.PUT("/:id", admin, h.Update)
		enquiries.DELETE("/:id", admin, h.Delete)
	}
}

func (h *EnterpriseEnquiryHandler) Create(c *gin.Context) {
	var req dto.CreateEnterpriseEnquiryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.enquiryService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *EnterpriseEnquiryHandler) List(c *gin.Context) {
	var q dto.EnterpriseEnquiryListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	resp, err := h.enquiryService.List(c.Request.Context(), h.GetDB(c), &q, enquiryScope(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *EnterpriseEnquiryHandler) GetCounts(c *gin.Context) {
	counts, err := h.enquiryService.GetCounts(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, counts)
}

func (h *EnterpriseEnquiryHandler) GetByID(c *gin.Context) {
	resp, err := h.enquiryService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"), enquiryScope(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *EnterpriseEnquiryHandler) ChangeStatus(c *gin.Context) {
	var req dto.ChangeEnterpriseStatusRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.enquiryService.ChangeStatus(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, enquiryScope(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *EnterpriseEnquiryHandler) UpdateNotes(c *gin.Context) {
	var req dto.UpdateNotesRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.enquiryService.UpdateNotes(c.Request.Context(), h.GetDB(c), c.Param("id"), &req, enquiryScope(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *EnterpriseEnquiryHandler) Assign(c *gin.Context) {
	var req dto.AssignEnquiryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.enquiryService.Assign(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *EnterpriseEnquiryHandler) Unassign(c *gin.Context) {
	resp, err := h.enquiryService.Unassign(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *EnterpriseEnquiryHandler) Update(c *gin.Context) {
	var req dto.UpdateEnterpriseEnquiryRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.enquiryService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *EnterpriseEnquiryHandler) Delete(c *gin.Context) {
	if err := h.enquiryService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
