package handlers

import (
	"github.com/gin-gonic/gin"

	"edubridge_backend/internal/middleware"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/services"
	"edubridge_backend/internal/services/dto"
)

// EnquiryHandler routes student leads. The public form feeds Create; the
// staff surface is split by role: admins see and manage everything,
// counselors work their own assignments, agents follow their referrals
// read-only.
type EnquiryHandler struct {
	BaseHandler
	enquiryService *services.EnquiryService
}

func NewEnquiryHandler(enquiryService *services.EnquiryService) *EnquiryHandler {
	return &EnquiryHandler{enquiryService: enquiryService}
}

func (h *EnquiryHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/enquiries", h.Create)
}

func (h *EnquiryHandler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	enquiries := rg.Group("/enquiries")
	{
		view := middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleCounselor, models.UserRoleAgent)
		work := middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleCounselor)
		admin := middleware.RequireRoles(models.UserRoleAdmin)

		enquiries.GET("", view, h.List)
		enquiries.GET("/counts", admin, h.GetCounts)
		enquiries.GET("/:id", view, h.GetByID)

		enquiries.PATCH("/:id/status", work, h.ChangeStatus)
		enquiries.PATCH("/:id/notes", work, h.UpdateNotes)

		enquiries.POST("/:id/assign", admin, h.Assign)
		enquiries.POST("/:id/unassign", admin, h.Unassign)
		enquiries.PUT("/:id", admin, h.Update)
		enquiries.DELETE("/:id", admin, h.Delete)
	}
}

func (h *EnquiryHandler) Create(c *gin.Context) {
	var req dto.CreateEnquiryRequest
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

func (h *EnquiryHandler) List(c *gin.Context) {
	var q dto.EnquiryListQuery
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

func (h *EnquiryHandler) GetCounts(c *gin.Context) {
	counts, err := h.enquiryService.GetCounts(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, counts)
}

func (h *EnquiryHandler) GetByID(c *gin.Context) {
	resp, err := h.enquiryService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"), enquiryScope(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *EnquiryHandler) ChangeStatus(c *gin.Context) {
	var req dto.ChangeEnquiryStatusRequest
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

func (h *EnquiryHandler) UpdateNotes(c *gin.Context) {
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

func (h *EnquiryHandler) Assign(c *gin.Context) {
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

func (h *EnquiryHandler) Unassign(c *gin.Context) {
	resp, err := h.enquiryService.Unassign(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *EnquiryHandler) Update(c *gin.Context) {
	var req dto.UpdateEnquiryRequest
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

func (h *EnquiryHandler) Delete(c *gin.Context) {
	if err := h.enquiryService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
