package handlers

import (
	"github.com/gin-gonic/gin"

	"edubridge_backend/internal/middleware"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/services"
	"edubridge_backend/internal/services/dto"
)

// FacultyEnquiryHandler routes instructor applications, worked by HR.
type FacultyEnquiryHandler struct {
	BaseHandler
	enquiryService *services.FacultyEnquiryService
}

func NewFacultyEnquiryHandler(enquiryService *services.FacultyEnquiryService) *FacultyEnquiryHandler {
	return &FacultyEnquiryHandler{enquiryService: enquiryService}
}

func (h *FacultyEnquiryHandler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/faculty-enquiries", h.Create)
}

func (h *FacultyEnquiryHandler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	enquiries := rg.Group("/faculty-enquiries")
	{
		work := middleware.RequireRoles(models.UserRoleAdmin, models.UserRoleHR)
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

func (h *FacultyEnquiryHandler) Create(c *gin.Context) {
	var req dto.CreateFacultyEnquiryRequest
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

func (h *FacultyEnquiryHandler) List(c *gin.Context) {
	var q dto.FacultyEnquiryListQuery
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

func (h *FacultyEnquiryHandler) GetCounts(c *gin.Context) {
	counts, err := h.enquiryService.GetCounts(c.Request.Context(), h.GetDB(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, counts)
}

func (h *FacultyEnquiryHandler) GetByID(c *gin.Context) {
	resp, err := h.enquiryService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"), enquiryScope(c))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *FacultyEnquiryHandler) ChangeStatus(c *gin.Context) {
	var req dto.ChangeFacultyStatusRequest
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

func (h *FacultyEnquiryHandler) UpdateNotes(c *gin.Context) {
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

func (h *FacultyEnquiryHandler) Assign(c *gin.Context) {
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

func (h *FacultyEnquiryHandler) Unassign(c *gin.Context) {
	resp, err := h.enquiryService.Unassign(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *FacultyEnquiryHandler) Update(c *gin.Context) {
	var req dto.UpdateFacultyEnquiryRequest
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

func (h *FacultyEnquiryHandler) Delete(c *gin.Context) {
	if err := h.enquiryService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
