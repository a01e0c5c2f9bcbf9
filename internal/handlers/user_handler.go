package handlers

import (
	"github.com/gin-gonic/gin"

	"edubridge_backend/internal/middleware"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/services"
	"edubridge_backend/internal/services/dto"
)

// UserHandler exposes the staff directory, admin only.
type UserHandler struct {
	BaseHandler
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) RegisterStaffRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users", middleware.RequireRoles(models.UserRoleAdmin))
	{
		users.POST("", h.Create)
		users.GET("", h.List)
		users.GET("/assignable", h.ListAssignable)
		users.GET("/:id", h.GetByID)
		users.PUT("/:id", h.Update)
		users.POST("/:id/ban", h.Ban)
		users.POST("/:id/unban", h.Unban)
		users.DELETE("/:id", h.Delete)
	}
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.userService.Create(c.Request.Context(), h.GetDB(c), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.Created(c, resp)
}

func (h *UserHandler) List(c *gin.Context) {
	var q dto.UserListQuery
	if !h.BindQuery(c, &q) {
		return
	}

	resp, err := h.userService.List(c.Request.Context(), h.GetDB(c), &q)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

// ListAssignable backs the assignment dropdowns, filtered by role.
func (h *UserHandler) ListAssignable(c *gin.Context) {
	role := models.UserRole(c.Query("role"))

	resp, err := h.userService.ListAssignable(c.Request.Context(), h.GetDB(c), role)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *UserHandler) GetByID(c *gin.Context) {
	resp, err := h.userService.GetByID(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.userService.Update(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *UserHandler) Ban(c *gin.Context) {
	var req dto.BanUserRequest
	if !h.BindJSON(c, &req) {
		return
	}

	resp, err := h.userService.Ban(c.Request.Context(), h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *UserHandler) Unban(c *gin.Context) {
	resp, err := h.userService.Unban(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.Error(c, err)
		return
	}
	h.OK(c, resp)
}

func (h *UserHandler) Delete(c *gin.Context) {
	if err := h.userService.Delete(c.Request.Context(), h.GetDB(c), c.Param("id")); err != nil {
		h.Error(c, err)
		return
	}
	h.NoContent(c)
}
