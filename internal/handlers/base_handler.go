package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"edubridge_backend/internal/middleware"
	"edubridge_backend/internal/models"
	"edubridge_backend/internal/services"
	"edubridge_backend/pkg/apperrors"
	"edubridge_backend/pkg/contextkeys"
)

// SuccessResponse is the standard success envelope, the mirror of
// apperrors.ErrorResponse.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
}

// BaseHandler carries the helpers shared by every handler.
type BaseHandler struct{}

// GetDB returns the request-scoped database handle placed by DBMiddleware.
func (h *BaseHandler) GetDB(c *gin.Context) *gorm.DB {
	db, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		return nil
	}
	return db.(*gorm.DB)
}

// BindJSON decodes the request body. On failure it writes a 400 and
// returns false; struct-level validation stays in the services.
func (h *BaseHandler) BindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid request body: "+err.Error()))
		return false
	}
	return true
}

// BindQuery decodes query parameters into obj.
func (h *BaseHandler) BindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Invalid query parameters: "+err.Error()))
		return false
	}
	return true
}

// Error writes a service error through the shared error handler.
func (h *BaseHandler) Error(c *gin.Context, err error) {
	apperrors.HandleError(c, err)
}

func (h *BaseHandler) OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, SuccessResponse{Success: true, Data: data})
}

func (h *BaseHandler) Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, SuccessResponse{Success: true, Data: data})
}

func (h *BaseHandler) NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// enquiryScope derives the visibility scope from the authenticated role:
// counselors and HR only see their own assignments, agents their own
// referrals, admins everything.
func enquiryScope(c *gin.Context) services.ListScope {
	switch middleware.GetRole(c) {
	case models.UserRoleCounselor, models.UserRoleHR:
		return services.ListScope{AssignedToID: middleware.GetUserID(c)}
	case models.UserRoleAgent:
		return services.ListScope{AgentID: middleware.GetUserID(c)}
	default:
		return services.ListScope{}
	}
}
