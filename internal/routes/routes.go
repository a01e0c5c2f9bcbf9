package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"edubridge_backend/internal/database"
	"edubridge_backend/internal/handlers"
	"edubridge_backend/internal/middleware"
)

// RegisterRoutes mounts the public surface under /api/v1 and the staff
// surface under /api/v1/staff behind JWT auth.
func RegisterRoutes(r *gin.Engine, h *handlers.AppHandlers, db *gorm.DB) {
	r.GET("/healthz", func(c *gin.Context) {
		if err := database.HealthCheck(db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := r.Group("/api/v1")
	{
		h.Auth.RegisterPublicRoutes(public)
		h.Enquiry.RegisterPublicRoutes(public)
		h.Enterprise.RegisterPublicRoutes(public)
		h.Faculty.RegisterPublicRoutes(public)
		h.Course.RegisterPublicRoutes(public)
		h.Blog.RegisterPublicRoutes(public)
		h.Catalog.RegisterPublicRoutes(public)
	}

	staff := r.Group("/api/v1/staff", middleware.AuthMiddleware())
	{
		h.Auth.RegisterStaffRoutes(staff)
		h.User.RegisterStaffRoutes(staff)
		h.Enquiry.RegisterStaffRoutes(staff)
		h.Enterprise.RegisterStaffRoutes(staff)
		h.Faculty.RegisterStaffRoutes(staff)
		h.Course.RegisterStaffRoutes(staff)
		h.Blog.RegisterStaffRoutes(staff)
		h.Catalog.RegisterStaffRoutes(staff)
	}
}
