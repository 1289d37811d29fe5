package routes

import (
	"net/http"

	"internship_backend/internal/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the REST API, the health probe, and the static
// resume files. authn is the identity resolution middleware shared by
// every protected group.
func RegisterRoutes(router *gin.Engine, appHandlers *handlers.AppHandlers, authn gin.HandlerFunc, uploadsDir string) {
	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "API is running...")
	})

	api := router.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api, authn)
		appHandlers.InternshipHandler.RegisterRoutes(api, authn)
		appHandlers.ApplicationHandler.RegisterRoutes(api, authn)
		appHandlers.ProfileHandler.RegisterRoutes(api, authn)
	}

	// Uploaded resumes are public static files under /uploads.
	router.Static("/uploads", uploadsDir)
}
