package handlers

import (
	"net/http"

	"internship_backend/internal/middleware"
	"internship_backend/internal/models"
	"internship_backend/internal/services"
	"internship_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	studentOnly := middleware.RequireRole(models.UserRoleStudent)
	companyOnly := middleware.RequireRole(models.UserRoleCompany)

	applications := rg.Group("/applications", authn)
	{
		applications.POST("", studentOnly, h.Apply)
		applications.GET("/student/:studentId", companyOnly, h.GetStudent)
		applications.GET("/:internshipId", companyOnly, h.ListApplicants)
		applications.PUT("/status/:applicationId", companyOnly, h.UpdateStatus)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Application submitted",
		"application": application,
	})
}

func (h *ApplicationHandler) ListApplicants(c *gin.Context) {
	applications, err := h.applicationService.ListApplicants(
		c.Request.Context(), middleware.GetUserID(c), c.Param("internshipId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, applications)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.SetStatus(
		c.Request.Context(), middleware.GetUserID(c), c.Param("applicationId"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Application status updated",
		"application": application,
	})
}

func (h *ApplicationHandler) GetStudent(c *gin.Context) {
	student, err := h.applicationService.GetStudent(c.Request.Context(), c.Param("studentId"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}
