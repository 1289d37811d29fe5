package handlers

import (
	"net/http"

	"internship_backend/internal/middleware"
	"internship_backend/internal/models"
	"internship_backend/internal/services"
	"internship_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type InternshipHandler struct {
	*BaseHandler
	internshipService services.InternshipService
}

func NewInternshipHandler(base *BaseHandler, internshipService services.InternshipService) *InternshipHandler {
	return &InternshipHandler{
		BaseHandler:       base,
		internshipService: internshipService,
	}
}

func (h *InternshipHandler) RegisterRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	internships := rg.Group("/internships")
	{
		// The aggregated report route is registered before the auth
		// routes on purpose; it is public like the listing.
		internships.GET("/count-by-location", h.CountByLocation)
		internships.GET("", h.List)
		internships.POST("", authn, middleware.RequireRole(models.UserRoleCompany), h.Create)
	}
}

func (h *InternshipHandler) Create(c *gin.Context) {
	var req dto.CreateInternshipRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	internship, err := h.internshipService.Create(c.Request.Context(), middleware.GetUserID(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, internship)
}

func (h *InternshipHandler) List(c *gin.Context) {
	internships, err := h.internshipService.List(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, internships)
}

func (h *InternshipHandler) CountByLocation(c *gin.Context) {
	counts, err := h.internshipService.CountByLocation(c.Request.Context())
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}
