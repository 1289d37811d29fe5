package handlers

import (
	"net/http"

	"internship_backend/internal/apperrors"
	"internship_backend/internal/middleware"
	"internship_backend/internal/models"
	"internship_backend/internal/services"
	"internship_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// maxResumeSize caps resume uploads at 10MB.
const maxResumeSize = 10 << 20

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, authn gin.HandlerFunc) {
	profile := rg.Group("/profile", authn, middleware.RequireRole(models.UserRoleStudent))
	{
		profile.POST("", h.Save)
		profile.GET("", h.GetMine)
	}
}

// Save upserts the student's profile from a multipart form. An optional
// "resume" file replaces the stored resume reference.
func (h *ProfileHandler) Save(c *gin.Context) {
	var form dto.ProfileForm
	if !h.BindAndValidateForm(c, &form) {
		return
	}

	var resume *services.ResumeUpload
	if fileHeader, err := c.FormFile("resume"); err == nil {
		if fileHeader.Size > maxResumeSize {
			h.HandleServiceError(c, apperrors.NewBadRequestError("Resume file too large"))
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			h.HandleServiceError(c, apperrors.InternalError(err))
			return
		}
		defer file.Close()
		resume = &services.ResumeUpload{
			Filename: fileHeader.Filename,
			Reader:   file,
		}
	}

	profile, err := h.profileService.Upsert(c.Request.Context(), middleware.GetUserID(c), &form, resume)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile saved successfully",
		"profile": profile,
	})
}

func (h *ProfileHandler) GetMine(c *gin.Context) {
	profile, err := h.profileService.GetByStudent(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
