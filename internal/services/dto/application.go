package dto

import (
	"time"

	"internship_backend/internal/models"
)

type ApplyRequest struct {
	InternshipID string `json:"internshipId" validate:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// InternshipSummary is the internship projection attached to applicant
// listings (title and sector only, mirroring the populated read).
type InternshipSummary struct {
	ID     string `json:"id"`
	Title  string `json:"title"`
	Sector string `json:"sector"`
}

type ApplicationResponse struct {
	ID         string                   `json:"id"`
	Status     models.ApplicationStatus `json:"status"`
	AppliedAt  time.Time                `json:"appliedAt"`
	Student    *models.PublicUser       `json:"student,omitempty"`
	Internship *InternshipSummary       `json:"internship,omitempty"`
}

// NewApplicationResponse flattens a preloaded Application row.
func NewApplicationResponse(a *models.Application) ApplicationResponse {
	resp := ApplicationResponse{
		ID:        a.ID,
		Status:    a.Status,
		AppliedAt: a.AppliedAt,
	}
	if a.Student != nil {
		pub := a.Student.Public()
		resp.Student = &pub
	}
	if a.Internship != nil {
		resp.Internship = &InternshipSummary{
			ID:     a.Internship.ID,
			Title:  a.Internship.Title,
			Sector: a.Internship.Sector,
		}
	}
	return resp
}
