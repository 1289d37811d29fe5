package dto

type LocationRequest struct {
	City  string `json:"city" validate:"required"`
	State string `json:"state" validate:"required"`
}

type CreateInternshipRequest struct {
	Title    string          `json:"title" validate:"required"`
	Sector   string          `json:"sector" validate:"required"`
	Openings int             `json:"openings" validate:"required,min=1"`
	Location LocationRequest `json:"location" validate:"required"`
	// Deadline accepts "2006-01-02" or RFC3339.
	Deadline string `json:"deadline" validate:"required"`
}
