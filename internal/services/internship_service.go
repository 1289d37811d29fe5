package services

import (
	"context"
	"time"

	"internship_backend/internal/apperrors"
	"internship_backend/internal/models"
	"internship_backend/internal/repositories"
	"internship_backend/internal/services/dto"
)

type InternshipService interface {
	Create(ctx context.Context, companyID string, req *dto.CreateInternshipRequest) (*models.Internship, error)
	List(ctx context.Context) ([]models.Internship, error)
	CountByLocation(ctx context.Context) ([]models.LocationCount, error)
}

type InternshipServiceImpl struct {
	internshipRepo repositories.InternshipRepository
}

func NewInternshipService(internshipRepo repositories.InternshipRepository) InternshipService {
	return &InternshipServiceImpl{internshipRepo: internshipRepo}
}

func (s *InternshipServiceImpl) Create(ctx context.Context, companyID string, req *dto.CreateInternshipRequest) (*models.Internship, error) {
	deadline, err := parseDeadline(req.Deadline)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid deadline: use YYYY-MM-DD")
	}

	internship := &models.Internship{
		CompanyID: companyID,
		Title:     req.Title,
		Sector:    req.Sector,
		Openings:  req.Openings,
		Location: models.Location{
			City:  req.Location.City,
			State: req.Location.State,
		},
		Deadline: deadline,
	}

	if err := s.internshipRepo.Create(ctx, internship); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return internship, nil
}

func (s *InternshipServiceImpl) List(ctx context.Context) ([]models.Internship, error) {
	internships, err := s.internshipRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	// Strip what the catalog does not expose about the posting company.
	for i := range internships {
		if c := internships[i].Company; c != nil {
			internships[i].Company = &models.User{
				BaseModel: models.BaseModel{ID: c.ID},
				Name:      c.Name,
				Email:     c.Email,
			}
		}
	}
	return internships, nil
}

func (s *InternshipServiceImpl) CountByLocation(ctx context.Context) ([]models.LocationCount, error) {
	counts, err := s.internshipRepo.CountByLocation(ctx)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if counts == nil {
		counts = []models.LocationCount{}
	}
	return counts, nil
}

func parseDeadline(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, value)
}
