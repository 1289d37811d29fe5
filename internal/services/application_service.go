package services

import (
	"context"

	"internship_backend/internal/apperrors"
	"internship_backend/internal/models"
	"internship_backend/internal/repositories"
	"internship_backend/internal/services/dto"
)

type ApplicationService interface {
	Apply(ctx context.Context, studentID string, req *dto.ApplyRequest) (*models.Application, error)
	ListApplicants(ctx context.Context, companyID, internshipID string) ([]dto.ApplicationResponse, error)
	SetStatus(ctx context.Context, companyID, applicationID string, req *dto.UpdateStatusRequest) (*dto.ApplicationResponse, error)
	GetStudent(ctx context.Context, studentID string) (*models.PublicUser, error)
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	internshipRepo  repositories.InternshipRepository
	userRepo        repositories.UserRepository
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	internshipRepo repositories.InternshipRepository,
	userRepo repositories.UserRepository,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		internshipRepo:  internshipRepo,
		userRepo:        userRepo,
	}
}

// Apply creates a pending application for (studentID, internship). The
// one-application-per-pair invariant is enforced by the storage layer, so
// concurrent applies cannot both slip past a pre-check.
func (s *ApplicationServiceImpl) Apply(ctx context.Context, studentID string, req *dto.ApplyRequest) (*models.Application, error) {
	if _, err := s.internshipRepo.FindByID(ctx, req.InternshipID); err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	application := &models.Application{
		InternshipID: req.InternshipID,
		StudentID:    studentID,
		Status:       models.ApplicationStatusPending,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationExists) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	return application, nil
}

// ListApplicants returns the applications for an internship with student
// and internship fields populated. Only the company owning the internship
// may read them.
func (s *ApplicationServiceImpl) ListApplicants(ctx context.Context, companyID, internshipID string) ([]dto.ApplicationResponse, error) {
	internship, err := s.internshipRepo.FindByID(ctx, internshipID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrInternshipNotFound) {
			return nil, apperrors.ErrInternshipNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if internship.CompanyID != companyID {
		return nil, apperrors.NewForbiddenError("Access denied: not your internship")
	}

	applications, err := s.applicationRepo.FindByInternship(ctx, internshipID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	responses := make([]dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		responses = append(responses, dto.NewApplicationResponse(&applications[i]))
	}
	return responses, nil
}

// SetStatus records the company's decision. Accepted inputs are the two
// terminal statuses; a company may revise a decision between them, but
// nothing ever moves back to pending. Ownership of the internship behind
// the application is required.
func (s *ApplicationServiceImpl) SetStatus(ctx context.Context, companyID, applicationID string, req *dto.UpdateStatusRequest) (*dto.ApplicationResponse, error) {
	status := models.ApplicationStatus(req.Status)
	if !models.TerminalStatus(status) {
		return nil, apperrors.ErrInvalidStatus
	}

	application, err := s.applicationRepo.FindByID(ctx, applicationID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if application.Internship == nil || application.Internship.CompanyID != companyID {
		return nil, apperrors.NewForbiddenError("Access denied: not your internship")
	}

	if err := s.applicationRepo.UpdateStatus(ctx, applicationID, status); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	application.Status = status
	resp := dto.NewApplicationResponse(application)
	return &resp, nil
}

// GetStudent is the company-only read of a student's account fields. The
// password hash never leaves the service.
func (s *ApplicationServiceImpl) GetStudent(ctx context.Context, studentID string) (*models.PublicUser, error) {
	user, err := s.userRepo.FindByID(ctx, studentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	if user.Role != models.UserRoleStudent {
		return nil, apperrors.ErrStudentNotFound
	}

	pub := user.Public()
	return &pub, nil
}
