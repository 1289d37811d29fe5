package services

import (
	"context"
	"io"
	"strings"

	"internship_backend/internal/apperrors"
	"internship_backend/internal/logger"
	"internship_backend/internal/models"
	"internship_backend/internal/repositories"
	"internship_backend/internal/services/dto"
	"internship_backend/internal/storage"
)

type ProfileService interface {
	Upsert(ctx context.Context, studentID string, form *dto.ProfileForm, resume *ResumeUpload) (*models.Profile, error)
	GetByStudent(ctx context.Context, studentID string) (*models.Profile, error)
}

// ResumeUpload is the optional file accompanying a profile save.
type ResumeUpload struct {
	Filename string
	Reader   io.Reader
}

type ProfileServiceImpl struct {
	profileRepo repositories.ProfileRepository
	files       storage.Storage
}

func NewProfileService(profileRepo repositories.ProfileRepository, files storage.Storage) ProfileService {
	return &ProfileServiceImpl{
		profileRepo: profileRepo,
		files:       files,
	}
}

// Upsert saves the student's profile, overwriting any previous one. The
// resume reference is only touched when a file accompanies the request.
func (s *ProfileServiceImpl) Upsert(ctx context.Context, studentID string, form *dto.ProfileForm, resume *ResumeUpload) (*models.Profile, error) {
	profile := &models.Profile{
		StudentID: studentID,
		Age:       form.Age,
		Gender:    models.Gender(form.Gender),
		Bio:       form.Bio,
	}
	profile.SetSkills(splitList(form.Skills))
	profile.SetInterests(splitList(form.Interests))
	profile.SetGoalCompanies(splitList(form.GoalCompanies))

	var replacedResume string
	if resume != nil {
		if existing, err := s.profileRepo.FindByStudentID(ctx, studentID); err == nil {
			replacedResume = existing.ResumeURL
		}
		url, err := s.files.Save(ctx, resume.Filename, resume.Reader)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		profile.ResumeURL = url
	}

	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		// The new resume file is already on disk; leave it and report
		// the database failure. The old reference stays live.
		return nil, apperrors.InternalError(err)
	}

	if replacedResume != "" && replacedResume != profile.ResumeURL {
		if err := s.files.Delete(ctx, replacedResume); err != nil {
			logger.CtxWarn(ctx, "failed to delete replaced resume", "url", replacedResume, "error", err.Error())
		}
	}

	saved, err := s.profileRepo.FindByStudentID(ctx, studentID)
	if err != nil {
		logger.CtxWarn(ctx, "profile saved but re-read failed", "error", err.Error())
		return profile, nil
	}
	return saved, nil
}

func (s *ProfileServiceImpl) GetByStudent(ctx context.Context, studentID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByStudentID(ctx, studentID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrProfileNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// splitList turns "go, sql ,docker" into ["go","sql","docker"].
func splitList(raw string) []string {
	items := []string{}
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
