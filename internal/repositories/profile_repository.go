package repositories

import (
	"context"
	"errors"

	"internship_backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.Profile) error
	FindByStudentID(ctx context.Context, studentID string) (*models.Profile, error)
}

type ProfileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &ProfileRepositoryImpl{db: db}
}

// Upsert creates or overwrites the profile keyed by student_id. ResumeURL
// is only written when set, so saving without a new file keeps the
// previously uploaded resume.
func (r *ProfileRepositoryImpl) Upsert(ctx context.Context, profile *models.Profile) error {
	columns := []string{"age", "gender", "skills", "interests", "goal_companies", "bio", "updated_at"}
	if profile.ResumeURL != "" {
		columns = append(columns, "resume_url")
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "student_id"}},
		DoUpdates: clause.AssignmentColumns(columns),
	}).Create(profile).Error
}

func (r *ProfileRepositoryImpl) FindByStudentID(ctx context.Context, studentID string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).Preload("Student").
		First(&profile, "student_id = ?", studentID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}
