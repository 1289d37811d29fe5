package repositories

import (
	"context"
	"errors"

	"internship_backend/internal/models"

	"gorm.io/gorm"
)

type InternshipRepository interface {
	Create(ctx context.Context, internship *models.Internship) error
	FindByID(ctx context.Context, id string) (*models.Internship, error)
	FindAll(ctx context.Context) ([]models.Internship, error)
	CountByLocation(ctx context.Context) ([]models.LocationCount, error)
}

type InternshipRepositoryImpl struct {
	db *gorm.DB
}

func NewInternshipRepository(db *gorm.DB) InternshipRepository {
	return &InternshipRepositoryImpl{db: db}
}

func (r *InternshipRepositoryImpl) Create(ctx context.Context, internship *models.Internship) error {
	return r.db.WithContext(ctx).Create(internship).Error
}

func (r *InternshipRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Internship, error) {
	var internship models.Internship
	err := r.db.WithContext(ctx).First(&internship, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInternshipNotFound
		}
		return nil, err
	}
	return &internship, nil
}

// FindAll returns every listing with the posting company preloaded so
// the catalog can show company name and email.
func (r *InternshipRepositoryImpl) FindAll(ctx context.Context) ([]models.Internship, error) {
	var internships []models.Internship
	err := r.db.WithContext(ctx).Preload("Company").
		Order("created_at DESC").Find(&internships).Error
	return internships, err
}

// CountByLocation groups listings by (city, state), sorted by state then
// city for stable presentation.
func (r *InternshipRepositoryImpl) CountByLocation(ctx context.Context) ([]models.LocationCount, error) {
	var counts []models.LocationCount
	err := r.db.WithContext(ctx).Model(&models.Internship{}).
		Select("location_city AS city, location_state AS state, COUNT(*) AS total_internships").
		Group("location_city, location_state").
		Order("location_state, location_city").
		Scan(&counts).Error
	return counts, err
}
