package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vakif/backend/internal/domain/project"
	"github.com/vakif/backend/internal/infrastructure/persistence/models"
)

// GormProjectRepository implements project.Repository using GORM
type GormProjectRepository struct {
	db *gorm.DB
}

// NewGormProjectRepository creates a new GormProjectRepository
func NewGormProjectRepository(db *gorm.DB) *GormProjectRepository {
	return &GormProjectRepository{db: db}
}

// FindAllByFacility returns every project for the facility
func (r *GormProjectRepository) FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]project.Project, error) {
	var records []models.ProjectModel
	if err := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("start_date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	projects := make([]project.Project, 0, len(records))
	for i := range records {
		projects = append(projects, records[i].ToDomain())
	}
	return projects, nil
}
