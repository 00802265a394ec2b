package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vakif/backend/internal/domain/finance"
	"github.com/vakif/backend/internal/infrastructure/persistence/models"
)

// GormCategoryRepository implements finance.CategoryRepository using GORM
type GormCategoryRepository struct {
	db *gorm.DB
}

// NewGormCategoryRepository creates a new GormCategoryRepository
func NewGormCategoryRepository(db *gorm.DB) *GormCategoryRepository {
	return &GormCategoryRepository{db: db}
}

// FindAllByFacility returns every category for the facility
func (r *GormCategoryRepository) FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]finance.Category, error) {
	var records []models.CategoryModel
	if err := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("name ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	categories := make([]finance.Category, 0, len(records))
	for i := range records {
		categories = append(categories, records[i].ToDomain())
	}
	return categories, nil
}
