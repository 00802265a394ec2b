package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vakif/backend/internal/domain/finance"
	"github.com/vakif/backend/internal/infrastructure/persistence/models"
)

// GormBudgetRepository implements finance.BudgetRepository using GORM
type GormBudgetRepository struct {
	db *gorm.DB
}

// NewGormBudgetRepository creates a new GormBudgetRepository
func NewGormBudgetRepository(db *gorm.DB) *GormBudgetRepository {
	return &GormBudgetRepository{db: db}
}

// FindAllByFacility returns every budget for the facility
func (r *GormBudgetRepository) FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]finance.Budget, error) {
	var records []models.BudgetModel
	if err := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("start_date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	budgets := make([]finance.Budget, 0, len(records))
	for i := range records {
		budgets = append(budgets, records[i].ToDomain())
	}
	return budgets, nil
}
