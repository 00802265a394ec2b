package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vakif/backend/internal/domain/qurban"
	"github.com/vakif/backend/internal/infrastructure/persistence/models"
)

// GormShareRepository implements qurban.ShareRepository using GORM
type GormShareRepository struct {
	db *gorm.DB
}

// NewGormShareRepository creates a new GormShareRepository
func NewGormShareRepository(db *gorm.DB) *GormShareRepository {
	return &GormShareRepository{db: db}
}

// FindAllByFacility returns every qurban share for the facility
func (r *GormShareRepository) FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]qurban.Share, error) {
	var records []models.QurbanShareModel
	if err := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("sold_at ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	shares := make([]qurban.Share, 0, len(records))
	for i := range records {
		shares = append(shares, records[i].ToDomain())
	}
	return shares, nil
}

// GormDistributionRepository implements qurban.DistributionRepository using GORM
type GormDistributionRepository struct {
	db *gorm.DB
}

// NewGormDistributionRepository creates a new GormDistributionRepository
func NewGormDistributionRepository(db *gorm.DB) *GormDistributionRepository {
	return &GormDistributionRepository{db: db}
}

// FindAllByFacility returns every distribution event for the facility
func (r *GormDistributionRepository) FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]qurban.Distribution, error) {
	var records []models.QurbanDistributionModel
	if err := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	distributions := make([]qurban.Distribution, 0, len(records))
	for i := range records {
		distributions = append(distributions, records[i].ToDomain())
	}
	return distributions, nil
}
