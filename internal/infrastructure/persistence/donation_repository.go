package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/vakif/backend/internal/domain/donation"
	"github.com/vakif/backend/internal/infrastructure/persistence/models"
)

// GormDonationRepository implements donation.Repository using GORM
type GormDonationRepository struct {
	db *gorm.DB
}

// NewGormDonationRepository creates a new GormDonationRepository
func NewGormDonationRepository(db *gorm.DB) *GormDonationRepository {
	return &GormDonationRepository{db: db}
}

// FindAllByFacility returns every donation for the facility
func (r *GormDonationRepository) FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]donation.Donation, error) {
	var records []models.DonationModel
	if err := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	donations := make([]donation.Donation, 0, len(records))
	for i := range records {
		donations = append(donations, records[i].ToDomain())
	}
	return donations, nil
}

// GormCampaignRepository implements donation.CampaignRepository using GORM
type GormCampaignRepository struct {
	db *gorm.DB
}

// NewGormCampaignRepository creates a new GormCampaignRepository
func NewGormCampaignRepository(db *gorm.DB) *GormCampaignRepository {
	return &GormCampaignRepository{db: db}
}

// FindAllByFacility returns every campaign for the facility
func (r *GormCampaignRepository) FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]donation.Campaign, error) {
	var records []models.CampaignModel
	if err := r.db.WithContext(ctx).
		Where("facility_id = ?", facilityID).
		Order("start_date ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	campaigns := make([]donation.Campaign, 0, len(records))
	for i := range records {
		campaigns = append(campaigns, records[i].ToDomain())
	}
	return campaigns, nil
}
