package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/vakif/backend/internal/domain/donation"
	"github.com/vakif/backend/internal/domain/shared/valueobject"
)

// DonationModel is the persistence model for donations.
type DonationModel struct {
	FacilityModel
	CampaignID   *uuid.UUID      `gorm:"type:uuid;index"`
	DonorName    string          `gorm:"type:varchar(200)"`
	Amount       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Currency     string          `gorm:"type:varchar(3);not null;default:'TRY'"`
	ExchangeRate decimal.Decimal `gorm:"type:decimal(18,6);not null;default:1"`
	Date         time.Time       `gorm:"type:date;not null;index"`
	Status       donation.Status `gorm:"type:varchar(20);not null;default:'pledged';index"`
}

// TableName returns the table name for GORM
func (DonationModel) TableName() string {
	return "donations"
}

// ToDomain converts the persistence model to a domain Donation.
func (m *DonationModel) ToDomain() donation.Donation {
	return donation.Donation{
		ID:           m.ID,
		FacilityID:   m.FacilityID,
		CampaignID:   m.CampaignID,
		DonorName:    m.DonorName,
		Amount:       m.Amount,
		Currency:     valueobject.Currency(m.Currency),
		ExchangeRate: m.ExchangeRate,
		Date:         m.Date,
		Status:       m.Status,
	}
}

// CampaignModel is the persistence model for fundraising campaigns.
type CampaignModel struct {
	FacilityModel
	Name       string                  `gorm:"type:varchar(200);not null"`
	GoalAmount decimal.Decimal         `gorm:"type:decimal(18,4);not null;default:0"`
	StartDate  time.Time               `gorm:"type:date;not null"`
	EndDate    *time.Time              `gorm:"type:date"`
	Status     donation.CampaignStatus `gorm:"type:varchar(20);not null;default:'active';index"`
}

// TableName returns the table name for GORM
func (CampaignModel) TableName() string {
	return "campaigns"
}

// ToDomain converts the persistence model to a domain Campaign.
func (m *CampaignModel) ToDomain() donation.Campaign {
	return donation.Campaign{
		ID:         m.ID,
		FacilityID: m.FacilityID,
		Name:       m.Name,
		GoalAmount: m.GoalAmount,
		StartDate:  m.StartDate,
		EndDate:    m.EndDate,
		Status:     m.Status,
	}
}
