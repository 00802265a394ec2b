package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/vakif/backend/internal/domain/qurban"
)

// QurbanShareModel is the persistence model for qurban shares.
type QurbanShareModel struct {
	FacilityModel
	BuyerName   string             `gorm:"type:varchar(200)"`
	Price       decimal.Decimal    `gorm:"type:decimal(18,4);not null"`
	SoldAt      time.Time          `gorm:"type:date;not null;index"`
	Status      qurban.ShareStatus `gorm:"type:varchar(20);not null;default:'reserved';index"`
	PeriodLabel string             `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (QurbanShareModel) TableName() string {
	return "qurban_shares"
}

// ToDomain converts the persistence model to a domain Share.
func (m *QurbanShareModel) ToDomain() qurban.Share {
	return qurban.Share{
		ID:          m.ID,
		FacilityID:  m.FacilityID,
		BuyerName:   m.BuyerName,
		Price:       m.Price,
		SoldAt:      m.SoldAt,
		Status:      m.Status,
		PeriodLabel: m.PeriodLabel,
	}
}

// QurbanDistributionModel is the persistence model for distribution events.
type QurbanDistributionModel struct {
	FacilityModel
	Region     string                    `gorm:"type:varchar(100)"`
	Date       time.Time                 `gorm:"type:date;not null"`
	Households int                       `gorm:"not null;default:0"`
	Status     qurban.DistributionStatus `gorm:"type:varchar(20);not null;default:'planned';index"`
}

// TableName returns the table name for GORM
func (QurbanDistributionModel) TableName() string {
	return "qurban_distributions"
}

// ToDomain converts the persistence model to a domain Distribution.
func (m *QurbanDistributionModel) ToDomain() qurban.Distribution {
	return qurban.Distribution{
		ID:         m.ID,
		FacilityID: m.FacilityID,
		Region:     m.Region,
		Date:       m.Date,
		Households: m.Households,
		Status:     m.Status,
	}
}
