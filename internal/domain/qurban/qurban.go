package qurban

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShareStatus represents the sale lifecycle of a qurban share
type ShareStatus string

const (
	ShareStatusReserved ShareStatus = "reserved"
	ShareStatusSold     ShareStatus = "sold"
	ShareStatusRefunded ShareStatus = "refunded"
)

// Share is one sold or reserved portion of a sacrificial animal. Price is
// expressed in the base currency.
type Share struct {
	ID          uuid.UUID
	FacilityID  uuid.UUID
	BuyerName   string
	Price       decimal.Decimal
	SoldAt      time.Time
	Status      ShareStatus
	PeriodLabel string
}

// IsSold reports whether the share counts toward sold totals.
func (s Share) IsSold() bool {
	return s.Status == ShareStatusSold
}

// SoldCount returns the number of sold shares.
func SoldCount(shares []Share) int {
	count := 0
	for _, s := range shares {
		if s.IsSold() {
			count++
		}
	}
	return count
}

// SoldRevenue sums the base-currency prices of sold shares.
func SoldRevenue(shares []Share) decimal.Decimal {
	total := decimal.Zero
	for _, s := range shares {
		if s.IsSold() {
			total = total.Add(s.Price)
		}
	}
	return total
}

// DistributionStatus represents the fulfilment lifecycle of a distribution
type DistributionStatus string

const (
	DistributionStatusPlanned   DistributionStatus = "planned"
	DistributionStatusCompleted DistributionStatus = "completed"
)

// Distribution is a meat-distribution event tied to a qurban period.
type Distribution struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	Region     string
	Date       time.Time
	Households int
	Status     DistributionStatus
}

// CompletedCount returns how many distributions have been fulfilled.
func CompletedCount(distributions []Distribution) int {
	count := 0
	for _, d := range distributions {
		if d.Status == DistributionStatusCompleted {
			count++
		}
	}
	return count
}

// ShareRepository is the read-only data-access contract for qurban shares.
type ShareRepository interface {
	FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]Share, error)
}

// DistributionRepository is the read-only data-access contract for distributions.
type DistributionRepository interface {
	FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]Distribution, error)
}
