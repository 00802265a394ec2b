package donation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vakif/backend/internal/domain/shared/valueobject"
)

// Status represents the collection lifecycle of a donation
type Status string

const (
	StatusPledged   Status = "pledged"
	StatusCollected Status = "collected"
	StatusCancelled Status = "cancelled"
)

// Donation is a single incoming contribution, possibly tied to a campaign.
type Donation struct {
	ID           uuid.UUID
	FacilityID   uuid.UUID
	CampaignID   *uuid.UUID
	DonorName    string
	Amount       decimal.Decimal
	Currency     valueobject.Currency
	ExchangeRate decimal.Decimal
	Date         time.Time
	Status       Status
}

// BaseAmount returns the donation amount normalized into the base currency.
func (d Donation) BaseAmount() decimal.Decimal {
	return valueobject.NormalizeToBase(d.Amount, d.Currency, d.ExchangeRate)
}

// IsCollected reports whether the donation counts toward collected totals.
func (d Donation) IsCollected() bool {
	return d.Status == StatusCollected
}

// CollectedTotal sums the base-currency amounts of collected donations.
func CollectedTotal(donations []Donation) decimal.Decimal {
	total := decimal.Zero
	for _, d := range donations {
		if d.IsCollected() {
			total = total.Add(d.BaseAmount())
		}
	}
	return total
}
