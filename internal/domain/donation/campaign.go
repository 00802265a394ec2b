package donation

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignStatus represents the lifecycle of a fundraising campaign
type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "active"
	CampaignStatusFinished CampaignStatus = "finished"
)

// Campaign is a fundraising drive donations can be attributed to. GoalAmount is
// expressed in the base currency.
type Campaign struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	Name       string
	GoalAmount decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time
	Status     CampaignStatus
}

// IsActive reports whether the campaign is still collecting.
func (c Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}

// ActiveCount returns how many campaigns are still collecting.
func ActiveCount(campaigns []Campaign) int {
	count := 0
	for _, c := range campaigns {
		if c.IsActive() {
			count++
		}
	}
	return count
}
