package donation

import (
	"context"

	"github.com/google/uuid"
)

// Repository is the read-only data-access contract for donations.
type Repository interface {
	FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]Donation, error)
}

// CampaignRepository is the read-only data-access contract for campaigns.
type CampaignRepository interface {
	FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]Campaign, error)
}
