package project

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Status represents the project lifecycle
type Status string

const (
	StatusPlanned   Status = "planned"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Project is a facility-scoped initiative that transactions and budgets can be
// allocated against.
type Project struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	Name       string
	Status     Status
	Budget     decimal.Decimal
	StartDate  time.Time
	EndDate    *time.Time
}

// IsActive reports whether the project counts toward the active rollup.
func (p Project) IsActive() bool {
	return p.Status == StatusActive
}

// CountByStatus returns how many projects currently hold the given status.
func CountByStatus(projects []Project, status Status) int {
	count := 0
	for _, p := range projects {
		if p.Status == status {
			count++
		}
	}
	return count
}

// Repository is the read-only data-access contract for projects.
type Repository interface {
	FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]Project, error)
}
