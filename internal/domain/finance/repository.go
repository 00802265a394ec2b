package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// TransactionRepository is the read-only data-access contract for transactions.
// Implementations must return internally consistent snapshots scoped to a facility.
type TransactionRepository interface {
	// FindByFacilityAndPeriod returns all transactions dated within [start, end].
	FindByFacilityAndPeriod(ctx context.Context, facilityID uuid.UUID, start, end time.Time) ([]Transaction, error)

	// FindAllByFacility returns every transaction for the facility (cumulative rollups).
	FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]Transaction, error)
}

// BudgetRepository is the read-only data-access contract for budgets.
type BudgetRepository interface {
	FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]Budget, error)
}

// CategoryRepository is the read-only data-access contract for categories.
type CategoryRepository interface {
	FindAllByFacility(ctx context.Context, facilityID uuid.UUID) ([]Category, error)
}
