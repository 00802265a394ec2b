package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BudgetScope identifies what kind of entity a budget is allocated to
type BudgetScope string

const (
	BudgetScopeDepartment BudgetScope = "department"
	BudgetScopeProject    BudgetScope = "project"
	BudgetScopeCategory   BudgetScope = "category"
)

// BudgetStatus represents the lifecycle of a budget
type BudgetStatus string

const (
	BudgetStatusActive BudgetStatus = "active"
	BudgetStatusClosed BudgetStatus = "closed"
)

// Budget is an allocation against a scoped entity. Amount is always expressed in
// the base currency; budgets are normalized at creation time, never per report.
type Budget struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	Scope      BudgetScope
	ScopeID    uuid.UUID
	Name       string
	Amount     decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
	Status     BudgetStatus
}

// OverlapsPeriod reports whether the budget window intersects [start, end].
func (b Budget) OverlapsPeriod(start, end time.Time) bool {
	return !b.StartDate.After(end) && !b.EndDate.Before(start)
}
