package finance

import "github.com/google/uuid"

// Category is a transaction grouping dimension maintained per facility.
type Category struct {
	ID         uuid.UUID
	FacilityID uuid.UUID
	Name       string
	Type       TransactionType
}

// Synthetic category labels that are always surfaced in breakdowns even with zero
// activity, matching the fixed rows the back office displays.
const (
	CategoryOtherIncome   = "Diğer Gelirler"
	CategoryOtherExpenses = "Diğer Giderler"
	CategoryTransfers     = "Kurum İçi Transfer"
)

// AlwaysShownCategories is the allow-list of synthetic categories kept in report
// tables regardless of activity.
var AlwaysShownCategories = map[string]bool{
	CategoryOtherIncome:   true,
	CategoryOtherExpenses: true,
	CategoryTransfers:     true,
}
