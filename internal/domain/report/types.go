package report

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/vakif/backend/internal/domain/shared"
)

// Type identifies one of the fixed report kinds. The set is closed; the
// generator dispatches over it exhaustively and rejects anything else.
type Type string

const (
	TypeIncomeExpense     Type = "income-expense"
	TypeCashFlow          Type = "cash-flow"
	TypeBudgetRealization Type = "budget-realization"
	TypeCategoryAnalysis  Type = "category-analysis"
	TypeVendorAnalysis    Type = "vendor-analysis"
	TypeProjectFinancial  Type = "project-financial"
)

// AllTypes lists every supported report type in presentation order.
func AllTypes() []Type {
	return []Type{
		TypeIncomeExpense,
		TypeCashFlow,
		TypeBudgetRealization,
		TypeCategoryAnalysis,
		TypeVendorAnalysis,
		TypeProjectFinancial,
	}
}

// IsValid reports whether t names a supported report type.
func (t Type) IsValid() bool {
	switch t {
	case TypeIncomeExpense, TypeCashFlow, TypeBudgetRealization,
		TypeCategoryAnalysis, TypeVendorAnalysis, TypeProjectFinancial:
		return true
	}
	return false
}

// Params carries the request surface of a report run. Compare dates are
// optional but must be supplied together.
type Params struct {
	FacilityID       uuid.UUID
	Type             Type
	StartDate        time.Time
	EndDate          time.Time
	CompareStartDate *time.Time
	CompareEndDate   *time.Time
	GroupBy          Granularity
}

// Validate checks the parameter invariants before any data is fetched.
func (p Params) Validate() error {
	if p.FacilityID == uuid.Nil {
		return shared.ErrMissingFacility
	}
	if !p.Type.IsValid() {
		return shared.NewDomainError("INVALID_INPUT", "unsupported report type: "+string(p.Type))
	}
	if p.EndDate.Before(p.StartDate) {
		return shared.ErrInvalidPeriod
	}
	if (p.CompareStartDate == nil) != (p.CompareEndDate == nil) {
		return shared.ErrPartialCompare
	}
	if p.CompareStartDate != nil && p.CompareEndDate.Before(*p.CompareStartDate) {
		return shared.ErrInvalidPeriod
	}
	if p.GroupBy != GranularityDay && p.GroupBy != GranularityMonth {
		return shared.NewDomainError("INVALID_INPUT", "groupBy must be day or month")
	}
	return nil
}

// HasCompareWindow reports whether a comparison period was requested.
func (p Params) HasCompareWindow() bool {
	return p.CompareStartDate != nil && p.CompareEndDate != nil
}

// Summary carries the headline totals of a report, plus trend deltas when a
// comparison window was requested and budget figures for budget-realization.
type Summary struct {
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
	Net          decimal.Decimal

	IncomeTrend  *decimal.Decimal
	ExpenseTrend *decimal.Decimal
	NetTrend     *decimal.Decimal

	TotalBudgeted      *decimal.Decimal
	Variance           *decimal.Decimal
	VariancePercentage *decimal.Decimal
}

// ChartData is a label-aligned pair of series; all three slices always have the
// same length.
type ChartData struct {
	Labels  []string
	Income  []decimal.Decimal
	Expense []decimal.Decimal
}

// Row is one table line of a report, keyed by a dimension label. Budgeted and
// Variance are populated only for budget-realization.
type Row struct {
	Label      string
	Income     decimal.Decimal
	Expense    decimal.Decimal
	Net        decimal.Decimal
	Percentage decimal.Decimal

	PreviousPeriodDiff *decimal.Decimal
	Budgeted           *decimal.Decimal
	Variance           *decimal.Decimal
}

// Result is the uniform response shape shared by every report type.
type Result struct {
	Type      Type
	Summary   Summary
	ChartData ChartData
	TableData []Row
}

// EmptyResult returns a well-formed zero-valued result for the given type.
// Valid requests over empty windows resolve to this, never to an error.
func EmptyResult(t Type) Result {
	return Result{
		Type: t,
		Summary: Summary{
			TotalIncome:  decimal.Zero,
			TotalExpense: decimal.Zero,
			Net:          decimal.Zero,
		},
		ChartData: ChartData{
			Labels:  []string{},
			Income:  []decimal.Decimal{},
			Expense: []decimal.Decimal{},
		},
		TableData: []Row{},
	}
}
