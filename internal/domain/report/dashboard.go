package report

import "github.com/shopspring/decimal"

// FinanceRollup carries the cumulative money position plus a month-over-month
// trend. Cumulative figures cover all time; the trend compares the current
// calendar month to the previous one.
type FinanceRollup struct {
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	Balance        decimal.Decimal
	MonthlyIncome  decimal.Decimal
	MonthlyExpense decimal.Decimal
	IncomeTrend    decimal.Decimal
	ExpenseTrend   decimal.Decimal
}

// HRRollup carries headcount figures. PreviousMonthActive is approximated from
// hire dates of still-active employees, which undercounts leavers.
type HRRollup struct {
	ActiveEmployees     int
	PreviousMonthActive int
	OnLeaveToday        int
	HeadcountTrend      decimal.Decimal
}

// ProjectsRollup carries project counts and the total allocated budget.
type ProjectsRollup struct {
	TotalProjects     int
	ActiveProjects    int
	CompletedProjects int
	TotalBudget       decimal.Decimal
}

// QurbanRollup carries cumulative share sales and distribution fulfilment.
type QurbanRollup struct {
	TotalShares            int
	TotalRevenue           decimal.Decimal
	CompletedDistributions int
	MonthlySalesTrend      decimal.Decimal
}

// DonationsRollup carries cumulative collected donations and campaign activity.
type DonationsRollup struct {
	TotalCollected  decimal.Decimal
	ActiveCampaigns int
	MonthlyTrend    decimal.Decimal
}

// DashboardSummary merges the five sub-domain rollups into one request-scoped
// snapshot. It is rebuilt from source records on every call.
type DashboardSummary struct {
	Finance   FinanceRollup
	HR        HRRollup
	Projects  ProjectsRollup
	Qurban    QurbanRollup
	Donations DonationsRollup
}
