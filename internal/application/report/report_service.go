package report

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/vakif/backend/internal/domain/finance"
	"github.com/vakif/backend/internal/domain/report"
)

// ReportService provides application-level report generation operations
type ReportService struct {
	transactionRepo finance.TransactionRepository
	budgetRepo      finance.BudgetRepository
	categoryRepo    finance.CategoryRepository
}

// NewReportService creates a new ReportService
func NewReportService(
	transactionRepo finance.TransactionRepository,
	budgetRepo finance.BudgetRepository,
	categoryRepo finance.CategoryRepository,
) *ReportService {
	return &ReportService{
		transactionRepo: transactionRepo,
		budgetRepo:      budgetRepo,
		categoryRepo:    categoryRepo,
	}
}

// SummaryResponse represents the headline totals of a report
type SummaryResponse struct {
	TotalIncome  float64 `json:"total_income"`
	TotalExpense float64 `json:"total_expense"`
	Net          float64 `json:"net"`

	IncomeTrend  *float64 `json:"income_trend,omitempty"`
	ExpenseTrend *float64 `json:"expense_trend,omitempty"`
	NetTrend     *float64 `json:"net_trend,omitempty"`

	TotalBudgeted      *float64 `json:"total_budgeted,omitempty"`
	Variance           *float64 `json:"variance,omitempty"`
	VariancePercentage *float64 `json:"variance_percentage,omitempty"`
}

// ChartDataResponse represents the label-aligned chart series of a report
type ChartDataResponse struct {
	Labels  []string  `json:"labels"`
	Income  []float64 `json:"income"`
	Expense []float64 `json:"expense"`
}

// RowResponse represents one table line of a report
type RowResponse struct {
	Label      string  `json:"label"`
	Income     float64 `json:"income"`
	Expense    float64 `json:"expense"`
	Net        float64 `json:"net"`
	Percentage float64 `json:"percentage"`

	Budgeted *float64 `json:"budgeted,omitempty"`
	Variance *float64 `json:"variance,omitempty"`
}

// ReportResponse is the uniform response shape shared by every report type
type ReportResponse struct {
	Type      report.Type       `json:"type"`
	Summary   SummaryResponse   `json:"summary"`
	ChartData ChartDataResponse `json:"chart_data"`
	TableData []RowResponse     `json:"table_data"`
}

// ReportTypeResponse describes one selectable report kind
type ReportTypeResponse struct {
	Type  report.Type `json:"type"`
	Label string      `json:"label"`
}

var reportTypeLabels = map[report.Type]string{
	report.TypeIncomeExpense:     "Gelir-Gider Raporu",
	report.TypeCashFlow:          "Nakit Akışı Raporu",
	report.TypeBudgetRealization: "Bütçe Gerçekleşme Raporu",
	report.TypeCategoryAnalysis:  "Kategori Analizi",
	report.TypeVendorAnalysis:    "Cari Analizi",
	report.TypeProjectFinancial:  "Proje Mali Raporu",
}

// ListReportTypes returns the closed set of supported report kinds.
func (s *ReportService) ListReportTypes() []ReportTypeResponse {
	types := report.AllTypes()
	out := make([]ReportTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, ReportTypeResponse{Type: t, Label: reportTypeLabels[t]})
	}
	return out
}

// Generate validates the parameters, fetches the records for the window and
// assembles the requested report. Parameter errors surface before any fetch;
// an empty window yields a well-formed zero-valued report.
func (s *ReportService) Generate(ctx context.Context, params report.Params) (*ReportResponse, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.FindByFacilityAndPeriod(ctx, params.FacilityID, params.StartDate, params.EndDate)
	if err != nil {
		return nil, err
	}
	realized := finance.FilterRealized(transactions)

	var compare []finance.Transaction
	if params.HasCompareWindow() {
		raw, err := s.transactionRepo.FindByFacilityAndPeriod(ctx, params.FacilityID, *params.CompareStartDate, *params.CompareEndDate)
		if err != nil {
			return nil, err
		}
		compare = finance.FilterRealized(raw)
	}

	var result report.Result
	switch params.Type {
	case report.TypeIncomeExpense:
		result, err = s.incomeExpense(ctx, params, realized, compare)
	case report.TypeCashFlow:
		// Alias of income-expense until dedicated cash-flow semantics are
		// specified; the result keeps its own type tag.
		result, err = s.incomeExpense(ctx, params, realized, compare)
		result.Type = report.TypeCashFlow
	case report.TypeBudgetRealization:
		result, err = s.budgetRealization(ctx, params, realized)
	case report.TypeCategoryAnalysis:
		result, err = s.categoryAnalysis(ctx, params, realized, compare)
	case report.TypeVendorAnalysis:
		result, err = s.dimensionAnalysis(report.TypeVendorAnalysis, params, realized, compare, vendorDimension())
	case report.TypeProjectFinancial:
		result, err = s.dimensionAnalysis(report.TypeProjectFinancial, params, realized, compare, projectDimension())
	}
	if err != nil {
		return nil, err
	}
	return toReportResponse(result), nil
}

func (s *ReportService) incomeExpense(_ context.Context, params report.Params, realized, compare []finance.Transaction) (report.Result, error) {
	flows := finance.FilterByType(realized, finance.TransactionTypeIncome, finance.TransactionTypeExpense)

	result := report.EmptyResult(report.TypeIncomeExpense)
	result.ChartData = report.ToChartData(report.BucketTransactions(flows, params.GroupBy))
	result.TableData = report.Aggregate(flows, categoryDimension(), nil, finance.AlwaysShownCategories)
	result.Summary = buildSummary(flows, compare, params)
	return result, nil
}

func (s *ReportService) categoryAnalysis(ctx context.Context, params report.Params, realized, compare []finance.Transaction) (report.Result, error) {
	categories, err := s.categoryRepo.FindAllByFacility(ctx, params.FacilityID)
	if err != nil {
		return report.Result{}, err
	}
	seeds := make([]report.SeedEntry, 0, len(categories))
	for _, c := range categories {
		seeds = append(seeds, report.SeedEntry{Key: c.ID.String(), Name: c.Name})
	}

	flows := finance.FilterByType(realized, finance.TransactionTypeIncome, finance.TransactionTypeExpense)
	result := report.EmptyResult(report.TypeCategoryAnalysis)
	result.ChartData = report.ToChartData(report.BucketTransactions(flows, params.GroupBy))
	result.TableData = report.Aggregate(flows, categoryDimension(), seeds, finance.AlwaysShownCategories)
	result.Summary = buildSummary(flows, compare, params)
	return result, nil
}

func (s *ReportService) dimensionAnalysis(t report.Type, params report.Params, realized, compare []finance.Transaction, dim report.Dimension) (report.Result, error) {
	flows := finance.FilterByType(realized, finance.TransactionTypeIncome, finance.TransactionTypeExpense)
	// Records without the dimension are dropped by the aggregator's empty-key
	// rule, but the chart and totals must also exclude them.
	scoped := make([]finance.Transaction, 0, len(flows))
	for _, tx := range flows {
		if dim.Key(tx) != "" {
			scoped = append(scoped, tx)
		}
	}

	result := report.EmptyResult(t)
	result.ChartData = report.ToChartData(report.BucketTransactions(scoped, params.GroupBy))
	result.TableData = report.Aggregate(scoped, dim, nil, nil)
	result.Summary = buildSummary(scoped, compare, params)
	return result, nil
}

func (s *ReportService) budgetRealization(ctx context.Context, params report.Params, realized []finance.Transaction) (report.Result, error) {
	budgets, err := s.budgetRepo.FindAllByFacility(ctx, params.FacilityID)
	if err != nil {
		return report.Result{}, err
	}

	expenses := finance.FilterByType(realized, finance.TransactionTypeExpense)

	result := report.EmptyResult(report.TypeBudgetRealization)
	result.ChartData = report.ToChartData(report.BucketTransactions(expenses, params.GroupBy))

	// Actuals are keyed by budget scope: a category budget only absorbs
	// category-tagged spend, a project budget only project-tagged spend. An
	// expense carrying both tags counts toward each scope's row, so summary
	// totals sum the rows, not distinct spend.
	actualByScope := map[finance.BudgetScope]map[string]decimal.Decimal{
		finance.BudgetScopeCategory: {},
		finance.BudgetScopeProject:  {},
	}
	for _, tx := range expenses {
		if tx.CategoryID != nil {
			byID := actualByScope[finance.BudgetScopeCategory]
			byID[tx.CategoryID.String()] = byID[tx.CategoryID.String()].Add(tx.BaseAmount())
		}
		if tx.ProjectID != nil {
			byID := actualByScope[finance.BudgetScopeProject]
			byID[tx.ProjectID.String()] = byID[tx.ProjectID.String()].Add(tx.BaseAmount())
		}
	}

	totalBudgeted, totalActual := decimal.Zero, decimal.Zero
	rows := make([]report.Row, 0, len(budgets))
	for _, b := range budgets {
		if b.Status != finance.BudgetStatusActive || !b.OverlapsPeriod(params.StartDate, params.EndDate) {
			continue
		}
		actual := actualByScope[b.Scope][b.ScopeID.String()]
		variance := actual.Sub(b.Amount)
		budgeted := b.Amount
		rows = append(rows, report.Row{
			Label:    b.Name,
			Expense:  actual,
			Net:      variance.Neg(),
			Budgeted: &budgeted,
			Variance: &variance,
		})
		totalBudgeted = totalBudgeted.Add(b.Amount)
		totalActual = totalActual.Add(actual)
	}
	result.TableData = rows

	variance := totalActual.Sub(totalBudgeted)
	variancePct := decimal.Zero
	if !totalBudgeted.IsZero() {
		variancePct = variance.Div(totalBudgeted).Mul(decimal.NewFromInt(100))
	}
	result.Summary = report.Summary{
		TotalIncome:        decimal.Zero,
		TotalExpense:       totalActual,
		Net:                totalActual.Neg(),
		TotalBudgeted:      &totalBudgeted,
		Variance:           &variance,
		VariancePercentage: &variancePct,
	}
	return result, nil
}

func buildSummary(current, compare []finance.Transaction, params report.Params) report.Summary {
	income, expense := report.Totals(current)
	summary := report.Summary{
		TotalIncome:  income,
		TotalExpense: expense,
		Net:          income.Sub(expense),
	}
	if params.HasCompareWindow() {
		prevIncome, prevExpense := report.Totals(compare)
		incomeTrend := report.Trend(income, prevIncome)
		expenseTrend := report.Trend(expense, prevExpense)
		netTrend := report.Trend(income.Sub(expense), prevIncome.Sub(prevExpense))
		summary.IncomeTrend = &incomeTrend
		summary.ExpenseTrend = &expenseTrend
		summary.NetTrend = &netTrend
	}
	return summary
}

func categoryDimension() report.Dimension {
	return report.Dimension{
		Key: func(tx finance.Transaction) string {
			if tx.CategoryID == nil {
				if tx.CategoryName == "" {
					return ""
				}
				return tx.CategoryName
			}
			return tx.CategoryID.String()
		},
		Name: func(tx finance.Transaction) string { return tx.CategoryName },
	}
}

func vendorDimension() report.Dimension {
	return report.Dimension{
		Key: func(tx finance.Transaction) string {
			if tx.VendorCustomerID == nil {
				return ""
			}
			return tx.VendorCustomerID.String()
		},
		Name: func(tx finance.Transaction) string { return tx.VendorCustomerName },
	}
}

func projectDimension() report.Dimension {
	return report.Dimension{
		Key: func(tx finance.Transaction) string {
			if tx.ProjectID == nil {
				return ""
			}
			return tx.ProjectID.String()
		},
		Name: func(tx finance.Transaction) string { return tx.ProjectName },
	}
}

func toReportResponse(result report.Result) *ReportResponse {
	resp := &ReportResponse{
		Type: result.Type,
		Summary: SummaryResponse{
			TotalIncome:  toFloat64(result.Summary.TotalIncome),
			TotalExpense: toFloat64(result.Summary.TotalExpense),
			Net:          toFloat64(result.Summary.Net),
		},
		ChartData: ChartDataResponse{
			Labels:  result.ChartData.Labels,
			Income:  make([]float64, 0, len(result.ChartData.Income)),
			Expense: make([]float64, 0, len(result.ChartData.Expense)),
		},
		TableData: make([]RowResponse, 0, len(result.TableData)),
	}
	resp.Summary.IncomeTrend = toFloat64Ptr(result.Summary.IncomeTrend)
	resp.Summary.ExpenseTrend = toFloat64Ptr(result.Summary.ExpenseTrend)
	resp.Summary.NetTrend = toFloat64Ptr(result.Summary.NetTrend)
	resp.Summary.TotalBudgeted = toFloat64Ptr(result.Summary.TotalBudgeted)
	resp.Summary.Variance = toFloat64Ptr(result.Summary.Variance)
	resp.Summary.VariancePercentage = toFloat64Ptr(result.Summary.VariancePercentage)

	for _, v := range result.ChartData.Income {
		resp.ChartData.Income = append(resp.ChartData.Income, toFloat64(v))
	}
	for _, v := range result.ChartData.Expense {
		resp.ChartData.Expense = append(resp.ChartData.Expense, toFloat64(v))
	}
	for _, row := range result.TableData {
		resp.TableData = append(resp.TableData, RowResponse{
			Label:      row.Label,
			Income:     toFloat64(row.Income),
			Expense:    toFloat64(row.Expense),
			Net:        toFloat64(row.Net),
			Percentage: toFloat64(row.Percentage),
			Budgeted:   toFloat64Ptr(row.Budgeted),
			Variance:   toFloat64Ptr(row.Variance),
		})
	}
	return resp
}

func toFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func toFloat64Ptr(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := toFloat64(*d)
	return &f
}
