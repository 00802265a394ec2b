package report

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/vakif/backend/internal/domain/donation"
	"github.com/vakif/backend/internal/domain/finance"
	"github.com/vakif/backend/internal/domain/hr"
	"github.com/vakif/backend/internal/domain/project"
	"github.com/vakif/backend/internal/domain/qurban"
	"github.com/vakif/backend/internal/domain/report"
	"github.com/vakif/backend/internal/domain/shared"
)

// DashboardService builds the cross-domain dashboard snapshot
type DashboardService struct {
	transactionRepo  finance.TransactionRepository
	employeeRepo     hr.EmployeeRepository
	leaveRepo        hr.LeaveRepository
	projectRepo      project.Repository
	shareRepo        qurban.ShareRepository
	distributionRepo qurban.DistributionRepository
	donationRepo     donation.Repository
	campaignRepo     donation.CampaignRepository

	now func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(
	transactionRepo finance.TransactionRepository,
	employeeRepo hr.EmployeeRepository,
	leaveRepo hr.LeaveRepository,
	projectRepo project.Repository,
	shareRepo qurban.ShareRepository,
	distributionRepo qurban.DistributionRepository,
	donationRepo donation.Repository,
	campaignRepo donation.CampaignRepository,
) *DashboardService {
	return &DashboardService{
		transactionRepo:  transactionRepo,
		employeeRepo:     employeeRepo,
		leaveRepo:        leaveRepo,
		projectRepo:      projectRepo,
		shareRepo:        shareRepo,
		distributionRepo: distributionRepo,
		donationRepo:     donationRepo,
		campaignRepo:     campaignRepo,
		now:              time.Now,
	}
}

// FinanceRollupResponse carries cumulative money figures plus monthly trends
type FinanceRollupResponse struct {
	TotalIncome    float64 `json:"total_income"`
	TotalExpense   float64 `json:"total_expense"`
	Balance        float64 `json:"balance"`
	MonthlyIncome  float64 `json:"monthly_income"`
	MonthlyExpense float64 `json:"monthly_expense"`
	IncomeTrend    float64 `json:"income_trend"`
	ExpenseTrend   float64 `json:"expense_trend"`
}

// HRRollupResponse carries headcount figures
type HRRollupResponse struct {
	ActiveEmployees     int     `json:"active_employees"`
	PreviousMonthActive int     `json:"previous_month_active"`
	OnLeaveToday        int     `json:"on_leave_today"`
	HeadcountTrend      float64 `json:"headcount_trend"`
}

// ProjectsRollupResponse carries project counts and total allocated budget
type ProjectsRollupResponse struct {
	TotalProjects     int     `json:"total_projects"`
	ActiveProjects    int     `json:"active_projects"`
	CompletedProjects int     `json:"completed_projects"`
	TotalBudget       float64 `json:"total_budget"`
}

// QurbanRollupResponse carries cumulative share sales and distributions
type QurbanRollupResponse struct {
	TotalShares            int     `json:"total_shares"`
	TotalRevenue           float64 `json:"total_revenue"`
	CompletedDistributions int     `json:"completed_distributions"`
	MonthlySalesTrend      float64 `json:"monthly_sales_trend"`
}

// DonationsRollupResponse carries cumulative collected donations and campaigns
type DonationsRollupResponse struct {
	TotalCollected  float64 `json:"total_collected"`
	ActiveCampaigns int     `json:"active_campaigns"`
	MonthlyTrend    float64 `json:"monthly_trend"`
}

// DashboardSummaryResponse merges the five sub-domain rollups
type DashboardSummaryResponse struct {
	Finance   FinanceRollupResponse   `json:"finance"`
	HR        HRRollupResponse        `json:"hr"`
	Projects  ProjectsRollupResponse  `json:"projects"`
	Qurban    QurbanRollupResponse    `json:"qurban"`
	Donations DonationsRollupResponse `json:"donations"`
}

// GetSummary computes the five sub-rollups concurrently and merges them. The
// rollups have no data dependency on one another; any single failure aborts the
// whole call, partial summaries are never returned.
func (s *DashboardService) GetSummary(ctx context.Context, facilityID uuid.UUID) (*DashboardSummaryResponse, error) {
	if facilityID == uuid.Nil {
		return nil, shared.ErrMissingFacility
	}

	summary := report.DashboardSummary{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		rollup, err := s.financeRollup(gctx, facilityID)
		if err != nil {
			return fmt.Errorf("finance rollup: %w", err)
		}
		summary.Finance = rollup
		return nil
	})
	g.Go(func() error {
		rollup, err := s.hrRollup(gctx, facilityID)
		if err != nil {
			return fmt.Errorf("hr rollup: %w", err)
		}
		summary.HR = rollup
		return nil
	})
	g.Go(func() error {
		rollup, err := s.projectsRollup(gctx, facilityID)
		if err != nil {
			return fmt.Errorf("projects rollup: %w", err)
		}
		summary.Projects = rollup
		return nil
	})
	g.Go(func() error {
		rollup, err := s.qurbanRollup(gctx, facilityID)
		if err != nil {
			return fmt.Errorf("qurban rollup: %w", err)
		}
		summary.Qurban = rollup
		return nil
	})
	g.Go(func() error {
		rollup, err := s.donationsRollup(gctx, facilityID)
		if err != nil {
			return fmt.Errorf("donations rollup: %w", err)
		}
		summary.Donations = rollup
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return toDashboardResponse(summary), nil
}

// monthWindows returns the [start, end] bounds of the current and previous
// calendar months relative to the service clock.
func (s *DashboardService) monthWindows() (curStart, curEnd, prevStart, prevEnd time.Time) {
	now := s.now().UTC()
	curStart = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	curEnd = curStart.AddDate(0, 1, 0).Add(-time.Nanosecond)
	prevStart = curStart.AddDate(0, -1, 0)
	prevEnd = curStart.Add(-time.Nanosecond)
	return curStart, curEnd, prevStart, prevEnd
}

func (s *DashboardService) financeRollup(ctx context.Context, facilityID uuid.UUID) (report.FinanceRollup, error) {
	all, err := s.transactionRepo.FindAllByFacility(ctx, facilityID)
	if err != nil {
		return report.FinanceRollup{}, err
	}
	realized := finance.FilterRealized(all)
	totalIncome, totalExpense := report.Totals(realized)

	curStart, curEnd, prevStart, prevEnd := s.monthWindows()
	curIncome, curExpense := report.Totals(inWindow(realized, curStart, curEnd))
	prevIncome, prevExpense := report.Totals(inWindow(realized, prevStart, prevEnd))

	return report.FinanceRollup{
		TotalIncome:    totalIncome,
		TotalExpense:   totalExpense,
		Balance:        totalIncome.Sub(totalExpense),
		MonthlyIncome:  curIncome,
		MonthlyExpense: curExpense,
		IncomeTrend:    report.Trend(curIncome, prevIncome),
		ExpenseTrend:   report.Trend(curExpense, prevExpense),
	}, nil
}

func (s *DashboardService) hrRollup(ctx context.Context, facilityID uuid.UUID) (report.HRRollup, error) {
	employees, err := s.employeeRepo.FindAllByFacility(ctx, facilityID)
	if err != nil {
		return report.HRRollup{}, err
	}
	leaves, err := s.leaveRepo.FindApprovedByFacility(ctx, facilityID)
	if err != nil {
		return report.HRRollup{}, err
	}

	_, _, _, prevEnd := s.monthWindows()
	active := hr.ActiveCount(employees)
	// Hire-date approximation: anyone who left after the previous month's end
	// is missing from the historical count. Kept as-is so trend history stays
	// comparable.
	prevActive := hr.ActiveCountAsOf(employees, prevEnd)

	return report.HRRollup{
		ActiveEmployees:     active,
		PreviousMonthActive: prevActive,
		OnLeaveToday:        hr.OngoingCount(leaves, s.now().UTC()),
		HeadcountTrend:      report.Trend(decimal.NewFromInt(int64(active)), decimal.NewFromInt(int64(prevActive))),
	}, nil
}

func (s *DashboardService) projectsRollup(ctx context.Context, facilityID uuid.UUID) (report.ProjectsRollup, error) {
	projects, err := s.projectRepo.FindAllByFacility(ctx, facilityID)
	if err != nil {
		return report.ProjectsRollup{}, err
	}

	totalBudget := decimal.Zero
	for _, p := range projects {
		totalBudget = totalBudget.Add(p.Budget)
	}
	return report.ProjectsRollup{
		TotalProjects:     len(projects),
		ActiveProjects:    project.CountByStatus(projects, project.StatusActive),
		CompletedProjects: project.CountByStatus(projects, project.StatusCompleted),
		TotalBudget:       totalBudget,
	}, nil
}

func (s *DashboardService) qurbanRollup(ctx context.Context, facilityID uuid.UUID) (report.QurbanRollup, error) {
	shares, err := s.shareRepo.FindAllByFacility(ctx, facilityID)
	if err != nil {
		return report.QurbanRollup{}, err
	}
	distributions, err := s.distributionRepo.FindAllByFacility(ctx, facilityID)
	if err != nil {
		return report.QurbanRollup{}, err
	}

	curStart, curEnd, prevStart, prevEnd := s.monthWindows()
	curRevenue, prevRevenue := decimal.Zero, decimal.Zero
	for _, sh := range shares {
		if !sh.IsSold() {
			continue
		}
		switch {
		case !sh.SoldAt.Before(curStart) && !sh.SoldAt.After(curEnd):
			curRevenue = curRevenue.Add(sh.Price)
		case !sh.SoldAt.Before(prevStart) && !sh.SoldAt.After(prevEnd):
			prevRevenue = prevRevenue.Add(sh.Price)
		}
	}

	return report.QurbanRollup{
		TotalShares:            qurban.SoldCount(shares),
		TotalRevenue:           qurban.SoldRevenue(shares),
		CompletedDistributions: qurban.CompletedCount(distributions),
		MonthlySalesTrend:      report.Trend(curRevenue, prevRevenue),
	}, nil
}

func (s *DashboardService) donationsRollup(ctx context.Context, facilityID uuid.UUID) (report.DonationsRollup, error) {
	donations, err := s.donationRepo.FindAllByFacility(ctx, facilityID)
	if err != nil {
		return report.DonationsRollup{}, err
	}
	campaigns, err := s.campaignRepo.FindAllByFacility(ctx, facilityID)
	if err != nil {
		return report.DonationsRollup{}, err
	}

	curStart, curEnd, prevStart, prevEnd := s.monthWindows()
	curTotal, prevTotal := decimal.Zero, decimal.Zero
	for _, d := range donations {
		if !d.IsCollected() {
			continue
		}
		switch {
		case !d.Date.Before(curStart) && !d.Date.After(curEnd):
			curTotal = curTotal.Add(d.BaseAmount())
		case !d.Date.Before(prevStart) && !d.Date.After(prevEnd):
			prevTotal = prevTotal.Add(d.BaseAmount())
		}
	}

	return report.DonationsRollup{
		TotalCollected:  donation.CollectedTotal(donations),
		ActiveCampaigns: donation.ActiveCount(campaigns),
		MonthlyTrend:    report.Trend(curTotal, prevTotal),
	}, nil
}

func inWindow(transactions []finance.Transaction, start, end time.Time) []finance.Transaction {
	matched := make([]finance.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		if !tx.Date.Before(start) && !tx.Date.After(end) {
			matched = append(matched, tx)
		}
	}
	return matched
}

func toDashboardResponse(s report.DashboardSummary) *DashboardSummaryResponse {
	return &DashboardSummaryResponse{
		Finance: FinanceRollupResponse{
			TotalIncome:    toFloat64(s.Finance.TotalIncome),
			TotalExpense:   toFloat64(s.Finance.TotalExpense),
			Balance:        toFloat64(s.Finance.Balance),
			MonthlyIncome:  toFloat64(s.Finance.MonthlyIncome),
			MonthlyExpense: toFloat64(s.Finance.MonthlyExpense),
			IncomeTrend:    toFloat64(s.Finance.IncomeTrend),
			ExpenseTrend:   toFloat64(s.Finance.ExpenseTrend),
		},
		HR: HRRollupResponse{
			ActiveEmployees:     s.HR.ActiveEmployees,
			PreviousMonthActive: s.HR.PreviousMonthActive,
			OnLeaveToday:        s.HR.OnLeaveToday,
			HeadcountTrend:      toFloat64(s.HR.HeadcountTrend),
		},
		Projects: ProjectsRollupResponse{
			TotalProjects:     s.Projects.TotalProjects,
			ActiveProjects:    s.Projects.ActiveProjects,
			CompletedProjects: s.Projects.CompletedProjects,
			TotalBudget:       toFloat64(s.Projects.TotalBudget),
		},
		Qurban: QurbanRollupResponse{
			TotalShares:            s.Qurban.TotalShares,
			TotalRevenue:           toFloat64(s.Qurban.TotalRevenue),
			CompletedDistributions: s.Qurban.CompletedDistributions,
			MonthlySalesTrend:      toFloat64(s.Qurban.MonthlySalesTrend),
		},
		Donations: DonationsRollupResponse{
			TotalCollected:  toFloat64(s.Donations.TotalCollected),
			ActiveCampaigns: s.Donations.ActiveCampaigns,
			MonthlyTrend:    toFloat64(s.Donations.MonthlyTrend),
		},
	}
}
