package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/spendwise/spendwise-web/internal/domain/catalog"
	"github.com/spendwise/spendwise-web/internal/domain/finance"
	"github.com/spendwise/spendwise-web/internal/domain/session"
	"github.com/spendwise/spendwise-web/internal/domain/view"
	apperrors "github.com/spendwise/spendwise-web/internal/errors"
	"github.com/spendwise/spendwise-web/internal/ports"
	"github.com/spendwise/spendwise-web/internal/util"
)

const (
	// MsgAccessDenied is shown when a non-admin opens the admin panel.
	MsgAccessDenied = "Access Denied: You are not an Admin"

	analysisTrendLimit = 6
	overallTopLimit    = 5
)

// LoadRequest carries what a loader may depend on.
type LoadRequest struct {
	Session session.Session
	Month   finance.Month
}

// Loader populates the model of one view. Loaders only read, so calling one
// twice simply returns the latest data.
type Loader func(ctx context.Context, req LoadRequest) (any, error)

// LoadersOptions groups dependencies for Loaders.
type LoadersOptions struct {
	Backend ports.Backend    // Required
	Catalog *catalog.Catalog // Optional: defaults to the embedded catalog
	Logger  *slog.Logger
}

// Loaders binds view ids to the routines that fetch their data.
type Loaders struct {
	backend ports.Backend
	catalog *catalog.Catalog
	logger  *slog.Logger
	byView  map[view.ID]Loader
}

// NewLoaders constructs the loader table.
func NewLoaders(opts LoadersOptions) *Loaders {
	if opts.Backend == nil {
		panic("service: LoadersOptions.Backend is required")
	}
	l := &Loaders{backend: opts.Backend, catalog: opts.Catalog, logger: opts.Logger}
	if l.catalog == nil {
		l.catalog = catalog.Default()
	}
	if l.logger == nil {
		l.logger = slog.Default()
	}
	l.logger = l.logger.With("component", "loaders")
	l.byView = map[view.ID]Loader{
		view.Dashboard:      l.dashboard,
		view.Income:         l.income,
		view.Expenses:       l.expenses,
		view.Budget:         l.budget,
		view.Analysis:       l.analysis,
		view.Recurring:      l.recurring,
		view.EmergencyFund:  l.emergencyFund,
		view.OverallSummary: l.overall,
		view.AdminPanel:     l.admin,
	}
	return l
}

// For returns the loader bound to id. Auth views have none.
func (l *Loaders) For(id view.ID) (Loader, bool) {
	fn, ok := l.byView[id]
	return fn, ok
}

// Catalog exposes the catalog used to label rows.
func (l *Loaders) Catalog() *catalog.Catalog { return l.catalog }

// CategoryRow is a spend share labelled from the catalog.
type CategoryRow struct {
	finance.CategoryShare
	Label string
	Icon  string
}

// TransactionRow is a recent transaction labelled from the catalog.
type TransactionRow struct {
	finance.Transaction
	Label string
	Icon  string
}

// ExpenseRow is an expense labelled from the catalog.
type ExpenseRow struct {
	finance.Expense
	Label string
	Icon  string
}

// IncomeRow is an income record labelled from the catalog.
type IncomeRow struct {
	finance.Income
	Label string
	Icon  string
}

// BudgetRow is a budget line with its progress bar width.
type BudgetRow struct {
	finance.BudgetLine
	Label   string
	Icon    string
	Percent float64
	Over    bool
}

// DashboardModel backs the dashboard view.
type DashboardModel struct {
	Month      finance.Month
	Summary    finance.Dashboard
	Insight    finance.Insight
	Recent     []TransactionRow
	Categories []CategoryRow
	Trend      []finance.MonthTotals
}

// AnalysisModel backs the analytics view.
type AnalysisModel struct {
	Month      finance.Month
	Summary    finance.Dashboard
	Categories []CategoryRow
	Trend      []finance.MonthTotals
}

// IncomeModel backs the income view.
type IncomeModel struct {
	Records []IncomeRow
	Sources []catalog.Entry
}

// ExpensesModel backs the expenses view.
type ExpensesModel struct {
	Records    []ExpenseRow
	Categories []catalog.Entry
}

// BudgetModel backs the budget view.
type BudgetModel struct {
	Month      finance.Month
	Budgets    []finance.Budget
	Lines      []BudgetRow
	Categories []catalog.Entry
}

// RecurringModel backs the subscriptions view.
type RecurringModel struct {
	Items      []finance.Recurring
	Categories []catalog.Entry
}

// EmergencyFundModel backs the emergency fund view.
type EmergencyFundModel struct {
	Fund   finance.EmergencyFund
	Status finance.FundStatus
}

// OverallModel backs the lifetime summary view.
type OverallModel struct {
	Overall    finance.Overall
	Top        []CategoryRow
	Comparison finance.Insight
}

// AdminModel backs the admin panel.
type AdminModel struct {
	Stats    finance.AdminStats
	Users    []finance.AdminUser
	Feedback []finance.FeedbackEntry
}

func (l *Loaders) categoryRows(shares []finance.CategoryShare, ut session.UserType) []CategoryRow {
	rows := make([]CategoryRow, 0, len(shares))
	for _, s := range shares {
		rows = append(rows, CategoryRow{
			CategoryShare: s,
			Label:         l.catalog.CategoryLabel(s.Category, ut),
			Icon:          l.catalog.CategoryIcon(s.Category, ut),
		})
	}
	return rows
}

func (l *Loaders) summaryAndTrend(ctx context.Context, month finance.Month) (finance.Dashboard, []finance.MonthTotals, error) {
	var (
		summary finance.Dashboard
		trend   []finance.MonthTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		summary, err = l.backend.Dashboard(gctx, month)
		return err
	})
	g.Go(func() error {
		var err error
		trend, err = l.backend.MonthlyTrend(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return finance.Dashboard{}, nil, err
	}
	return summary, trend, nil
}

func (l *Loaders) dashboard(ctx context.Context, req LoadRequest) (any, error) {
	summary, trend, err := l.summaryAndTrend(ctx, req.Month)
	if err != nil {
		return nil, fmt.Errorf("load dashboard: %w", err)
	}
	ut := req.Session.UserType
	recent := make([]TransactionRow, 0, len(summary.RecentTransactions))
	for _, t := range summary.RecentTransactions {
		recent = append(recent, TransactionRow{
			Transaction: t,
			Label:       l.catalog.CategoryLabel(t.Category, ut),
			Icon:        l.catalog.CategoryIcon(t.Category, ut),
		})
	}
	return DashboardModel{
		Month:      req.Month,
		Summary:    summary,
		Insight:    finance.SavingsInsight(summary.SavingsRate),
		Recent:     recent,
		Categories: l.categoryRows(summary.CategoryExpenses, ut),
		Trend:      trend,
	}, nil
}

func (l *Loaders) analysis(ctx context.Context, req LoadRequest) (any, error) {
	summary, trend, err := l.summaryAndTrend(ctx, req.Month)
	if err != nil {
		return nil, fmt.Errorf("load analysis: %w", err)
	}
	if len(trend) > analysisTrendLimit {
		trend = trend[:analysisTrendLimit]
	}
	return AnalysisModel{
		Month:      req.Month,
		Summary:    summary,
		Categories: l.categoryRows(summary.CategoryExpenses, req.Session.UserType),
		Trend:      trend,
	}, nil
}

func (l *Loaders) income(ctx context.Context, req LoadRequest) (any, error) {
	records, err := l.backend.ListIncome(ctx)
	if err != nil {
		return nil, fmt.Errorf("load income: %w", err)
	}
	ut := req.Session.UserType
	rows := make([]IncomeRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, IncomeRow{
			Income: r,
			Label:  l.catalog.IncomeLabel(r.Source, ut),
			Icon:   l.catalog.IncomeIcon(r.Source, ut),
		})
	}
	return IncomeModel{Records: rows, Sources: l.catalog.IncomeSources(ut)}, nil
}

func (l *Loaders) expenses(ctx context.Context, req LoadRequest) (any, error) {
	records, err := l.backend.ListExpenses(ctx)
	if err != nil {
		return nil, fmt.Errorf("load expenses: %w", err)
	}
	ut := req.Session.UserType
	rows := make([]ExpenseRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, ExpenseRow{
			Expense: r,
			Label:   l.catalog.CategoryLabel(r.Category, ut),
			Icon:    l.catalog.CategoryIcon(r.Category, ut),
		})
	}
	return ExpensesModel{Records: rows, Categories: l.catalog.Categories(ut)}, nil
}

func (l *Loaders) budget(ctx context.Context, req LoadRequest) (any, error) {
	var (
		budgets []finance.Budget
		lines   []finance.BudgetLine
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		budgets, err = l.backend.ListBudgets(gctx, req.Month)
		return err
	})
	g.Go(func() error {
		var err error
		lines, err = l.backend.BudgetAnalysis(gctx, req.Month)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load budget: %w", err)
	}

	ut := req.Session.UserType
	rows := make([]BudgetRow, 0, len(lines))
	for _, ln := range lines {
		rows = append(rows, BudgetRow{
			BudgetLine: ln,
			Label:      l.catalog.CategoryLabel(ln.Category, ut),
			Icon:       l.catalog.CategoryIcon(ln.Category, ut),
			Percent:    ln.UsedPercent(),
			Over:       ln.Status == finance.BudgetOver,
		})
	}
	return BudgetModel{
		Month:      req.Month,
		Budgets:    budgets,
		Lines:      rows,
		Categories: l.catalog.Categories(ut),
	}, nil
}

func (l *Loaders) recurring(ctx context.Context, req LoadRequest) (any, error) {
	items, err := l.backend.ListRecurring(ctx)
	if err != nil {
		return nil, fmt.Errorf("load recurring: %w", err)
	}
	return RecurringModel{Items: items, Categories: l.catalog.Categories(req.Session.UserType)}, nil
}

func (l *Loaders) emergencyFund(ctx context.Context, _ LoadRequest) (any, error) {
	fund, err := l.backend.GetEmergencyFund(ctx)
	if err != nil {
		return nil, fmt.Errorf("load emergency fund: %w", err)
	}
	return EmergencyFundModel{Fund: fund, Status: fund.Status(util.Currency)}, nil
}

func (l *Loaders) overall(ctx context.Context, req LoadRequest) (any, error) {
	o, err := l.backend.Overall(ctx)
	if err != nil {
		return nil, fmt.Errorf("load overall summary: %w", err)
	}
	top := o.Categories
	if len(top) > overallTopLimit {
		top = top[:overallTopLimit]
	}
	return OverallModel{
		Overall:    o,
		Top:        l.categoryRows(top, req.Session.UserType),
		Comparison: finance.ComparisonInsight(o.Comparison, util.Currency),
	}, nil
}

// admin checks privilege with the stats call before fetching the rest.
func (l *Loaders) admin(ctx context.Context, _ LoadRequest) (any, error) {
	stats, err := l.backend.AdminStats(ctx)
	if err != nil {
		if apperrors.IsAccessDenied(err) {
			return nil, apperrors.AccessDenied(MsgAccessDenied, http.StatusForbidden)
		}
		return nil, fmt.Errorf("load admin stats: %w", err)
	}

	m := AdminModel{Stats: stats}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		m.Users, err = l.backend.AdminUsers(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		m.Feedback, err = l.backend.AdminFeedback(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		if apperrors.IsAccessDenied(err) {
			return nil, apperrors.AccessDenied(MsgAccessDenied, http.StatusForbidden)
		}
		return nil, fmt.Errorf("load admin panel: %w", err)
	}
	return m, nil
}
