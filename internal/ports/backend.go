package ports

import (
	"context"
	"io"

	"github.com/spendwise/spendwise-web/internal/domain/finance"
	"github.com/spendwise/spendwise-web/internal/domain/session"
)

// Credentials is the body of POST /auth/login.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Registration is the body of POST /auth/register.
type Registration struct {
	Username string           `json:"username"`
	Email    string           `json:"email"`
	Password string           `json:"password"`
	UserType session.UserType `json:"user_type"`
}

// Download is a streamed export. The caller closes Body.
type Download struct {
	Body        io.ReadCloser
	ContentType string
	Filename    string
}

// ExportKind selects the export format.
type ExportKind string

const (
	ExportCSV ExportKind = "csv"
	ExportPDF ExportKind = "pdf"
)

// AuthBackend covers the unauthenticated account endpoints.
type AuthBackend interface {
	Login(ctx context.Context, in Credentials) (session.Identity, error)
	Register(ctx context.Context, in Registration) (string, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, token, newPassword string) (string, error)
}

// RecordsBackend covers CRUD on the user's financial records.
type RecordsBackend interface {
	ListExpenses(ctx context.Context) ([]finance.Expense, error)
	CreateExpense(ctx context.Context, in finance.NewExpense) error
	DeleteExpense(ctx context.Context, id int64) error
	ListIncome(ctx context.Context) ([]finance.Income, error)
	CreateIncome(ctx context.Context, in finance.NewIncome) error
	DeleteIncome(ctx context.Context, id int64) error
	ListBudgets(ctx context.Context, month finance.Month) ([]finance.Budget, error)
	SetBudget(ctx context.Context, in finance.Budget) error
	ListRecurring(ctx context.Context) ([]finance.Recurring, error)
	CreateRecurring(ctx context.Context, in finance.NewRecurring) error
	DeleteRecurring(ctx context.Context, id int64) error
	GetEmergencyFund(ctx context.Context) (finance.EmergencyFund, error)
	UpdateEmergencyFund(ctx context.Context, in finance.EmergencyFund) error
}

// AnalyticsBackend covers the read-only summaries.
type AnalyticsBackend interface {
	Dashboard(ctx context.Context, month finance.Month) (finance.Dashboard, error)
	MonthlyTrend(ctx context.Context) ([]finance.MonthTotals, error)
	Overall(ctx context.Context) (finance.Overall, error)
	BudgetAnalysis(ctx context.Context, month finance.Month) ([]finance.BudgetLine, error)
}

// AdminBackend covers the admin-only endpoints.
type AdminBackend interface {
	AdminStats(ctx context.Context) (finance.AdminStats, error)
	AdminUsers(ctx context.Context) ([]finance.AdminUser, error)
	AdminFeedback(ctx context.Context) ([]finance.FeedbackEntry, error)
	DeleteUser(ctx context.Context, id int64) error
}

// AccountBackend covers the signed-in user's own account.
type AccountBackend interface {
	UpdateProfile(ctx context.Context, in finance.Profile) (string, error)
	ChangePassword(ctx context.Context, in finance.PasswordChange) (string, error)
	SubmitFeedback(ctx context.Context, in finance.Feedback) error
	Export(ctx context.Context, kind ExportKind) (Download, error)
}

// Backend is the full REST surface of the SpendWise API.
type Backend interface {
	AuthBackend
	RecordsBackend
	AnalyticsBackend
	AdminBackend
	AccountBackend
}
