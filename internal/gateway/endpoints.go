package gateway

import (
	"context"
	"fmt"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/spendwise/spendwise-web/internal/domain/finance"
	"github.com/spendwise/spendwise-web/internal/domain/session"
	apperrors "github.com/spendwise/spendwise-web/internal/errors"
	"github.com/spendwise/spendwise-web/internal/ports"
)

var _ ports.Backend = (*Client)(nil)

type messageResponse struct {
	Message string `json:"message"`
}

type loginResponse struct {
	Message     string `json:"message"`
	AccessToken string `json:"access_token"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	UserType    string `json:"user_type"`
	IsAdmin     bool   `json:"is_admin"`
}

func monthQuery(path string, m finance.Month) string {
	return path + "?" + url.Values{"month": {m.String()}}.Encode()
}

// Login exchanges credentials for a complete identity.
func (c *Client) Login(ctx context.Context, in ports.Credentials) (session.Identity, error) {
	var out loginResponse
	if err := c.do(ctx, call{
		method: http.MethodPost, path: "/auth/login", endpoint: "auth.login",
		body: in, fallback: "Login failed",
	}, &out); err != nil {
		return session.Identity{}, err
	}
	if out.AccessToken == "" {
		return session.Identity{}, apperrors.Backend("Login failed", http.StatusOK)
	}

	ut := session.ParseUserType(out.UserType)
	if ut == "" {
		ut = session.UserTypeIndividual
	}
	username := out.Username
	if username == "" {
		username = in.Username
	}
	return session.Identity{
		Token:    out.AccessToken,
		Username: username,
		Email:    out.Email,
		UserType: ut,
		IsAdmin:  out.IsAdmin,
	}, nil
}

// Register creates an account and returns the backend message.
func (c *Client) Register(ctx context.Context, in ports.Registration) (string, error) {
	var out messageResponse
	err := c.do(ctx, call{
		method: http.MethodPost, path: "/auth/register", endpoint: "auth.register",
		body: in, fallback: "Registration failed",
	}, &out)
	return out.Message, err
}

// ForgotPassword asks the backend to mail a reset link.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var out messageResponse
	err := c.do(ctx, call{
		method: http.MethodPost, path: "/auth/forgot-password", endpoint: "auth.forgot_password",
		body: map[string]string{"email": email}, fallback: "Error sending link",
	}, &out)
	return out.Message, err
}

// ResetPassword sets a new password using a mailed reset token.
func (c *Client) ResetPassword(ctx context.Context, token, newPassword string) (string, error) {
	var out messageResponse
	err := c.do(ctx, call{
		method: http.MethodPost, path: "/auth/reset-password", endpoint: "auth.reset_password",
		body: map[string]string{"token": token, "new_password": newPassword}, fallback: "Invalid or missing token",
	}, &out)
	return out.Message, err
}

func (c *Client) ListExpenses(ctx context.Context) ([]finance.Expense, error) {
	var out []finance.Expense
	err := c.do(ctx, call{method: http.MethodGet, path: "/expenses", endpoint: "expenses.list", fallback: "Failed to load expenses"}, &out)
	return out, err
}

func (c *Client) CreateExpense(ctx context.Context, in finance.NewExpense) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/expenses", endpoint: "expenses.create", body: in, fallback: "Failed to add expense"}, nil)
}

func (c *Client) DeleteExpense(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		method: http.MethodDelete, path: fmt.Sprintf("/expenses/%d", id), endpoint: "expenses.delete",
		fallback: "Failed to delete expense",
	}, nil)
}

func (c *Client) ListIncome(ctx context.Context) ([]finance.Income, error) {
	var out []finance.Income
	err := c.do(ctx, call{method: http.MethodGet, path: "/income", endpoint: "income.list", fallback: "Failed to load income"}, &out)
	return out, err
}

func (c *Client) CreateIncome(ctx context.Context, in finance.NewIncome) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/income", endpoint: "income.create", body: in, fallback: "Failed to add income"}, nil)
}

func (c *Client) DeleteIncome(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		method: http.MethodDelete, path: fmt.Sprintf("/income/%d", id), endpoint: "income.delete",
		fallback: "Failed to delete income",
	}, nil)
}

func (c *Client) ListBudgets(ctx context.Context, month finance.Month) ([]finance.Budget, error) {
	var out []finance.Budget
	err := c.do(ctx, call{
		method: http.MethodGet, path: monthQuery("/budget", month), endpoint: "budget.list",
		fallback: "Failed to load budgets",
	}, &out)
	return out, err
}

func (c *Client) SetBudget(ctx context.Context, in finance.Budget) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/budget", endpoint: "budget.set", body: in, fallback: "Failed to set budget"}, nil)
}

func (c *Client) ListRecurring(ctx context.Context) ([]finance.Recurring, error) {
	var out []finance.Recurring
	err := c.do(ctx, call{method: http.MethodGet, path: "/recurring", endpoint: "recurring.list", fallback: "Failed to load subscriptions"}, &out)
	return out, err
}

func (c *Client) CreateRecurring(ctx context.Context, in finance.NewRecurring) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/recurring", endpoint: "recurring.create", body: in, fallback: "Failed to add subscription"}, nil)
}

func (c *Client) DeleteRecurring(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		method: http.MethodDelete, path: fmt.Sprintf("/recurring/%d", id), endpoint: "recurring.delete",
		fallback: "Failed to stop subscription",
	}, nil)
}

func (c *Client) GetEmergencyFund(ctx context.Context) (finance.EmergencyFund, error) {
	var out finance.EmergencyFund
	err := c.do(ctx, call{method: http.MethodGet, path: "/emergency-fund", endpoint: "emergency_fund.get", fallback: "Failed to load emergency fund"}, &out)
	return out, err
}

// UpdateEmergencyFund sends the four editable fields. The computed progress
// percentage is never sent back.
func (c *Client) UpdateEmergencyFund(ctx context.Context, in finance.EmergencyFund) error {
	in.ProgressPercentage = 0
	return c.do(ctx, call{
		method: http.MethodPut, path: "/emergency-fund", endpoint: "emergency_fund.update",
		body: in, fallback: "Failed to update emergency fund",
	}, nil)
}

func (c *Client) Dashboard(ctx context.Context, month finance.Month) (finance.Dashboard, error) {
	var out finance.Dashboard
	err := c.do(ctx, call{
		method: http.MethodGet, path: monthQuery("/dashboard", month), endpoint: "dashboard",
		fallback: "Failed to load dashboard data",
	}, &out)
	return out, err
}

func (c *Client) MonthlyTrend(ctx context.Context) ([]finance.MonthTotals, error) {
	var out []finance.MonthTotals
	err := c.do(ctx, call{method: http.MethodGet, path: "/analytics/monthly", endpoint: "analytics.monthly", fallback: "Failed to load analysis"}, &out)
	return out, err
}

func (c *Client) Overall(ctx context.Context) (finance.Overall, error) {
	var out finance.Overall
	err := c.do(ctx, call{method: http.MethodGet, path: "/analytics/overall", endpoint: "analytics.overall", fallback: "Failed to load overall summary"}, &out)
	return out, err
}

func (c *Client) BudgetAnalysis(ctx context.Context, month finance.Month) ([]finance.BudgetLine, error) {
	var out []finance.BudgetLine
	err := c.do(ctx, call{
		method: http.MethodGet, path: monthQuery("/budget-analysis", month), endpoint: "budget.analysis",
		fallback: "Failed to load budget analysis",
	}, &out)
	return out, err
}

func (c *Client) AdminStats(ctx context.Context) (finance.AdminStats, error) {
	var out finance.AdminStats
	err := c.do(ctx, call{method: http.MethodGet, path: "/admin/stats", endpoint: "admin.stats", fallback: "Access Denied: You are not an Admin"}, &out)
	return out, err
}

func (c *Client) AdminUsers(ctx context.Context) ([]finance.AdminUser, error) {
	var out []finance.AdminUser
	err := c.do(ctx, call{method: http.MethodGet, path: "/admin/users", endpoint: "admin.users", fallback: "Failed to load users"}, &out)
	return out, err
}

func (c *Client) AdminFeedback(ctx context.Context) ([]finance.FeedbackEntry, error) {
	var out []finance.FeedbackEntry
	err := c.do(ctx, call{method: http.MethodGet, path: "/admin/feedback", endpoint: "admin.feedback", fallback: "Failed to load feedback"}, &out)
	return out, err
}

func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.do(ctx, call{
		method: http.MethodDelete, path: fmt.Sprintf("/admin/users/%d", id), endpoint: "admin.users.delete",
		fallback: "Failed to delete user",
	}, nil)
}

func (c *Client) UpdateProfile(ctx context.Context, in finance.Profile) (string, error) {
	var out messageResponse
	err := c.do(ctx, call{method: http.MethodPut, path: "/user/profile", endpoint: "user.profile", body: in, fallback: "Failed to update profile"}, &out)
	return out.Message, err
}

func (c *Client) ChangePassword(ctx context.Context, in finance.PasswordChange) (string, error) {
	var out messageResponse
	err := c.do(ctx, call{method: http.MethodPut, path: "/user/password", endpoint: "user.password", body: in, fallback: "Failed to update password"}, &out)
	return out.Message, err
}

func (c *Client) SubmitFeedback(ctx context.Context, in finance.Feedback) error {
	return c.do(ctx, call{method: http.MethodPost, path: "/feedback", endpoint: "feedback.submit", body: in, fallback: "Failed to send feedback"}, nil)
}

// ExportFilename is the download name offered to the browser for kind.
func ExportFilename(kind ports.ExportKind) string {
	switch kind {
	case ports.ExportPDF:
		return "spendwise_report.pdf"
	default:
		return "spendwise_data.csv"
	}
}

// Export streams a CSV or PDF report. The caller must close the body.
func (c *Client) Export(ctx context.Context, kind ports.ExportKind) (ports.Download, error) {
	if kind != ports.ExportCSV && kind != ports.ExportPDF {
		return ports.Download{}, apperrors.ValidationField("kind", "Unsupported export format")
	}

	resp, err := c.send(ctx, call{
		method: http.MethodGet, path: "/export/" + string(kind), endpoint: "export." + string(kind),
		fallback: "Download failed",
	})
	if err != nil {
		return ports.Download{}, err
	}

	ct := resp.Header.Get("Content-Type")
	if mt, _, perr := mime.ParseMediaType(ct); perr != nil || strings.TrimSpace(mt) == "" {
		if kind == ports.ExportPDF {
			ct = "application/pdf"
		} else {
			ct = "text/csv"
		}
	}
	return ports.Download{Body: resp.Body, ContentType: ct, Filename: ExportFilename(kind)}, nil
}
