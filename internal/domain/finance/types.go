// Package finance holds the transient, backend-owned records the web client
// renders. Nothing here is cached beyond a single response.
package finance

// Expense is one expense as listed by GET /expenses.
type Expense struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// NewExpense is the body of POST /expenses.
type NewExpense struct {
	Amount        float64 `json:"amount"`
	Category      string  `json:"category"`
	Date          string  `json:"date"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Description   string  `json:"description"`
}

// Income is one income record as listed by GET /income.
type Income struct {
	ID     int64   `json:"id"`
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
	Date   string  `json:"date"`
}

// NewIncome is the body of POST /income.
type NewIncome struct {
	Amount float64 `json:"amount"`
	Source string  `json:"source"`
	Date   string  `json:"date"`
}

// Budget is one monthly category budget. It doubles as the POST /budget body.
type Budget struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
	Month    string  `json:"month"`
}

// BudgetStatus is "over" when actual spend exceeds the budget.
type BudgetStatus string

const (
	BudgetOver  BudgetStatus = "over"
	BudgetUnder BudgetStatus = "under"
)

// BudgetLine compares a budget with actual spend for a month.
type BudgetLine struct {
	Category string       `json:"category"`
	Budgeted float64      `json:"budgeted"`
	Actual   float64      `json:"actual"`
	Status   BudgetStatus `json:"status"`
}

// UsedPercent is actual/budgeted as a percentage clamped to [0, 100].
// A zero budget reports 0.
func (b BudgetLine) UsedPercent() float64 {
	if b.Budgeted <= 0 {
		return 0
	}
	pct := b.Actual / b.Budgeted * 100
	switch {
	case pct > 100:
		return 100
	case pct < 0:
		return 0
	default:
		return pct
	}
}

// Recurring is an active subscription or repeating expense.
type Recurring struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	NextDueDate string  `json:"next_due_date"`
	Frequency   string  `json:"frequency"`
}

// NewRecurring is the body of POST /recurring.
type NewRecurring struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	NextDueDate string  `json:"next_due_date"`
	Frequency   string  `json:"frequency"`
}

// EmergencyFund is the user's rainy-day goal. ProgressPercentage is computed
// by the backend and ignored on PUT.
type EmergencyFund struct {
	TargetAmount       float64 `json:"target_amount"`
	CurrentAmount      float64 `json:"current_amount"`
	AlertThreshold     float64 `json:"alert_threshold"`
	MonthlyGoal        float64 `json:"monthly_goal"`
	ProgressPercentage float64 `json:"progress_percentage,omitempty"`
}

// Transaction is a recent expense on the dashboard.
type Transaction struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Date        string  `json:"date"`
	Description string  `json:"description"`
}

// CategoryShare is spend for one category and its share of the total.
type CategoryShare struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Percentage float64 `json:"percentage"`
}

// Dashboard is the month summary returned by GET /dashboard.
type Dashboard struct {
	TotalIncome        float64         `json:"total_income"`
	TotalExpenses      float64         `json:"total_expenses"`
	NetSavings         float64         `json:"net_savings"`
	SavingsRate        float64         `json:"savings_rate"`
	RecentTransactions []Transaction   `json:"recent_transactions"`
	CategoryExpenses   []CategoryShare `json:"category_expenses"`
}

// MonthTotals is one entry of GET /analytics/monthly.
type MonthTotals struct {
	Month    string  `json:"month"`
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
}

// Comparison contrasts month-to-date spend with the same span last month.
type Comparison struct {
	ThisMonth        float64 `json:"this_month_val"`
	PrevMonth        float64 `json:"prev_month_val"`
	CurrentDateLabel string  `json:"current_date_label"`
	PrevDateLabel    string  `json:"prev_date_label"`
}

// Diff is this month minus the previous month.
func (c Comparison) Diff() float64 { return c.ThisMonth - c.PrevMonth }

// MonthSpend is one point of the lifetime spend trend.
type MonthSpend struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// Overall is the lifetime summary returned by GET /analytics/overall.
type Overall struct {
	TotalIncome   float64         `json:"total_income"`
	TotalExpenses float64         `json:"total_expenses"`
	NetSavings    float64         `json:"net_savings"`
	Categories    []CategoryShare `json:"categories"`
	Comparison    Comparison      `json:"comparison"`
	Trend         []MonthSpend    `json:"trend"`
}

// AdminStats is returned by GET /admin/stats.
type AdminStats struct {
	TotalUsers    int64   `json:"total_users"`
	TotalVolume   float64 `json:"total_volume"`
	TotalFeedback int64   `json:"total_feedback"`
}

// AdminUser is one row of GET /admin/users. ID is zero when the backend omits it.
type AdminUser struct {
	ID       int64  `json:"id,omitempty"`
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
	Joined   string `json:"joined"`
	IsAdmin  bool   `json:"is_admin"`
}

// Deletable reports whether the admin panel offers a delete action for u.
func (u AdminUser) Deletable() bool { return !u.IsAdmin && u.ID > 0 }

// FeedbackEntry is one row of GET /admin/feedback.
type FeedbackEntry struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

// Feedback is the body of POST /feedback.
type Feedback struct {
	Rating  int    `json:"rating"`
	Message string `json:"message"`
}

// Profile is the body of PUT /user/profile.
type Profile struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	UserType string `json:"user_type"`
}

// PasswordChange is the body of PUT /user/password.
type PasswordChange struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
