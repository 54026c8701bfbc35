// Package view holds the static registry of named screens.
package view

// ID names one mutually-exclusive screen.
type ID string

// Registered view ids.
const (
	Login          ID = "login"
	Register       ID = "register"
	Dashboard      ID = "dashboard"
	Income         ID = "add-income"
	Expenses       ID = "add-expense"
	Budget         ID = "budget"
	Analysis       ID = "analysis"
	Recurring      ID = "recurring"
	EmergencyFund  ID = "emergency-fund"
	OverallSummary ID = "overall-summary"
	AdminPanel     ID = "admin-panel"
)

// DefaultTitle is used for ids without a registered view.
const DefaultTitle = "SpendWise"

// View describes one screen. Registry values are never mutated.
type View struct {
	ID           ID
	Title        string
	Icon         string
	RequiresAuth bool
	MonthScoped  bool
	AdminOnly    bool
}

// IsAuth reports whether v is one of the unauthenticated entry screens.
func (v View) IsAuth() bool { return IsAuthView(v.ID) }

var registry = []View{
	{ID: Login, Title: "Login"},
	{ID: Register, Title: "Register"},
	{ID: Dashboard, Title: "Dashboard", Icon: "ri-dashboard-line", RequiresAuth: true, MonthScoped: true},
	{ID: Income, Title: "Income", Icon: "ri-money-dollar-circle-line", RequiresAuth: true},
	{ID: Expenses, Title: "Expenses", Icon: "ri-shopping-bag-line", RequiresAuth: true},
	{ID: Budget, Title: "Budgets", Icon: "ri-pie-chart-line", RequiresAuth: true, MonthScoped: true},
	{ID: Analysis, Title: "Analytics", Icon: "ri-bar-chart-box-line", RequiresAuth: true, MonthScoped: true},
	{ID: Recurring, Title: "Subscriptions", Icon: "ri-repeat-line", RequiresAuth: true},
	{ID: EmergencyFund, Title: "Emergency Fund", Icon: "ri-shield-star-line", RequiresAuth: true},
	{ID: OverallSummary, Title: "Lifetime Summary", Icon: "ri-history-line", RequiresAuth: true},
	{ID: AdminPanel, Title: "Admin Dashboard", Icon: "ri-admin-line", RequiresAuth: true, AdminOnly: true},
}

var byID = func() map[ID]View {
	m := make(map[ID]View, len(registry))
	for _, v := range registry {
		m[v.ID] = v
	}
	return m
}()

// Lookup returns the registered view for id.
func Lookup(id ID) (View, bool) {
	v, ok := byID[id]
	return v, ok
}

// All returns every registered view in registry order.
func All() []View {
	out := make([]View, len(registry))
	copy(out, registry)
	return out
}

// Nav returns the authenticated views in menu order. Admin-only views are
// included only when admin is true.
func Nav(admin bool) []View {
	out := make([]View, 0, len(registry))
	for _, v := range registry {
		if !v.RequiresAuth || (v.AdminOnly && !admin) {
			continue
		}
		out = append(out, v)
	}
	return out
}

// Title resolves the human-readable title for id, falling back to DefaultTitle.
func Title(id ID) string {
	v, ok := byID[id]
	if !ok {
		return DefaultTitle
	}
	return v.Title
}

// IsAuthView reports whether id is login or register.
func IsAuthView(id ID) bool { return id == Login || id == Register }

// MonthScoped reports whether the month picker belongs on id.
func MonthScoped(id ID) bool {
	v, ok := byID[id]
	return ok && v.MonthScoped
}

// RequiresAuth reports whether id is gated behind a session. Unknown ids are
// gated too.
func RequiresAuth(id ID) bool { return !IsAuthView(id) }
