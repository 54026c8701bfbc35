package httpx

import "github.com/spendwise/spendwise-web/internal/domain/view"

// Template paths used for loading templates in tests and development.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
	StaticPathFromRoot   = "frontend/static"
)

// Template names rendered directly by handlers.
const (
	tmplLayout   = "layout"
	tmplViewSwap = "view-swap"
	tmplAuthSwap = "auth-swap"
	tmplCalendar = "calendar"
)

// Auth form modes shown on the auth view.
const (
	AuthModeLogin    = "login"
	AuthModeRegister = "register"
	AuthModeForgot   = "forgot"
	AuthModeReset    = "reset"
)

// DefaultFlashCookieName carries notifications across one redirect.
const DefaultFlashCookieName = "spendwise_flash"

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[view.ID]string{
	view.Login:          "view-auth",
	view.Register:       "view-auth",
	view.Dashboard:      "view-dashboard",
	view.Income:         "view-income",
	view.Expenses:       "view-expenses",
	view.Budget:         "view-budget",
	view.Analysis:       "view-analysis",
	view.Recurring:      "view-recurring",
	view.EmergencyFund:  "view-emergency-fund",
	view.OverallSummary: "view-overall-summary",
	view.AdminPanel:     "view-admin-panel",
}

// ContentTemplateFor returns the content template for a view id.
// Unknown ids fall back to the dashboard.
func ContentTemplateFor(id string) string {
	if name, ok := contentTemplates[view.ID(id)]; ok {
		return name
	}
	return "view-dashboard"
}
