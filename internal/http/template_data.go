package httpx

import (
	"net/http"

	"github.com/spendwise/spendwise-web/internal/domain/finance"
	"github.com/spendwise/spendwise-web/internal/domain/session"
	"github.com/spendwise/spendwise-web/internal/domain/view"
	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/service"
)

// PageData is the root value handed to every template.
type PageData struct {
	Title           string
	View            view.View
	Nav             []view.View
	Session         session.Session
	LoggedIn        bool
	Month           finance.Month
	ShowMonthPicker bool
	Model           any
	CSRFToken       string
	Toasts          []notify.Notification

	// Auth view only.
	AuthMode   string
	ResetToken string
	UserTypes  []session.UserType
}

// ContentTemplate names the template that renders the active view.
func (d PageData) ContentTemplate() string { return ContentTemplateFor(string(d.View.ID)) }

// UserType is the catalog flavour used for labels and dropdowns.
func (d PageData) UserType() session.UserType { return d.Session.UserType }

// newPageData fills the fields every page shares from the request state.
func newPageData(r *http.Request, st *service.SessionState) PageData {
	sess := st.Session()
	return PageData{
		Title:     view.DefaultTitle,
		Nav:       view.Nav(st.IsAdmin()),
		Session:   sess,
		LoggedIn:  sess.LoggedIn(),
		CSRFToken: GetCSRFToken(r),
		UserTypes: session.UserTypes(),
	}
}

// withNavigation copies the outcome of a view transition into d.
func (d PageData) withNavigation(nav service.Navigation) PageData {
	d.View = nav.View
	d.Title = nav.Title
	d.ShowMonthPicker = nav.ShowMonthPicker
	d.Month = nav.Month
	d.Model = nav.Model
	if nav.View.IsAuth() {
		d.AuthMode = string(nav.View.ID)
	}
	return d
}
