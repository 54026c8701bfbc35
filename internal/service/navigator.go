package service

import (
	"context"
	"log/slog"

	"github.com/spendwise/spendwise-web/internal/domain/finance"
	"github.com/spendwise/spendwise-web/internal/domain/view"
)

// NavigateRequest asks for view View scoped to Month.
type NavigateRequest struct {
	View  view.ID
	Month finance.Month
}

// Navigation is the outcome of a view transition.
type Navigation struct {
	// Redirect is set when the transition was refused; the caller shows
	// that view instead. It is not an error.
	Redirect view.ID
	// Unknown is set when no view is registered under the requested id.
	Unknown         bool
	View            view.View
	Title           string
	ShowMonthPicker bool
	Month           finance.Month
	Model           any
	// Failed is set when the loader returned an error.
	Failed bool
}

// NavigatorOptions groups dependencies for Navigator.
type NavigatorOptions struct {
	Sessions *SessionService // Required
	Loaders  *Loaders        // Required
	Logger   *slog.Logger
}

// Navigator decides which view a request may see and loads its data.
type Navigator struct {
	sessions *SessionService
	loaders  *Loaders
	logger   *slog.Logger
}

// NewNavigator constructs a Navigator. It panics on missing dependencies.
func NewNavigator(opts NavigatorOptions) *Navigator {
	if opts.Sessions == nil {
		panic("service: NavigatorOptions.Sessions is required")
	}
	if opts.Loaders == nil {
		panic("service: NavigatorOptions.Loaders is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Navigator{
		sessions: opts.Sessions,
		loaders:  opts.Loaders,
		logger:   logger.With("component", "navigator"),
	}
}

// Navigate applies the auth gate in both directions, records the active tab and runs the view's
// loader. A loader error is returned together with a Navigation whose Failed
// flag is set; the caller reports it and keeps the previous screen.
func (n *Navigator) Navigate(ctx context.Context, st *SessionState, req NavigateRequest) (Navigation, error) {
	if !st.LoggedIn() && !view.IsAuthView(req.View) {
		login, _ := view.Lookup(view.Login)
		return Navigation{Redirect: view.Login, View: login, Title: view.Title(view.Login)}, nil
	}
	if st.LoggedIn() && view.IsAuthView(req.View) {
		return Navigation{Redirect: n.Restore(st)}, nil
	}

	v, ok := view.Lookup(req.View)
	if !ok {
		return Navigation{Unknown: true, Title: view.Title(req.View)}, nil
	}

	if err := n.sessions.SetActiveTab(ctx, st, v.ID); err != nil {
		n.logger.WarnContext(ctx, "failed to persist active tab", "view", v.ID, "error", err)
	}

	nav := Navigation{
		View:            v,
		Title:           view.Title(v.ID),
		ShowMonthPicker: view.MonthScoped(v.ID),
		Month:           req.Month,
	}

	load, ok := n.loaders.For(v.ID)
	if !ok {
		return nav, nil
	}
	model, err := load(ctx, LoadRequest{Session: st.Session(), Month: req.Month})
	if err != nil {
		nav.Failed = true
		return nav, err
	}
	nav.Model = model
	return nav, nil
}

// Restore returns the view a full page load should open: the saved active
// tab for a signed-in user, the dashboard when none is saved, and the login
// view otherwise.
func (n *Navigator) Restore(st *SessionState) view.ID {
	if !st.LoggedIn() {
		return view.Login
	}
	if v, ok := view.Lookup(view.ID(st.ActiveTab())); ok && !v.IsAuth() {
		return v.ID
	}
	return view.Dashboard
}
