package service

import (
	"context"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spendwise/spendwise-web/internal/domain/finance"
	"github.com/spendwise/spendwise-web/internal/domain/view"
	apperrors "github.com/spendwise/spendwise-web/internal/errors"
	"github.com/spendwise/spendwise-web/internal/notify"
	"github.com/spendwise/spendwise-web/internal/ports"
)

// ActionName identifies one entry of the dispatch table.
type ActionName string

const (
	ActionAddExpense       ActionName = "add-expense"
	ActionDeleteExpense    ActionName = "delete-expense"
	ActionAddIncome        ActionName = "add-income"
	ActionDeleteIncome     ActionName = "delete-income"
	ActionSetBudget        ActionName = "set-budget"
	ActionAddRecurring     ActionName = "add-recurring"
	ActionDeleteRecurring  ActionName = "delete-recurring"
	ActionSetEmergencyFund ActionName = "set-emergency-fund"
	ActionDeleteUser       ActionName = "delete-user"
	ActionUpdateProfile    ActionName = "update-profile"
	ActionChangePassword   ActionName = "change-password"
	ActionSubmitFeedback   ActionName = "submit-feedback"
)

// Client-side events raised after an action succeeds.
const (
	EventExpensesChanged = "expensesChanged"
	EventSessionChanged  = "sessionChanged"
)

// DefaultFeedbackRating is used when the form omits a rating.
const DefaultFeedbackRating = 5

// Form is the submitted form. url.Values satisfies it.
type Form interface {
	Get(key string) string
}

// ActionFunc performs an action and returns the success message.
type ActionFunc func(ctx context.Context, st *SessionState, form Form) (string, error)

// Action is one entry of the dispatch table.
type Action struct {
	RequiresAuth bool
	// Refresh is the view to re-render after success, if any.
	Refresh view.ID
	// Event is raised on the client after success, if set.
	Event string
	Run   ActionFunc
}

// ActionResult is what a successful dispatch reports back to the handler.
type ActionResult struct {
	Message string
	Refresh view.ID
	Event   string
}

// ActionsOptions groups dependencies for Actions.
type ActionsOptions struct {
	Backend ports.Backend // Required
	Auth    *AuthService  // Required
	Now     func() time.Time
}

// Actions is the typed dispatch table behind POST /actions/{name}.
type Actions struct {
	backend ports.Backend
	auth    *AuthService
	now     func() time.Time
	table   map[ActionName]Action
}

// NewActions constructs the dispatch table.
func NewActions(opts ActionsOptions) *Actions {
	if opts.Backend == nil {
		panic("service: ActionsOptions.Backend is required")
	}
	if opts.Auth == nil {
		panic("service: ActionsOptions.Auth is required")
	}
	a := &Actions{backend: opts.Backend, auth: opts.Auth, now: opts.Now}
	if a.now == nil {
		a.now = time.Now
	}
	a.table = map[ActionName]Action{
		ActionAddExpense:       {RequiresAuth: true, Refresh: view.Expenses, Event: EventExpensesChanged, Run: a.addExpense},
		ActionDeleteExpense:    {RequiresAuth: true, Refresh: view.Expenses, Event: EventExpensesChanged, Run: a.deleteExpense},
		ActionAddIncome:        {RequiresAuth: true, Refresh: view.Income, Run: a.addIncome},
		ActionDeleteIncome:     {RequiresAuth: true, Refresh: view.Income, Run: a.deleteIncome},
		ActionSetBudget:        {RequiresAuth: true, Refresh: view.Budget, Run: a.setBudget},
		ActionAddRecurring:     {RequiresAuth: true, Refresh: view.Recurring, Run: a.addRecurring},
		ActionDeleteRecurring:  {RequiresAuth: true, Refresh: view.Recurring, Run: a.deleteRecurring},
		ActionSetEmergencyFund: {RequiresAuth: true, Refresh: view.EmergencyFund, Run: a.setEmergencyFund},
		ActionDeleteUser:       {RequiresAuth: true, Refresh: view.AdminPanel, Run: a.deleteUser},
		ActionUpdateProfile:    {RequiresAuth: true, Event: EventSessionChanged, Run: a.updateProfile},
		ActionChangePassword:   {RequiresAuth: true, Run: a.changePassword},
		ActionSubmitFeedback:   {RequiresAuth: true, Run: a.submitFeedback},
	}
	return a
}

// Lookup returns the action registered under name.
func (a *Actions) Lookup(name ActionName) (Action, bool) {
	act, ok := a.table[name]
	return act, ok
}

// Dispatch runs the named action and pushes its success message.
func (a *Actions) Dispatch(ctx context.Context, st *SessionState, name ActionName, form Form) (ActionResult, error) {
	act, ok := a.table[name]
	if !ok {
		return ActionResult{}, apperrors.NotFoundf("unknown action %q", name)
	}
	if act.RequiresAuth && !st.LoggedIn() {
		return ActionResult{}, apperrors.Unauthenticated("Please login first", 0)
	}

	msg, err := act.Run(ctx, st, form)
	if err != nil {
		return ActionResult{}, err
	}
	notify.Push(ctx, msg, notify.Success)
	return ActionResult{Message: msg, Refresh: act.Refresh, Event: act.Event}, nil
}

// ParseAmount reads a required decimal amount.
func ParseAmount(form Form, field string) (float64, error) {
	raw := strings.TrimSpace(form.Get(field))
	if raw == "" {
		return 0, apperrors.ValidationField(field, "Please enter an amount")
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, apperrors.ValidationField(field, "Please enter a valid amount")
	}
	return v, nil
}

// optionalAmount reads a decimal that defaults to zero when blank.
func optionalAmount(form Form, field string) (float64, error) {
	if strings.TrimSpace(form.Get(field)) == "" {
		return 0, nil
	}
	return ParseAmount(form, field)
}

func parseID(form Form) (int64, error) {
	id, err := strconv.ParseInt(strings.TrimSpace(form.Get("id")), 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.ValidationField("id", "Invalid record id")
	}
	return id, nil
}

func (a *Actions) dateOrToday(form Form, field string) string {
	if d := strings.TrimSpace(form.Get(field)); d != "" {
		return d
	}
	return a.now().Format(time.DateOnly)
}

func required(form Form, field, message string) (string, error) {
	v := strings.TrimSpace(form.Get(field))
	if v == "" {
		return "", apperrors.ValidationField(field, message)
	}
	return v, nil
}

func (a *Actions) addExpense(ctx context.Context, _ *SessionState, form Form) (string, error) {
	amount, err := ParseAmount(form, "amount")
	if err != nil {
		return "", err
	}
	category, err := required(form, "category", "Please choose a category")
	if err != nil {
		return "", err
	}
	in := finance.NewExpense{
		Amount:        amount,
		Category:      category,
		Date:          a.dateOrToday(form, "date"),
		PaymentMethod: strings.TrimSpace(form.Get("payment_method")),
		Description:   strings.TrimSpace(form.Get("description")),
	}
	if err := a.backend.CreateExpense(ctx, in); err != nil {
		return "", err
	}
	return "Expense Added", nil
}

func (a *Actions) deleteExpense(ctx context.Context, _ *SessionState, form Form) (string, error) {
	id, err := parseID(form)
	if err != nil {
		return "", err
	}
	if err := a.backend.DeleteExpense(ctx, id); err != nil {
		return "", err
	}
	return "Deleted", nil
}

func (a *Actions) addIncome(ctx context.Context, _ *SessionState, form Form) (string, error) {
	amount, err := ParseAmount(form, "amount")
	if err != nil {
		return "", err
	}
	source, err := required(form, "source", "Please choose a source")
	if err != nil {
		return "", err
	}
	in := finance.NewIncome{Amount: amount, Source: source, Date: a.dateOrToday(form, "date")}
	if err := a.backend.CreateIncome(ctx, in); err != nil {
		return "", err
	}
	return "Income Added", nil
}

func (a *Actions) deleteIncome(ctx context.Context, _ *SessionState, form Form) (string, error) {
	id, err := parseID(form)
	if err != nil {
		return "", err
	}
	if err := a.backend.DeleteIncome(ctx, id); err != nil {
		return "", err
	}
	return "Income Deleted", nil
}

func (a *Actions) setBudget(ctx context.Context, _ *SessionState, form Form) (string, error) {
	amount, err := ParseAmount(form, "amount")
	if err != nil {
		return "", err
	}
	category, err := required(form, "category", "Please choose a category")
	if err != nil {
		return "", err
	}
	month := finance.ResolveMonth(form.Get("month"), a.now())
	in := finance.Budget{Category: category, Amount: amount, Month: month.String()}
	if err := a.backend.SetBudget(ctx, in); err != nil {
		return "", err
	}
	return "Budget Set", nil
}

func (a *Actions) addRecurring(ctx context.Context, _ *SessionState, form Form) (string, error) {
	amount, err := ParseAmount(form, "amount")
	if err != nil {
		return "", err
	}
	desc, err := required(form, "description", "Please enter a description")
	if err != nil {
		return "", err
	}
	frequency := strings.TrimSpace(form.Get("frequency"))
	if frequency == "" {
		frequency = "monthly"
	}
	in := finance.NewRecurring{
		Description: desc,
		Amount:      amount,
		Category:    strings.TrimSpace(form.Get("category")),
		NextDueDate: a.dateOrToday(form, "next_due_date"),
		Frequency:   frequency,
	}
	if err := a.backend.CreateRecurring(ctx, in); err != nil {
		return "", err
	}
	return "Added", nil
}

func (a *Actions) deleteRecurring(ctx context.Context, _ *SessionState, form Form) (string, error) {
	id, err := parseID(form)
	if err != nil {
		return "", err
	}
	if err := a.backend.DeleteRecurring(ctx, id); err != nil {
		return "", err
	}
	return "Stopped", nil
}

func (a *Actions) setEmergencyFund(ctx context.Context, _ *SessionState, form Form) (string, error) {
	var (
		fund finance.EmergencyFund
		err  error
	)
	fields := []struct {
		name string
		dst  *float64
	}{
		{"target_amount", &fund.TargetAmount},
		{"current_amount", &fund.CurrentAmount},
		{"alert_threshold", &fund.AlertThreshold},
		{"monthly_goal", &fund.MonthlyGoal},
	}
	for _, f := range fields {
		if *f.dst, err = optionalAmount(form, f.name); err != nil {
			return "", err
		}
	}
	if err := a.backend.UpdateEmergencyFund(ctx, fund); err != nil {
		return "", err
	}
	return "Updated", nil
}

func (a *Actions) deleteUser(ctx context.Context, _ *SessionState, form Form) (string, error) {
	id, err := parseID(form)
	if err != nil {
		return "", err
	}
	if err := a.backend.DeleteUser(ctx, id); err != nil {
		return "", err
	}
	return "User Deleted", nil
}

func (a *Actions) updateProfile(ctx context.Context, st *SessionState, form Form) (string, error) {
	return a.auth.UpdateProfile(ctx, st, ProfileInput{
		Username: form.Get("username"),
		Email:    form.Get("email"),
		UserType: form.Get("user_type"),
	})
}

func (a *Actions) changePassword(ctx context.Context, _ *SessionState, form Form) (string, error) {
	return a.auth.ChangePassword(ctx, form.Get("current_password"), form.Get("new_password"))
}

func (a *Actions) submitFeedback(ctx context.Context, _ *SessionState, form Form) (string, error) {
	rating := DefaultFeedbackRating
	if raw := strings.TrimSpace(form.Get("rating")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 5 {
			return "", apperrors.ValidationField("rating", "Rating must be between 1 and 5")
		}
		rating = n
	}
	in := finance.Feedback{Rating: rating, Message: strings.TrimSpace(form.Get("message"))}
	if err := a.backend.SubmitFeedback(ctx, in); err != nil {
		return "", err
	}
	return "Feedback Sent!", nil
}
