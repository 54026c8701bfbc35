package httpx

import (
	"net/http"

	"github.com/spendwise/spendwise-web/internal/calendar"
	"github.com/spendwise/spendwise-web/internal/domain/finance"
	"github.com/spendwise/spendwise-web/internal/domain/view"
	"github.com/spendwise/spendwise-web/internal/notify"
)

// CalendarData feeds the calendar partial.
type CalendarData struct {
	Grid    calendar.Grid
	Details []finance.Expense
	Prev    finance.Month
	Next    finance.Month
	PageData
}

// Calendar serves GET /calendar?month=YYYY-MM&day=YYYY-MM-DD, the expense
// calendar and the selected day's records.
func (h *Handlers) Calendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	st := stateOf(r)
	if !st.LoggedIn() {
		notify.Push(ctx, msgLoginFirst, notify.Warning)
		h.redirect(w, r, "/login")
		return
	}
	if !WantsPartial(r) {
		h.redirect(w, r, viewPath(view.Expenses, finance.Month{}))
		return
	}

	expenses, err := h.backend.ListExpenses(ctx)
	if err != nil {
		if h.report(r, err, msgLoadFailed) {
			h.redirect(w, r, "/login")
			return
		}
		h.keep(w, r, HTMX(w))
		return
	}

	month := h.month(r)
	grid := calendar.Build(month, expenses, r.URL.Query().Get("day"), calendar.Today(h.now()))
	data := CalendarData{
		Grid:     grid,
		Details:  grid.Details(grid.Selected),
		Prev:     month.Prev(),
		Next:     month.Next(),
		PageData: newPageData(r, st),
	}
	h.renderFragment(w, r, tmplCalendar, data, HTMX(w))
}
