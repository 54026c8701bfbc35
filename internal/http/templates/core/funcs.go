// Package core provides the template functions shared by every SpendWise template.
package core

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"

	"github.com/spendwise/spendwise-web/internal/domain/catalog"
	"github.com/spendwise/spendwise-web/internal/domain/session"
	"github.com/spendwise/spendwise-web/internal/util"
)

// Deps holds dependencies for constructing the core template func map.
type Deps struct {
	Template **template.Template
	Catalog  *catalog.Catalog
}

// Funcs returns a template.FuncMap containing the formatting, catalog and
// rendering helpers.
func Funcs(deps Deps) template.FuncMap {
	funcs := template.FuncMap{
		"currency":     util.Currency,
		"compact":      util.CompactNumber,
		"percent":      util.Percent,
		"barWidth":     BarWidth,
		"seq":          Seq,
		"add":          func(a, b int) int { return a + b },
		"stars":        Stars,
		"userTypeName": UserTypeName,
	}

	addCatalogFuncs(funcs, deps.Catalog)
	addRenderFuncs(funcs, deps)
	return funcs
}

func addCatalogFuncs(funcs template.FuncMap, c *catalog.Catalog) {
	if c == nil {
		c = catalog.Default()
	}
	funcs["categoryLabel"] = func(value string, ut session.UserType) string { return c.CategoryLabel(value, ut) }
	funcs["categoryIcon"] = func(value string, ut session.UserType) string { return c.CategoryIcon(value, ut) }
	funcs["incomeLabel"] = func(value string, ut session.UserType) string { return c.IncomeLabel(value, ut) }
	funcs["incomeIcon"] = func(value string, ut session.UserType) string { return c.IncomeIcon(value, ut) }
	funcs["categories"] = c.Categories
	funcs["incomeSources"] = c.IncomeSources
}

func addRenderFuncs(funcs template.FuncMap, deps Deps) {
	funcs["renderView"] = func(name string, data any) (template.HTML, error) {
		if deps.Template == nil || *deps.Template == nil {
			return "", errors.New("template not initialized")
		}
		var buf bytes.Buffer
		if err := (*deps.Template).ExecuteTemplate(&buf, name, data); err != nil {
			return "", err
		}
		// #nosec G203 - rendered by our own html/template set; user values were
		// escaped during ExecuteTemplate above.
		return template.HTML(buf.String()), nil
	}

	funcs["toJSON"] = func(v any) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}

// BarWidth renders a percentage as a CSS width clamped to [0, 100].
func BarWidth(pct float64) template.CSS {
	switch {
	case pct < 0:
		pct = 0
	case pct > 100:
		pct = 100
	}
	// #nosec G203 - numeric value formatted by us
	return template.CSS(fmt.Sprintf("width: %.1f%%", pct))
}

// Seq returns 0..n-1, for rendering a fixed number of cells.
func Seq(n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// Stars renders a 1..5 rating as filled and empty stars.
func Stars(rating int) string {
	if rating < 0 {
		rating = 0
	}
	if rating > 5 {
		rating = 5
	}
	out := make([]rune, 0, 5)
	for i := 0; i < 5; i++ {
		if i < rating {
			out = append(out, '★')
		} else {
			out = append(out, '☆')
		}
	}
	return string(out)
}

// UserTypeName is the display name of a user type.
func UserTypeName(ut session.UserType) string {
	switch ut {
	case session.UserTypeStudent:
		return "Student"
	case session.UserTypeBusiness:
		return "Business"
	default:
		return "Individual"
	}
}
