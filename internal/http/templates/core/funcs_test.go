package core

import (
	"bytes"
	"html/template"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendwise/spendwise-web/internal/domain/session"
)

func TestBarWidth(t *testing.T) {
	assert.Equal(t, template.CSS("width: 0.0%"), BarWidth(-5))
	assert.Equal(t, template.CSS("width: 42.5%"), BarWidth(42.5))
	assert.Equal(t, template.CSS("width: 100.0%"), BarWidth(140))
}

func TestSeq(t *testing.T) {
	assert.Nil(t, Seq(0))
	assert.Equal(t, []int{0, 1, 2}, Seq(3))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★☆☆", Stars(3))
	assert.Equal(t, "☆☆☆☆☆", Stars(-1))
	assert.Equal(t, "★★★★★", Stars(9))
}

func TestUserTypeName(t *testing.T) {
	assert.Equal(t, "Student", UserTypeName(session.UserTypeStudent))
	assert.Equal(t, "Business", UserTypeName(session.UserTypeBusiness))
	assert.Equal(t, "Individual", UserTypeName(""))
}

func TestFuncs_RenderViewAndCatalogFallback(t *testing.T) {
	var tmpl *template.Template
	tmpl = template.Must(template.New("root").Funcs(Funcs(Deps{Template: &tmpl})).Parse(
		`{{define "inner"}}<b>{{.}}</b>{{end}}` +
			`{{define "outer"}}{{renderView "inner" .}}|{{categoryLabel "mystery" ""}}|{{categoryIcon "mystery" ""}}{{end}}`,
	))

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "outer", "<x>"))
	assert.Contains(t, buf.String(), "<b>&lt;x&gt;</b>|mystery|")
}

func TestFuncs_RenderViewWithoutTemplate(t *testing.T) {
	fn, ok := Funcs(Deps{})["renderView"].(func(string, any) (template.HTML, error))
	require.True(t, ok)
	_, err := fn("x", nil)
	require.Error(t, err)
}
