// Package catalog resolves labels and icons for expense categories and income
// sources. The tables are static and differ per user type.
package catalog

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/spendwise/spendwise-web/internal/domain/session"
)

const (
	// FallbackCategoryIcon is used for categories missing from the catalog.
	FallbackCategoryIcon = "ri-question-line"
	// FallbackIncomeIcon is used for income sources missing from the catalog.
	FallbackIncomeIcon = "ri-money-dollar-circle-line"
)

//go:embed catalog.yaml
var defaultYAML []byte

// Entry is one selectable option.
type Entry struct {
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`
}

// Catalog holds the option tables keyed by user type.
type Catalog struct {
	categories    map[session.UserType][]Entry
	incomeSources map[session.UserType][]Entry
}

type document struct {
	Categories    map[string][]Entry `yaml:"categories"`
	IncomeSources map[string][]Entry `yaml:"income_sources"`
}

// Parse builds a Catalog from YAML. Every user type must have both tables.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	c := &Catalog{
		categories:    make(map[session.UserType][]Entry, len(doc.Categories)),
		incomeSources: make(map[session.UserType][]Entry, len(doc.IncomeSources)),
	}
	for _, ut := range session.UserTypes() {
		cats, ok := doc.Categories[string(ut)]
		if !ok || len(cats) == 0 {
			return nil, fmt.Errorf("catalog: no categories for user type %q", ut)
		}
		srcs, ok := doc.IncomeSources[string(ut)]
		if !ok || len(srcs) == 0 {
			return nil, fmt.Errorf("catalog: no income sources for user type %q", ut)
		}
		c.categories[ut] = cats
		c.incomeSources[ut] = srcs
	}
	return c, nil
}

var (
	defaultOnce    sync.Once
	defaultCatalog *Catalog
)

// Default returns the embedded catalog. It panics if the embedded file is
// malformed, which is a build defect.
func Default() *Catalog {
	defaultOnce.Do(func() {
		c, err := Parse(defaultYAML)
		if err != nil {
			panic(err)
		}
		defaultCatalog = c
	})
	return defaultCatalog
}

func resolve(ut session.UserType) session.UserType {
	if t := session.ParseUserType(string(ut)); t != "" {
		return t
	}
	return session.UserTypeIndividual
}

// Categories lists the expense categories for the user type. Unknown types
// get the individual table.
func (c *Catalog) Categories(ut session.UserType) []Entry {
	return append([]Entry(nil), c.categories[resolve(ut)]...)
}

// IncomeSources lists the income sources for the user type. Unknown types get
// the individual table.
func (c *Catalog) IncomeSources(ut session.UserType) []Entry {
	return append([]Entry(nil), c.incomeSources[resolve(ut)]...)
}

func find(entries []Entry, value string) (Entry, bool) {
	for _, e := range entries {
		if e.Value == value {
			return e, true
		}
	}
	return Entry{}, false
}

// CategoryLabel returns the label for value, or value itself when absent.
func (c *Catalog) CategoryLabel(value string, ut session.UserType) string {
	if e, ok := find(c.categories[resolve(ut)], value); ok {
		return e.Label
	}
	return value
}

// CategoryIcon returns the icon for value, or FallbackCategoryIcon.
func (c *Catalog) CategoryIcon(value string, ut session.UserType) string {
	if e, ok := find(c.categories[resolve(ut)], value); ok {
		return e.Icon
	}
	return FallbackCategoryIcon
}

// IncomeLabel returns the label for value, or value itself when absent.
func (c *Catalog) IncomeLabel(value string, ut session.UserType) string {
	if e, ok := find(c.incomeSources[resolve(ut)], value); ok {
		return e.Label
	}
	return value
}

// IncomeIcon returns the icon for value, or FallbackIncomeIcon.
func (c *Catalog) IncomeIcon(value string, ut session.UserType) string {
	if e, ok := find(c.incomeSources[resolve(ut)], value); ok {
		return e.Icon
	}
	return FallbackIncomeIcon
}
