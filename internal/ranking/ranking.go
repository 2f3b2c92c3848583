// Package ranking assigns sitemap priority and change-frequency hints to
// inventory pages using category defaults and per-page overrides.
package ranking

import (
	"github.com/JakeFAU/sitegen/internal/inventory"
)

// Defaults is the ranking applied when a page carries no explicit override.
type Defaults struct {
	Priority        float64
	ChangeFrequency inventory.ChangeFrequency
}

// categoryDefaults ranks main > product > core > caseStudy > legal.
var categoryDefaults = map[inventory.Category]Defaults{
	inventory.CategoryMain:      {Priority: 1.0, ChangeFrequency: inventory.ChangeWeekly},
	inventory.CategoryProduct:   {Priority: 0.9, ChangeFrequency: inventory.ChangeWeekly},
	inventory.CategoryCore:      {Priority: 0.8, ChangeFrequency: inventory.ChangeMonthly},
	inventory.CategoryCaseStudy: {Priority: 0.7, ChangeFrequency: inventory.ChangeMonthly},
	inventory.CategoryLegal:     {Priority: 0.3, ChangeFrequency: inventory.ChangeYearly},
}

// unknownDefaults applies to categories outside the known set.
var unknownDefaults = Defaults{Priority: 0.5, ChangeFrequency: inventory.ChangeMonthly}

// DefaultsFor returns the category default ranking.
func DefaultsFor(category inventory.Category) Defaults {
	if d, ok := categoryDefaults[category]; ok {
		return d
	}
	return unknownDefaults
}

// Resolve maps a category plus optional overrides to a priority and
// change frequency. Overrides always win; priorities are clamped to [0, 1].
func Resolve(
	category inventory.Category,
	priority *float64,
	freq inventory.ChangeFrequency,
) (float64, inventory.ChangeFrequency) {
	d := DefaultsFor(category)
	p := d.Priority
	if priority != nil {
		p = clamp(*priority)
	}
	f := d.ChangeFrequency
	if freq != "" {
		f = freq
	}
	return p, f
}

// Annotate projects a page into a RouteDefinition carrying resolved ranking.
func Annotate(page inventory.Page) inventory.RouteDefinition {
	p, f := Resolve(page.Category, page.Priority, page.ChangeFrequency)
	return inventory.RouteDefinition{
		Path:            page.Path,
		Priority:        p,
		ChangeFrequency: f,
		Category:        page.Category,
	}
}

// AnnotateAll annotates every page, preserving order.
func AnnotateAll(pages []inventory.Page) []inventory.RouteDefinition {
	out := make([]inventory.RouteDefinition, 0, len(pages))
	for _, p := range pages {
		out = append(out, Annotate(p))
	}
	return out
}

func clamp(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
