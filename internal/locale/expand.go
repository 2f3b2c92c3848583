package locale

import (
	"github.com/JakeFAU/sitegen/internal/inventory"
)

// Entry is one concrete, absolute sitemap URL.
type Entry struct {
	URL             string
	LastModified    string
	ChangeFrequency inventory.ChangeFrequency
	Priority        float64
	Category        inventory.Category
	// Path and Locale identify the route the entry was expanded from. Locale
	// is empty for the canonical unprefixed root.
	Path   string
	Locale Code
}

// Options controls expansion.
type Options struct {
	// BaseURL is absolute and carries no trailing slash.
	BaseURL      string
	LastModified string
	IncludeLegal bool
}

// Expander produces the route × locale product.
type Expander struct {
	locales []Code
	opts    Options
}

// NewExpander returns an Expander over the ordered locale set.
func NewExpander(locales []Code, opts Options) *Expander {
	return &Expander{
		locales: append([]Code(nil), locales...),
		opts:    opts,
	}
}

// Expand returns one entry per route per locale. The root route additionally
// yields the unprefixed base URL. Legal routes are dropped unless
// IncludeLegal is set. Unknown categories are expanded like any other.
func (e *Expander) Expand(defs []inventory.RouteDefinition) []Entry {
	out := make([]Entry, 0, len(defs)*(len(e.locales)+1))
	for _, def := range defs {
		if def.Category == inventory.CategoryLegal && !e.opts.IncludeLegal {
			continue
		}
		if def.Path == "" {
			out = append(out, e.entry(def, ""))
		}
		for _, code := range e.locales {
			out = append(out, e.entry(def, code))
		}
	}
	return out
}

// Alternates returns the per-locale URLs of a route keyed by locale code.
func (e *Expander) Alternates(path string) map[Code]string {
	out := make(map[Code]string, len(e.locales))
	for _, code := range e.locales {
		out[code] = URL(e.opts.BaseURL, code, path)
	}
	return out
}

// Locales returns the ordered locale set.
func (e *Expander) Locales() []Code {
	return append([]Code(nil), e.locales...)
}

func (e *Expander) entry(def inventory.RouteDefinition, code Code) Entry {
	return Entry{
		URL:             URL(e.opts.BaseURL, code, def.Path),
		LastModified:    e.opts.LastModified,
		ChangeFrequency: def.ChangeFrequency,
		Priority:        def.Priority,
		Category:        def.Category,
		Path:            def.Path,
		Locale:          code,
	}
}
