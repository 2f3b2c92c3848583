package inventory

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is a coarse page classification driving default ranking and grouping.
type Category string

// Known categories.
const (
	CategoryMain      Category = "main"
	CategoryCore      Category = "core"
	CategoryProduct   Category = "product"
	CategoryCaseStudy Category = "caseStudy"
	CategoryLegal     Category = "legal"
)

// CategoryOrder is the fixed grouping order used by the descriptive manifest.
var CategoryOrder = []Category{
	CategoryMain,
	CategoryProduct,
	CategoryCore,
	CategoryCaseStudy,
	CategoryLegal,
}

// ChangeFrequency is the sitemap update-frequency hint.
type ChangeFrequency string

// Supported change frequencies.
const (
	ChangeYearly  ChangeFrequency = "yearly"
	ChangeMonthly ChangeFrequency = "monthly"
	ChangeWeekly  ChangeFrequency = "weekly"
)

// RouteDefinition is a locale-agnostic route with resolved ranking metadata.
// Path is "" for the root or starts with "/".
type RouteDefinition struct {
	Path            string
	Priority        float64
	ChangeFrequency ChangeFrequency
	Category        Category
}

// PageDescriptor is the human-readable projection of a page for the manifest.
type PageDescriptor struct {
	Path        string
	Title       string
	Description string
	Category    Category
}

// Copy is the localized title/description pair of a page.
type Copy struct {
	Title       string
	Description string
}

// Page is one row of the inventory. Priority and ChangeFrequency are explicit
// overrides; nil/empty means "use the category default".
type Page struct {
	Path            string
	Category        Category
	Priority        *float64
	ChangeFrequency ChangeFrequency
	// Copy is keyed by locale code.
	Copy map[string]Copy
}

// Descriptor projects the page for the given locale. Copy falls back to the
// default locale, then to a title derived from the last path segment.
func (p Page) Descriptor(locale, defaultLocale string) PageDescriptor {
	c, ok := p.Copy[locale]
	if !ok || c.Title == "" {
		c, ok = p.Copy[defaultLocale]
	}
	if !ok || c.Title == "" {
		c = Copy{Title: DerivedTitle(p.Path)}
	}
	return PageDescriptor{
		Path:        p.Path,
		Title:       c.Title,
		Description: c.Description,
		Category:    p.Category,
	}
}

// DerivedTitle builds a display title from the last segment of a route path,
// e.g. "/product/gift-cards" becomes "Gift Cards".
func DerivedTitle(path string) string {
	segment := path
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		segment = path[idx+1:]
	}
	if segment == "" {
		return "Home"
	}
	words := strings.FieldsFunc(segment, func(r rune) bool {
		return r == '-' || r == '_'
	})
	// Casers are stateful and must not be shared between goroutines.
	return cases.Title(language.Und).String(strings.Join(words, " "))
}

func priority(v float64) *float64 {
	return &v
}
