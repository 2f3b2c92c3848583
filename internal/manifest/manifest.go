// Package manifest assembles the descriptive, crawler-oriented content manifest
// (llms.txt). Pages are grouped by category in a fixed order; every category
// except main is repeated once per locale.
package manifest

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/JakeFAU/sitegen/internal/inventory"
	"github.com/JakeFAU/sitegen/internal/locale"
)

var sectionTitles = map[inventory.Category]string{
	inventory.CategoryMain:      "Main Pages",
	inventory.CategoryProduct:   "Product Pages",
	inventory.CategoryCore:      "Core Pages",
	inventory.CategoryCaseStudy: "Case Studies",
	inventory.CategoryLegal:     "Legal Pages",
}

// Options controls manifest assembly.
type Options struct {
	// BaseURL is absolute and carries no trailing slash.
	BaseURL string
	Locales []locale.Code
	// Date is the generation date (YYYY-MM-DD), read once per run.
	Date        string
	Boilerplate Boilerplate
}

// Item is one title/description block of a section.
type Item struct {
	URL         string
	Title       string
	Description string
	Locale      locale.Code
	Path        string
}

// Section groups the items of one category.
type Section struct {
	Title    string
	Category inventory.Category
	Items    []Item
}

// Result is an assembled manifest.
type Result struct {
	Sections []Section
	Entries  int
	Body     []byte
}

// Assembler builds manifest documents.
type Assembler struct {
	opts   Options
	logger *zap.Logger
}

// NewAssembler validates opts and returns an Assembler.
func NewAssembler(opts Options, logger *zap.Logger) (*Assembler, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	if len(opts.Locales) == 0 {
		return nil, locale.ErrNoLocales
	}
	if opts.Date == "" {
		return nil, fmt.Errorf("generation date is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	opts.Locales = append([]locale.Code(nil), opts.Locales...)
	opts.Boilerplate = opts.Boilerplate.Merge(DefaultBoilerplate())
	return &Assembler{opts: opts, logger: logger}, nil
}

// Sections groups the inventory by category in the fixed manifest order.
// Categories outside that order follow it, sorted by name.
func (a *Assembler) Sections(inv inventory.Inventory) []Section {
	groups := inventory.ByCategory(inv.Pages())
	order := append([]inventory.Category(nil), inventory.CategoryOrder...)
	order = append(order, extraCategories(groups)...)

	defaultLocale := string(a.opts.Locales[0])
	sections := make([]Section, 0, len(order))
	for _, category := range order {
		pages := groups[category]
		if len(pages) == 0 {
			continue
		}
		section := Section{Title: sectionTitle(category), Category: category}
		if category == inventory.CategoryMain {
			for _, p := range pages {
				section.Items = append(section.Items, a.item(p, "", defaultLocale))
			}
		} else {
			for _, code := range a.opts.Locales {
				for _, p := range pages {
					section.Items = append(section.Items, a.item(p, code, defaultLocale))
				}
			}
		}
		sections = append(sections, section)
	}
	return sections
}

// Assemble renders the manifest for inv.
func (a *Assembler) Assemble(inv inventory.Inventory) (Result, error) {
	sections := a.Sections(inv)
	entries := 0
	for _, s := range sections {
		entries += len(s.Items)
	}

	data := struct {
		Boilerplate
		BaseURL       string
		Date          string
		Locales       []string
		DefaultLocale string
		DemoURL       string
		Sections      []Section
	}{
		Boilerplate:   a.opts.Boilerplate,
		BaseURL:       a.opts.BaseURL,
		Date:          a.opts.Date,
		Locales:       locale.Strings(a.opts.Locales),
		DefaultLocale: string(a.opts.Locales[0]),
		DemoURL:       a.demoURL(),
		Sections:      sections,
	}

	var buf bytes.Buffer
	if err := document.Execute(&buf, data); err != nil {
		return Result{}, fmt.Errorf("render manifest: %w", err)
	}
	a.logger.Debug("manifest rendered", zap.Int("sections", len(sections)), zap.Int("entries", entries))
	return Result{Sections: sections, Entries: entries, Body: buf.Bytes()}, nil
}

func (a *Assembler) item(p inventory.Page, code locale.Code, defaultLocale string) Item {
	lookup := string(code)
	if lookup == "" {
		lookup = defaultLocale
	}
	d := p.Descriptor(lookup, defaultLocale)
	return Item{
		URL:         locale.URL(a.opts.BaseURL, code, p.Path),
		Title:       d.Title,
		Description: d.Description,
		Locale:      code,
		Path:        p.Path,
	}
}

// demoURL resolves a site-relative demo link against the default locale.
func (a *Assembler) demoURL() string {
	demo := a.opts.Boilerplate.Contact.Demo
	if strings.HasPrefix(demo, "/") {
		return locale.URL(a.opts.BaseURL, a.opts.Locales[0], demo)
	}
	return demo
}

func sectionTitle(category inventory.Category) string {
	if title, ok := sectionTitles[category]; ok {
		return title
	}
	return inventory.DerivedTitle(string(category)) + " Pages"
}

func extraCategories(groups map[inventory.Category][]inventory.Page) []inventory.Category {
	known := make(map[inventory.Category]struct{}, len(inventory.CategoryOrder))
	for _, c := range inventory.CategoryOrder {
		known[c] = struct{}{}
	}
	var extra []inventory.Category
	for c := range groups {
		if _, ok := known[c]; !ok {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return extra
}
