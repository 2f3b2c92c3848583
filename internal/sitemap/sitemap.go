// Package sitemap assembles the search-engine sitemap from the resolved route
// inventory. Entries are deduplicated by URL and ordered by priority
// descending, then URL ascending; that order is part of the artifact's
// contract.
package sitemap

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/JakeFAU/sitegen/internal/inventory"
	"github.com/JakeFAU/sitegen/internal/locale"
	"github.com/JakeFAU/sitegen/internal/ranking"
)

// Options controls sitemap assembly.
type Options struct {
	// Alternates adds xhtml:link hreflang alternates to every URL.
	Alternates bool
}

// Result is an assembled sitemap.
type Result struct {
	Entries    []locale.Entry
	Duplicates int
	Body       []byte
}

// Assembler builds sitemap documents.
type Assembler struct {
	expander *locale.Expander
	opts     Options
	logger   *zap.Logger
}

// NewAssembler returns an Assembler that expands routes with expander.
func NewAssembler(expander *locale.Expander, opts Options, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{
		expander: expander,
		opts:     opts,
		logger:   logger,
	}
}

// Assemble annotates, expands, deduplicates, sorts and encodes the inventory.
func (a *Assembler) Assemble(inv inventory.Inventory) (Result, error) {
	defs := ranking.AnnotateAll(inv.Pages())
	entries, dupes := Dedupe(a.expander.Expand(defs), a.logger)
	Sort(entries)

	body, err := a.Encode(entries)
	if err != nil {
		return Result{}, err
	}
	return Result{Entries: entries, Duplicates: dupes, Body: body}, nil
}

// Dedupe drops entries whose URL was already seen, keeping the first. A
// collision means route resolution produced the same page twice, so each one
// is logged at error level.
func Dedupe(entries []locale.Entry, logger *zap.Logger) ([]locale.Entry, int) {
	if logger == nil {
		logger = zap.NewNop()
	}
	seen := make(map[string]struct{}, len(entries))
	out := make([]locale.Entry, 0, len(entries))
	dupes := 0
	for _, e := range entries {
		if _, ok := seen[e.URL]; ok {
			dupes++
			logger.Error("duplicate sitemap URL dropped",
				zap.String("url", e.URL),
				zap.String("category", string(e.Category)),
			)
			continue
		}
		seen[e.URL] = struct{}{}
		out = append(out, e)
	}
	return out, dupes
}

// Sort orders entries by priority descending, then URL ascending.
func Sort(entries []locale.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Priority != entries[j].Priority {
			return entries[i].Priority > entries[j].Priority
		}
		return entries[i].URL < entries[j].URL
	})
}

// Encode serializes entries as a sitemaps.org urlset document.
func (a *Assembler) Encode(entries []locale.Entry) ([]byte, error) {
	set := URLSet{
		XMLNS: Namespace,
		URLs:  make([]URL, 0, len(entries)),
	}
	if a.opts.Alternates {
		set.XHTML = XHTMLNamespace
	}
	for _, e := range entries {
		u := URL{
			Loc:        e.URL,
			LastMod:    e.LastModified,
			ChangeFreq: string(e.ChangeFrequency),
			Priority:   FormatPriority(e.Priority),
		}
		if a.opts.Alternates {
			u.Alternates = a.alternates(e.Path)
		}
		set.URLs = append(set.URLs, u)
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(set); err != nil {
		return nil, fmt.Errorf("encode sitemap: %w", err)
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

func (a *Assembler) alternates(path string) []Link {
	codes := a.expander.Locales()
	urls := a.expander.Alternates(path)
	links := make([]Link, 0, len(codes)+1)
	for _, code := range codes {
		links = append(links, Link{Rel: "alternate", Hreflang: string(code), Href: urls[code]})
	}
	if len(codes) > 0 {
		links = append(links, Link{Rel: "alternate", Hreflang: "x-default", Href: urls[codes[0]]})
	}
	return links
}

// FormatPriority renders a priority with at least one decimal, e.g. "1.0",
// "0.9" or "0.85".
func FormatPriority(p float64) string {
	s := strconv.FormatFloat(p, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
