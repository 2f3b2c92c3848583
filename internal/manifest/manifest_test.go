package manifest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JakeFAU/sitegen/internal/inventory"
	"github.com/JakeFAU/sitegen/internal/locale"
)

const baseURL = "https://example.io"

func newTestAssembler(t *testing.T) *Assembler {
	t.Helper()
	a, err := NewAssembler(Options{
		BaseURL: baseURL,
		Locales: []locale.Code{"es", "en"},
		Date:    "2026-10-18",
	}, nil)
	require.NoError(t, err)
	return a
}

func testInventory() inventory.Inventory {
	return inventory.Inventory{
		Static:      inventory.StaticPages,
		Products:    []string{"loyalty"},
		CaseStudies: []string{"retail-chain", "brand-new"},
	}
}

func sectionText(t *testing.T, doc, title string) string {
	t.Helper()
	start := strings.Index(doc, "## "+title+"\n")
	require.GreaterOrEqual(t, start, 0, "section %q not found", title)
	rest := doc[start+len("## "+title+"\n"):]
	if end := strings.Index(rest, "\n## "); end >= 0 {
		return rest[:end]
	}
	return rest
}

func TestNewAssemblerValidation(t *testing.T) {
	t.Parallel()

	_, err := NewAssembler(Options{Locales: []locale.Code{"es"}, Date: "2026-10-18"}, nil)
	assert.Error(t, err)
	_, err = NewAssembler(Options{BaseURL: baseURL, Date: "2026-10-18"}, nil)
	assert.ErrorIs(t, err, locale.ErrNoLocales)
	_, err = NewAssembler(Options{BaseURL: baseURL, Locales: []locale.Code{"es"}}, nil)
	assert.Error(t, err)
}

func TestSectionsOrderAndLocaleRepetition(t *testing.T) {
	t.Parallel()

	sections := newTestAssembler(t).Sections(testInventory())
	titles := make([]string, len(sections))
	for i, s := range sections {
		titles[i] = s.Title
	}
	assert.Equal(t, []string{"Main Pages", "Product Pages", "Core Pages", "Case Studies", "Legal Pages"}, titles)

	main := sections[0]
	require.Len(t, main.Items, 1, "main pages are listed once")
	assert.Equal(t, baseURL, main.Items[0].URL)
	assert.Equal(t, "Inicio", main.Items[0].Title, "main copy uses the default locale")

	products := sections[1]
	require.Len(t, products.Items, 2)
	assert.Equal(t, baseURL+"/es/product/loyalty", products.Items[0].URL)
	assert.Equal(t, "Programa de lealtad", products.Items[0].Title)
	assert.Equal(t, baseURL+"/en/product/loyalty", products.Items[1].URL)
	assert.Equal(t, "Loyalty Program", products.Items[1].Title)

	cases := sections[3]
	require.Len(t, cases.Items, 4)
	assert.Equal(t, "Brand New", cases.Items[1].Title, "unknown slug gets a derived title")

	legal := sections[4]
	assert.Len(t, legal.Items, 6)
}

func TestAssembleExampleScenario(t *testing.T) {
	t.Parallel()

	res, err := newTestAssembler(t).Assemble(inventory.Inventory{
		Static:   inventory.StaticPages,
		Products: []string{"loyalty"},
	})
	require.NoError(t, err)

	products := sectionText(t, string(res.Body), "Product Pages")
	assert.Equal(t, 1, strings.Count(products, "(https://example.io/es/product/loyalty)"))
	assert.Equal(t, 1, strings.Count(products, "(https://example.io/en/product/loyalty)"))
	assert.Contains(t, products,
		"- [Loyalty Program](https://example.io/en/product/loyalty): Points, tiers and rewards configurable per location.")
}

func TestAssembleDocumentSections(t *testing.T) {
	t.Parallel()

	res, err := newTestAssembler(t).Assemble(testInventory())
	require.NoError(t, err)
	doc := string(res.Body)

	assert.True(t, strings.HasPrefix(doc, "# Fidelia\n\n> "))
	for _, heading := range []string{
		"## Main Pages", "## Product Pages", "## Core Pages", "## Case Studies", "## Legal Pages",
		"## Guarantee", "## AI Usage Policy", "### Allowed", "### Not Allowed",
		"## Attribution", "## Results", "## Contact",
	} {
		assert.Contains(t, doc, "\n"+heading+"\n", "missing heading %q", heading)
	}
	assert.Less(t, strings.Index(doc, "## Main Pages"), strings.Index(doc, "## Product Pages"))
	assert.Less(t, strings.Index(doc, "## Product Pages"), strings.Index(doc, "## Core Pages"))
	assert.Less(t, strings.Index(doc, "## Core Pages"), strings.Index(doc, "## Case Studies"))
	assert.Less(t, strings.Index(doc, "## Case Studies"), strings.Index(doc, "## Legal Pages"))

	assert.Contains(t, doc, "Languages: es, en (default: es)")
	assert.Contains(t, doc, "Sitemap: https://example.io/sitemap.xml")
	assert.Contains(t, doc, "- Email: hola@fidelia.example")
	assert.Contains(t, doc, "- Book a demo: https://example.io/es/contact")
	assert.NotContains(t, doc, "- Address:")
	assert.NotContains(t, doc, "<no value>")

	expectedEntries := 0
	for _, s := range res.Sections {
		expectedEntries += len(s.Items)
	}
	assert.Equal(t, expectedEntries, res.Entries)
	assert.Equal(t, expectedEntries, strings.Count(doc, "\n- ["))
}

func TestAssembleSingleDate(t *testing.T) {
	t.Parallel()

	res, err := newTestAssembler(t).Assemble(testInventory())
	require.NoError(t, err)
	doc := string(res.Body)

	assert.Contains(t, doc, "Generated: 2026-10-18\n")
	assert.Contains(t, doc, "Last updated: 2026-10-18\n")
	assert.Equal(t, 2, strings.Count(doc, "2026-10-18"))
}

func TestAssembleIdempotent(t *testing.T) {
	t.Parallel()

	first, err := newTestAssembler(t).Assemble(testInventory())
	require.NoError(t, err)
	second, err := newTestAssembler(t).Assemble(testInventory())
	require.NoError(t, err)
	assert.Equal(t, string(first.Body), string(second.Body))
}

func TestAssembleUnknownCategoryIsKept(t *testing.T) {
	t.Parallel()

	inv := inventory.Inventory{
		Static: []inventory.Page{
			inventory.StaticPages[0],
			{Path: "/webinars", Category: inventory.Category("events")},
		},
	}
	sections := newTestAssembler(t).Sections(inv)
	require.Len(t, sections, 2)
	assert.Equal(t, "Events Pages", sections[1].Title)
	assert.Len(t, sections[1].Items, 2)
	assert.Equal(t, "Webinars", sections[1].Items[0].Title)
}

func TestBoilerplateOverrides(t *testing.T) {
	t.Parallel()

	a, err := NewAssembler(Options{
		BaseURL: baseURL,
		Locales: []locale.Code{"en"},
		Date:    "2026-10-18",
		Boilerplate: Boilerplate{
			SiteName:    "Acme",
			AllowedUses: []string{"Anything polite."},
			Contact:     Contact{Address: "1 Main St", Demo: "https://cal.example/acme"},
		},
	}, nil)
	require.NoError(t, err)

	res, err := a.Assemble(inventory.Inventory{Static: inventory.StaticPages[:1]})
	require.NoError(t, err)
	doc := string(res.Body)

	assert.True(t, strings.HasPrefix(doc, "# Acme\n"))
	assert.Contains(t, sectionText(t, doc, "AI Usage Policy"), "### Allowed\n\n- Anything polite.\n")
	assert.Contains(t, doc, "- Address: 1 Main St")
	assert.Contains(t, doc, "- Book a demo: https://cal.example/acme")
	assert.Contains(t, doc, DefaultBoilerplate().Guarantee)
	assert.Contains(t, doc, "- [Home](https://example.io): ")
}
