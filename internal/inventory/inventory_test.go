package inventory

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticPagesPathShape(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for _, p := range StaticPages {
		if p.Path != "" {
			assert.True(t, strings.HasPrefix(p.Path, "/"), "path %q must start with /", p.Path)
		}
		_, dup := seen[p.Path]
		assert.False(t, dup, "duplicate static path %q", p.Path)
		seen[p.Path] = struct{}{}
	}
	_, hasRoot := seen[""]
	assert.True(t, hasRoot, "static table must carry the root route")
}

func TestStaticPagesCarryDefaultCopy(t *testing.T) {
	t.Parallel()

	for _, p := range StaticPages {
		c, ok := p.Copy["es"]
		require.True(t, ok, "page %q has no es copy", p.Path)
		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Description)
	}
}

func TestPagesOrdering(t *testing.T) {
	t.Parallel()

	inv := Inventory{
		Static:      StaticPages[:1],
		Products:    []string{"loyalty", "new-thing"},
		CaseStudies: []string{"retail-chain"},
	}
	pages := inv.Pages()
	require.Len(t, pages, 4)
	assert.Equal(t, "", pages[0].Path)
	assert.Equal(t, "/product/loyalty", pages[1].Path)
	assert.Equal(t, CategoryProduct, pages[1].Category)
	assert.Equal(t, "/product/new-thing", pages[2].Path)
	assert.Equal(t, "/case-studies/retail-chain", pages[3].Path)
	assert.Equal(t, CategoryCaseStudy, pages[3].Category)
}

func TestDescriptorFallbacks(t *testing.T) {
	t.Parallel()

	loyalty := ProductPage("loyalty")
	assert.Equal(t, "Loyalty Program", loyalty.Descriptor("en", "es").Title)
	assert.Equal(t, "Programa de lealtad", loyalty.Descriptor("es", "es").Title)
	// Unknown locale falls back to the default locale.
	assert.Equal(t, "Programa de lealtad", loyalty.Descriptor("pt", "es").Title)

	unknown := ProductPage("smart-receipts")
	d := unknown.Descriptor("en", "es")
	assert.Equal(t, "Smart Receipts", d.Title)
	assert.Empty(t, d.Description)
	assert.Equal(t, CategoryProduct, d.Category)
	assert.Equal(t, "/product/smart-receipts", d.Path)
}

func TestDerivedTitle(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"":                    "Home",
		"/about":              "About",
		"/product/gift-cards": "Gift Cards",
		"/case-studies/a_b-c": "A B C",
		"plain":               "Plain",
	}
	for in, want := range cases {
		assert.Equal(t, want, DerivedTitle(in), "DerivedTitle(%q)", in)
	}
}

func TestByCategory(t *testing.T) {
	t.Parallel()

	groups := ByCategory(StaticPages)
	assert.Len(t, groups[CategoryMain], 1)
	assert.Len(t, groups[CategoryLegal], 3)
	assert.Equal(t, ProductPrefix, groups[CategoryCore][0].Path)
}

func TestCaseStudyDescriptor(t *testing.T) {
	t.Parallel()

	want := PageDescriptor{
		Path:        "/case-studies/fitness-club",
		Title:       "Club deportivo",
		Description: "Reducción del 18% en cancelaciones de membresía.",
		Category:    CategoryCaseStudy,
	}
	if diff := cmp.Diff(want, CaseStudyPage("fitness-club").Descriptor("es", "es")); diff != "" {
		t.Fatalf("descriptor mismatch (-want +got):\n%s", diff)
	}
}
