package discovery

import (
	"context"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JakeFAU/sitegen/internal/inventory"
)

type recordingObserver struct {
	calls []observation
}

type observation struct {
	source   string
	count    int
	fallback bool
}

func (r *recordingObserver) ObserveDiscovery(source string, count int, usedFallback bool) {
	r.calls = append(r.calls, observation{source: source, count: count, fallback: usedFallback})
}

func TestResolverCombinesSources(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/app/product/loyalty", 0o755))
	require.NoError(t, fs.MkdirAll("/app/product/analytics", 0o755))

	obs := &recordingObserver{}
	resolver := NewResolver(
		NewDirScanner(fs, "/app/product", inventory.FallbackProducts, nil),
		NewSlugLoader(nil, inventory.FallbackCaseStudies, nil),
		obs,
		nil,
	)
	inv := resolver.Resolve(context.Background())

	assert.Equal(t, []string{"analytics", "loyalty"}, inv.Products)
	assert.Equal(t, inventory.FallbackCaseStudies, inv.CaseStudies)
	assert.Len(t, inv.Static, len(inventory.StaticPages))
	assert.Equal(t, []observation{
		{source: SourceProducts, count: 2, fallback: false},
		{source: SourceCaseStudies, count: len(inventory.FallbackCaseStudies), fallback: true},
	}, obs.calls)
}

func TestResolverStaticCopyIsIndependent(t *testing.T) {
	t.Parallel()

	resolver := NewResolver(
		NewDirScanner(afero.NewMemMapFs(), "/missing", inventory.FallbackProducts, nil),
		NewSlugLoader(nil, inventory.FallbackCaseStudies, nil),
		nil,
		nil,
	)
	inv := resolver.Resolve(context.Background())
	inv.Static[0].Path = "/mutated"
	assert.Equal(t, "", inventory.StaticPages[0].Path)
}
