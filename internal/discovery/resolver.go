package discovery

import (
	"context"

	"go.uber.org/zap"

	"github.com/JakeFAU/sitegen/internal/inventory"
)

// Source names used in logs and metrics.
const (
	SourceProducts    = "products"
	SourceCaseStudies = "case_studies"
)

// Observer receives discovery outcomes. metrics.DiscoveryObserver satisfies it.
type Observer interface {
	ObserveDiscovery(source string, count int, usedFallback bool)
}

// Resolver runs the static table and both discovery steps.
type Resolver struct {
	scanner  *DirScanner
	loader   *SlugLoader
	observer Observer
	logger   *zap.Logger
}

// NewResolver builds a Resolver. observer may be nil.
func NewResolver(scanner *DirScanner, loader *SlugLoader, observer Observer, logger *zap.Logger) *Resolver {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{
		scanner:  scanner,
		loader:   loader,
		observer: observer,
		logger:   logger,
	}
}

// Resolve returns a fresh inventory. The slug loader is awaited before
// returning; nothing downstream sees a partial inventory.
func (r *Resolver) Resolve(ctx context.Context) inventory.Inventory {
	products, productFallback := r.scanner.Scan()
	r.observe(SourceProducts, len(products), productFallback)

	caseStudies, caseFallback := r.loader.Load(ctx)
	r.observe(SourceCaseStudies, len(caseStudies), caseFallback)

	r.logger.Info("route inventory resolved",
		zap.Int("static", len(inventory.StaticPages)),
		zap.Int("products", len(products)),
		zap.Bool("products_fallback", productFallback),
		zap.Int("case_studies", len(caseStudies)),
		zap.Bool("case_studies_fallback", caseFallback),
	)
	return inventory.Inventory{
		Static:      append([]inventory.Page(nil), inventory.StaticPages...),
		Products:    products,
		CaseStudies: caseStudies,
	}
}

func (r *Resolver) observe(source string, count int, usedFallback bool) {
	if r.observer == nil {
		return
	}
	r.observer.ObserveDiscovery(source, count, usedFallback)
}
