package generator

import (
	"context"
	"time"

	"github.com/JakeFAU/sitegen/internal/inventory"
	"github.com/JakeFAU/sitegen/internal/storage"
)

// BlobStore writes an artifact and returns a URI for it.
type BlobStore = storage.BlobStore

// Publisher pushes regeneration events to Pub/Sub (or similar).
type Publisher interface {
	Publish(ctx context.Context, topic string, payload any) (string, error)
}

// Hasher computes artifact digests.
type Hasher interface {
	Hash(data []byte) (string, error)
}

// Clock returns the current time (useful for testing).
type Clock interface {
	Now() time.Time
}

// IDGenerator produces run IDs.
type IDGenerator interface {
	NewID() (string, error)
}

// Resolver produces the route inventory for one artifact.
type Resolver interface {
	Resolve(ctx context.Context) inventory.Inventory
}

// ResolverFactory builds a fresh Resolver. Every artifact resolves its own
// inventory; nothing is cached between pipelines.
type ResolverFactory func() Resolver
