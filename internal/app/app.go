// Package app initializes and holds the long-lived services of a generation
// run, acting as a dependency injection container for the CLI.
package app

import (
	"context"
	"fmt"

	gpubsub "cloud.google.com/go/pubsub"
	gstorage "cloud.google.com/go/storage"
	"github.com/spf13/afero"
	"go.uber.org/zap"
	"google.golang.org/api/option"

	"github.com/JakeFAU/sitegen/internal/clock/system"
	"github.com/JakeFAU/sitegen/internal/config"
	"github.com/JakeFAU/sitegen/internal/discovery"
	"github.com/JakeFAU/sitegen/internal/generator"
	"github.com/JakeFAU/sitegen/internal/inventory"
	"github.com/JakeFAU/sitegen/internal/metrics"
	pubsubpublisher "github.com/JakeFAU/sitegen/internal/publisher/pubsub"
	"github.com/JakeFAU/sitegen/internal/storage"
	"github.com/JakeFAU/sitegen/internal/storage/gcs"
	"github.com/JakeFAU/sitegen/internal/storage/local"
)

// Options customizes service construction. The zero value uses the OS
// filesystem and default Google Cloud credentials.
type Options struct {
	// Fs backs route discovery; nil uses the OS filesystem.
	Fs afero.Fs

	// DryRun assembles every artifact but writes nothing.
	DryRun bool

	StorageOptions []option.ClientOption
	PubSubOptions  []option.ClientOption
}

// App holds the shared services of one CLI invocation.
type App struct {
	cfg           config.Config
	logger        *zap.Logger
	engine        *generator.Engine
	storageClient *gstorage.Client
	pubsubClient  *gpubsub.Client
	publisher     *pubsubpublisher.Publisher
}

// New builds every service cfg asks for. It fails fast: a misconfigured
// optional sink is an error, not a silently skipped mirror.
func New(ctx context.Context, cfg config.Config, logger *zap.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	a := &App{cfg: cfg, logger: logger}

	locales, err := cfg.LocaleCodes()
	if err != nil {
		return nil, err
	}
	fixed, err := cfg.FixedTime()
	if err != nil {
		return nil, err
	}

	var primary storage.BlobStore = storage.NoOpStore{}
	if opts.DryRun {
		logger.Info("dry run: artifacts are assembled but not written")
	} else {
		store, err := local.New(local.Config{BaseDir: cfg.Output.Dir})
		if err != nil {
			return nil, fmt.Errorf("init output dir: %w", err)
		}
		primary = store
		logger.Info("writing artifacts locally", zap.String("dir", cfg.Output.Dir))
	}

	deps := generator.Deps{
		Resolvers: a.resolverFactory(opts.Fs),
		Primary:   primary,
	}
	if !fixed.IsZero() {
		logger.Info("generation clock pinned", zap.Time("at", fixed))
		deps.Clock = system.NewFixed(fixed)
	}

	if cfg.Storage.GCSBucket != "" && !opts.DryRun {
		client, err := gstorage.NewClient(ctx, opts.StorageOptions...)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("init storage client: %w", err)
		}
		a.storageClient = client
		mirror, err := gcs.New(client, gcs.Config{
			Bucket:       cfg.Storage.GCSBucket,
			Prefix:       cfg.Storage.Prefix,
			CacheControl: cfg.Storage.CacheControl,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("init gcs mirror: %w", err)
		}
		deps.Mirrors = append(deps.Mirrors, generator.Mirror{Name: "gcs", Store: mirror})
		logger.Info("mirroring artifacts to GCS",
			zap.String("bucket", cfg.Storage.GCSBucket),
			zap.String("prefix", cfg.Storage.Prefix),
		)
	}

	if cfg.PubSub.Topic != "" && !opts.DryRun {
		client, err := gpubsub.NewClient(ctx, cfg.PubSub.ProjectID, opts.PubSubOptions...)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("init pubsub client: %w", err)
		}
		a.pubsubClient = client
		a.publisher = pubsubpublisher.New(client)
		deps.Publisher = a.publisher
		logger.Info("publishing regeneration events", zap.String("topic", cfg.PubSub.Topic))
	}

	engine, err := generator.New(generator.Config{
		BaseURL:      cfg.Site.BaseURL,
		Locales:      locales,
		IncludeLegal: cfg.Sitemap.IncludeLegal,
		Alternates:   cfg.Sitemap.Alternates,
		SitemapPath:  cfg.Output.SitemapPath,
		ManifestPath: cfg.Output.ManifestPath,
		RobotsPath:   cfg.Output.RobotsPath,
		Boilerplate:  cfg.Manifest,
		Disallow:     cfg.Robots.Disallow,
		Topic:        cfg.PubSub.Topic,
	}, deps, logger)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("init generator: %w", err)
	}
	a.engine = engine
	return a, nil
}

// Engine returns the artifact generator.
func (a *App) Engine() *generator.Engine {
	return a.engine
}

// Logger returns the shared logger.
func (a *App) Logger() *zap.Logger {
	return a.logger
}

// Close flushes the metrics textfile and releases cloud clients.
func (a *App) Close() {
	if path := a.cfg.Metrics.Textfile; path != "" {
		if err := metrics.WriteTextfile(path); err != nil {
			a.logger.Warn("write metrics textfile", zap.String("path", path), zap.Error(err))
		}
	}
	if a.publisher != nil {
		a.publisher.Close()
	}
	if a.pubsubClient != nil {
		if err := a.pubsubClient.Close(); err != nil {
			a.logger.Warn("close pubsub client", zap.Error(err))
		}
	}
	if a.storageClient != nil {
		if err := a.storageClient.Close(); err != nil {
			a.logger.Warn("close storage client", zap.Error(err))
		}
	}
}

// resolverFactory returns a factory that builds an independent resolver per
// pipeline over the configured content dir and params file.
func (a *App) resolverFactory(fs afero.Fs) generator.ResolverFactory {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	routes := a.cfg.Routes
	return func() generator.Resolver {
		logger := a.logger.Named("discovery")
		return discovery.NewResolver(
			discovery.NewDirScanner(fs, routes.ContentDir, inventory.FallbackProducts, logger),
			discovery.NewSlugLoader(
				discovery.NewFileSlugSource(fs, routes.CaseStudiesFile),
				inventory.FallbackCaseStudies,
				logger,
			),
			metrics.DiscoveryObserver{},
			logger,
		)
	}
}
