package generator

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/JakeFAU/sitegen/internal/clock/system"
	"github.com/JakeFAU/sitegen/internal/hash/sha256"
	"github.com/JakeFAU/sitegen/internal/id/uuid"
	"github.com/JakeFAU/sitegen/internal/locale"
	"github.com/JakeFAU/sitegen/internal/logging"
	"github.com/JakeFAU/sitegen/internal/manifest"
	"github.com/JakeFAU/sitegen/internal/metrics"
	"github.com/JakeFAU/sitegen/internal/robots"
	"github.com/JakeFAU/sitegen/internal/sitemap"
)

const (
	contentTypeXML  = "application/xml; charset=utf-8"
	contentTypeText = "text/plain; charset=utf-8"
)

// Deps wires the collaborators of an Engine. Clock, Hasher and IDs default to
// the system clock, SHA-256 and UUIDv7 when nil.
type Deps struct {
	Resolvers ResolverFactory
	Primary   BlobStore
	Mirrors   []Mirror
	Publisher Publisher
	Hasher    Hasher
	Clock     Clock
	IDs       IDGenerator
}

// Engine runs artifact pipelines.
type Engine struct {
	cfg       Config
	resolvers ResolverFactory
	primary   BlobStore
	mirrors   []Mirror
	publisher Publisher
	hasher    Hasher
	clock     Clock
	ids       IDGenerator
	logger    *zap.Logger
}

// New validates cfg and deps and returns an Engine.
func New(cfg Config, deps Deps, logger *zap.Logger) (*Engine, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	if len(cfg.Locales) == 0 {
		return nil, locale.ErrNoLocales
	}
	if deps.Resolvers == nil {
		return nil, fmt.Errorf("resolver factory is required")
	}
	if deps.Primary == nil {
		return nil, fmt.Errorf("primary store is required")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if deps.Hasher == nil {
		deps.Hasher = sha256.New()
	}
	if deps.Clock == nil {
		deps.Clock = system.New()
	}
	if deps.IDs == nil {
		deps.IDs = uuid.New()
	}
	if cfg.SitemapPath == "" {
		cfg.SitemapPath = "sitemap.xml"
	}
	if cfg.ManifestPath == "" {
		cfg.ManifestPath = "llms.txt"
	}
	if cfg.RobotsPath == "" {
		cfg.RobotsPath = "robots.txt"
	}
	cfg.Locales = append([]locale.Code(nil), cfg.Locales...)
	return &Engine{
		cfg:       cfg,
		resolvers: deps.Resolvers,
		primary:   deps.Primary,
		mirrors:   deps.Mirrors,
		publisher: deps.Publisher,
		hasher:    deps.Hasher,
		clock:     deps.Clock,
		ids:       deps.IDs,
		logger:    logger.Named("generator"),
	}, nil
}

// Generate runs a single artifact pipeline under a new run ID.
func (e *Engine) Generate(ctx context.Context, artifact Artifact) (Event, error) {
	events, err := e.GenerateAll(ctx, artifact)
	if err != nil {
		return Event{}, err
	}
	return events[0], nil
}

// GenerateAll runs the given pipelines concurrently under one run ID; with no
// arguments it runs every artifact. Events are returned in argument order.
// The first pipeline error is returned after every pipeline has finished.
func (e *Engine) GenerateAll(ctx context.Context, artifacts ...Artifact) ([]Event, error) {
	if len(artifacts) == 0 {
		artifacts = AllArtifacts
	}
	runID, err := e.ids.NewID()
	if err != nil {
		return nil, fmt.Errorf("new run id: %w", err)
	}

	events := make([]Event, len(artifacts))
	var g errgroup.Group
	for i, artifact := range artifacts {
		i, artifact := i, artifact
		g.Go(func() error {
			ev, err := e.run(ctx, runID, artifact)
			if err != nil {
				return fmt.Errorf("%s: %w", artifact, err)
			}
			events[i] = ev
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return events, nil
}

func (e *Engine) run(ctx context.Context, runID string, artifact Artifact) (Event, error) {
	logger := logging.Artifact(e.logger, string(artifact), runID)
	if err := ctx.Err(); err != nil {
		return Event{}, err
	}

	began := time.Now()
	generatedAt := e.clock.Now().UTC()

	out, err := e.build(ctx, artifact, generatedAt, logger)
	if err != nil {
		metrics.ObserveFailure(string(artifact))
		logger.Error("assemble artifact", zap.Error(err))
		return Event{}, fmt.Errorf("assemble: %w", err)
	}

	digest, err := e.hasher.Hash(out.body)
	if err != nil {
		metrics.ObserveFailure(string(artifact))
		return Event{}, fmt.Errorf("hash: %w", err)
	}

	uri, err := e.primary.PutObject(ctx, out.path, out.contentType, bytes.NewReader(out.body))
	if err != nil {
		metrics.ObserveFailure(string(artifact))
		logger.Error("write artifact", zap.String("path", out.path), zap.Error(err))
		return Event{}, fmt.Errorf("write %s: %w", out.path, err)
	}

	event := Event{
		RunID:       runID,
		Artifact:    artifact,
		URI:         uri,
		Mirrors:     e.mirror(ctx, artifact, out, logger),
		SHA256:      digest,
		Entries:     out.entries,
		Bytes:       len(out.body),
		Duplicates:  out.duplicates,
		GeneratedAt: generatedAt,
	}

	metrics.ObserveDuplicates(string(artifact), out.duplicates)
	metrics.ObserveArtifact(string(artifact), out.entries, len(out.body), time.Since(began), generatedAt)
	logger.Info("artifact written",
		zap.String("uri", uri),
		zap.Int("entries", out.entries),
		zap.Int("bytes", len(out.body)),
		zap.String("sha256", digest),
	)

	e.notify(ctx, event, logger)
	return event, nil
}

func (e *Engine) build(ctx context.Context, artifact Artifact, at time.Time, logger *zap.Logger) (output, error) {
	date := at.Format(time.DateOnly)
	switch artifact {
	case ArtifactSitemap:
		inv := e.resolvers().Resolve(ctx)
		expander := locale.NewExpander(e.cfg.Locales, locale.Options{
			BaseURL:      e.cfg.BaseURL,
			LastModified: date,
			IncludeLegal: e.cfg.IncludeLegal,
		})
		res, err := sitemap.NewAssembler(expander, sitemap.Options{Alternates: e.cfg.Alternates}, logger).Assemble(inv)
		if err != nil {
			return output{}, err
		}
		return output{
			path:        e.cfg.SitemapPath,
			contentType: contentTypeXML,
			body:        res.Body,
			entries:     len(res.Entries),
			duplicates:  res.Duplicates,
		}, nil
	case ArtifactManifest:
		inv := e.resolvers().Resolve(ctx)
		assembler, err := manifest.NewAssembler(manifest.Options{
			BaseURL:     e.cfg.BaseURL,
			Locales:     e.cfg.Locales,
			Date:        date,
			Boilerplate: e.cfg.Boilerplate,
		}, logger)
		if err != nil {
			return output{}, err
		}
		res, err := assembler.Assemble(inv)
		if err != nil {
			return output{}, err
		}
		return output{
			path:        e.cfg.ManifestPath,
			contentType: contentTypeText,
			body:        res.Body,
			entries:     res.Entries,
		}, nil
	case ArtifactRobots:
		body, err := robots.Render(robots.Options{
			BaseURL:      e.cfg.BaseURL,
			SitemapPath:  e.cfg.SitemapPath,
			ManifestPath: e.cfg.ManifestPath,
			Disallow:     e.cfg.Disallow,
		})
		if err != nil {
			return output{}, err
		}
		return output{
			path:        e.cfg.RobotsPath,
			contentType: contentTypeText,
			body:        body,
			entries:     len(e.cfg.Disallow),
		}, nil
	default:
		return output{}, fmt.Errorf("unknown artifact %q", artifact)
	}
}

// mirror copies out to every mirror store and returns the URIs that
// succeeded. Failures never fail the pipeline.
func (e *Engine) mirror(ctx context.Context, artifact Artifact, out output, logger *zap.Logger) []string {
	var uris []string
	for _, m := range e.mirrors {
		uri, err := m.Store.PutObject(ctx, out.path, out.contentType, bytes.NewReader(out.body))
		if err != nil {
			metrics.ObserveSinkFailure(string(artifact), m.Name)
			logger.Warn("mirror upload failed", zap.String("mirror", m.Name), zap.Error(err))
			continue
		}
		uris = append(uris, uri)
	}
	return uris
}

func (e *Engine) notify(ctx context.Context, event Event, logger *zap.Logger) {
	if e.publisher == nil || e.cfg.Topic == "" {
		return
	}
	msgID, err := e.publisher.Publish(ctx, e.cfg.Topic, event)
	if err != nil {
		logger.Warn("publish notification failed", zap.String("topic", e.cfg.Topic), zap.Error(err))
		metrics.ObserveSinkFailure(string(event.Artifact), "pubsub")
		return
	}
	logger.Debug("notification published", zap.String("message_id", msgID), zap.String("topic", e.cfg.Topic))
}
