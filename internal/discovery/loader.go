package discovery

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var (
	// ErrNoSlugs is returned when a source yields an empty parameter list.
	ErrNoSlugs = errors.New("slug source returned no params")
	// ErrMalformedSlug is returned when a parameter carries an unusable slug.
	ErrMalformedSlug = errors.New("malformed slug")
	// ErrNoSource is returned when no slug source is configured.
	ErrNoSource = errors.New("slug source is not configured")
)

// Params is one parameter object of a dynamic route, e.g. {slug: "retail-chain"}.
type Params struct {
	Slug string `yaml:"slug" json:"slug"`
}

// SlugSource enumerates the params of a dynamic route. It is the same list the
// content build uses to pre-render the route's pages.
type SlugSource interface {
	Slugs(ctx context.Context) ([]Params, error)
}

// SlugFunc adapts a plain function to SlugSource.
type SlugFunc func(ctx context.Context) ([]Params, error)

// Slugs calls f.
func (f SlugFunc) Slugs(ctx context.Context) ([]Params, error) {
	return f(ctx)
}

// FileSlugSource reads params from a YAML or JSON document holding a list of
// {slug: ...} objects.
type FileSlugSource struct {
	fs   afero.Fs
	path string
}

// NewFileSlugSource returns a file-backed source. A nil fs uses the OS filesystem.
func NewFileSlugSource(fs afero.Fs, path string) *FileSlugSource {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileSlugSource{fs: fs, path: path}
}

// Slugs reads and decodes the params file.
func (s *FileSlugSource) Slugs(ctx context.Context) ([]Params, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context canceled: %w", err)
	}
	if strings.TrimSpace(s.path) == "" {
		return nil, fmt.Errorf("params file: %w", ErrNoSource)
	}
	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("read params %s: %w", s.path, err)
	}
	var params []Params
	if err := yaml.Unmarshal(raw, &params); err != nil {
		return nil, fmt.Errorf("decode params %s: %w", s.path, err)
	}
	return params, nil
}

// ExtractSlugs validates params and returns their slugs sorted and
// deduplicated.
func ExtractSlugs(params []Params) ([]string, error) {
	if len(params) == 0 {
		return nil, ErrNoSlugs
	}
	seen := make(map[string]struct{}, len(params))
	out := make([]string, 0, len(params))
	for i, p := range params {
		slug := strings.TrimSpace(p.Slug)
		if !validSlug(slug) {
			return nil, fmt.Errorf("param %d (%q): %w", i, p.Slug, ErrMalformedSlug)
		}
		if _, dup := seen[slug]; dup {
			continue
		}
		seen[slug] = struct{}{}
		out = append(out, slug)
	}
	sort.Strings(out)
	return out, nil
}

// SlugLoader awaits a SlugSource and degrades to a fallback list on failure.
type SlugLoader struct {
	source   SlugSource
	fallback []string
	logger   *zap.Logger
}

// NewSlugLoader builds a loader.
func NewSlugLoader(source SlugSource, fallback []string, logger *zap.Logger) *SlugLoader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SlugLoader{
		source:   source,
		fallback: append([]string(nil), fallback...),
		logger:   logger,
	}
}

// Load returns the sorted slugs. It never fails: load errors, decode errors,
// empty results and malformed params all yield the fallback list.
func (l *SlugLoader) Load(ctx context.Context) (slugs []string, usedFallback bool) {
	slugs, err := l.load(ctx)
	if err != nil {
		l.logger.Warn("dynamic route params unavailable; using fallback list",
			zap.Strings("fallback", l.fallback),
			zap.Error(err),
		)
		return sortedCopy(l.fallback), true
	}
	l.logger.Debug("dynamic route params loaded", zap.Int("slugs", len(slugs)))
	return slugs, false
}

func (l *SlugLoader) load(ctx context.Context) ([]string, error) {
	if l.source == nil {
		return nil, ErrNoSource
	}
	params, err := l.source.Slugs(ctx)
	if err != nil {
		return nil, err
	}
	return ExtractSlugs(params)
}

// validSlug reports whether s can stand as a single url path segment.
func validSlug(s string) bool {
	return s != "" && !strings.ContainsAny(s, "/?# \t\n")
}
