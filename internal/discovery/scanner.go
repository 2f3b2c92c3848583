package discovery

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// DirScanner lists route segments from the immediate subdirectories of Root.
type DirScanner struct {
	fs       afero.Fs
	root     string
	fallback []string
	logger   *zap.Logger
}

// NewDirScanner builds a scanner over fs. A nil fs uses the OS filesystem.
func NewDirScanner(fs afero.Fs, root string, fallback []string, logger *zap.Logger) *DirScanner {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirScanner{
		fs:       fs,
		root:     root,
		fallback: append([]string(nil), fallback...),
		logger:   logger,
	}
}

// Scan returns the sorted route segments. It never fails: a missing or
// unreadable root yields the fallback list. A readable root with no route
// subdirectories yields an empty list.
func (s *DirScanner) Scan() (segments []string, usedFallback bool) {
	names, err := s.list()
	if err != nil {
		s.logger.Warn("route directory scan failed; using fallback list",
			zap.String("root", s.root),
			zap.Strings("fallback", s.fallback),
			zap.Error(err),
		)
		return sortedCopy(s.fallback), true
	}
	if len(names) == 0 {
		s.logger.Warn("route directory has no route segments", zap.String("root", s.root))
		return nil, false
	}
	s.logger.Debug("route directory scanned", zap.String("root", s.root), zap.Int("segments", len(names)))
	return names, false
}

func (s *DirScanner) list() ([]string, error) {
	if strings.TrimSpace(s.root) == "" {
		return nil, fmt.Errorf("content root is not configured")
	}
	infos, err := afero.ReadDir(s.fs, s.root)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", s.root, err)
	}
	out := make([]string, 0, len(infos))
	for _, info := range infos {
		if !info.IsDir() || !isRouteSegment(info.Name()) {
			continue
		}
		if !validSlug(info.Name()) {
			s.logger.Warn("skipping directory that is not a valid url segment",
				zap.String("root", s.root),
				zap.String("name", info.Name()),
			)
			continue
		}
		out = append(out, info.Name())
	}
	sort.Strings(out)
	return out, nil
}

// isRouteSegment rejects hidden and private folders, route groups, dynamic
// segments and tooling directories.
func isRouteSegment(name string) bool {
	switch {
	case name == "", name == "node_modules":
		return false
	case strings.HasPrefix(name, "."), strings.HasPrefix(name, "_"):
		return false
	case strings.HasPrefix(name, "(") && strings.HasSuffix(name, ")"):
		return false
	case strings.HasPrefix(name, "[") && strings.HasSuffix(name, "]"):
		return false
	case strings.HasPrefix(name, "@"):
		return false
	}
	return true
}

func sortedCopy(in []string) []string {
	out := append([]string(nil), in...)
	sort.Strings(out)
	return out
}
