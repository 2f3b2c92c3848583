package generator

import (
	"fmt"
	"time"

	"github.com/JakeFAU/sitegen/internal/locale"
	"github.com/JakeFAU/sitegen/internal/manifest"
)

// Artifact names a generated file.
type Artifact string

// Supported artifacts.
const (
	ArtifactSitemap  Artifact = "sitemap"
	ArtifactManifest Artifact = "manifest"
	ArtifactRobots   Artifact = "robots"
)

// AllArtifacts lists every artifact in generation order.
var AllArtifacts = []Artifact{ArtifactSitemap, ArtifactManifest, ArtifactRobots}

// ParseArtifact maps a name to an Artifact.
func ParseArtifact(name string) (Artifact, error) {
	for _, a := range AllArtifacts {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown artifact %q", name)
}

// Config carries the validated, run-wide generation settings.
type Config struct {
	// BaseURL is absolute and carries no trailing slash.
	BaseURL string
	// Locales are ordered; the first one is the default locale.
	Locales      []locale.Code
	IncludeLegal bool
	Alternates   bool

	SitemapPath  string
	ManifestPath string
	RobotsPath   string

	Boilerplate manifest.Boilerplate
	Disallow    []string

	// Topic receives regeneration events; empty disables notifications.
	Topic string
}

// Mirror is a secondary store that receives a copy of every artifact.
type Mirror struct {
	Name  string
	Store BlobStore
}

// Event describes one written artifact. It is returned to callers and
// published as the notification payload.
type Event struct {
	RunID       string    `json:"run_id"`
	Artifact    Artifact  `json:"artifact"`
	URI         string    `json:"uri"`
	Mirrors     []string  `json:"mirrors,omitempty"`
	SHA256      string    `json:"sha256"`
	Entries     int       `json:"entries"`
	Bytes       int       `json:"bytes"`
	Duplicates  int       `json:"duplicates,omitempty"`
	GeneratedAt time.Time `json:"generated_at"`
}

// output is an assembled, not yet written artifact.
type output struct {
	path        string
	contentType string
	body        []byte
	entries     int
	duplicates  int
}
