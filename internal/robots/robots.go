// Package robots renders robots.txt so crawlers can discover the sitemap and
// the descriptive manifest.
package robots

import (
	"bytes"
	"fmt"
	"strings"
)

// Options controls robots.txt rendering.
type Options struct {
	// BaseURL is absolute and carries no trailing slash.
	BaseURL      string
	SitemapPath  string
	ManifestPath string
	Disallow     []string
}

// Render returns the robots.txt body.
func Render(opts Options) ([]byte, error) {
	if opts.BaseURL == "" {
		return nil, fmt.Errorf("base url is required")
	}
	var buf bytes.Buffer
	buf.WriteString("User-agent: *\n")
	buf.WriteString("Allow: /\n")
	for _, path := range opts.Disallow {
		path = strings.TrimSpace(path)
		if path == "" {
			continue
		}
		if !strings.HasPrefix(path, "/") {
			return nil, fmt.Errorf("disallow path %q must start with /", path)
		}
		fmt.Fprintf(&buf, "Disallow: %s\n", path)
	}
	buf.WriteString("\n")
	if opts.ManifestPath != "" {
		fmt.Fprintf(&buf, "# LLM content manifest: %s%s\n", opts.BaseURL, slash(opts.ManifestPath))
	}
	if opts.SitemapPath != "" {
		fmt.Fprintf(&buf, "Sitemap: %s%s\n", opts.BaseURL, slash(opts.SitemapPath))
	}
	return buf.Bytes(), nil
}

func slash(path string) string {
	if strings.HasPrefix(path, "/") {
		return path
	}
	return "/" + path
}
