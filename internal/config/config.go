// Package config loads and validates generator configuration via Viper.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/JakeFAU/sitegen/internal/locale"
	"github.com/JakeFAU/sitegen/internal/manifest"
)

// LegalEnvVar enables legal routes in the sitemap when set to exactly "true".
const LegalEnvVar = "SITEMAP_INCLUDE_LEGAL"

// EnvPrefix is the prefix of every other environment override.
const EnvPrefix = "SITEGEN"

// Config captures all generator configuration knobs loaded via Viper.
type Config struct {
	Site       SiteConfig           `mapstructure:"site"`
	Routes     RoutesConfig         `mapstructure:"routes"`
	Sitemap    SitemapConfig        `mapstructure:"sitemap"`
	Output     OutputConfig         `mapstructure:"output"`
	Storage    StorageConfig        `mapstructure:"storage"`
	PubSub     PubSubConfig         `mapstructure:"pubsub"`
	Metrics    MetricsConfig        `mapstructure:"metrics"`
	Logging    LoggingConfig        `mapstructure:"logging"`
	Generation GenerationConfig     `mapstructure:"generation"`
	Robots     RobotsConfig         `mapstructure:"robots"`
	Manifest   manifest.Boilerplate `mapstructure:"manifest"`
}

// SiteConfig describes the public site.
type SiteConfig struct {
	// BaseURL is absolute; Load strips any trailing slash.
	BaseURL string `mapstructure:"base_url"`
	// Locales are ordered; the first one is the default locale.
	Locales []string `mapstructure:"locales"`
}

// RoutesConfig points at the discovery inputs.
type RoutesConfig struct {
	ContentDir      string `mapstructure:"content_dir"`
	CaseStudiesFile string `mapstructure:"case_studies_file"`
}

// SitemapConfig toggles optional sitemap content.
type SitemapConfig struct {
	IncludeLegal bool `mapstructure:"include_legal"`
	Alternates   bool `mapstructure:"alternates"`
}

// OutputConfig sets where artifacts are written.
type OutputConfig struct {
	Dir          string `mapstructure:"dir"`
	SitemapPath  string `mapstructure:"sitemap_path"`
	ManifestPath string `mapstructure:"manifest_path"`
	RobotsPath   string `mapstructure:"robots_path"`
}

// StorageConfig configures the optional GCS mirror.
type StorageConfig struct {
	GCSBucket    string `mapstructure:"gcs_bucket"`
	Prefix       string `mapstructure:"prefix"`
	CacheControl string `mapstructure:"cache_control"`
}

// PubSubConfig holds metadata for regeneration notifications.
type PubSubConfig struct {
	ProjectID string `mapstructure:"project_id"`
	Topic     string `mapstructure:"topic"`
}

// MetricsConfig configures the Prometheus textfile export.
type MetricsConfig struct {
	Textfile string `mapstructure:"textfile"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// GenerationConfig controls run-wide generation inputs.
type GenerationConfig struct {
	// FixedTime pins the generation clock (RFC 3339) for reproducible output.
	FixedTime string `mapstructure:"fixed_time"`
}

// RobotsConfig lists robots.txt disallow rules.
type RobotsConfig struct {
	Disallow []string `mapstructure:"disallow"`
}

// Load builds a Config from defaults, an optional file and the environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	applyLegalEnv(&cfg)
	cfg.Site.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Site.BaseURL), "/")

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("site.base_url", "")
	v.SetDefault("site.locales", []string{"es", "en"})
	v.SetDefault("routes.content_dir", "app/[locale]/product")
	v.SetDefault("routes.case_studies_file", "build/case-studies.params.json")
	v.SetDefault("sitemap.include_legal", false)
	v.SetDefault("sitemap.alternates", false)
	v.SetDefault("output.dir", "public")
	v.SetDefault("output.sitemap_path", "sitemap.xml")
	v.SetDefault("output.manifest_path", "llms.txt")
	v.SetDefault("output.robots_path", "robots.txt")
	v.SetDefault("storage.gcs_bucket", "")
	v.SetDefault("storage.prefix", "")
	v.SetDefault("storage.cache_control", "public, max-age=3600")
	v.SetDefault("pubsub.project_id", "")
	v.SetDefault("pubsub.topic", "")
	v.SetDefault("metrics.textfile", "")
	v.SetDefault("logging.development", false)
	v.SetDefault("generation.fixed_time", "")
}

// applyLegalEnv enforces the strict legal-flag rule: the variable enables
// legal routes only when it is exactly "true"; any other value disables them.
// The unprefixed variable wins over the prefixed one.
func applyLegalEnv(cfg *Config) {
	for _, name := range []string{EnvPrefix + "_SITEMAP_INCLUDE_LEGAL", LegalEnvVar} {
		if raw, ok := os.LookupEnv(name); ok {
			cfg.Sitemap.IncludeLegal = raw == "true"
		}
	}
}

// Validate enforces required values. Every failure is fatal at startup.
func (c Config) Validate() error {
	if err := validateBaseURL(c.Site.BaseURL); err != nil {
		return err
	}
	if _, err := c.LocaleCodes(); err != nil {
		return fmt.Errorf("site.locales: %w", err)
	}
	if strings.TrimSpace(c.Output.Dir) == "" {
		return fmt.Errorf("output.dir must be set")
	}
	for key, p := range map[string]string{
		"output.sitemap_path":  c.Output.SitemapPath,
		"output.manifest_path": c.Output.ManifestPath,
		"output.robots_path":   c.Output.RobotsPath,
	} {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%s must be set", key)
		}
	}
	if c.PubSub.Topic != "" && c.PubSub.ProjectID == "" {
		return fmt.Errorf("pubsub.project_id must be set when pubsub.topic is set")
	}
	if _, err := c.FixedTime(); err != nil {
		return err
	}
	return nil
}

// LocaleCodes returns the validated, ordered locale set.
func (c Config) LocaleCodes() ([]locale.Code, error) {
	codes, err := locale.ParseCodes(c.Site.Locales)
	if err != nil {
		return nil, fmt.Errorf("parse locales: %w", err)
	}
	return codes, nil
}

// FixedTime returns the pinned generation time, or the zero time when unset.
func (c Config) FixedTime() (time.Time, error) {
	if c.Generation.FixedTime == "" {
		return time.Time{}, nil
	}
	at, err := time.Parse(time.RFC3339, c.Generation.FixedTime)
	if err != nil {
		return time.Time{}, fmt.Errorf("generation.fixed_time must be RFC 3339: %w", err)
	}
	return at, nil
}

func validateBaseURL(raw string) error {
	if raw == "" {
		return fmt.Errorf("site.base_url must be set")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("site.base_url is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("site.base_url must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("site.base_url must include a host")
	}
	if u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("site.base_url must not carry a query or fragment")
	}
	return nil
}
