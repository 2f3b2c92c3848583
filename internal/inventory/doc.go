// Package inventory holds the single, versioned route inventory shared by every
// artifact generator. Each Page row carries both the ranking overrides used by
// the sitemap and the per-locale copy used by the descriptive manifest, so the
// two artifacts are always projected from the same table.
package inventory
