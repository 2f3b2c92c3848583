// Package discovery resolves the variable parts of the route inventory at build
// time. Product slugs come from the subdirectories of a content root; case-study
// slugs come from a SlugSource, normally the params file emitted by the content
// build. Every discovery failure degrades to a hardcoded fallback list and a
// warning; discovery never aborts a generation run.
package discovery
