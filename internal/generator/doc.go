// Package generator runs the artifact pipelines: resolve the route inventory,
// assemble the artifact, write it to the primary store, mirror it, record
// metrics and publish a regeneration event.
//
// Only a failed primary write (or a failed assembly) fails a pipeline. Mirror
// uploads and notifications are best effort; their failures are logged and
// counted.
package generator
