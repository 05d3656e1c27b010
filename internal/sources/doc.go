// Package sources is the source registry: it turns the configured source
// tables into validated, immutable source descriptors for the syncer.
package sources
