// Package history persists per-target sync outcomes in a SQLite database so
// past downloads, skips, and failures can be inspected after the fact.
package history
