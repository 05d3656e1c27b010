// Package fetch provides the pluggable download capability: a native HTTP
// implementation and a wrapper around the curl binary the original tooling
// used. Both satisfy the same Fetcher interface so the syncer does not care
// which one config selects.
package fetch
