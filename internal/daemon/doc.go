// Package daemon runs the periodic sync loop and enforces single-instance
// execution via a file lock.
package daemon
