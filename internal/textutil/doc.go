// Package textutil provides text normalization helpers for filename
// derivation.
package textutil
