// Package config loads, validates, and normalizes the castfetch TOML
// configuration file.
package config
