// Package config handles configuration management for roster.
// It layers embedded defaults, an optional TOML file, ROSTER_* environment
// variables and command-line overrides, in that order.
package config
