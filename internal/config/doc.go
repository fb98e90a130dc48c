// Package config loads, normalizes, and validates gavel configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every knob
// the pipeline and CLI need: source/output/log directories, aggregation
// thresholds, archive settings, and log verbosity.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
