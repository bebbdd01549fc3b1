// Package config loads alias definition files for aliasmap.
// It supports TOML and YAML definition files and environment
// variable overrides for placeholder values.
package config
