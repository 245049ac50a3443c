// Package config loads and validates server settings from YAML.
package config
