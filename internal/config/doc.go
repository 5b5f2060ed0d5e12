// Package config defines the application configuration structure and
// loading logic. Configuration is sourced from defaults, an optional
// config.yaml, and MINERAL_-prefixed environment variables (highest
// precedence), then validated before use.
package config
