// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the application configuration structure
// including the listen address, environment, log level, and check log path.
package config
