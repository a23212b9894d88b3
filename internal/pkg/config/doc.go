// Package config provides functionality for loading and managing application configuration.
//
// Settings are read from an optional YAML file with viper, overridden from the
// environment and validated before use. Logging and the RSA engine each have
// their own settings section.
package config
