// Package config handles loading, validation and access to application
// configuration from environment variables and config files.
package config
