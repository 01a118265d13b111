// Package config manages user-level settings stored at ~/.contentx/config.yaml.
// Values can be overridden by CONTENTX_* environment variables and by the
// command line flags bound to them.
package config
