// Package cli defines the Cobra command tree for the contentx CLI. Each file
// in this package registers one top-level command with the root command.
// Commands delegate to the internal packages for the work and only handle
// flags, output formatting and exit status.
package cli
