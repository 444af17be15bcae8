// Package cli defines the Cobra command tree for the cppinit CLI. The root
// command scaffolds a project; version, config and doctor are subcommands.
// Commands delegate to internal packages for business logic and only handle
// flag parsing, I/O formatting, and user interaction.
package cli
