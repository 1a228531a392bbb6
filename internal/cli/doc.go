// Package cli defines the Cobra command tree for the shellutils CLI. Each
// file registers one top-level command (duplicate, archive, scan, ...) with
// the root command. Commands delegate to the internal packages and only
// handle argument parsing and output formatting.
package cli
