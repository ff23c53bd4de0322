// Package cli implements the command-line interface for mado.
//
// The cli package provides:
// - Command-line argument parsing and validation
// - Plain and interactive terminal output
// - The interactive record view with on-demand refresh
// - Browser integration for record URLs
package cli
