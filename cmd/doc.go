// Package cmd implements the sub-commands of the drupal-mcp command-line
// interface.  Each file registers a single sub-command (serve, call,
// list-tools, run, …).  Configuration loading and service initialisation
// shared by all commands live in shared.go.
package cmd
