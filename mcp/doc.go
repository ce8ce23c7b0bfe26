// Package mcp wires the Drupal JSON:API client into an MCP server.  Its
// central Service type loads configuration, builds the Drupal client and the
// tool registry, hosts a Fluxor workflow engine exposing the same operations
// as actions and can expose the tools over an MCP server.
package mcp
