// Package conv provides small helpers to convert between arbitrary Go values.
// Convert coerces generic argument maps into typed structs the same way the
// MCP tool arguments are decoded, and falls back to a JSON round-trip for
// everything else.
package conv
