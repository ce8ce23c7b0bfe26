// Package drupal implements a small client for the Drupal JSON:API module.
// It exposes the read operations used by the MCP tools: querying nodes of a
// content type, fetching a single node, listing content types and searching
// titles across all content types.
package drupal
