// Package tool contains the MCP tool catalog of the Drupal server.  It
// defines the immutable Registry that maps tool names to their input schema
// and handler, the argument types accepted by each tool and the reduced
// projections returned to the assistant.
package tool
