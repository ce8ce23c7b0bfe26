// Package config defines the YAML/JSON configuration model of the Drupal MCP
// service together with helpers to load it from any afs supported location
// and to overlay the process environment.
package config
