// Package action exposes the Drupal client operations as Fluxor actions so
// that they can be scheduled ad-hoc or used as workflow steps.
package action
