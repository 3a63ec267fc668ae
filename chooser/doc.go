// Package chooser provides the operator-facing autonomous selector.
package chooser
