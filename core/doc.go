// Package core hosts the toolbar inside a bubbletea program.
//
// Allowed here:
// - model routing, message contracts, command and key registries
// - turning button activations into commands and driving view transitions
//
// Not allowed here:
// - concrete screen implementations (see screens)
// - low-level widget rendering primitives (see widgets)
// - button state rules (see internal/toolbar)
package core
