// Package screens contains concrete overlay flows rendered above the bar.
//
// Allowed here:
// - screen implementations that satisfy core.Screen (drop-down menu, command palette)
// - screen-specific presentation and interaction wiring
//
// Not allowed here:
// - app-wide routing tables and key registry ownership
// - low-level widget/layout primitives
package screens
