// Package toolbar holds the toolbar button state machine and the bar that
// owns a set of buttons.
//
// A Button's inputs are its shortcut text, placement (inline or in the
// overflow drop-down), content and icon. Its outputs are the visual state and
// tooltip pushed to a Renderer and the accelerator hint on its accessibility
// peer. Outputs are recomputed inside the setters, never lazily.
//
// Allowed here:
//   - gesture listener lifecycle (bind, unsubscribe, dispose)
//   - focus requests through the Focuser
//   - reconciling a bar against a list of Specs
//
// Not allowed here:
//   - lipgloss rendering (see widgets)
//   - bubbletea program state (see core)
package toolbar
