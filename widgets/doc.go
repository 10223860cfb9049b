// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (panel chrome, stacks, overlay compositor)
// - ButtonView, the renderer a toolbar button pushes visual state and tooltip into
//
// Not allowed here:
// - key handling, focus policy, or gesture handling
// - importing internal/toolbar (views speak in state names)
package widgets
