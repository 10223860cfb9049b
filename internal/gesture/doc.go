// Package gesture parses shortcut text into key gestures and recognizes them
// in a stream of bubbletea key messages.
//
// Allowed here:
// - the shortcut grammar and its terminal key mapping
// - the scope that fans key messages out to recognizers
//
// Not allowed here:
// - widget state, focus, or what happens when a gesture fires
package gesture
