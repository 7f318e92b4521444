// Package session drives the interactive player: a menu of algorithms and
// a visualizer that steps through one recorded sequence.
//
// A Session owns one drawing surface and shows either the menu or exactly
// one Visualizer at a time. Choosing an algorithm records it on the
// session's graph and opens a Visualizer on step 0; going back to the menu
// stops and discards it.
//
// A Visualizer moves one step at a time with Next and Prev, jumps to step 0
// with Reset, and auto-advances with Play until Pause or the last step.
// Manual stepping is refused while auto-advance runs.
//
// Errors:
//
//	ErrClosed          - the session or visualizer was closed.
//	ErrAutoAdvancing   - Next/Prev called while playing.
//	ErrUnknownStrategy - no strategy under the requested name (re-exported).
package session
