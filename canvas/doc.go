// Package canvas holds the concrete replay.Drawer implementations.
//
// SVG renders each frame as a standalone <svg> document; the HTTP viewer
// embeds it and the render command writes it to a file. Terminal rasterises
// the same frame onto a character grid and colours it with ANSI escapes for
// the interactive player.
//
// Both buffer a frame between DrawBase and Flush. Flush writes the frame to
// the configured io.Writer, if any, and keeps a copy for later retrieval.
package canvas
