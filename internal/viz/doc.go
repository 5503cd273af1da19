// Package viz provides terminal rendering for orbit replays.
//
// The package draws onto a braille sub-pixel [Canvas] through a fixed
// world-space [Viewport] and drives the replay with a Bubble Tea [Model]:
//
//   - [Canvas]: Braille-based pixel canvas (2x4 dots per cell)
//   - [Viewport]: world-to-canvas projection with segment clipping
//   - [Model]: one animation frame per tick, no repeat
//   - Theme selection with 3 built-in color schemes
//
// # Key Bindings
//
//	Q / Esc / Ctrl+C - Close the view
//
// The animation stops on its last frame and stays on screen until closed.
package viz
