// Package viz provides a terminal frontend for an orrery scene.
//
// The package implements an interactive TUI using the Bubble Tea framework:
//
//   - [Model]: drives an orbit.Session from terminal mouse and key events
//   - [Canvas]: Braille-based pixel canvas with per-cell colors
//   - Theme selection with built-in color schemes
//
// # Key Bindings
//
//	Mouse        - Hover and click bodies
//	Arrows/hjkl  - Orbit the camera
//	+/-          - Zoom
//	Space        - Pause/Resume rotation
//	R            - Rebuild the scene
//	T            - Cycle color themes
//	Q            - Quit
package viz
