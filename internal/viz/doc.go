// Package viz plays scenes in the terminal.
//
// The live view runs a real scheduler whose timing source is driven by
// Bubble Tea tick messages, so animations start and stop the frame clock
// exactly as they would in an application:
//
//   - [Model]: live view of a built scene
//   - [Picker]: preset menu that launches a live view
//   - [Canvas]: braille canvas for two-lane trajectories
//
// # Key Bindings
//
//	Space - Pause/Resume the frame clock
//	R     - Rebuild and restart the scene
//	T     - Cycle color themes
//	Q     - Quit
package viz
