// Package render draws mazes on an ANSI terminal.
//
// Terminal implements maze.Renderer. Each cell is the sprite
//
//	+---+
//	| s |
//	+---+
//
// placed at the cell's screen Location. Wall erasure and path markers save
// and restore the cursor, so the menu printed below the maze keeps its
// place.
//
// Colour and animation are on by default only when the writer is a
// terminal (go-isatty); WithColor, WithMazeDelay, WithPathDelay and
// WithoutAnimation override the detection. Pauses never change what is
// drawn.
package render
