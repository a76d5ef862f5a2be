// Package lvmaze draws random perfect mazes in the terminal and answers two
// questions about them: the way from the top-left to the bottom-right cell,
// and the longest path between any two cells.
//
// 🚀 How it works
//
//	A maze is a random spanning tree of its grid graph. Every cell is
//	reachable and there is exactly one path between any two cells:
//		• graph/  – adjacency-set graph, grid builder, randomized Prim
//		• maze/   – cells, carving, solving, tree diameter, solved state
//		• render/ – ANSI terminal renderer (colour via lipgloss)
//		• config/ – defaults, YAML file, validation
//		• cmd/lvmaze – the interactive command
//
// Quick ASCII example (2×2 grid, one edge dropped by the tree):
//
//	+---+---+
//	| s   v |
//	+---+   +
//	|     t |
//	+---+---+
//
// Install the command:
//
//	go install github.com/katalvlaran/lvmaze/cmd/lvmaze@latest
package lvmaze
