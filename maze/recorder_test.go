package maze_test

import (
	"github.com/katalvlaran/lvmaze/maze"
)

type op int

const (
	opDraw op = iota
	opErase
	opMark
	opClear
)

// event is one call received by the recorder.
type event struct {
	Op     op
	Cell   int
	Dir    maze.Direction
	Symbol maze.Symbol
}

// recorder is a Renderer that keeps every event and the set of cells
// currently carrying a marker.
type recorder struct {
	events []event
	marked map[int]maze.Symbol
}

func newRecorder() *recorder {
	return &recorder{marked: make(map[int]maze.Symbol)}
}

func (r *recorder) DrawCell(c maze.Cell) {
	r.events = append(r.events, event{Op: opDraw, Cell: c.ID})
}

func (r *recorder) EraseWall(c maze.Cell, d maze.Direction) {
	r.events = append(r.events, event{Op: opErase, Cell: c.ID, Dir: d})
}

func (r *recorder) MarkCell(c maze.Cell, s maze.Symbol) {
	r.events = append(r.events, event{Op: opMark, Cell: c.ID, Symbol: s})
	r.marked[c.ID] = s
}

func (r *recorder) ClearCell(c maze.Cell) {
	r.events = append(r.events, event{Op: opClear, Cell: c.ID})
	delete(r.marked, c.ID)
}

// count returns how many events of kind o were received.
func (r *recorder) count(o op) int {
	n := 0
	for _, e := range r.events {
		if e.Op == o {
			n++
		}
	}

	return n
}

// marks returns the symbols of the MarkCell events in order.
func (r *recorder) marks() []maze.Symbol {
	var out []maze.Symbol
	for _, e := range r.events {
		if e.Op == opMark {
			out = append(out, e.Symbol)
		}
	}

	return out
}

// reset forgets recorded events but keeps the marked set.
func (r *recorder) reset() { r.events = nil }
