package maze

// renderPath marks the cells of path: s on the first, t on the last, and on
// every cell in between the arrow pointing at the following cell.
// A single-cell path is only marked s.
func (m *Maze) renderPath(path []int) {
	switch len(path) {
	case 0:
		return
	case 1:
		m.renderer.MarkCell(m.cells[path[0]], SymbolSource)
		return
	}

	last := len(path) - 1
	m.renderer.MarkCell(m.cells[path[0]], SymbolSource)
	for i := 1; i < last; i++ {
		from, to := m.cells[path[i]], m.cells[path[i+1]]
		m.renderer.MarkCell(from, DirectionBetween(from, to).Arrow())
	}
	m.renderer.MarkCell(m.cells[path[last]], SymbolTarget)
}

// clearPath removes the marker from every cell of path.
func (m *Maze) clearPath(path []int) {
	for _, id := range path {
		m.renderer.ClearCell(m.cells[id])
	}
}
