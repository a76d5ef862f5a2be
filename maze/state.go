package maze

// StateKind says which path, if any, is currently drawn on the maze.
type StateKind int

const (
	// Unsolved: no path is shown.
	Unsolved StateKind = iota
	// ShortestPathShown: the corner-to-corner path is shown.
	ShortestPathShown
	// LongestPathShown: a tree diameter is shown.
	LongestPathShown
)

// String returns a readable name for k.
func (k StateKind) String() string {
	switch k {
	case Unsolved:
		return "unsolved"
	case ShortestPathShown:
		return "shortest-path-shown"
	case LongestPathShown:
		return "longest-path-shown"
	default:
		return "unknown"
	}
}

// SolvedState pairs the state kind with the path it shows. Path is nil when
// Kind is Unsolved.
type SolvedState struct {
	Kind StateKind
	Path []int
}

// Shown reports whether a path is currently drawn.
func (s SolvedState) Shown() bool { return s.Kind != Unsolved }

// prime clears whatever path is shown and returns the maze to Unsolved, so
// that at most one path is ever drawn.
func (m *Maze) prime() {
	if !m.state.Shown() {
		return
	}
	m.clearPath(m.state.Path)
	m.log.V(1).Info("cleared path", "generation", m.generation.String(), "state", m.state.Kind.String())
	m.state = SolvedState{Kind: Unsolved}
}

// show records path as the drawn path of kind k and renders it.
func (m *Maze) show(k StateKind, path []int) {
	m.renderPath(path)
	m.state = SolvedState{Kind: k, Path: path}
}
