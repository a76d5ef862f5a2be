package maze

// Renderer receives the drawing events produced while a maze is generated
// and solved. Implementations may animate, buffer, or ignore them; none of
// them influence the computed tree or paths.
type Renderer interface {
	// DrawCell draws the four walls of c.
	DrawCell(c Cell)
	// EraseWall removes the wall of c facing d.
	EraseWall(c Cell, d Direction)
	// MarkCell draws s inside c.
	MarkCell(c Cell, s Symbol)
	// ClearCell removes any marker from c.
	ClearCell(c Cell)
}

// NopRenderer discards every event.
type NopRenderer struct{}

func (NopRenderer) DrawCell(Cell)             {}
func (NopRenderer) EraseWall(Cell, Direction) {}
func (NopRenderer) MarkCell(Cell, Symbol)     {}
func (NopRenderer) ClearCell(Cell)            {}
