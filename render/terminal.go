package render

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/lvmaze/maze"
	"github.com/mattn/go-isatty"
)

// ANSI escape sequences.
const (
	clearScreen     = "\x1b[2J"
	clearLine       = "\x1b[2K"
	previousLine    = "\x1b[F"
	saveCursor      = "\x1b[s"
	restoreCursor   = "\x1b[u"
	locateFormat    = "\x1b[%d;%dH"
	horizontalWall  = "+---+"
	verticalWall    = "|"
	interiorColumn  = 2 // marker column inside a cell sprite
	eastWallColumn  = 4 // east wall column inside a cell sprite
	defaultMarkHue  = "1"
	defaultMazeWait = 2 * time.Millisecond
	defaultPathWait = 150 * time.Millisecond
)

// Terminal draws a maze with ANSI escape sequences. It implements
// maze.Renderer.
//
// Write errors do not interrupt drawing; the first one is kept and reported
// by Err.
type Terminal struct {
	w         io.Writer
	mazeDelay time.Duration
	pathDelay time.Duration
	color     bool
	mark      lipgloss.Style
	sleep     func(time.Duration)

	bottom int // last screen line used by a cell sprite
	err    error
}

var _ maze.Renderer = (*Terminal)(nil)

// Option configures a Terminal.
type Option func(*Terminal)

// WithMazeDelay sets the pause before each cell is drawn.
func WithMazeDelay(d time.Duration) Option {
	return func(t *Terminal) { t.mazeDelay = d }
}

// WithPathDelay sets the pause before each path marker is drawn.
func WithPathDelay(d time.Duration) Option {
	return func(t *Terminal) { t.pathDelay = d }
}

// WithoutAnimation drops both pauses.
func WithoutAnimation() Option {
	return func(t *Terminal) {
		t.mazeDelay = 0
		t.pathDelay = 0
	}
}

// WithColor turns coloured path markers on or off.
func WithColor(on bool) Option {
	return func(t *Terminal) { t.color = on }
}

// New returns a Terminal writing to w. Colour and animation are enabled
// only when w is a terminal; options applied afterwards override that.
func New(w io.Writer, opts ...Option) *Terminal {
	tty := IsTerminal(w)
	t := &Terminal{
		w:     w,
		color: tty,
		sleep: time.Sleep,
	}
	if tty {
		t.mazeDelay = defaultMazeWait
		t.pathDelay = defaultPathWait
	}
	for _, opt := range opts {
		opt(t)
	}
	t.mark = lipgloss.NewRenderer(w).NewStyle().Foreground(lipgloss.Color(defaultMarkHue))

	return t
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Err returns the first write error, if any.
func (t *Terminal) Err() error { return t.err }

// Clear blanks the screen and homes the cursor.
func (t *Terminal) Clear() {
	t.write(clearScreen)
	t.locate(0, 0)
	t.bottom = 0
}

// Park moves the cursor to the first line below the maze.
func (t *Terminal) Park() {
	t.locate(t.bottom+1, 0)
}

// EraseMenu clears the last n lines and leaves the cursor where the first
// of them began.
func (t *Terminal) EraseMenu(n int) {
	t.write(strings.Repeat(clearLine+previousLine, n))
}

// Print writes s at the cursor.
func (t *Terminal) Print(s string) { t.write(s) }

// DrawCell draws the four walls of c.
func (t *Terminal) DrawCell(c maze.Cell) {
	t.pause(t.mazeDelay)

	line, col := c.Location.Line, c.Location.Column
	t.locate(line, col)
	t.write(horizontalWall)
	t.locate(line+1, col)
	t.write(verticalWall)
	t.locate(line+1, col+eastWallColumn)
	t.write(verticalWall)
	t.locate(line+2, col)
	t.write(horizontalWall)

	t.bottom = max(t.bottom, line+2)
}

// EraseWall blanks the side of c facing d. Corners stay in place.
func (t *Terminal) EraseWall(c maze.Cell, d maze.Direction) {
	t.write(saveCursor)

	line, col := c.Location.Line, c.Location.Column
	inner := strings.Repeat(" ", len(horizontalWall)-2)
	switch d {
	case maze.North:
		t.locate(line, col+1)
		t.write(inner)
	case maze.South:
		t.locate(line+2, col+1)
		t.write(inner)
	case maze.East:
		t.locate(line+1, col+eastWallColumn)
		t.write(" ")
	case maze.West:
		t.locate(line+1, col)
		t.write(" ")
	}

	t.write(restoreCursor)
}

// MarkCell draws s in the middle of c.
func (t *Terminal) MarkCell(c maze.Cell, s maze.Symbol) {
	t.write(saveCursor)
	t.pause(t.pathDelay)

	t.locate(c.Location.Line+1, c.Location.Column+interiorColumn)
	if t.color {
		t.write(t.mark.Render(string(s)))
	} else {
		t.write(string(s))
	}

	t.write(restoreCursor)
}

// ClearCell blanks the middle of c.
func (t *Terminal) ClearCell(c maze.Cell) {
	t.write(saveCursor)
	t.locate(c.Location.Line+1, c.Location.Column+interiorColumn)
	t.write(" ")
	t.write(restoreCursor)
}

// locate moves the cursor to a zero-based screen position.
func (t *Terminal) locate(line, col int) {
	t.write(fmt.Sprintf(locateFormat, line+1, col+1))
}

func (t *Terminal) pause(d time.Duration) {
	if d > 0 {
		t.sleep(d)
	}
}

func (t *Terminal) write(s string) {
	if _, err := io.WriteString(t.w, s); err != nil && t.err == nil {
		t.err = err
	}
}
