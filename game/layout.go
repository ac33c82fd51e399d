package game

import "image"

const (
	buttonWidth   = 80
	buttonHeight  = 24
	buttonSpacing = 10
	controlBar    = 2*buttonSpacing + buttonHeight
	statusBar     = 20
)

// Action is something a control button does to the board
type Action int

const (
	ActionToggleRun Action = iota
	ActionClear
	ActionRandomize
)

// Label returns the button caption for the action given the run state
func (a Action) Label(running bool) string {
	switch a {
	case ActionToggleRun:
		if running {
			return "Stop"
		}
		return "Start"
	case ActionClear:
		return "Clear"
	case ActionRandomize:
		return "Random"
	}
	return ""
}

// Apply performs the action on the board
func (a Action) Apply(b *Board) {
	switch a {
	case ActionToggleRun:
		b.ToggleRunning()
	case ActionClear:
		b.Clear()
	case ActionRandomize:
		b.Randomize()
	}
}

// Button is a clickable control
type Button struct {
	Action Action
	Rect   image.Rectangle
}

// Layout maps between screen pixels and board cells and controls.
// The grid sits at the top-left, with the control bar and status line under it.
type Layout struct {
	cols, rows int
	cellSize   int
	buttons    []Button
}

// NewLayout lays out a cols x rows grid with square cells of cellSize pixels
func NewLayout(cols, rows, cellSize int) *Layout {
	l := &Layout{cols: cols, rows: rows, cellSize: cellSize}

	top := rows*cellSize + buttonSpacing
	for i, action := range []Action{ActionToggleRun, ActionClear, ActionRandomize} {
		left := buttonSpacing + i*(buttonWidth+buttonSpacing)
		l.buttons = append(l.buttons, Button{
			Action: action,
			Rect:   image.Rect(left, top, left+buttonWidth, top+buttonHeight),
		})
	}
	return l
}

// Size returns the full screen size in pixels
func (l *Layout) Size() (width, height int) {
	width = max(l.cols*l.cellSize, l.buttons[len(l.buttons)-1].Rect.Max.X+buttonSpacing)
	height = l.rows*l.cellSize + controlBar + statusBar
	return
}

func (l *Layout) CellSize() int {
	return l.cellSize
}

// CellRect returns the screen rectangle of the cell at (x, y)
func (l *Layout) CellRect(x, y int) image.Rectangle {
	return image.Rect(x*l.cellSize, y*l.cellSize, (x+1)*l.cellSize, (y+1)*l.cellSize)
}

// CellAt returns the cell under the pixel (px, py)
func (l *Layout) CellAt(px, py int) (x, y int, ok bool) {
	if px < 0 || py < 0 {
		return 0, 0, false
	}
	x, y = px/l.cellSize, py/l.cellSize
	if x >= l.cols || y >= l.rows {
		return 0, 0, false
	}
	return x, y, true
}

func (l *Layout) Buttons() []Button {
	return l.buttons
}

// ButtonAt returns the action of the button under the pixel (px, py)
func (l *Layout) ButtonAt(px, py int) (Action, bool) {
	pt := image.Pt(px, py)
	for _, b := range l.buttons {
		if pt.In(b.Rect) {
			return b.Action, true
		}
	}
	return 0, false
}

// StatusOrigin is the baseline position of the status line
func (l *Layout) StatusOrigin() (x, y int) {
	return buttonSpacing, l.rows*l.cellSize + controlBar + statusBar - 6
}
