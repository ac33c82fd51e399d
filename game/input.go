package game

// Key is a keyboard shortcut understood by the board
type Key int

const (
	KeyToggleRun Key = iota
	KeyClear
	KeyRandomize
	KeyStep
	KeyGlider
	KeyBlinker
)

// Click handles a primary click at (px, py): a cell is toggled or a button
// is pressed. It reports whether the click hit anything.
func (l *Layout) Click(b *Board, px, py int) bool {
	if x, y, ok := l.CellAt(px, py); ok {
		b.ToggleCell(x, y)
		return true
	}
	if action, ok := l.ButtonAt(px, py); ok {
		action.Apply(b)
		return true
	}
	return false
}

// Press handles a keyboard shortcut; (px, py) is the cursor position.
func (l *Layout) Press(b *Board, key Key, px, py int) {
	switch key {
	case KeyToggleRun:
		b.ToggleRunning()
	case KeyClear:
		b.Clear()
	case KeyRandomize:
		b.Randomize()
	case KeyStep:
		// single stepping only makes sense while paused
		if !b.Running() {
			b.Step()
		}
	case KeyGlider:
		if x, y, ok := l.CellAt(px, py); ok {
			b.PlaceGlider(x, y)
		}
	case KeyBlinker:
		if x, y, ok := l.CellAt(px, py); ok {
			b.PlaceBlinker(x, y)
		}
	}
}
