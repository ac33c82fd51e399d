package ui

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/sheikhrachel/gol-board/game"
)

const windowTitle = "Conway Game of Life"

var (
	colorBackground = color.RGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	colorAlive      = color.RGBA{R: 0xf6, G: 0x8e, B: 0x5f, A: 0xff}
	colorBorder     = color.RGBA{R: 0x59, G: 0x59, B: 0x59, A: 0xff}
	colorButton     = color.RGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff}
	colorText       = color.White
)

var keyBindings = map[ebiten.Key]game.Key{
	ebiten.KeySpace: game.KeyToggleRun,
	ebiten.KeyC:     game.KeyClear,
	ebiten.KeyR:     game.KeyRandomize,
	ebiten.KeyN:     game.KeyStep,
	ebiten.KeyG:     game.KeyGlider,
	ebiten.KeyO:     game.KeyBlinker,
}

// Game adapts a board to the ebiten game loop
type Game struct {
	board      *game.Board
	layout     *game.Layout
	lastUpdate time.Time
}

func NewGame(board *game.Board, cellSize int) *Game {
	grid := board.Grid()
	return &Game{
		board:  board,
		layout: game.NewLayout(grid.GetWidth(), grid.GetHeight(), cellSize),
	}
}

// Run opens the window and blocks until it is closed
func Run(g *Game) error {
	w, h := g.layout.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(windowTitle)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	now := time.Now()
	if g.lastUpdate.IsZero() {
		g.lastUpdate = now
	}
	elapsed := now.Sub(g.lastUpdate)
	g.lastUpdate = now

	mx, my := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.layout.Click(g.board, mx, my)
	}
	for key, action := range keyBindings {
		if inpututil.IsKeyJustPressed(key) {
			g.layout.Press(g.board, action, mx, my)
		}
	}

	g.board.Advance(elapsed)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	g.drawGrid(screen)
	g.drawControls(screen)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	grid := g.board.Grid()
	for y := range grid.GetHeight() {
		for x := range grid.GetWidth() {
			r := g.layout.CellRect(x, y)
			fx, fy := float32(r.Min.X), float32(r.Min.Y)
			fw, fh := float32(r.Dx()), float32(r.Dy())
			if grid.Get(x, y) {
				vector.DrawFilledRect(screen, fx, fy, fw, fh, colorAlive, false)
			}
			vector.StrokeRect(screen, fx, fy, fw, fh, 1, colorBorder, false)
		}
	}
}

func (g *Game) drawControls(screen *ebiten.Image) {
	face := basicfont.Face7x13
	for _, b := range g.layout.Buttons() {
		r := b.Rect
		fx, fy := float32(r.Min.X), float32(r.Min.Y)
		fw, fh := float32(r.Dx()), float32(r.Dy())
		vector.DrawFilledRect(screen, fx, fy, fw, fh, colorButton, false)
		vector.StrokeRect(screen, fx, fy, fw, fh, 1, colorBorder, false)

		label := b.Action.Label(g.board.Running())
		tx := r.Min.X + (r.Dx()-len(label)*face.Advance)/2
		ty := r.Min.Y + (r.Dy()+face.Ascent)/2
		text.Draw(screen, label, face, tx, ty, colorText)
	}

	sx, sy := g.layout.StatusOrigin()
	text.Draw(screen, g.statusLine(), face, sx, sy, colorText)
}

func (g *Game) statusLine() string {
	return fmt.Sprintf("Gen: %d | Living: %d | %s | %s",
		g.board.Generation(), g.board.Grid().CountLivingCells(), g.board.Status(), g.board.Topology())
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.layout.Size()
}
