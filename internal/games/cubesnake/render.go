package cubesnake

import (
	"fmt"

	"github.com/vovakirdan/cubesnake/internal/core"
	"github.com/vovakirdan/cubesnake/internal/cube"
)

const hudHeight = 2

// Glyphs used on the net.
const (
	glyphEmpty = '·'
	glyphBody  = 'o'
	glyphHead  = '@'
	glyphFood  = '*'
	glyphPrize = '$'
)

// slot is a face's place in a layout, in panel units.
type slot struct {
	face     cube.Face
	col, row int
}

// layout is one way of unfolding the cube onto the screen. Every face is
// drawn in its own frame: U to the right, V up.
type layout struct {
	name       string
	cols, rows int
	slots      []slot
}

var (
	// crossLayout is the unfolding the seams are defined on:
	//
	//	       Top
	//	Left  Front  Right  Back
	//	      Bottom
	crossLayout = layout{
		name: "cross",
		cols: 4,
		rows: 3,
		slots: []slot{
			{cube.Top, 1, 0},
			{cube.Left, 0, 1},
			{cube.Front, 1, 1},
			{cube.Right, 2, 1},
			{cube.Back, 3, 1},
			{cube.Bottom, 1, 2},
		},
	}

	stripLayout = layout{
		name: "strip",
		cols: 6,
		rows: 1,
		slots: []slot{
			{cube.Top, 0, 0},
			{cube.Left, 1, 0},
			{cube.Front, 2, 0},
			{cube.Right, 3, 0},
			{cube.Back, 4, 0},
			{cube.Bottom, 5, 0},
		},
	}
)

// placement is a layout fitted to a screen.
type placement struct {
	layout
	cellW   int // Columns per cell
	panelW  int
	panelH  int
	originX int
	originY int
}

// panelSize returns the size of one boxed face for n cells per edge.
func panelSize(n, cellW int) (w, h int) {
	return n*cellW + 2, n + 2
}

// fit picks the roomiest layout that fits in w x h below the HUD. The cross
// is preferred; double-width cells are preferred over single-width ones.
func fit(n, w, h int) (placement, bool) {
	avail := h - hudHeight
	for _, l := range []layout{crossLayout, stripLayout} {
		for _, cellW := range []int{2, 1} {
			pw, ph := panelSize(n, cellW)
			totalW, totalH := pw*l.cols, ph*l.rows
			if totalW > w || totalH > avail {
				continue
			}
			return placement{
				layout:  l,
				cellW:   cellW,
				panelW:  pw,
				panelH:  ph,
				originX: (w - totalW) / 2,
				originY: hudHeight + (avail-totalH)/2,
			}, true
		}
	}
	return placement{}, false
}

// minSize returns the smallest screen that fits any layout.
func minSize(n int) (w, h int) {
	pw, ph := panelSize(n, 1)
	return pw * stripLayout.cols, ph*stripLayout.rows + hudHeight
}

// panel returns the screen rectangle of face f.
func (p placement) panel(f cube.Face) core.Rect {
	for _, s := range p.slots {
		if s.face == f {
			return core.NewRect(p.originX+s.col*p.panelW, p.originY+s.row*p.panelH, p.panelW, p.panelH)
		}
	}
	return core.Rect{}
}

// cellXY returns the screen position of a cell. V grows upward.
func (p placement) cellXY(pos cube.Position, n int) (x, y int) {
	r := p.panel(pos.Face)
	return r.X + 1 + pos.U*p.cellW, r.Y + 1 + (n - 1 - pos.V)
}

// Render draws the HUD and the unfolded cube.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.state == nil {
		g.renderOverlay(dst, "Cannot start game", errText(g.err))
		return
	}

	g.renderHUD(dst)

	n := g.state.GridSize()
	p, ok := fit(n, dst.Width(), dst.Height())
	if !ok {
		w, h := minSize(n)
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need at least %dx%d", w, h))
		return
	}

	g.renderFaces(dst, p)
	g.renderFood(dst, p)
	g.renderSnake(dst, p)

	// Draw overlays
	switch {
	case g.state.Won():
		g.renderOverlay(dst, "Cube cleared!", fmt.Sprintf("Score: %d  Press R to restart", g.state.Score()))
	case g.state.GameOver():
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d  Press R to restart", g.state.Score()))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.state
	hud := fmt.Sprintf(" %s  Score: %d  Best: %d  Length: %d  Face: %s",
		g.variant.Title, s.Score(), s.HighScore(), s.Len(), s.Head().Face)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	if s.HasFood() && s.IsPrize() {
		dst.DrawTextColored(len([]rune(hud))+2, 0, "PRIZE!", core.ColorBrightMagenta)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorGray)
}

// renderFaces draws each face as a titled box, highlighting the face the
// head is on.
func (g *Game) renderFaces(dst *core.Screen, p placement) {
	n := g.state.GridSize()
	active := g.state.Head().Face

	for _, sl := range p.slots {
		r := p.panel(sl.face)
		color := core.ColorGray
		if sl.face == active {
			color = core.ColorBrightYellow
		}
		dst.DrawBox(r, color)

		title := sl.face.String()
		if len(title) <= r.W-2 {
			dst.DrawTextColored(r.X+1, r.Y, title, color)
		}

		for v := range n {
			for u := range n {
				x, y := p.cellXY(cube.At(sl.face, u, v), n)
				dst.SetColored(x, y, glyphEmpty, core.ColorGray)
			}
		}
	}
}

func (g *Game) renderFood(dst *core.Screen, p placement) {
	if !g.state.HasFood() {
		return
	}
	x, y := p.cellXY(g.state.Food(), g.state.GridSize())
	if g.state.IsPrize() {
		dst.SetColored(x, y, glyphPrize, core.ColorBrightMagenta)
		return
	}
	dst.SetColored(x, y, glyphFood, core.ColorRed)
}

func (g *Game) renderSnake(dst *core.Screen, p placement) {
	n := g.state.GridSize()
	body := g.state.Snake().body

	// Tail first so the head wins when segments coincide.
	for i := len(body) - 1; i >= 0; i-- {
		x, y := p.cellXY(body[i], n)
		if i == 0 {
			color := core.ColorBrightGreen
			if g.state.GameOver() && !g.state.Won() {
				color = core.ColorBrightRed
			}
			dst.SetColored(x, y, glyphHead, color)
			continue
		}
		dst.SetColored(x, y, glyphBody, core.ColorGreen)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := dst.Bounds().Centered(boxW, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCenteredColored(box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+3, line2)
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
