package cycle

import (
	"fmt"
	"math"

	"github.com/vovakirdan/cyber-cycle/internal/core"
)

// Visual characters for rendering
const (
	WallChar  = '█'
	TrailChar = '▒'
)

// bodyGlyphs alternate with the animation frame.
var bodyGlyphs = []rune{'▓', '█'}

// headGlyph returns the nose glyph for a heading.
func headGlyph(d Direction) rune {
	switch d {
	case DirLeft:
		return '◄'
	case DirRight:
		return '►'
	case DirUp:
		return '▲'
	default:
		return '▼'
	}
}

// flank returns the side of the body that carries the sprite's stripe.
// An unflipped sprite has it on the left of its heading; a mirrored
// orientation moves it to the right.
func flank(d Direction, o Orientation) Direction {
	var left Direction
	switch d {
	case DirRight:
		left = DirUp
	case DirUp:
		left = DirLeft
	case DirLeft:
		left = DirDown
	default:
		left = DirRight
	}
	if o.Mirrored() {
		return left.Opposite()
	}
	return left
}

// stripeGlyph is the half block facing side d.
func stripeGlyph(d Direction) rune {
	switch d {
	case DirUp:
		return '▀'
	case DirDown:
		return '▄'
	case DirLeft:
		return '▌'
	default:
		return '▐'
	}
}

// hudHeight is the number of rows reserved above the play field.
const hudHeight = 1

// viewport maps world coordinates to screen cells around the camera.
type viewport struct {
	cam     core.Vec2
	cellW   float64
	cellH   float64
	originX int // Screen column of the camera
	originY int // Screen row of the camera
}

func (g *Game) viewport(dst *core.Screen) viewport {
	return viewport{
		cam:     g.camera.Position,
		cellW:   g.cfg.View.CellWidth,
		cellH:   g.cfg.View.CellHeight,
		originX: dst.Width() / 2,
		originY: hudHeight + (dst.Height()-hudHeight)/2,
	}
}

// cell returns the screen cell containing world point p.
func (v viewport) cell(p core.Vec2) (int, int) {
	x := int(math.Floor((p.X-v.cam.X)/v.cellW+0.5)) + v.originX
	y := int(math.Floor((p.Y-v.cam.Y)/v.cellH+0.5)) + v.originY
	return x, y
}

// Render draws the arena around the camera, then the HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}
	vp := g.viewport(dst)

	g.renderWalls(dst, vp)
	g.renderTrails(dst, vp)
	g.renderBikes(dst, vp)
	g.renderHUD(dst)

	switch {
	case !g.machine.Running():
		g.renderOverlay(dst, "DEREZZED", fmt.Sprintf("Score: %d", g.score), "Press R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "", "Press P to continue")
	}
}

// renderWalls fills the cells covered by each arena wall, clipped to the
// play field.
func (g *Game) renderWalls(dst *core.Screen, vp viewport) {
	for _, h := range g.walls {
		body, ok := g.world.Body(h)
		if !ok {
			continue
		}
		w := body.Bounds()
		x0, y0 := vp.cell(core.V(w.X, w.Y))
		x1, y1 := vp.cell(core.V(w.Right(), w.Bottom()))
		x0, x1 = max(x0, 0), min(x1, dst.Width()-1)
		y0, y1 = max(y0, hudHeight), min(y1, dst.Height()-1)
		for y := y0; y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				dst.SetColored(x, y, WallChar, core.ColorGray)
			}
		}
	}
}

// renderTrails draws every retained segment, including those left behind by
// destroyed cycles.
func (g *Game) renderTrails(dst *core.Screen, vp viewport) {
	for _, b := range g.bikes {
		if b.Trail == nil {
			continue
		}
		b.Trail.Each(func(s Segment) {
			x, y := vp.cell(s.Position)
			if y >= hudHeight {
				dst.SetColored(x, y, TrailChar, b.Color)
			}
		})
	}
}

// renderBikes draws each live cycle's box, its flank stripe and its nose on
// the leading cell.
func (g *Game) renderBikes(dst *core.Screen, vp viewport) {
	for _, b := range g.fleet.Bikes() {
		r := b.Bounds(g.motion.Footprint)
		x0, y0 := vp.cell(core.V(r.X, r.Y))
		x1, y1 := vp.cell(core.V(r.Right(), r.Bottom()))
		body := bodyGlyphs[b.Frame%len(bodyGlyphs)]
		side := flank(b.Direction, b.Orientation)
		stripe := stripeGlyph(side)
		for y := max(y0, hudHeight); y <= y1; y++ {
			for x := x0; x <= x1; x++ {
				glyph := body
				switch {
				case side == DirUp && y == y0, side == DirDown && y == y1,
					side == DirLeft && x == x0, side == DirRight && x == x1:
					glyph = stripe
				}
				dst.SetColored(x, y, glyph, b.Color)
			}
		}

		nose := b.Position.Add(b.Direction.Unit().Scale(g.motion.Footprint.HalfW()))
		nx, ny := vp.cell(nose)
		if ny >= hudHeight {
			dst.SetColored(nx, ny, headGlyph(b.Direction), core.ColorWhite)
		}
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)

	trail := "-"
	if p := g.fleet.Player(); p != nil && p.Trail != nil {
		trail = fmt.Sprintf("%d/%d", p.Trail.Len(), p.Trail.Capacity())
	}
	hud := fmt.Sprintf(" %s  Score: %d  Rivals: %d  Trail: %s", g.Title(), g.score, g.fleet.Rivals(), trail)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightCyan)
}

// renderOverlay draws a centered message box. Empty lines are skipped.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	boxW := width + 4
	boxH := len(lines) + 2
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawBox(boxX, boxY, boxW, boxH, core.ColorWhite)
	for i, l := range lines {
		if l == "" {
			continue
		}
		dst.DrawTextCentered(boxY+1+i, l)
	}
}
