package roadrage

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/roadrage/internal/core"
	"github.com/vovakirdan/roadrage/internal/games/roadrage/arena"
)

const (
	minScreenW = 32
	minScreenH = 12
)

// headings indexes arrows by angle in 45° steps, clockwise from +x on a
// y-down screen.
var headings = []rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

// Render draws the current game state into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	g.renderHUD(dst)

	cfg := g.engine.Config()
	area := core.NewRect(0, 1, w, h-1)
	vp := core.NewViewport(area, cfg.World.Width, cfg.World.Height)
	dx, dy := g.shakeOffset()
	vp.Area.X += dx
	vp.Area.Y += dy

	g.renderTerritory(dst, vp, area)
	g.renderSmoke(dst, vp, area)
	g.renderTrail(dst, vp, area)
	g.renderSparks(dst, vp, area)
	g.renderHazards(dst, vp, area)
	g.renderPlayer(dst, vp, area)

	s := g.engine.State()
	switch {
	case s.Mode == arena.ModeMenu:
		g.renderOverlay(dst,
			"ROAD RAGE: WASTELAND CLAIM",
			fmt.Sprintf("Hazards  ◀ %d ▶", g.engine.SelectedHazards()),
			"←/→ choose   Enter start")
	case s.Mode == arena.ModeLost:
		g.renderOverlay(dst,
			"WRECKED",
			fmt.Sprintf("Level %d   Claimed %d%%", s.Level, int(s.ClaimedPercent*100)),
			fmt.Sprintf("Hazards  ◀ %d ▶", g.engine.SelectedHazards()),
			"Enter or R to restart")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the status line.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.engine.State()
	cfg := g.engine.Config()

	nitro := "READY"
	switch {
	case s.Nitro.Active > 0:
		nitro = fmt.Sprintf("BOOST %.1fs", s.Nitro.Active)
	case s.Nitro.Cooldown > 0:
		nitro = fmt.Sprintf("%.1fs", s.Nitro.Cooldown)
	}

	hud := fmt.Sprintf(" Road Rage │ Lv %d │ %s │ Claimed %d%%/%d%% │ Hazards %d │ Nitro %s",
		s.Level,
		strings.Repeat("♥", max(s.Lives, 0)),
		int(s.ClaimedPercent*100), int(math.Round(cfg.Rules.WinClaimPercent*100)),
		s.HazardCount(),
		nitro)
	dst.DrawTextColored(0, 0, hud, core.ColorHUD)
}

// shakeOffset turns the shake request into a whole-cell jitter.
func (g *Game) shakeOffset() (int, int) {
	sh := g.engine.Shake()
	if sh.Time <= 0 || sh.Amount <= 0 {
		return 0, 0
	}
	t := g.engine.Elapsed()
	dx := int(math.Round(math.Sin(t*61) * sh.Amount * 1.5))
	dy := int(math.Round(math.Cos(t*47) * sh.Amount))
	return dx, dy
}

// renderTerritory samples the claimed mask at the centre of every arena cell.
func (g *Game) renderTerritory(dst *core.Screen, vp core.Viewport, area core.Rect) {
	grid := g.engine.Grid()
	claimed := g.engine.State().Claimed

	for row := area.Y; row < area.Bottom(); row++ {
		for col := area.X; col < area.Right(); col++ {
			x, y := vp.ToWorld(col, row)
			if x < 0 || y < 0 || x >= vp.WorldW || y >= vp.WorldH {
				continue
			}
			idx := grid.CellAt(x, y)
			if !claimed.At(idx) {
				continue
			}
			if c, r := grid.ColRow(idx); grid.IsInterior(c, r) {
				dst.SetColored(col, row, '▓', core.ColorTerritory)
			} else {
				dst.SetColored(col, row, '█', core.ColorBorder)
			}
		}
	}
}

// renderTrail plots every trail cell so thin trails survive downscaling.
func (g *Game) renderTrail(dst *core.Screen, vp core.Viewport, area core.Rect) {
	grid := g.engine.Grid()
	for _, idx := range g.engine.State().Trail.Cells() {
		x, y := grid.CellCenter(idx)
		plot(dst, vp, area, x, y, '▒', core.ColorTrail)
	}
}

func (g *Game) renderSmoke(dst *core.Screen, vp core.Viewport, area core.Rect) {
	for _, p := range g.engine.State().Smoke {
		col, row := vp.ToScreen(p.X, p.Y)
		if !area.Contains(col, row) || dst.Get(col, row) != ' ' {
			continue
		}
		dst.SetColored(col, row, '░', core.ColorSmoke)
	}
}

func (g *Game) renderSparks(dst *core.Screen, vp core.Viewport, area core.Rect) {
	for _, sp := range g.engine.State().Sparks {
		r, c := '·', core.ColorEmber
		if sp.Heat > 0.6 {
			r, c = '*', core.ColorSpark
		}
		plot(dst, vp, area, sp.X, sp.Y, r, c)
	}
}

// renderHazards draws each spike ball as a body with four rotating spikes.
func (g *Game) renderHazards(dst *core.Screen, vp core.Viewport, area core.Rect) {
	for _, hz := range g.engine.State().Hazards {
		color := core.ColorHazard
		if math.Sin(hz.FirePhase) < 0 {
			color = core.ColorEmber
		}

		spike := '+'
		if int(hz.Spin*2)%2 == 1 {
			spike = 'x'
		}
		for i := range 4 {
			a := hz.Spin + float64(i)*math.Pi/2
			plot(dst, vp, area,
				hz.X+math.Cos(a)*hz.Radius*1.2,
				hz.Y+math.Sin(a)*hz.Radius*1.2,
				spike, color)
		}
		plot(dst, vp, area, hz.X, hz.Y, '@', color)
	}
}

// renderPlayer draws the vehicle as a heading arrow. It blinks while
// invulnerable.
func (g *Game) renderPlayer(dst *core.Screen, vp core.Viewport, area core.Rect) {
	p := g.engine.State().Player
	if p.Invuln > 0 && int(g.engine.Elapsed()*10)%2 == 1 {
		return
	}
	plot(dst, vp, area, p.X, p.Y, headingRune(p.Angle), core.ColorPlayer)
}

// headingRune picks the arrow closest to angle (radians, y-down).
func headingRune(angle float64) rune {
	i := int(math.Round(angle/(math.Pi/4))) % len(headings)
	if i < 0 {
		i += len(headings)
	}
	return headings[i]
}

// plot draws r at a world position if it lands inside area.
func plot(dst *core.Screen, vp core.Viewport, area core.Rect, x, y float64, r rune, c core.Color) {
	col, row := vp.ToScreen(x, y)
	if area.Contains(col, row) {
		dst.SetColored(col, row, r, c)
	}
}

// renderOverlay draws a centered box holding lines.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	boxW := min(w+4, dst.Width())
	boxH := min(len(lines)+2, dst.Height())

	box := core.CenteredRect(core.NewRect(0, 0, dst.Width(), dst.Height()), boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorHUD)

	for i, l := range lines {
		c := core.ColorDefault
		if i == 0 {
			c = core.ColorBrightYellow
		}
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}
