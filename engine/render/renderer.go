package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
	"github.com/jamesEmerson112/Valentine-2026/engine/game"
)

// DragLine is a move order being dragged from a defender
type DragLine struct {
	AgentID string
	X, Y    float64
}

// Renderer draws encounter snapshots top-down in world coordinates. It
// never touches engine state.
type Renderer struct {
	ShowGrid  bool
	ShowPaths bool
	HUD       *HUD

	white *ebiten.Image
}

func NewRenderer() *Renderer {
	return &Renderer{HUD: NewHUD()}
}

// Draw renders one frame
func (r *Renderer) Draw(screen *ebiten.Image, s game.Snapshot, defenders []*core.Defender, drag *DragLine) {
	screen.Fill(colorGrass)
	if s.Phase != core.PhaseIdle {
		z := s.Zone
		vector.DrawFilledRect(screen, float32(z.X), float32(z.Y), float32(z.W), float32(z.H), colorZone, false)
	}
	if r.ShowGrid {
		r.drawGrid(screen, s)
	}
	for _, o := range s.Obstacles {
		r.drawObstacle(screen, o)
	}
	for _, f := range s.Flowers {
		r.drawFlower(screen, f)
	}
	if r.ShowPaths {
		r.drawPaths(screen, s, defenders)
	}
	for _, rat := range s.Rats {
		r.drawRat(screen, rat)
	}
	for _, d := range defenders {
		r.drawDefender(screen, d, s.Labels[d.ID])
	}
	if drag != nil {
		if d := core.FindDefender(defenders, drag.AgentID); d != nil {
			c := d.Center()
			vector.StrokeLine(screen, float32(c.X), float32(c.Y), float32(drag.X), float32(drag.Y), 2, colorDragGuide, true)
			vector.StrokeCircle(screen, float32(drag.X), float32(drag.Y), 8, 2, colorDragGuide, true)
		}
	}
	r.HUD.Draw(screen, s)
}

func (r *Renderer) drawGrid(screen *ebiten.Image, s game.Snapshot) {
	g := s.Grid
	if g == nil {
		return
	}
	cs := float32(g.CellSize)
	for y := 0; y < g.Rows; y++ {
		for x := 0; x < g.Cols; x++ {
			if !g.Walkable(x, y) {
				vector.DrawFilledRect(screen, float32(x)*cs, float32(y)*cs, cs, cs, colorBlocked, false)
			}
		}
	}
}

func (r *Renderer) drawObstacle(screen *ebiten.Image, o core.Obstacle) {
	clr := ObstacleColors[o.Kind]
	x, y, w, h := float32(o.Rect.X), float32(o.Rect.Y), float32(o.Rect.W), float32(o.Rect.H)
	if o.Kind == core.ObstacleHedge {
		vector.DrawFilledRect(screen, x, y, w, h, clr, true)
		vector.StrokeRect(screen, x, y, w, h, 2, color.RGBA{20, 60, 20, 255}, true)
		return
	}
	// Rocks are drawn as rounded blobs inside their rect
	rad := min(w, h) / 2
	vector.DrawFilledRect(screen, x+rad/2, y, w-rad, h, clr, true)
	vector.DrawFilledRect(screen, x, y+rad/2, w, h-rad, clr, true)
	for _, c := range [][2]float32{{x + rad/2, y + rad/2}, {x + w - rad/2, y + rad/2}, {x + rad/2, y + h - rad/2}, {x + w - rad/2, y + h - rad/2}} {
		vector.DrawFilledCircle(screen, c[0], c[1], rad/2, clr, true)
	}
}

func (r *Renderer) drawFlower(screen *ebiten.Image, f core.Flower) {
	cx, cy := float32(f.Pos.X), float32(f.Pos.Y)
	clr := BloomColor(f.Bloom, f.Alive)
	if !f.Alive {
		vector.DrawFilledCircle(screen, cx, cy, 6, clr, true)
		return
	}

	// Petals open up with bloom
	petals := 5
	petalR := float32(4 + 6*f.Bloom)
	spread := float32(3 + 7*f.Bloom)
	for i := 0; i < petals; i++ {
		a := float64(i) * 2 * math.Pi / float64(petals)
		px := cx + spread*float32(math.Cos(a))
		py := cy + spread*float32(math.Sin(a))
		vector.DrawFilledCircle(screen, px, py, petalR, clr, true)
	}
	vector.DrawFilledCircle(screen, cx, cy, 4, color.RGBA{255, 220, 80, 255}, true)

	// Progress ring
	vector.StrokeCircle(screen, cx, cy, 22, 1, color.RGBA{255, 255, 255, 60}, true)
	if f.Bloom > 0 {
		var p vector.Path
		p.Arc(cx, cy, 22, -math.Pi/2, float32(-math.Pi/2+2*math.Pi*f.Bloom), vector.Clockwise)
		sop := &vector.StrokeOptions{Width: 3}
		vs, is := p.AppendVerticesAndIndicesForStroke(nil, nil, sop)
		r.drawVertices(screen, vs, is, color.RGBA{255, 255, 255, 200})
	}
}

func (r *Renderer) drawRat(screen *ebiten.Image, rat core.Rat) {
	alpha := uint8(255 * max(0, min(rat.Opacity, 1)))
	body := colorRat
	if rat.KnockedBack() {
		body = color.RGBA{170, 140, 140, 255}
	}
	body.A = alpha
	x, y := float32(rat.Pos.X), float32(rat.Pos.Y)
	rad := float32(rat.Radius)

	// Tail trails opposite the heading
	dir := rat.Vel.Normalize()
	if rat.KnockedBack() {
		dir = rat.KnockVel.Normalize()
	}
	tx := x - float32(dir.X)*rad*1.8
	ty := y - float32(dir.Y)*rad*1.8
	vector.StrokeLine(screen, x, y, tx, ty, 2, color.RGBA{200, 150, 150, alpha}, true)
	vector.DrawFilledCircle(screen, x, y, rad*0.75, body, true)
	// Nose
	nx := x + float32(dir.X)*rad*0.75
	ny := y + float32(dir.Y)*rad*0.75
	vector.DrawFilledCircle(screen, nx, ny, 2.5, color.RGBA{255, 150, 170, alpha}, true)
}

func (r *Renderer) drawDefender(screen *ebiten.Image, d *core.Defender, label core.AgentState) {
	x, y, w, h := float32(d.X), float32(d.Y), float32(d.Width), float32(d.Height)
	clr := colorNPC
	if d.Controllable {
		clr = colorDefender
	}
	vector.DrawFilledRect(screen, x, y, w, h, clr, true)
	if label == core.AgentChasing {
		vector.StrokeRect(screen, x-2, y-2, w+4, h+4, 2, colorChasing, true)
	}
	// Eye on the facing side
	ex := x + w*0.7
	if d.FacingLeft {
		ex = x + w*0.3
	}
	vector.DrawFilledCircle(screen, ex, y+h*0.35, 3, color.White, true)
}

func (r *Renderer) drawPaths(screen *ebiten.Image, s game.Snapshot, defenders []*core.Defender) {
	for _, a := range s.Assignments {
		d := core.FindDefender(defenders, a.AgentID)
		if d == nil || a.PathDone() {
			continue
		}
		prev := d.Center()
		for _, wp := range a.Path[a.PathIdx:] {
			vector.StrokeLine(screen, float32(prev.X), float32(prev.Y), float32(wp.X), float32(wp.Y), 1, colorPath, true)
			prev = wp
		}
	}
}

// drawVertices fills triangles from a vector path with a flat color
func (r *Renderer) drawVertices(screen *ebiten.Image, vs []ebiten.Vertex, is []uint16, clr color.RGBA) {
	if r.white == nil {
		r.white = ebiten.NewImage(3, 3)
		r.white.Fill(color.White)
	}
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}
	screen.DrawTriangles(vs, is, r.white, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}
