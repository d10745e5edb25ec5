package pathfind

import (
	"math"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
)

// Point represents a grid cell coordinate
type Point struct{ X, Y int }

// Grid is a binary walkable/blocked decomposition of the play area
type Grid struct {
	Cols, Rows int
	CellSize   float64
	walkable   []bool
}

// BuildGrid builds a navigation grid from obstacles. Each obstacle is grown
// by inflation on every side and every cell overlapping it is blocked.
func BuildGrid(width, height float64, obstacles []core.Obstacle, cellSize, inflation float64) *Grid {
	cols := int(math.Ceil(width / cellSize))
	rows := int(math.Ceil(height / cellSize))
	if cols <= 0 {
		cols = 1
	}
	if rows <= 0 {
		rows = 1
	}
	g := &Grid{
		Cols:     cols,
		Rows:     rows,
		CellSize: cellSize,
		walkable: make([]bool, cols*rows),
	}
	for i := range g.walkable {
		g.walkable[i] = true
	}
	for _, o := range obstacles {
		g.blockRect(o.Rect.Inflate(inflation))
	}
	return g
}

// NewOpenGrid creates a fully walkable grid with the given dimensions
func NewOpenGrid(cols, rows int, cellSize float64) *Grid {
	return BuildGrid(float64(cols)*cellSize, float64(rows)*cellSize, nil, cellSize, 0)
}

// blockRect marks every cell whose rectangle overlaps r
func (g *Grid) blockRect(r core.Rect) {
	c0 := int(math.Floor(r.X / g.CellSize))
	c1 := int(math.Ceil((r.X+r.W)/g.CellSize)) - 1
	r0 := int(math.Floor(r.Y / g.CellSize))
	r1 := int(math.Ceil((r.Y+r.H)/g.CellSize)) - 1
	c0, c1 = max(c0, 0), min(c1, g.Cols-1)
	r0, r1 = max(r0, 0), min(r1, g.Rows-1)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			g.walkable[y*g.Cols+x] = false
		}
	}
}

// InBounds checks if a cell lies inside the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < g.Cols && y < g.Rows
}

// Walkable checks if a cell is passable; out-of-bounds cells are not
func (g *Grid) Walkable(x, y int) bool {
	if !g.InBounds(x, y) {
		return false
	}
	return g.walkable[y*g.Cols+x]
}

// SetBlocked marks a cell as blocked
func (g *Grid) SetBlocked(x, y int) {
	if g.InBounds(x, y) {
		g.walkable[y*g.Cols+x] = false
	}
}

// WalkableCount returns the number of passable cells
func (g *Grid) WalkableCount() int {
	n := 0
	for _, w := range g.walkable {
		if w {
			n++
		}
	}
	return n
}

// WorldToCell converts a world point to cell indices (floor division, unclamped)
func (g *Grid) WorldToCell(x, y float64) Point {
	return Point{int(math.Floor(x / g.CellSize)), int(math.Floor(y / g.CellSize))}
}

// CellCenter returns the world-space centre of a cell
func (g *Grid) CellCenter(x, y int) core.Vec2 {
	return core.Vec2{
		X: (float64(x) + 0.5) * g.CellSize,
		Y: (float64(y) + 0.5) * g.CellSize,
	}
}

// clampCell converts a world point to the nearest in-bounds cell
func (g *Grid) clampCell(p core.Vec2) Point {
	c := g.WorldToCell(p.X, p.Y)
	c.X = min(max(c.X, 0), g.Cols-1)
	c.Y = min(max(c.Y, 0), g.Rows-1)
	return c
}

// nearestWalkable searches Chebyshev rings of growing radius around c and
// returns the closest walkable cell of the first ring that has one.
func (g *Grid) nearestWalkable(c Point) (Point, bool) {
	if g.Walkable(c.X, c.Y) {
		return c, true
	}
	maxR := max(g.Cols, g.Rows)
	for r := 1; r <= maxR; r++ {
		best := Point{}
		bestD := math.MaxFloat64
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if max(abs(dx), abs(dy)) != r {
					continue
				}
				x, y := c.X+dx, c.Y+dy
				if !g.Walkable(x, y) {
					continue
				}
				d := float64(dx*dx + dy*dy)
				if d < bestD {
					bestD = d
					best = Point{x, y}
				}
			}
		}
		if bestD < math.MaxFloat64 {
			return best, true
		}
	}
	return Point{}, false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
