package pathfind

import (
	"cmp"
	"math"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
	"github.com/jamesEmerson112/Valentine-2026/engine/pqueue"
)

var dirs = [8][2]int{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

type node struct {
	idx  int
	g, f float64
}

// FindPath finds a route between two world points using A*.
// The result excludes the start and ends at the goal cell's centre, or at
// the nearest walkable substitute when the goal cell is blocked. An empty
// result means the goal is unreachable.
func FindPath(g *Grid, start, goal core.Vec2) []core.Vec2 {
	if g == nil {
		return nil
	}
	gc, ok := g.nearestWalkable(g.clampCell(goal))
	if !ok {
		return nil
	}
	sc, ok := g.nearestWalkable(g.clampCell(start))
	if !ok {
		return nil
	}
	if sc == gc {
		return []core.Vec2{g.CellCenter(gc.X, gc.Y)}
	}

	cells := FindCells(g, sc, gc)
	if len(cells) == 0 {
		return nil
	}
	path := make([]core.Vec2, 0, len(cells)-1)
	for _, c := range cells[1:] {
		path = append(path, g.CellCenter(c.X, c.Y))
	}
	return path
}

// FindCells runs A* between two walkable cells and returns the cell sequence
// including both endpoints, or nil when no route exists.
func FindCells(g *Grid, start, goal Point) []Point {
	if !g.Walkable(start.X, start.Y) || !g.Walkable(goal.X, goal.Y) {
		return nil
	}
	n := g.Cols * g.Rows
	gScore := make([]float64, n)
	came := make([]int, n)
	for i := range gScore {
		gScore[i] = math.Inf(1)
		came[i] = -1
	}
	startIdx := start.Y*g.Cols + start.X
	goalIdx := goal.Y*g.Cols + goal.X
	gScore[startIdx] = 0

	open := pqueue.New(func(a, b node) int { return cmp.Compare(a.f, b.f) })
	open.Push(node{idx: startIdx, g: 0, f: heuristic(start, goal)})

	for open.Len() > 0 {
		cur, _ := open.Pop()
		if cur.g > gScore[cur.idx] {
			continue // stale entry
		}
		if cur.idx == goalIdx {
			break
		}
		cx, cy := cur.idx%g.Cols, cur.idx/g.Cols

		for _, d := range dirs {
			nx, ny := cx+d[0], cy+d[1]
			if !g.Walkable(nx, ny) {
				continue
			}
			moveCost := 1.0
			if d[0] != 0 && d[1] != 0 {
				// Prevent diagonal cutting through corners
				if !g.Walkable(cx+d[0], cy) || !g.Walkable(cx, cy+d[1]) {
					continue
				}
				moveCost = math.Sqrt2
			}
			nIdx := ny*g.Cols + nx
			tentG := gScore[cur.idx] + moveCost
			if tentG >= gScore[nIdx] {
				continue
			}
			gScore[nIdx] = tentG
			came[nIdx] = cur.idx
			open.Push(node{idx: nIdx, g: tentG, f: tentG + heuristic(Point{nx, ny}, goal)})
		}
	}

	if math.IsInf(gScore[goalIdx], 1) {
		return nil // no path
	}
	return reconstructPath(g, came, goalIdx)
}

// heuristic is the euclidean distance in cell units
func heuristic(a, b Point) float64 {
	return math.Hypot(float64(a.X-b.X), float64(a.Y-b.Y))
}

func reconstructPath(g *Grid, came []int, goalIdx int) []Point {
	var path []Point
	for cur := goalIdx; cur != -1; cur = came[cur] {
		path = append(path, Point{cur % g.Cols, cur / g.Cols})
	}
	// Reverse
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// PathLength returns the travelled distance from start through every waypoint
func PathLength(start core.Vec2, path []core.Vec2) float64 {
	total := 0.0
	prev := start
	for _, p := range path {
		total += prev.DistanceTo(p)
		prev = p
	}
	return total
}
