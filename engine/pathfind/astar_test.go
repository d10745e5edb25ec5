package pathfind

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
)

const cs = 10.0

func center(x, y int) core.Vec2 {
	return core.Vec2{X: (float64(x) + 0.5) * cs, Y: (float64(y) + 0.5) * cs}
}

func TestOpenGridAlwaysReachesGoal(t *testing.T) {
	g := NewOpenGrid(16, 12, cs)
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		start := core.Vec2{X: rng.Float64() * 160, Y: rng.Float64() * 120}
		goal := core.Vec2{X: rng.Float64() * 160, Y: rng.Float64() * 120}
		path := FindPath(g, start, goal)
		if len(path) == 0 {
			t.Fatalf("no path from %v to %v on open grid", start, goal)
		}
		gc := g.WorldToCell(goal.X, goal.Y)
		if last := path[len(path)-1]; last != g.CellCenter(gc.X, gc.Y) {
			t.Fatalf("path from %v to %v ends at %v, want goal cell centre", start, goal, last)
		}
	}
}

func TestSingleRowStraightPath(t *testing.T) {
	g := NewOpenGrid(10, 1, cs)
	path := FindPath(g, center(0, 0), center(9, 0))
	if len(path) != 9 {
		t.Fatalf("got %d waypoints, want 9", len(path))
	}
	prev := center(0, 0)
	for i, p := range path {
		if p.X-prev.X != cs || p.Y != prev.Y {
			t.Errorf("waypoint %d = %v is not one cell right of %v", i, p, prev)
		}
		prev = p
	}
}

func TestDiagonalPath(t *testing.T) {
	g := NewOpenGrid(8, 8, cs)
	start := center(0, 0)
	path := FindPath(g, start, center(4, 4))
	if len(path) != 4 {
		t.Fatalf("got %d waypoints, want 4: %v", len(path), path)
	}
	want := 4 * math.Sqrt2 * cs
	if got := PathLength(start, path); math.Abs(got-want) > 1e-6 {
		t.Errorf("path length = %v, want %v", got, want)
	}
}

func TestNoCornerCutting(t *testing.T) {
	g := NewOpenGrid(4, 4, cs)
	g.SetBlocked(1, 1)
	g.SetBlocked(2, 2)

	start := center(1, 2)
	path := FindPath(g, start, center(2, 1))
	if len(path) <= 1 {
		t.Fatalf("path cut the blocked corner: %v", path)
	}
	if l := PathLength(start, path); l <= math.Sqrt2*cs {
		t.Errorf("path length %v is not longer than the direct diagonal", l)
	}
	if last := path[len(path)-1]; last != center(2, 1) {
		t.Errorf("path ends at %v, want %v", last, center(2, 1))
	}
}

func TestPartitionedGridHasNoPath(t *testing.T) {
	g := NewOpenGrid(5, 5, cs)
	for i := 0; i < 5; i++ {
		g.SetBlocked(i, 2)
		g.SetBlocked(2, i)
	}
	if path := FindPath(g, center(0, 0), center(4, 4)); len(path) != 0 {
		t.Errorf("expected no path across partition, got %v", path)
	}
}

func TestBlockedGoalUsesAdjacentCell(t *testing.T) {
	g := NewOpenGrid(5, 5, cs)
	g.SetBlocked(2, 2)

	path := FindPath(g, center(0, 2), center(2, 2))
	if len(path) == 0 {
		t.Fatal("expected a path to a substitute goal")
	}
	last := path[len(path)-1]
	c := g.WorldToCell(last.X, last.Y)
	if c == (Point{2, 2}) {
		t.Fatal("path ends in the blocked goal cell")
	}
	if !g.Walkable(c.X, c.Y) {
		t.Errorf("substitute goal %v is not walkable", c)
	}
	if max(abs(c.X-2), abs(c.Y-2)) != 1 {
		t.Errorf("substitute goal %v is not adjacent to (2,2)", c)
	}
}

func TestBlockedStartIsSubstituted(t *testing.T) {
	g := NewOpenGrid(6, 1, cs)
	g.SetBlocked(0, 0)
	path := FindPath(g, center(0, 0), center(5, 0))
	if len(path) != 4 {
		t.Fatalf("got %d waypoints, want 4 (start moved to cell 1): %v", len(path), path)
	}
}

func TestSameCellReturnsCentre(t *testing.T) {
	g := NewOpenGrid(3, 3, cs)
	path := FindPath(g, core.Vec2{X: 11, Y: 12}, core.Vec2{X: 18, Y: 19})
	if len(path) != 1 || path[0] != center(1, 1) {
		t.Errorf("got %v, want single centre of (1,1)", path)
	}
}

func TestFullyBlockedGrid(t *testing.T) {
	g := NewOpenGrid(3, 3, cs)
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			g.SetBlocked(x, y)
		}
	}
	if path := FindPath(g, center(0, 0), center(2, 2)); path != nil {
		t.Errorf("expected nil path on blocked grid, got %v", path)
	}
}

func TestOutOfBoundsPointsAreClamped(t *testing.T) {
	g := NewOpenGrid(4, 4, cs)
	path := FindPath(g, core.Vec2{X: -50, Y: -50}, core.Vec2{X: 500, Y: 500})
	if len(path) != 3 {
		t.Fatalf("got %d waypoints, want 3", len(path))
	}
	if last := path[len(path)-1]; last != center(3, 3) {
		t.Errorf("path ends at %v, want %v", last, center(3, 3))
	}
}

func TestNilGrid(t *testing.T) {
	if path := FindPath(nil, core.Vec2{}, core.Vec2{X: 1}); path != nil {
		t.Errorf("nil grid returned %v", path)
	}
}
