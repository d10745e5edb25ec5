package systems

import (
	"math"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
	"github.com/jamesEmerson112/Valentine-2026/engine/pathfind"
)

// facingThreshold is the horizontal displacement below which facing is kept
const facingThreshold = 0.01

// FollowPath advances d along the assignment's waypoints using at most budget
// pixels of movement. Reached waypoints are snapped to and consumed. It
// returns the unused part of the budget.
func FollowPath(d *core.Defender, a *core.Assignment, budget float64) float64 {
	start := d.Center()
	pos := start
	for budget > 0 && a.PathIdx < len(a.Path) {
		wp := a.Path[a.PathIdx]
		to := wp.Sub(pos)
		dist := to.Len()
		if dist <= budget {
			pos = wp
			budget -= dist
			a.PathIdx++
			continue
		}
		pos = pos.Add(to.Scale(budget / dist))
		budget = 0
	}
	place(d, start, pos)
	return budget
}

// MoveToward moves d straight at target by at most budget pixels, stopping
// on the target. It returns the unused part of the budget.
func MoveToward(d *core.Defender, target core.Vec2, budget float64) float64 {
	if budget <= 0 {
		return 0
	}
	start := d.Center()
	to := target.Sub(start)
	dist := to.Len()
	if dist <= budget {
		place(d, start, target)
		return budget - dist
	}
	place(d, start, start.Add(to.Scale(budget/dist)))
	return 0
}

func place(d *core.Defender, from, to core.Vec2) {
	dx := to.X - from.X
	if math.Abs(dx) > facingThreshold {
		d.FacingLeft = dx < 0
	}
	d.SetCenter(to)
}

// OrderMove builds a player-directed assignment for d. It returns nil when
// the destination cannot be reached. If the destination cell is blocked the
// assignment ends at the substitute cell instead.
func OrderMove(g *pathfind.Grid, d *core.Defender, dest core.Vec2) *core.Assignment {
	path := pathfind.FindPath(g, d.Center(), dest)
	if len(path) == 0 {
		return nil
	}
	c := g.WorldToCell(dest.X, dest.Y)
	if !g.Walkable(c.X, c.Y) {
		dest = path[len(path)-1]
	}
	return &core.Assignment{
		AgentID:        d.ID,
		PlayerDirected: true,
		Dest:           dest,
		Path:           path,
	}
}
