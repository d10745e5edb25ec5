package ai

import (
	"cmp"
	"fmt"
	"math"

	"github.com/jamesEmerson112/Valentine-2026/engine/config"
	"github.com/jamesEmerson112/Valentine-2026/engine/core"
	"github.com/jamesEmerson112/Valentine-2026/engine/pqueue"
)

// Policy picks which rat an idle defender should engage. claimed holds rat
// ids already taken by other autonomous assignments this tick. A nil result
// means nothing is worth chasing.
type Policy interface {
	Select(from core.Vec2, rats []*core.Rat, flowers []*core.Flower, claimed map[int]bool, aggro float64) *core.Rat
}

// NewPolicy resolves a configured policy name
func NewPolicy(name string) (Policy, error) {
	switch name {
	case config.PolicyNearest, "":
		return Nearest{}, nil
	case config.PolicySkipClosest:
		return SkipClosest{}, nil
	}
	return nil, fmt.Errorf("unknown target policy %q", name)
}

// Nearest chases the closest unclaimed rat inside the aggro radius
type Nearest struct{}

func (Nearest) Select(from core.Vec2, rats []*core.Rat, _ []*core.Flower, claimed map[int]bool, aggro float64) *core.Rat {
	var best *core.Rat
	bestDist := math.MaxFloat64
	for _, r := range rats {
		if r.Despawned || claimed[r.ID] {
			continue
		}
		d := from.DistanceTo(r.Pos)
		if d <= aggro && d < bestDist {
			bestDist = d
			best = r
		}
	}
	return best
}

// SkipClosest ranks the rats in aggro range by how close they are to their
// flower and leaves the most advanced one alone, chasing the runner-up.
// With a single candidate it chases that one.
type SkipClosest struct{}

type ranked struct {
	rat  *core.Rat
	dist float64 // distance to its flower
}

func (SkipClosest) Select(from core.Vec2, rats []*core.Rat, flowers []*core.Flower, claimed map[int]bool, aggro float64) *core.Rat {
	q := pqueue.New(func(a, b ranked) int { return cmp.Compare(a.dist, b.dist) })
	for _, r := range rats {
		if r.Despawned || claimed[r.ID] || from.DistanceTo(r.Pos) > aggro {
			continue
		}
		q.Push(ranked{rat: r, dist: distanceToTarget(r, flowers)})
	}
	first, ok := q.Pop()
	if !ok {
		return nil
	}
	if second, ok := q.Pop(); ok {
		return second.rat
	}
	return first.rat
}

func distanceToTarget(r *core.Rat, flowers []*core.Flower) float64 {
	for _, f := range flowers {
		if f.ID == r.TargetID {
			return r.Pos.DistanceTo(f.Pos)
		}
	}
	return math.MaxFloat64
}

// ThreatAt sums how close rats inside radius are to p, 1.0 for a rat on
// top of p falling to 0 at the radius. The HUD outlines threatened flowers
// with it.
func ThreatAt(p core.Vec2, rats []*core.Rat, radius float64) float64 {
	threat := 0.0
	for _, r := range rats {
		if r.Despawned {
			continue
		}
		d := p.DistanceTo(r.Pos)
		if d <= radius {
			threat += 1.0 - d/radius
		}
	}
	return threat
}
