package systems

import (
	"fmt"

	"github.com/jamesEmerson112/Valentine-2026/engine/ai"
	"github.com/jamesEmerson112/Valentine-2026/engine/config"
	"github.com/jamesEmerson112/Valentine-2026/engine/core"
	"github.com/jamesEmerson112/Valentine-2026/engine/pathfind"
)

// Frame is the mutable context the agent system works on for one tick.
// Assignments, Commands and Labels are read and written in place; the
// caller owns them between ticks.
type Frame struct {
	Time        float64 // encounter clock, stamped on emitted events
	Defenders   []*core.Defender
	Rats        []*core.Rat
	Flowers     []*core.Flower
	Grid        *pathfind.Grid
	Assignments []*core.Assignment
	Commands    []core.Command
	Labels      map[string]core.AgentState
}

// AgentSystem assigns defenders to rats or player destinations and moves them
type AgentSystem struct {
	cfg    config.AgentConfig
	policy ai.Policy
}

// NewAgentSystem resolves the configured target policy
func NewAgentSystem(cfg config.AgentConfig) (*AgentSystem, error) {
	p, err := ai.NewPolicy(cfg.TargetPolicy)
	if err != nil {
		return nil, fmt.Errorf("agent system: %w", err)
	}
	return &AgentSystem{cfg: cfg, policy: p}, nil
}

// Update runs one controller tick and returns the catch events it produced.
// Nothing happens, and commands stay queued, until a grid exists.
func (s *AgentSystem) Update(dt float64, f *Frame) []core.Event {
	if f.Grid == nil {
		return nil
	}
	if f.Labels == nil {
		f.Labels = make(map[string]core.AgentState)
	}

	s.intakeCommands(f)
	s.sweepStale(f)
	s.acquireTargets(f)
	return s.integrate(dt, f)
}

func (s *AgentSystem) intakeCommands(f *Frame) {
	for _, cmd := range f.Commands {
		d := core.FindDefender(f.Defenders, cmd.AgentID)
		if d == nil {
			continue
		}
		f.Assignments = dropAssignment(f.Assignments, d.ID)
		f.Labels[d.ID] = core.AgentWandering

		a := OrderMove(f.Grid, d, core.Vec2{X: cmd.DestX, Y: cmd.DestY})
		if a == nil {
			continue
		}
		f.Assignments = append(f.Assignments, a)
		f.Labels[d.ID] = core.AgentChasing
	}
	f.Commands = f.Commands[:0]
}

func (s *AgentSystem) sweepStale(f *Frame) {
	kept := f.Assignments[:0]
	for _, a := range f.Assignments {
		if !a.PlayerDirected {
			if r := findRat(f.Rats, a.RatID); r == nil || r.Despawned {
				f.Labels[a.AgentID] = core.AgentWandering
				continue
			}
		}
		kept = append(kept, a)
	}
	clearTail(f.Assignments, len(kept))
	f.Assignments = kept
}

func (s *AgentSystem) acquireTargets(f *Frame) {
	claimed := make(map[int]bool)
	for _, a := range f.Assignments {
		if !a.PlayerDirected {
			claimed[a.RatID] = true
		}
	}

	for _, d := range f.Defenders {
		if findAssignment(f.Assignments, d.ID) != nil {
			continue
		}
		from := d.Center()
		r := s.policy.Select(from, f.Rats, f.Flowers, claimed, s.cfg.AggroRadius)
		if r == nil {
			continue
		}
		path := pathfind.FindPath(f.Grid, from, r.Pos)
		if len(path) == 0 {
			continue
		}
		f.Assignments = append(f.Assignments, &core.Assignment{
			AgentID: d.ID,
			RatID:   r.ID,
			Dest:    r.Pos,
			Path:    path,
		})
		claimed[r.ID] = true
		f.Labels[d.ID] = core.AgentChasing
	}
}

func (s *AgentSystem) integrate(dt float64, f *Frame) []core.Event {
	var events []core.Event
	kept := f.Assignments[:0]
	for _, a := range f.Assignments {
		d := core.FindDefender(f.Defenders, a.AgentID)
		if d == nil {
			delete(f.Labels, a.AgentID)
			continue
		}

		if a.PlayerDirected {
			if s.moveDirected(dt, d, a) {
				f.Labels[d.ID] = core.AgentWandering
				continue
			}
			kept = append(kept, a)
			continue
		}

		r := findRat(f.Rats, a.RatID)
		if r != nil && !r.Despawned {
			if s.chase(dt, f.Grid, d, a, r) {
				r.Despawned = true
				events = append(events, core.Event{
					Type:    core.EvtRatCaught,
					Time:    f.Time,
					Pos:     r.Pos,
					RatID:   r.ID,
					AgentID: d.ID,
				})
			}
		}
		kept = append(kept, a)
	}
	clearTail(f.Assignments, len(kept))
	f.Assignments = kept
	return events
}

// moveDirected sprints d along a player order and reports arrival
func (s *AgentSystem) moveDirected(dt float64, d *core.Defender, a *core.Assignment) bool {
	left := FollowPath(d, a, s.cfg.SprintSpeed()*dt)
	if !a.PathDone() {
		return false
	}
	MoveToward(d, a.Dest, left)
	return d.Center().DistanceTo(a.Dest) <= s.cfg.ArrivalTolerance
}

// chase advances d toward r, replanning when the target has drifted, and
// reports whether r was caught.
func (s *AgentSystem) chase(dt float64, g *pathfind.Grid, d *core.Defender, a *core.Assignment, r *core.Rat) bool {
	a.ReplanTimer += dt
	if s.needsReplan(a, r) {
		if path := pathfind.FindPath(g, d.Center(), r.Pos); len(path) > 0 {
			a.Path = path
			a.PathIdx = 0
			a.Dest = r.Pos
		}
		a.ReplanTimer = 0
	}

	speed := s.cfg.BaseSpeed
	if d.Center().DistanceTo(r.Pos) <= s.cfg.SprintRadius {
		speed = s.cfg.SprintSpeed()
	}
	left := FollowPath(d, a, speed*dt)
	if a.PathDone() {
		MoveToward(d, r.Pos, left)
	}
	return d.Center().DistanceTo(r.Pos) <= s.cfg.CatchDistance
}

func (s *AgentSystem) needsReplan(a *core.Assignment, r *core.Rat) bool {
	if a.ReplanTimer <= s.cfg.ReplanInterval {
		return false
	}
	if len(a.Path) == 0 {
		return true
	}
	return a.Path[len(a.Path)-1].DistanceTo(r.Pos) > s.cfg.ReplanDistance
}

func findRat(rats []*core.Rat, id int) *core.Rat {
	for _, r := range rats {
		if r.ID == id {
			return r
		}
	}
	return nil
}

func findAssignment(as []*core.Assignment, agentID string) *core.Assignment {
	for _, a := range as {
		if a.AgentID == agentID {
			return a
		}
	}
	return nil
}

func dropAssignment(as []*core.Assignment, agentID string) []*core.Assignment {
	kept := as[:0]
	for _, a := range as {
		if a.AgentID != agentID {
			kept = append(kept, a)
		}
	}
	clearTail(as, len(kept))
	return kept
}

// clearTail nils out pointers past n so filtered slices don't pin them
func clearTail(as []*core.Assignment, n int) {
	for i := n; i < len(as); i++ {
		as[i] = nil
	}
}
