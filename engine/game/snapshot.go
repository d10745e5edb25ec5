package game

import (
	"maps"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
	"github.com/jamesEmerson112/Valentine-2026/engine/pathfind"
)

// Snapshot is a read-only copy of the encounter for renderers and HUDs
type Snapshot struct {
	Phase       core.Phase
	EncounterID string
	Elapsed     float64
	Wave        int
	Debug       bool
	Width       float64
	Height      float64
	Zone        core.Rect
	Flowers     []core.Flower
	Rats        []core.Rat
	Obstacles   []core.Obstacle
	Grid        *pathfind.Grid // never mutated after StartGame
	Assignments []*core.Assignment
	Labels      map[string]core.AgentState
}

// Snapshot copies the current state. Mutating the result does not affect
// the engine.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Phase:       e.phase,
		EncounterID: e.encounterID,
		Elapsed:     e.elapsed,
		Wave:        e.wave.index,
		Debug:       e.debug,
		Width:       e.width,
		Height:      e.height,
		Zone:        e.zone,
		Obstacles:   append([]core.Obstacle(nil), e.obstacles...),
		Grid:        e.grid,
		Labels:      maps.Clone(e.labels),
	}
	s.Flowers = make([]core.Flower, len(e.flowers))
	for i, f := range e.flowers {
		s.Flowers[i] = *f
	}
	s.Rats = make([]core.Rat, 0, len(e.rats))
	for _, r := range e.rats {
		if !r.Despawned {
			s.Rats = append(s.Rats, *r)
		}
	}
	s.Assignments = make([]*core.Assignment, len(e.assignments))
	for i, a := range e.assignments {
		s.Assignments[i] = a.Clone()
	}
	return s
}
