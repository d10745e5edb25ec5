// Package game runs a single defense encounter: flowers bloom on a timer,
// rats arrive in waves, and defenders are steered by the agent system.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jamesEmerson112/Valentine-2026/engine/config"
	"github.com/jamesEmerson112/Valentine-2026/engine/core"
	"github.com/jamesEmerson112/Valentine-2026/engine/logger"
	"github.com/jamesEmerson112/Valentine-2026/engine/maplib"
	"github.com/jamesEmerson112/Valentine-2026/engine/pathfind"
	"github.com/jamesEmerson112/Valentine-2026/engine/systems"
)

// Option customises an Engine
type Option func(*Engine)

// WithRand injects the random source used for obstacles and spawns
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) { e.rng = r }
}

// WithLogger replaces the package logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine owns all mutable encounter state. It is driven by one Update call
// per frame and is not safe for concurrent use.
type Engine struct {
	cfg    *config.Config
	rng    *rand.Rand
	log    logrus.FieldLogger
	agents *systems.AgentSystem

	phase       core.Phase
	debug       bool
	encounterID string
	elapsed     float64
	width       float64
	height      float64

	zone        core.Rect
	flowers     []*core.Flower
	rats        []*core.Rat
	obstacles   []core.Obstacle
	grid        *pathfind.Grid
	assignments []*core.Assignment
	commands    []core.Command
	labels      map[string]core.AgentState

	wave    waveState
	ratIDs  core.IDGen
	pending []core.Event // produced between ticks
}

// New creates an idle engine. A nil cfg uses config.Default().
func New(cfg *config.Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	agents, err := systems.NewAgentSystem(cfg.Agent)
	if err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:    cfg,
		agents: agents,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if e.log == nil {
		e.log = logger.Log
	}
	e.ResetGame()
	return e, nil
}

// Phase returns the current lifecycle phase
func (e *Engine) Phase() core.Phase { return e.phase }

// Elapsed returns the encounter clock in ms
func (e *Engine) Elapsed() float64 { return e.elapsed }

// EncounterID identifies the current encounter, empty while idle
func (e *Engine) EncounterID() string { return e.encounterID }

// Debug reports whether debug time scaling is on
func (e *Engine) Debug() bool { return e.debug }

// SetDebug toggles debug time scaling
func (e *Engine) SetDebug(on bool) { e.debug = on }

// Config returns the tuning in use
func (e *Engine) Config() *config.Config { return e.cfg }

// ResetGame returns to a fresh idle state. Only the debug flag survives.
func (e *Engine) ResetGame() {
	debug := e.debug
	*e = Engine{
		cfg:    e.cfg,
		rng:    e.rng,
		log:    e.log,
		agents: e.agents,
		debug:  debug,
		phase:  core.PhaseIdle,
		labels: make(map[string]core.AgentState),
		wave:   waveState{index: -1},
	}
}

// StartGame lays out a new encounter for a width x height play area and
// begins playing.
func (e *Engine) StartGame(width, height float64) {
	e.ResetGame()
	e.width, e.height = width, height
	e.encounterID = uuid.NewString()

	fc := e.cfg.Flower
	e.zone = maplib.ProtectedZone(width, height, fc.ZoneFraction)
	spots := maplib.FlowerRing(e.zone, fc.Count, fc.RingFraction)
	e.flowers = make([]*core.Flower, len(spots))
	for i, p := range spots {
		e.flowers[i] = &core.Flower{ID: i + 1, Pos: p, Alive: true}
	}

	e.obstacles = maplib.GenerateObstacles(e.rng, width, height, e.zone, spots, e.cfg.Obstacle, e.log)
	e.grid = pathfind.BuildGrid(width, height, e.obstacles, e.cfg.Grid.CellSize, e.cfg.Grid.Inflation)
	e.phase = core.PhasePlaying

	e.log.WithFields(logrus.Fields{
		"encounter": e.encounterID,
		"flowers":   len(e.flowers),
		"obstacles": len(e.obstacles),
		"walkable":  e.grid.WalkableCount(),
	}).Info("encounter started")
	e.pending = append(e.pending, core.Event{Type: core.EvtGameStart})
}

// QueueCommand appends a player order, consumed on the next tick
func (e *Engine) QueueCommand(cmd core.Command) {
	e.commands = append(e.commands, cmd)
}

// Update advances the encounter by dt ms. width and height are the current
// play area; defenders is the externally owned pool, of which only the
// controllable entries are moved. It returns every event produced since the
// previous call.
func (e *Engine) Update(dt, width, height float64, defenders []*core.Defender) []core.Event {
	events := e.flush()
	if e.phase != core.PhasePlaying {
		return events
	}
	e.width, e.height = width, height

	if e.debug {
		dt *= e.cfg.DebugTimeScale
	}
	e.elapsed += dt

	events = append(events, e.growFlowers(dt)...)
	if ev, over := e.checkOutcome(); over {
		return append(events, ev)
	}

	events = append(events, e.advanceWaves()...)
	e.moveRats(dt)
	e.retargetRats()

	frame := &systems.Frame{
		Time:        e.elapsed,
		Defenders:   core.Controllable(defenders),
		Rats:        e.rats,
		Flowers:     e.flowers,
		Grid:        e.grid,
		Assignments: e.assignments,
		Commands:    e.commands,
		Labels:      e.labels,
	}
	events = append(events, e.agents.Update(dt, frame)...)
	e.assignments = frame.Assignments
	e.commands = frame.Commands
	e.labels = frame.Labels

	events = append(events, e.resolveHits()...)
	e.cleanupRats()
	return events
}

func (e *Engine) flush() []core.Event {
	if len(e.pending) == 0 {
		return nil
	}
	out := e.pending
	e.pending = nil
	return out
}

// growFlowers advances bloom on living flowers and announces stage crossings
func (e *Engine) growFlowers(dt float64) []core.Event {
	var events []core.Event
	rate := dt / e.cfg.Flower.BloomDuration
	for _, f := range e.flowers {
		if !f.Alive {
			continue
		}
		f.Bloom = min(f.Bloom+rate, 1)
		stage := e.stageOf(f.Bloom)
		for s := f.Stage + 1; s <= stage; s++ {
			events = append(events, core.Event{
				Type:     core.EvtBloomStage,
				Time:     e.elapsed,
				Pos:      f.Pos,
				FlowerID: f.ID,
				Stage:    s,
			})
		}
		if stage > f.Stage {
			f.Stage = stage
		}
	}
	return events
}

func (e *Engine) stageOf(bloom float64) int {
	n := e.cfg.Flower.BloomStages
	return min(int(bloom*float64(n)), n)
}

// checkOutcome moves to a terminal phase when every flower is in full
// bloom or every flower is dead.
func (e *Engine) checkOutcome() (core.Event, bool) {
	allBloomed, allDead := true, true
	for _, f := range e.flowers {
		if !f.Alive || f.Bloom < 1 {
			allBloomed = false
		}
		if f.Alive {
			allDead = false
		}
	}
	var ev core.Event
	switch {
	case allBloomed:
		e.phase = core.PhaseVictory
		ev = core.Event{Type: core.EvtVictory, Time: e.elapsed}
	case allDead:
		e.phase = core.PhaseDefeat
		ev = core.Event{Type: core.EvtDefeat, Time: e.elapsed}
	default:
		return ev, false
	}
	e.log.WithFields(logrus.Fields{
		"encounter": e.encounterID,
		"elapsed":   e.elapsed,
	}).Infof("encounter ended: %s", e.phase)
	return ev, true
}

func (e *Engine) livingFlowers() []*core.Flower {
	var out []*core.Flower
	for _, f := range e.flowers {
		if f.Alive {
			out = append(out, f)
		}
	}
	return out
}

func (e *Engine) flower(id int) *core.Flower {
	for _, f := range e.flowers {
		if f.ID == id {
			return f
		}
	}
	return nil
}
