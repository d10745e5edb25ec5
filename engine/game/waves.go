package game

import (
	"github.com/sirupsen/logrus"

	"github.com/jamesEmerson112/Valentine-2026/engine/config"
	"github.com/jamesEmerson112/Valentine-2026/engine/core"
)

// waveState tracks spawning within the active wave
type waveState struct {
	index     int     // -1 before the first wave
	spawned   int     // rats spawned in this wave
	nextSpawn float64 // encounter time of the next spawn
}

// activeWave returns the index of the wave whose window holds t. Past the
// last window the last wave stays active; in a gap between windows it
// returns -1.
func activeWave(waves []config.Wave, t float64) int {
	last := len(waves) - 1
	if t >= waves[last].End {
		return last
	}
	for i, w := range waves {
		if t >= w.Start && t < w.End {
			return i
		}
	}
	return -1
}

// advanceWaves enters new waves and spawns every rat whose time has come
func (e *Engine) advanceWaves() []core.Event {
	waves := e.cfg.Waves
	idx := activeWave(waves, e.elapsed)
	if idx < 0 {
		return nil
	}

	var events []core.Event
	w := waves[idx]
	if idx != e.wave.index {
		e.wave = waveState{index: idx, nextSpawn: w.Start + w.Interval()/2}
		events = append(events, core.Event{Type: core.EvtWaveStart, Time: e.elapsed, Stage: idx})
		e.log.WithFields(logrus.Fields{
			"encounter": e.encounterID,
			"wave":      idx,
			"count":     w.Count,
		}).Info("wave started")
	}

	repeating := idx == len(waves)-1
	for e.elapsed >= e.wave.nextSpawn && (repeating || e.wave.spawned < w.Count) {
		if ev, ok := e.spawnRat(w); ok {
			events = append(events, ev)
		}
		e.wave.spawned++
		e.wave.nextSpawn += w.Interval()
	}
	return events
}

// spawnRat places a rat just outside a random allowed edge, aimed at a
// random living flower.
func (e *Engine) spawnRat(w config.Wave) (core.Event, bool) {
	living := e.livingFlowers()
	if len(living) == 0 {
		return core.Event{}, false
	}
	target := living[e.rng.Intn(len(living))]
	radius := e.cfg.Rat.Radius

	var pos core.Vec2
	switch w.Edges[e.rng.Intn(len(w.Edges))] {
	case config.EdgeTop:
		pos = core.Vec2{X: e.rng.Float64() * e.width, Y: -radius}
	case config.EdgeBottom:
		pos = core.Vec2{X: e.rng.Float64() * e.width, Y: e.height + radius}
	case config.EdgeLeft:
		pos = core.Vec2{X: -radius, Y: e.rng.Float64() * e.height}
	default:
		pos = core.Vec2{X: e.width + radius, Y: e.rng.Float64() * e.height}
	}

	r := &core.Rat{
		ID:       e.ratIDs.Next(),
		Pos:      pos,
		Speed:    e.cfg.Rat.BaseSpeed * w.SpeedMultiplier,
		TargetID: target.ID,
		Radius:   radius,
	}
	aim(r, target.Pos)
	if e.cfg.Rat.FadeIn <= 0 {
		r.Opacity = 1
	}
	e.rats = append(e.rats, r)

	e.log.WithFields(logrus.Fields{
		"rat":    r.ID,
		"flower": target.ID,
		"speed":  r.Speed,
	}).Debug("rat spawned")
	return core.Event{
		Type:     core.EvtRatSpawned,
		Time:     e.elapsed,
		Pos:      pos,
		RatID:    r.ID,
		FlowerID: target.ID,
	}, true
}

// aim points r's velocity at p
func aim(r *core.Rat, p core.Vec2) {
	r.Vel = p.Sub(r.Pos).Normalize().Scale(r.Speed)
}
