package game

import (
	"github.com/sirupsen/logrus"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
)

// moveRats integrates every live rat by dt, either along its knockback or
// toward its flower.
func (e *Engine) moveRats(dt float64) {
	fadeIn := e.cfg.Rat.FadeIn
	for _, r := range e.rats {
		if r.Despawned {
			continue
		}
		r.Age += dt
		if fadeIn > 0 {
			r.Opacity = min(r.Age/fadeIn, 1)
		}

		if r.KnockedBack() {
			step := min(dt, r.Knockback)
			r.Pos = r.Pos.Add(r.KnockVel.Scale(step))
			r.Knockback -= dt
			if r.Knockback <= 0 {
				r.Knockback = 0
				r.KnockVel = core.Vec2{}
				e.pickTarget(r)
			}
			continue
		}

		f := e.flower(r.TargetID)
		if f == nil || !f.Alive {
			r.Pos = r.Pos.Add(r.Vel.Scale(dt))
			continue
		}
		// Steer every tick and never overshoot the flower
		aim(r, f.Pos)
		if dist := r.Pos.DistanceTo(f.Pos); r.Speed*dt >= dist {
			r.Pos = f.Pos
		} else {
			r.Pos = r.Pos.Add(r.Vel.Scale(dt))
		}
	}
}

// retargetRats re-aims rats whose flower died since they last aimed
func (e *Engine) retargetRats() {
	for _, r := range e.rats {
		if r.Despawned || r.KnockedBack() {
			continue
		}
		if f := e.flower(r.TargetID); f == nil || !f.Alive {
			e.pickTarget(r)
		}
	}
}

// pickTarget aims r at a random living flower. With none left the rat keeps
// its heading.
func (e *Engine) pickTarget(r *core.Rat) {
	living := e.livingFlowers()
	if len(living) == 0 {
		return
	}
	f := living[e.rng.Intn(len(living))]
	r.TargetID = f.ID
	aim(r, f.Pos)
}

// resolveHits lets rats that reached their flower bite it
func (e *Engine) resolveHits() []core.Event {
	var events []core.Event
	fc := e.cfg.Flower
	for _, r := range e.rats {
		if r.Despawned || r.KnockedBack() {
			continue
		}
		f := e.flower(r.TargetID)
		if f == nil || !f.Alive || r.Pos.DistanceTo(f.Pos) > fc.HitRadius {
			continue
		}

		r.Despawned = true
		f.Bloom -= fc.HitDamage
		events = append(events, core.Event{
			Type:     core.EvtFlowerHit,
			Time:     e.elapsed,
			Pos:      f.Pos,
			RatID:    r.ID,
			FlowerID: f.ID,
		})
		if f.Bloom <= 0 {
			f.Bloom = 0
			f.Alive = false
			events = append(events, core.Event{
				Type:     core.EvtFlowerDied,
				Time:     e.elapsed,
				Pos:      f.Pos,
				FlowerID: f.ID,
			})
			e.log.WithFields(logrus.Fields{
				"encounter": e.encounterID,
				"flower":    f.ID,
			}).Info("flower died")
		}
		// Regrowing past a stage announces it again
		f.Stage = min(f.Stage, e.stageOf(f.Bloom))
	}
	return events
}

// cleanupRats drops despawned rats and those far outside the play area
func (e *Engine) cleanupRats() {
	m := e.cfg.Rat.OffscreenMargin
	kept := e.rats[:0]
	for _, r := range e.rats {
		if r.Despawned {
			continue
		}
		p := r.Pos
		if p.X < -m || p.Y < -m || p.X > e.width+m || p.Y > e.height+m {
			continue
		}
		kept = append(kept, r)
	}
	for i := len(kept); i < len(e.rats); i++ {
		e.rats[i] = nil
	}
	e.rats = kept
}

// HandleTapRat catches the first live rat under (x, y). The catch event is
// returned by the next Update.
func (e *Engine) HandleTapRat(x, y float64) bool {
	if e.phase != core.PhasePlaying {
		return false
	}
	p := core.Vec2{X: x, Y: y}
	for _, r := range e.rats {
		if r.Despawned || r.Pos.DistanceTo(p) > r.Radius {
			continue
		}
		r.Despawned = true
		e.pending = append(e.pending, core.Event{
			Type:  core.EvtRatCaught,
			Time:  e.elapsed,
			Pos:   r.Pos,
			RatID: r.ID,
		})
		return true
	}
	return false
}

// ScareAt knocks every live rat within the scare radius of (x, y) away from
// that point. Knocked back rats cannot bite and pick a fresh flower when
// the knockback ends. It returns how many rats were scared.
func (e *Engine) ScareAt(x, y float64) int {
	if e.phase != core.PhasePlaying {
		return 0
	}
	rc := e.cfg.Rat
	p := core.Vec2{X: x, Y: y}
	n := 0
	for _, r := range e.rats {
		if r.Despawned || r.Pos.DistanceTo(p) > rc.ScareRadius {
			continue
		}
		dir := r.Pos.Sub(p).Normalize()
		if dir == (core.Vec2{}) {
			dir = r.Vel.Normalize().Scale(-1)
		}
		if dir == (core.Vec2{}) {
			dir = core.Vec2{Y: -1}
		}
		r.KnockVel = dir.Scale(rc.KnockbackSpeed)
		r.Knockback = rc.KnockbackTime
		n++
	}
	return n
}
