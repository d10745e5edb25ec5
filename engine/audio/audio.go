package audio

import (
	"math"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
)

// SoundID identifies a sound effect
type SoundID string

const (
	SndStart   SoundID = "start"
	SndCatch   SoundID = "catch"
	SndHit     SoundID = "hit"
	SndWilt    SoundID = "wilt"
	SndBloom   SoundID = "bloom"
	SndWave    SoundID = "wave"
	SndVictory SoundID = "victory"
	SndDefeat  SoundID = "defeat"
)

// cue describes how an event sounds
type cue struct {
	id         SoundID
	positional bool
}

var cues = map[core.EventType]cue{
	core.EvtGameStart:  {SndStart, false},
	core.EvtRatCaught:  {SndCatch, true},
	core.EvtFlowerHit:  {SndHit, true},
	core.EvtFlowerDied: {SndWilt, true},
	core.EvtBloomStage: {SndBloom, true},
	core.EvtWaveStart:  {SndWave, false},
	core.EvtVictory:    {SndVictory, false},
	core.EvtDefeat:     {SndDefeat, false},
}

// CueFor returns the sound for an event. Spawns are silent.
func CueFor(t core.EventType) (SoundID, bool) {
	c, ok := cues[t]
	return c.id, ok
}

// Output plays a sound at a volume in [0, 1]
type Output interface {
	Play(id SoundID, volume float64)
}

// Mixer turns simulation events into sounds. Positional cues get quieter
// with distance from the listener but never drop below MinVolume, since the
// whole field is always on screen.
type Mixer struct {
	MasterVolume float64
	SFXVolume    float64
	MinVolume    float64
	Falloff      float64 // px at which positional cues reach MinVolume
	Muted        bool
	ListenerX    float64
	ListenerY    float64

	out Output
}

func NewMixer(out Output) *Mixer {
	return &Mixer{
		MasterVolume: 1.0,
		SFXVolume:    0.8,
		MinVolume:    0.35,
		Falloff:      600,
		out:          out,
	}
}

// SetListener updates the listener position, normally the field centre
func (m *Mixer) SetListener(x, y float64) {
	m.ListenerX = x
	m.ListenerY = y
}

// Handle plays the cue for e, if any, and reports whether it did
func (m *Mixer) Handle(e core.Event) bool {
	c, ok := cues[e.Type]
	if !ok || m.Muted || m.out == nil {
		return false
	}
	vol := m.MasterVolume * m.SFXVolume
	if c.positional {
		vol *= m.attenuation(e.Pos.X, e.Pos.Y)
	}
	if vol <= 0 {
		return false
	}
	m.out.Play(c.id, vol)
	return true
}

// attenuation computes the distance factor for a world position
func (m *Mixer) attenuation(wx, wy float64) float64 {
	if m.Falloff <= 0 {
		return 1
	}
	dist := math.Hypot(wx-m.ListenerX, wy-m.ListenerY)
	t := min(dist/m.Falloff, 1)
	return 1 - t*(1-m.MinVolume)
}

// SetVolume sets master volume (0-1)
func (m *Mixer) SetVolume(v float64) {
	m.MasterVolume = max(0, min(v, 1))
}
