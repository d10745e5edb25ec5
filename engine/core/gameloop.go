package core

import "time"

// Phase is the encounter lifecycle state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhaseVictory
	PhaseDefeat
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "playing"
	case PhaseVictory:
		return "victory"
	case PhaseDefeat:
		return "defeat"
	default:
		return "idle"
	}
}

// Terminal reports whether the phase only leaves through a reset
func (p Phase) Terminal() bool { return p == PhaseVictory || p == PhaseDefeat }

// DefaultMaxFrameDelta caps a single frame, e.g. after the window was hidden
const DefaultMaxFrameDelta = 100 * time.Millisecond

// FrameClock turns wall-clock frame times into millisecond deltas for the
// simulation, clamping long gaps so one tick never simulates an implausible span.
type FrameClock struct {
	MaxDelta time.Duration
	lastTime time.Time
	started  bool
	frames   uint64
}

// NewFrameClock creates a clock with the given clamp (0 means DefaultMaxFrameDelta)
func NewFrameClock(maxDelta time.Duration) *FrameClock {
	if maxDelta <= 0 {
		maxDelta = DefaultMaxFrameDelta
	}
	return &FrameClock{MaxDelta: maxDelta}
}

// Step should be called once per render frame. It returns the elapsed
// milliseconds since the previous call; the first call returns 0.
func (fc *FrameClock) Step(now time.Time) float64 {
	fc.frames++
	if !fc.started {
		fc.started = true
		fc.lastTime = now
		return 0
	}
	frameTime := now.Sub(fc.lastTime)
	fc.lastTime = now

	if frameTime < 0 {
		frameTime = 0
	}
	// Cap frame time to avoid one huge tick
	if frameTime > fc.MaxDelta {
		frameTime = fc.MaxDelta
	}
	return float64(frameTime) / float64(time.Millisecond)
}

// Reset forgets the previous frame so the next Step returns 0
func (fc *FrameClock) Reset() {
	fc.started = false
}

// Frames returns how many times Step was called
func (fc *FrameClock) Frames() uint64 { return fc.frames }
