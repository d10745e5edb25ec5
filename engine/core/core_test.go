package core

import (
	"math"
	"testing"
	"time"
)

func TestRectOverlapsIsStrict(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	tests := []struct {
		name string
		b    Rect
		want bool
	}{
		{"inside", Rect{2, 2, 3, 3}, true},
		{"partial", Rect{8, 8, 5, 5}, true},
		{"touching edge", Rect{10, 0, 5, 5}, false},
		{"apart", Rect{20, 20, 1, 1}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%v) = %v, want %v", tt.b, got, tt.want)
			}
			if got := tt.b.Overlaps(a); got != tt.want {
				t.Errorf("Overlaps is not symmetric for %v", tt.b)
			}
		})
	}
}

func TestRectInflateAndContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 4, H: 4}.Inflate(2)
	if r != (Rect{X: 8, Y: 8, W: 8, H: 8}) {
		t.Fatalf("Inflate = %+v", r)
	}
	if !r.Contains(Vec2{8, 16}) {
		t.Error("edge point should be contained")
	}
	if r.Contains(Vec2{7.9, 10}) {
		t.Error("point left of rect should not be contained")
	}
	if c := r.Center(); c != (Vec2{12, 12}) {
		t.Errorf("Center = %+v", c)
	}
}

func TestVec2Normalize(t *testing.T) {
	n := Vec2{3, 4}.Normalize()
	if math.Abs(n.Len()-1) > 1e-9 {
		t.Errorf("normalized length = %v", n.Len())
	}
	if z := (Vec2{}).Normalize(); z != (Vec2{}) {
		t.Errorf("zero vector normalized to %+v", z)
	}
}

func TestDefenderCenter(t *testing.T) {
	d := &Defender{ID: "a", X: 10, Y: 20, Width: 30, Height: 40}
	if c := d.Center(); c != (Vec2{25, 40}) {
		t.Fatalf("Center = %+v", c)
	}
	d.SetCenter(Vec2{100, 100})
	if d.X != 85 || d.Y != 80 {
		t.Errorf("SetCenter moved corner to (%v, %v)", d.X, d.Y)
	}
}

func TestFindAndFilterDefenders(t *testing.T) {
	defs := []*Defender{
		{ID: "a", Controllable: true},
		{ID: "b"},
		{ID: "c", Controllable: true},
	}
	if FindDefender(defs, "b") != defs[1] {
		t.Error("FindDefender did not return b")
	}
	if FindDefender(defs, "zzz") != nil {
		t.Error("FindDefender returned a defender for an unknown id")
	}
	if got := Controllable(defs); len(got) != 2 || got[0].ID != "a" || got[1].ID != "c" {
		t.Errorf("Controllable = %v", got)
	}
}

func TestEventBusDispatch(t *testing.T) {
	bus := NewEventBus()
	var caught, all int
	bus.On(EvtRatCaught, func(e Event) { caught++ })
	bus.OnAny(func(e Event) { all++ })

	bus.Emit(Event{Type: EvtRatCaught}, Event{Type: EvtFlowerHit}, Event{Type: EvtRatCaught})
	if bus.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", bus.Pending())
	}
	bus.Dispatch()

	if caught != 2 {
		t.Errorf("caught handler ran %d times, want 2", caught)
	}
	if all != 3 {
		t.Errorf("any handler ran %d times, want 3", all)
	}
	if bus.Pending() != 0 {
		t.Error("queue not cleared after Dispatch")
	}
}

func TestEventTypeString(t *testing.T) {
	if EvtVictory.String() != "victory" {
		t.Errorf("got %q", EvtVictory.String())
	}
	if EventType(999).String() != "unknown" {
		t.Errorf("out of range type should be unknown")
	}
}

func TestFrameClockClampsLongFrames(t *testing.T) {
	fc := NewFrameClock(50 * time.Millisecond)
	t0 := time.Unix(1000, 0)

	if dt := fc.Step(t0); dt != 0 {
		t.Fatalf("first Step = %v, want 0", dt)
	}
	if dt := fc.Step(t0.Add(16 * time.Millisecond)); dt != 16 {
		t.Errorf("normal frame = %v, want 16", dt)
	}
	if dt := fc.Step(t0.Add(10 * time.Second)); dt != 50 {
		t.Errorf("long frame = %v, want clamp at 50", dt)
	}
	if dt := fc.Step(t0); dt != 0 {
		t.Errorf("backwards clock = %v, want 0", dt)
	}
	fc.Reset()
	if dt := fc.Step(t0.Add(time.Hour)); dt != 0 {
		t.Errorf("Step after Reset = %v, want 0", dt)
	}
	if fc.Frames() != 5 {
		t.Errorf("Frames = %d, want 5", fc.Frames())
	}
}

func TestPhaseTerminal(t *testing.T) {
	for _, p := range []Phase{PhaseIdle, PhasePlaying} {
		if p.Terminal() {
			t.Errorf("%v should not be terminal", p)
		}
	}
	for _, p := range []Phase{PhaseVictory, PhaseDefeat} {
		if !p.Terminal() {
			t.Errorf("%v should be terminal", p)
		}
	}
}

func TestIDGen(t *testing.T) {
	var g IDGen
	if g.Next() != 1 || g.Next() != 2 {
		t.Fatal("ids should start at 1 and increase")
	}
	g.Reset()
	if g.Next() != 1 {
		t.Error("Reset should restart the sequence")
	}
}

func TestAssignmentClone(t *testing.T) {
	a := &Assignment{AgentID: "a", Path: []Vec2{{1, 1}, {2, 2}}}
	c := a.Clone()
	c.Path[0] = Vec2{9, 9}
	if a.Path[0] != (Vec2{1, 1}) {
		t.Error("Clone shares the path slice")
	}
	if a.PathDone() {
		t.Error("fresh assignment should not be done")
	}
	a.PathIdx = 2
	if !a.PathDone() {
		t.Error("assignment at end of path should be done")
	}
}
