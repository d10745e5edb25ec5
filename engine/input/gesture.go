package input

import (
	"math"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
)

// GestureKind classifies a completed pointer gesture
type GestureKind uint8

const (
	GestureNone    GestureKind = iota
	GestureTap                 // short press: try to catch a rat
	GestureCommand             // drag from a defender: move order
	GestureScare               // secondary button: knock rats back
)

// Gesture is what the game layer acts on
type Gesture struct {
	Kind    GestureKind
	X, Y    float64
	AgentID string // for GestureCommand
}

// Command converts a move gesture into an engine command
func (g Gesture) Command() core.Command {
	return core.Command{AgentID: g.AgentID, DestX: g.X, DestY: g.Y}
}

// Translator turns raw presses and releases into gestures. It has no
// ebiten dependency so it can be driven from tests.
type Translator struct {
	DragThreshold float64

	pressed  bool
	grabbed  string
	startX   float64
	startY   float64
	curX     float64
	curY     float64
	dragging bool
}

func NewTranslator() *Translator {
	return &Translator{DragThreshold: 8}
}

// Press starts a gesture. Pressing on a controllable defender grabs it.
func (t *Translator) Press(x, y float64, defenders []*core.Defender) {
	t.pressed = true
	t.dragging = false
	t.grabbed = ""
	t.startX, t.startY = x, y
	t.curX, t.curY = x, y
	for _, d := range defenders {
		if d.Controllable && x >= d.X && x <= d.X+d.Width && y >= d.Y && y <= d.Y+d.Height {
			t.grabbed = d.ID
			return
		}
	}
}

// Move tracks the pointer while pressed
func (t *Translator) Move(x, y float64) {
	if !t.pressed {
		return
	}
	t.curX, t.curY = x, y
	if !t.dragging && math.Hypot(x-t.startX, y-t.startY) > t.DragThreshold {
		t.dragging = true
	}
}

// Release ends the gesture. A short press is a tap; a drag that began on a
// defender is a move order to the release point; any other drag is ignored.
func (t *Translator) Release(x, y float64) Gesture {
	if !t.pressed {
		return Gesture{}
	}
	t.Move(x, y)
	t.pressed = false
	switch {
	case !t.dragging:
		return Gesture{Kind: GestureTap, X: x, Y: y}
	case t.grabbed != "":
		return Gesture{Kind: GestureCommand, X: x, Y: y, AgentID: t.grabbed}
	}
	return Gesture{}
}

// Scare is a one-shot gesture and cancels any press in progress
func (t *Translator) Scare(x, y float64) Gesture {
	t.pressed = false
	t.dragging = false
	return Gesture{Kind: GestureScare, X: x, Y: y}
}

// DragPreview returns the grabbed defender and the current pointer while a
// move order is being dragged, for drawing a guide line.
func (t *Translator) DragPreview() (agentID string, x, y float64, ok bool) {
	if !t.pressed || !t.dragging || t.grabbed == "" {
		return "", 0, 0, false
	}
	return t.grabbed, t.curX, t.curY, true
}
