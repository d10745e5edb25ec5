package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
)

// InputState tracks mouse and keyboard state per frame
type InputState struct {
	// Mouse
	MouseX, MouseY   int
	LeftPressed      bool
	LeftJustPressed  bool
	LeftJustReleased bool
	RightJustPressed bool

	// Keyboard, just-pressed this frame
	KeysJustPressed map[ebiten.Key]bool
}

// watchedKeys are the keys the game binds
var watchedKeys = []ebiten.Key{
	ebiten.KeySpace, ebiten.KeyEnter, ebiten.KeyR, ebiten.KeyD,
	ebiten.KeyM, ebiten.KeyS, ebiten.KeyG, ebiten.KeyP,
	ebiten.KeyMinus, ebiten.KeyEqual,
}

func NewInputState() *InputState {
	return &InputState{
		KeysJustPressed: make(map[ebiten.Key]bool),
	}
}

// Update should be called every frame
func (s *InputState) Update() {
	s.MouseX, s.MouseY = ebiten.CursorPosition()

	s.LeftPressed = ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	s.LeftJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
	s.LeftJustReleased = inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft)
	s.RightJustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)

	// Touch counts as the left button
	if ids := inpututil.AppendJustPressedTouchIDs(nil); len(ids) > 0 {
		s.MouseX, s.MouseY = ebiten.TouchPosition(ids[0])
		s.LeftJustPressed = true
	}
	if ids := inpututil.AppendJustReleasedTouchIDs(nil); len(ids) > 0 {
		s.MouseX, s.MouseY = inpututil.TouchPositionInPreviousTick(ids[0])
		s.LeftJustReleased = true
	}

	for _, k := range watchedKeys {
		s.KeysJustPressed[k] = inpututil.IsKeyJustPressed(k)
	}
}

// IsKeyJustPressed returns true if key was just pressed this frame
func (s *InputState) IsKeyJustPressed(key ebiten.Key) bool {
	return s.KeysJustPressed[key]
}

// Poll feeds this frame's pointer state through tr and returns the
// resulting gesture, if any.
func (s *InputState) Poll(tr *Translator, defenders []*core.Defender) Gesture {
	x, y := float64(s.MouseX), float64(s.MouseY)
	if s.RightJustPressed {
		return tr.Scare(x, y)
	}
	if s.LeftJustPressed {
		tr.Press(x, y, defenders)
	}
	if s.LeftJustReleased {
		return tr.Release(x, y)
	}
	tr.Move(x, y)
	return Gesture{}
}
