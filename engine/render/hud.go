package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/jamesEmerson112/Valentine-2026/engine/ai"
	"github.com/jamesEmerson112/Valentine-2026/engine/core"
	"github.com/jamesEmerson112/Valentine-2026/engine/game"
)

// HUD draws the status bar and phase banners
type HUD struct {
	face          *text.GoXFace
	BloomDuration float64 // ms, for the countdown
	ThreatRadius  float64 // rats closer than this to a flower light up its bar
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

// Draw renders the HUD on top of the field
func (h *HUD) Draw(screen *ebiten.Image, s game.Snapshot) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	w := float32(sw)
	vector.DrawFilledRect(screen, 0, 0, w, 24, color.RGBA{0, 0, 0, 150}, false)

	alive := 0
	for _, f := range s.Flowers {
		if f.Alive {
			alive++
		}
	}
	status := fmt.Sprintf("%s  wave %d  flowers %d/%d  rats %d",
		FormatClock(s.Elapsed), s.Wave+1, alive, len(s.Flowers), len(s.Rats))
	if h.BloomDuration > 0 && s.Phase == core.PhasePlaying {
		status += "  bloom in " + FormatClock(h.BloomDuration-s.Elapsed)
	}
	h.drawText(screen, status, 8, 6, 1, color.White, false)

	// Bloom bars
	threats := FlowerThreats(s, h.ThreatRadius)
	for i, f := range s.Flowers {
		x := w - float32(len(s.Flowers)-i)*34
		vector.DrawFilledRect(screen, x, 8, 30, 8, color.RGBA{60, 60, 60, 255}, false)
		vector.DrawFilledRect(screen, x, 8, 30*float32(f.Bloom), 8, BloomColor(f.Bloom, f.Alive), false)
		if threats[i] > 0 {
			vector.StrokeRect(screen, x-1, 7, 32, 10, 2, ThreatColor(threats[i]), false)
		}
	}

	cx, cy := float64(sw)/2, float64(sh)/2
	switch s.Phase {
	case core.PhaseIdle:
		h.drawText(screen, "Protect the flowers until they bloom", cx, cy-20, 2, color.White, true)
		h.drawText(screen, "SPACE to start", cx, cy+16, 1, color.White, true)
	case core.PhaseVictory:
		h.drawText(screen, "Happy Valentine's!", cx, cy-20, 3, color.RGBA{255, 220, 235, 255}, true)
		h.drawText(screen, "Every flower bloomed. R to play again", cx, cy+24, 1, color.White, true)
	case core.PhaseDefeat:
		h.drawText(screen, "The rats got them all", cx, cy-20, 3, color.RGBA{240, 200, 200, 255}, true)
		h.drawText(screen, "R to try again", cx, cy+24, 1, color.White, true)
	}

	if s.Debug {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("DEBUG x time  encounter %s  TPS %.0f", s.EncounterID, ebiten.ActualTPS()), 8, sh-18)
	}
}

// FlowerThreats returns the rat pressure on each flower of s, in flower
// order. Dead flowers and a non-positive radius give 0.
func FlowerThreats(s game.Snapshot, radius float64) []float64 {
	out := make([]float64, len(s.Flowers))
	if radius <= 0 {
		return out
	}
	rats := make([]*core.Rat, len(s.Rats))
	for i := range s.Rats {
		rats[i] = &s.Rats[i]
	}
	for i, f := range s.Flowers {
		if f.Alive {
			out[i] = ai.ThreatAt(f.Pos, rats, radius)
		}
	}
	return out
}

func (h *HUD) drawText(screen *ebiten.Image, str string, x, y, scale float64, clr color.Color, centered bool) {
	op := &text.DrawOptions{}
	if centered {
		tw, th := text.Measure(str, h.face, 0)
		x -= tw * scale / 2
		y -= th * scale / 2
	}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, h.face, op)
}
