package render

import (
	"fmt"
	"image/color"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
)

var (
	colorGrass     = color.RGBA{118, 170, 92, 255}
	colorZone      = color.RGBA{255, 230, 240, 40}
	colorBlocked   = color.RGBA{200, 40, 40, 50}
	colorRat       = color.RGBA{110, 100, 100, 255}
	colorDefender  = color.RGBA{230, 80, 130, 255}
	colorNPC       = color.RGBA{170, 150, 200, 255}
	colorChasing   = color.RGBA{255, 210, 60, 255}
	colorPath      = color.RGBA{255, 255, 255, 120}
	colorDragGuide = color.RGBA{255, 120, 170, 200}
	colorBud       = color.RGBA{120, 160, 80, 255}
	colorBlossom   = color.RGBA{240, 40, 90, 255}
	colorWilted    = color.RGBA{110, 80, 50, 255}
)

// ObstacleColors maps obstacle kinds to fill colors
var ObstacleColors = map[core.ObstacleKind]color.RGBA{
	core.ObstacleRock:  {128, 128, 128, 255},
	core.ObstacleHedge: {40, 100, 40, 255},
}

// BloomColor fades a flower from bud green to blossom red as it blooms
func BloomColor(bloom float64, alive bool) color.RGBA {
	if !alive {
		return colorWilted
	}
	t := max(0, min(bloom, 1))
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t) }
	return color.RGBA{
		R: lerp(colorBud.R, colorBlossom.R),
		G: lerp(colorBud.G, colorBlossom.G),
		B: lerp(colorBud.B, colorBlossom.B),
		A: 255,
	}
}

// ThreatColor is the outline of a threatened bloom bar. It saturates at a
// threat of 1.
func ThreatColor(threat float64) color.RGBA {
	a := uint8(max(0, min(threat, 1)) * 255)
	return color.RGBA{R: a, A: a}
}

// FormatClock renders ms as m:ss
func FormatClock(ms float64) string {
	s := int(max(ms, 0) / 1000)
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}
