package maplib

import (
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/jamesEmerson112/Valentine-2026/engine/config"
	"github.com/jamesEmerson112/Valentine-2026/engine/core"
)

// ProtectedZone returns the centred rectangle around the flowers. fraction
// is the zone size relative to the play area on each axis.
func ProtectedZone(width, height, fraction float64) core.Rect {
	w := width * fraction
	h := height * fraction
	return core.Rect{X: (width - w) / 2, Y: (height - h) / 2, W: w, H: h}
}

// FlowerRing places count points evenly on an ellipse inside zone. The
// ellipse radii are radiusFraction of the zone's width and height.
func FlowerRing(zone core.Rect, count int, radiusFraction float64) []core.Vec2 {
	c := zone.Center()
	rx := zone.W * radiusFraction
	ry := zone.H * radiusFraction
	pts := make([]core.Vec2, count)
	for i := range pts {
		// Start at the top so a single flower sits above the centre
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(count)
		pts[i] = core.Vec2{X: c.X + rx*math.Cos(a), Y: c.Y + ry*math.Sin(a)}
	}
	return pts
}

// GenerateObstacles scatters non-overlapping obstacles over the play area,
// keeping clear of the protected zone and the flowers. When the attempt
// budget runs out it returns whatever was placed and logs the shortfall at
// debug level.
func GenerateObstacles(rng *rand.Rand, width, height float64, zone core.Rect, flowers []core.Vec2, cfg config.ObstacleConfig, log logrus.FieldLogger) []core.Obstacle {
	want := cfg.MinCount
	if cfg.MaxCount > cfg.MinCount {
		want += rng.Intn(cfg.MaxCount - cfg.MinCount + 1)
	}
	placed := make([]core.Obstacle, 0, want)
	paddedZone := zone.Inflate(cfg.ZonePadding)

	for attempt := 0; attempt < cfg.MaxAttempts && len(placed) < want; attempt++ {
		w := randRange(rng, cfg.MinSize, cfg.MaxSize)
		h := randRange(rng, cfg.MinSize, cfg.MaxSize)
		maxX := width - cfg.EdgeMargin - w
		maxY := height - cfg.EdgeMargin - h
		if maxX < cfg.EdgeMargin || maxY < cfg.EdgeMargin {
			continue // play area too small for this candidate
		}
		cand := core.Rect{
			X: randRange(rng, cfg.EdgeMargin, maxX),
			Y: randRange(rng, cfg.EdgeMargin, maxY),
			W: w,
			H: h,
		}
		if !fits(cand, paddedZone, flowers, placed, cfg) {
			continue
		}
		kind := core.ObstacleRock
		if rng.Intn(2) == 1 {
			kind = core.ObstacleHedge
		}
		placed = append(placed, core.Obstacle{ID: len(placed) + 1, Rect: cand, Kind: kind})
	}
	if len(placed) < want {
		log.WithFields(logrus.Fields{
			"wanted":   want,
			"placed":   len(placed),
			"attempts": cfg.MaxAttempts,
		}).Debug("obstacle budget exhausted")
	}
	return placed
}

func fits(cand, paddedZone core.Rect, flowers []core.Vec2, placed []core.Obstacle, cfg config.ObstacleConfig) bool {
	if cand.Overlaps(paddedZone) {
		return false
	}
	around := cand.Inflate(cfg.FlowerPadding)
	for _, f := range flowers {
		if around.Contains(f) {
			return false
		}
	}
	spaced := cand.Inflate(cfg.OverlapPadding)
	for _, o := range placed {
		if spaced.Overlaps(o.Rect) {
			return false
		}
	}
	return true
}

func randRange(rng *rand.Rand, lo, hi float64) float64 {
	if hi <= lo {
		return lo
	}
	return lo + rng.Float64()*(hi-lo)
}
