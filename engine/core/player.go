package core

// Defender is an externally owned agent. The simulation only writes X, Y and
// FacingLeft; entries are never added or removed by the engine.
type Defender struct {
	ID           string
	X, Y         float64 // top-left corner
	Width        float64
	Height       float64
	FacingLeft   bool
	Controllable bool
}

// Center returns the defender's centre point
func (d *Defender) Center() Vec2 {
	return Vec2{d.X + d.Width/2, d.Y + d.Height/2}
}

// SetCenter moves the defender so that its centre is at p
func (d *Defender) SetCenter(p Vec2) {
	d.X = p.X - d.Width/2
	d.Y = p.Y - d.Height/2
}

// FindDefender returns the defender with the given id, or nil
func FindDefender(defs []*Defender, id string) *Defender {
	for _, d := range defs {
		if d.ID == id {
			return d
		}
	}
	return nil
}

// Controllable filters the pool down to defenders the engine may move
func Controllable(defs []*Defender) []*Defender {
	out := make([]*Defender, 0, len(defs))
	for _, d := range defs {
		if d.Controllable {
			out = append(out, d)
		}
	}
	return out
}
