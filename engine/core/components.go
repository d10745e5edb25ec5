package core

import "math"

// ---- Geometry ----

// Vec2 is a world-space point or vector in pixels
type Vec2 struct {
	X, Y float64
}

// Add returns v+o
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v-o
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Scale returns v*s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

// Len returns the euclidean length
func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

// DistanceTo returns euclidean distance to another point
func (v Vec2) DistanceTo(o Vec2) float64 { return math.Hypot(o.X-v.X, o.Y-v.Y) }

// Normalize returns the unit vector, or the zero vector for a zero input
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Inflate grows the rectangle by m on every side
func (r Rect) Inflate(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, W: r.W + 2*m, H: r.H + 2*m}
}

// Overlaps reports whether the interiors of r and o intersect
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W && r.X+r.W > o.X && r.Y < o.Y+o.H && r.Y+r.H > o.Y
}

// Contains reports whether p lies inside r (edges inclusive)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Center returns the rectangle's centre
func (r Rect) Center() Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

// ---- Flowers ----

// Flower is an objective that blooms over time and can be damaged
type Flower struct {
	ID    int
	Pos   Vec2
	Bloom float64 // 0.0 to 1.0
	Alive bool
	Stage int // highest bloom stage announced so far
}

// ---- Rats ----

// Rat is an intruder advancing toward a flower
type Rat struct {
	ID        int
	Pos       Vec2
	Vel       Vec2    // px per ms
	Speed     float64 // nominal px per ms
	TargetID  int     // flower id
	Knockback float64 // remaining knockback time in ms
	KnockVel  Vec2
	Radius    float64
	Opacity   float64
	Age       float64 // ms since spawn
	Despawned bool
}

// KnockedBack reports whether the rat is currently in forced movement
func (r *Rat) KnockedBack() bool { return r.Knockback > 0 }

// ---- Obstacles ----

// ObstacleKind is purely cosmetic
type ObstacleKind uint8

const (
	ObstacleRock ObstacleKind = iota
	ObstacleHedge
)

func (k ObstacleKind) String() string {
	if k == ObstacleHedge {
		return "hedge"
	}
	return "rock"
}

// Obstacle blocks defender movement for the duration of an encounter
type Obstacle struct {
	ID   int
	Rect Rect
	Kind ObstacleKind
}

// ---- Assignments & commands ----

// Assignment binds a defender to a rat or to a player-chosen destination
type Assignment struct {
	AgentID        string
	RatID          int  // autonomous target, unused when PlayerDirected
	PlayerDirected bool // true for move-to-point orders
	Dest           Vec2
	Path           []Vec2
	PathIdx        int
	ReplanTimer    float64 // ms since the path was computed
}

// PathDone reports whether every waypoint has been consumed
func (a *Assignment) PathDone() bool { return a.PathIdx >= len(a.Path) }

// Clone returns a deep copy
func (a *Assignment) Clone() *Assignment {
	c := *a
	c.Path = append([]Vec2(nil), a.Path...)
	return &c
}

// Command is a one-shot player order: move defender AgentID to (DestX, DestY)
type Command struct {
	AgentID      string
	DestX, DestY float64
}

// AgentState is the lifecycle label of a defender
type AgentState uint8

const (
	AgentWandering AgentState = iota
	AgentChasing
)

func (s AgentState) String() string {
	if s == AgentChasing {
		return "chasing"
	}
	return "wandering"
}
