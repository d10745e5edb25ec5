package ai

import (
	"math"
	"testing"

	"github.com/jamesEmerson112/Valentine-2026/engine/config"
	"github.com/jamesEmerson112/Valentine-2026/engine/core"
)

func rat(id int, x, y float64, target int) *core.Rat {
	return &core.Rat{ID: id, Pos: core.Vec2{X: x, Y: y}, TargetID: target}
}

func TestNewPolicy(t *testing.T) {
	tests := []struct {
		name    string
		want    Policy
		wantErr bool
	}{
		{config.PolicyNearest, Nearest{}, false},
		{"", Nearest{}, false},
		{config.PolicySkipClosest, SkipClosest{}, false},
		{"bogus", nil, true},
	}
	for _, tt := range tests {
		p, err := NewPolicy(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("NewPolicy(%q) err = %v", tt.name, err)
			continue
		}
		if p != tt.want {
			t.Errorf("NewPolicy(%q) = %T, want %T", tt.name, p, tt.want)
		}
	}
}

func TestNearestPicksClosestInRange(t *testing.T) {
	rats := []*core.Rat{
		rat(1, 50, 0, 0),
		rat(2, 20, 0, 0),
		rat(3, 500, 0, 0),
	}
	got := Nearest{}.Select(core.Vec2{}, rats, nil, map[int]bool{}, 100)
	if got == nil || got.ID != 2 {
		t.Fatalf("got %v, want rat 2", got)
	}
}

func TestNearestSkipsClaimedAndDespawned(t *testing.T) {
	rats := []*core.Rat{
		rat(1, 10, 0, 0),
		rat(2, 20, 0, 0),
		rat(3, 30, 0, 0),
	}
	rats[1].Despawned = true
	got := Nearest{}.Select(core.Vec2{}, rats, nil, map[int]bool{1: true}, 100)
	if got == nil || got.ID != 3 {
		t.Fatalf("got %v, want rat 3", got)
	}
}

func TestNearestOutOfRange(t *testing.T) {
	rats := []*core.Rat{rat(1, 150, 0, 0)}
	if got := (Nearest{}).Select(core.Vec2{}, rats, nil, nil, 100); got != nil {
		t.Errorf("got rat %d outside aggro radius", got.ID)
	}
}

func TestSkipClosestLeavesLeadRat(t *testing.T) {
	flowers := []*core.Flower{{ID: 7, Pos: core.Vec2{X: 100, Y: 0}, Alive: true}}
	rats := []*core.Rat{
		rat(1, 90, 0, 7), // 10 from the flower
		rat(2, 60, 0, 7), // 40 from the flower
		rat(3, 20, 0, 7), // 80 from the flower
	}
	got := SkipClosest{}.Select(core.Vec2{}, rats, flowers, map[int]bool{}, 200)
	if got == nil || got.ID != 2 {
		t.Fatalf("got %v, want rat 2", got)
	}

	got = SkipClosest{}.Select(core.Vec2{}, rats[:1], flowers, map[int]bool{}, 200)
	if got == nil || got.ID != 1 {
		t.Fatalf("single candidate: got %v, want rat 1", got)
	}

	if got := (SkipClosest{}).Select(core.Vec2{}, rats, flowers, map[int]bool{}, 5); got != nil {
		t.Errorf("nothing in range, got rat %d", got.ID)
	}
}

func TestThreatAt(t *testing.T) {
	rats := []*core.Rat{rat(1, 0, 0, 0), rat(2, 50, 0, 0), rat(3, 200, 0, 0)}
	if got := ThreatAt(core.Vec2{}, rats, 100); math.Abs(got-1.5) > 1e-9 {
		t.Errorf("ThreatAt = %v, want 1.5", got)
	}
}
