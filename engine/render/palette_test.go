package render

import (
	"testing"
)

func TestBloomColor(t *testing.T) {
	if got := BloomColor(0, true); got != colorBud {
		t.Errorf("bud = %v, want %v", got, colorBud)
	}
	if got := BloomColor(1, true); got != colorBlossom {
		t.Errorf("blossom = %v, want %v", got, colorBlossom)
	}
	if got := BloomColor(3, true); got != colorBlossom {
		t.Errorf("over-bloom not clamped: %v", got)
	}
	if got := BloomColor(0.7, false); got != colorWilted {
		t.Errorf("dead flower = %v, want wilted", got)
	}
	mid := BloomColor(0.5, true)
	if mid.R <= colorBud.R || mid.R >= colorBlossom.R {
		t.Errorf("half bloom red channel %d not between bud and blossom", mid.R)
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		ms   float64
		want string
	}{
		{0, "0:00"},
		{999, "0:00"},
		{65000, "1:05"},
		{90000, "1:30"},
		{-500, "0:00"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.ms); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.ms, got, tt.want)
		}
	}
}
