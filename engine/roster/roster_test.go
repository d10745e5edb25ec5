package roster

import (
	"strings"
	"testing"

	"github.com/quasilyte/gdata/v2"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
)

func openManager(t *testing.T) *gdata.Manager {
	t.Helper()
	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_DATA_HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", tempDir)

	m, err := gdata.Open(gdata.Config{AppName: "valentine_roster_test"})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}
	return m
}

func sampleRoster() []*core.Defender {
	return []*core.Defender{
		{ID: "cupid-1", X: 100, Y: 200, Width: 40, Height: 40, Controllable: true},
		{ID: "cat", X: 300, Y: 50, Width: 30, Height: 20, FacingLeft: true},
	}
}

func TestStoreRoundTripThroughGdata(t *testing.T) {
	s := NewStore(openManager(t))

	got, err := s.Load(800, 600)
	if err != nil || got != nil {
		t.Fatalf("empty store: got %v, %v", got, err)
	}

	if err := s.Save(sampleRoster()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err = s.Load(800, 600)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d defenders, want 2", len(got))
	}
	for i, want := range sampleRoster() {
		if *got[i] != *want {
			t.Errorf("defender %d = %+v, want %+v", i, *got[i], *want)
		}
	}
}

func TestStoreWithoutManagerKeepsMemory(t *testing.T) {
	s := NewStore(nil)
	if got, err := s.Load(800, 600); err != nil || got != nil {
		t.Fatalf("got %v, %v before any save", got, err)
	}
	if err := s.Save(sampleRoster()); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load(800, 600)
	if err != nil || len(got) != 2 {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestUnmarshalNormalises(t *testing.T) {
	data := []byte(`
version: 1
defenders:
  - id: a
    x: -50
    y: 900
    controllable: true
  - id: ""
    x: 1
    y: 1
  - id: a
    x: 5
    y: 5
  - id: b
    x: 10
    y: 10
    width: 20
    height: 20
`)
	defs, err := Unmarshal(data, 800, 600)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("got %d defenders, want 2", len(defs))
	}
	a := defs[0]
	if a.Width != DefaultSize || a.Height != DefaultSize {
		t.Errorf("size not defaulted: %+v", *a)
	}
	if a.X != 0 || a.Y != 600-DefaultSize {
		t.Errorf("position not clamped: (%v, %v)", a.X, a.Y)
	}
	if !a.Controllable || defs[1].Controllable {
		t.Errorf("controllable flags wrong: %+v %+v", *a, *defs[1])
	}
}

func TestUnmarshalErrors(t *testing.T) {
	tests := []struct {
		name        string
		data        string
		errContains string
	}{
		{"bad yaml", "defenders: [", "failed to unmarshal roster"},
		{"future version", "version: 9\ndefenders: []", "newer than supported"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Unmarshal([]byte(tt.data), 800, 600)
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("err = %v, want it to contain %q", err, tt.errContains)
			}
		})
	}
}

func TestStarter(t *testing.T) {
	defs := Starter(3, 900, 600)
	if len(defs) != 3 {
		t.Fatalf("got %d", len(defs))
	}
	ids := map[string]bool{}
	for _, d := range defs {
		if !d.Controllable || ids[d.ID] {
			t.Errorf("bad starter defender %+v", *d)
		}
		ids[d.ID] = true
		c := d.Center()
		if c.X <= 0 || c.X >= 900 || c.Y <= 0 || c.Y >= 600 {
			t.Errorf("defender %s outside area at %v", d.ID, c)
		}
	}
}
