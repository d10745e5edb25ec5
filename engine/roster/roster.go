// Package roster persists the defender pool between sessions. Only the
// defenders are saved; encounter state always starts fresh.
package roster

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/jamesEmerson112/Valentine-2026/engine/core"
	"github.com/jamesEmerson112/Valentine-2026/engine/logger"
)

const (
	rosterObject   = "roster"
	rosterProperty = "defenders"

	// DefaultSize is used for records saved without a size
	DefaultSize = 40.0
)

// Record is the saved form of a defender
type Record struct {
	ID           string  `yaml:"id"`
	X            float64 `yaml:"x"`
	Y            float64 `yaml:"y"`
	Width        float64 `yaml:"width,omitempty"`
	Height       float64 `yaml:"height,omitempty"`
	FacingLeft   bool    `yaml:"facingLeft,omitempty"`
	Controllable bool    `yaml:"controllable"`
}

type file struct {
	Version   int      `yaml:"version"`
	Defenders []Record `yaml:"defenders"`
}

const fileVersion = 1

// Store saves and loads the roster through gdata. A nil manager keeps the
// roster in memory only, so the game still runs where storage is missing.
type Store struct {
	mgr *gdata.Manager
	mem []byte
	log logrus.FieldLogger
}

// NewStore creates a store backed by mgr, which may be nil
func NewStore(mgr *gdata.Manager) *Store {
	return &Store{mgr: mgr, log: logger.Log.WithField("component", "roster")}
}

// Save writes the given defenders
func (s *Store) Save(defs []*core.Defender) error {
	data, err := Marshal(defs)
	if err != nil {
		return err
	}
	if s.mgr == nil {
		s.mem = data
		return nil
	}
	if err := s.mgr.SaveObjectProp(rosterObject, rosterProperty, data); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}
	s.log.WithField("defenders", len(defs)).Info("roster saved")
	return nil
}

// Load reads the saved roster and fits it into a width x height area. It
// returns nil without error when nothing has been saved yet.
func (s *Store) Load(width, height float64) ([]*core.Defender, error) {
	var data []byte
	if s.mgr == nil {
		data = s.mem
	} else {
		if !s.mgr.ObjectPropExists(rosterObject, rosterProperty) {
			return nil, nil
		}
		var err error
		data, err = s.mgr.LoadObjectProp(rosterObject, rosterProperty)
		if err != nil {
			return nil, fmt.Errorf("failed to load roster: %w", err)
		}
	}
	if data == nil {
		return nil, nil
	}
	defs, err := Unmarshal(data, width, height)
	if err != nil {
		return nil, err
	}
	s.log.WithField("defenders", len(defs)).Info("roster loaded")
	return defs, nil
}

// Marshal encodes defenders as YAML
func Marshal(defs []*core.Defender) ([]byte, error) {
	f := file{Version: fileVersion, Defenders: make([]Record, len(defs))}
	for i, d := range defs {
		f.Defenders[i] = Record{
			ID:           d.ID,
			X:            d.X,
			Y:            d.Y,
			Width:        d.Width,
			Height:       d.Height,
			FacingLeft:   d.FacingLeft,
			Controllable: d.Controllable,
		}
	}
	data, err := yaml.Marshal(&f)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal roster: %w", err)
	}
	return data, nil
}

// Unmarshal decodes a roster. Records without an id and repeated ids are
// dropped, missing sizes get DefaultSize and every defender is clamped to
// lie inside the play area.
func Unmarshal(data []byte, width, height float64) ([]*core.Defender, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to unmarshal roster: %w", err)
	}
	if f.Version > fileVersion {
		return nil, fmt.Errorf("roster version %d is newer than supported %d", f.Version, fileVersion)
	}

	seen := make(map[string]bool, len(f.Defenders))
	defs := make([]*core.Defender, 0, len(f.Defenders))
	for _, r := range f.Defenders {
		if r.ID == "" || seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		d := &core.Defender{
			ID:           r.ID,
			X:            r.X,
			Y:            r.Y,
			Width:        r.Width,
			Height:       r.Height,
			FacingLeft:   r.FacingLeft,
			Controllable: r.Controllable,
		}
		if d.Width <= 0 {
			d.Width = DefaultSize
		}
		if d.Height <= 0 {
			d.Height = DefaultSize
		}
		d.X = clamp(d.X, 0, width-d.Width)
		d.Y = clamp(d.Y, 0, height-d.Height)
		defs = append(defs, d)
	}
	return defs, nil
}

// Starter returns the roster used when nothing has been saved: count
// controllable defenders spread along the bottom of the play area.
func Starter(count int, width, height float64) []*core.Defender {
	defs := make([]*core.Defender, count)
	for i := range defs {
		d := &core.Defender{
			ID:           fmt.Sprintf("cupid-%d", i+1),
			Width:        DefaultSize,
			Height:       DefaultSize,
			Controllable: true,
		}
		d.SetCenter(core.Vec2{
			X: width * float64(i+1) / float64(count+1),
			Y: height - 2*DefaultSize,
		})
		defs[i] = d
	}
	return defs
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return max(lo, min(v, hi))
}
