package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/jakecoffman/cp"
)

// Slots are the profile names offered by the profile menu.
var Slots = []string{"profile1", "profile2", "profile3"}

// Profile is the persisted per-player record.
type Profile struct {
	Name     string   `json:"-"`
	Controls Controls `json:"controls"`
	Music    float64  `json:"music"`
	Sfx      float64  `json:"sfx"`
}

func Default(name string) *Profile {
	return &Profile{
		Name:     name,
		Controls: DefaultControls(),
		Music:    0.5,
		Sfx:      0.5,
	}
}

// SetMusic sets the music volume, clamped to [0, 1].
func (p *Profile) SetMusic(v float64) {
	p.Music = cp.Clamp01(v)
}

// SetSfx sets the effects volume, clamped to [0, 1].
func (p *Profile) SetSfx(v float64) {
	p.Sfx = cp.Clamp01(v)
}

// Store keeps one JSON file per profile in Dir.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("profile: invalid name %q", name)
	}
	return filepath.Join(s.Dir, name+".json"), nil
}

// Load reads the named profile. A profile that was never saved loads as the
// defaults.
func (s *Store) Load(name string) (*Profile, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(name), nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile: read %s: %w", name, err)
	}

	p := Default(name)
	if err := json.Unmarshal(data, p); err != nil {
		return nil, fmt.Errorf("profile: decode %s: %w", name, err)
	}
	p.Name = name
	p.Music = cp.Clamp01(p.Music)
	p.Sfx = cp.Clamp01(p.Sfx)
	return p, nil
}

func (s *Store) Save(p *Profile) error {
	path, err := s.path(p.Name)
	if err != nil {
		return err
	}
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("profile: encode %s: %w", p.Name, err)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("profile: create %s: %w", s.Dir, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("profile: write %s: %w", p.Name, err)
	}
	return nil
}

// Delete removes the named profile. Deleting a profile that does not exist
// is not an error.
func (s *Store) Delete(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("profile: delete %s: %w", name, err)
	}
	return nil
}

func (s *Store) Exists(name string) bool {
	path, err := s.path(name)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}
