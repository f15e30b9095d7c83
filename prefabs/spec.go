package prefabs

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/milk9111/worldsaround/ecs/system"
	"gopkg.in/yaml.v3"
)

// TunablesFile holds the gameplay constants.
const TunablesFile = "tunables.yaml"

type Tunables struct {
	Gravity  float64       `yaml:"gravity"`
	Friction float64       `yaml:"friction"`
	Player   PlayerTunable `yaml:"player"`
	// Lives is how many enemy hits a run survives.
	Lives int `yaml:"lives"`
	// TimeLimit ends the run after this many seconds.
	TimeLimit int `yaml:"time_limit"`
	// LivesDelay is how long the lives screen stays up, in ms.
	LivesDelay    int        `yaml:"lives_delay"`
	Zoom          float64    `yaml:"zoom"`
	BackgroundDim float64    `yaml:"background_dim"`
	ClearColor    *YAMLColor `yaml:"clear_color"`
}

type PlayerTunable struct {
	Accel           float64 `yaml:"accel"`
	Jump            float64 `yaml:"jump"`
	MaxSpeed        float64 `yaml:"max_speed"`
	PowerupDuration int     `yaml:"powerup_duration"`
	JumpBoost       float64 `yaml:"jump_boost"`
	SpeedBoost      float64 `yaml:"speed_boost"`
}

func DefaultTunables() Tunables {
	p := system.DefaultPlayerParams()
	return Tunables{
		Gravity:  system.DefaultGravity,
		Friction: system.DefaultFriction,
		Player: PlayerTunable{
			Accel:           p.Accel,
			Jump:            p.Jump,
			MaxSpeed:        p.MaxSpeed,
			PowerupDuration: p.PowerupDuration,
			JumpBoost:       p.JumpBoost,
			SpeedBoost:      p.SpeedBoost,
		},
		Lives:         3,
		TimeLimit:     999,
		LivesDelay:    1500,
		Zoom:          2,
		BackgroundDim: 80.0 / 255.0,
		ClearColor:    &YAMLColor{Color: color.Black},
	}
}

// LoadTunables reads TunablesFile. Keys missing from the file keep their
// defaults.
func LoadTunables() (Tunables, error) {
	data, err := Load(TunablesFile)
	if err != nil {
		return Tunables{}, fmt.Errorf("prefabs: load %s: %w", TunablesFile, err)
	}
	return ParseTunables(data)
}

func ParseTunables(data []byte) (Tunables, error) {
	t := DefaultTunables()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, fmt.Errorf("prefabs: unmarshal %s: %w", TunablesFile, err)
	}
	if err := t.Validate(); err != nil {
		return Tunables{}, fmt.Errorf("prefabs: %s: %w", TunablesFile, err)
	}
	return t, nil
}

func (t Tunables) Validate() error {
	var errs []error
	if t.Friction <= 0 || t.Friction > 1 {
		errs = append(errs, fmt.Errorf("friction must be in (0, 1], got %v", t.Friction))
	}
	if t.Lives < 1 {
		errs = append(errs, fmt.Errorf("lives must be at least 1, got %d", t.Lives))
	}
	if t.TimeLimit < 1 {
		errs = append(errs, fmt.Errorf("time_limit must be positive, got %d", t.TimeLimit))
	}
	if t.Zoom <= 0 {
		errs = append(errs, fmt.Errorf("zoom must be positive, got %v", t.Zoom))
	}
	if t.BackgroundDim < 0 || t.BackgroundDim > 1 {
		errs = append(errs, fmt.Errorf("background_dim must be in [0, 1], got %v", t.BackgroundDim))
	}
	if t.Player.MaxSpeed <= 0 {
		errs = append(errs, fmt.Errorf("player.max_speed must be positive, got %v", t.Player.MaxSpeed))
	}
	return errors.Join(errs...)
}

func (t Tunables) PlayerParams() system.PlayerParams {
	return system.PlayerParams{
		Accel:           t.Player.Accel,
		Jump:            t.Player.Jump,
		MaxSpeed:        t.Player.MaxSpeed,
		PowerupDuration: t.Player.PowerupDuration,
		JumpBoost:       t.Player.JumpBoost,
		SpeedBoost:      t.Player.SpeedBoost,
	}
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	var rgba [4]uint8
	rgba[3] = 0xff
	for i := 0; i < len(s)/2; i++ {
		v, err := strconv.ParseUint(s[2*i:2*i+2], 16, 8)
		if err != nil {
			return fmt.Errorf("invalid color %s: %w", value.Value, err)
		}
		rgba[i] = uint8(v)
	}

	c.Color = color.NRGBA{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
	return nil
}
