package levels

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/milk9111/worldsaround/bhv"
	"github.com/milk9111/worldsaround/ecs"
	"github.com/milk9111/worldsaround/ecs/component"
)

type animationProp struct {
	Start struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"start"`
	Frames   int  `json:"frames"`
	Duration int  `json:"duration"`
	Loop     bool `json:"loop"`
}

type patrolProp struct {
	Range    int `json:"range"`
	Duration int `json:"duration"`
}

// ParseProperty turns a level object property into its component. Unknown
// keys and unknown object types are kept as Unknown components.
func ParseProperty(key string, value json.RawMessage) (ecs.Component, error) {
	switch key {
	case "type":
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, fmt.Errorf("type: %w", err)
		}
		switch s {
		case "player":
			return &component.Player{}, nil
		case "enemy":
			return &component.Enemy{}, nil
		}
		return &component.Unknown{Key: key, Value: s}, nil

	case "animations":
		return parseAnimations(value)

	case "name":
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, fmt.Errorf("name: %w", err)
		}
		return &component.Name{Value: s}, nil

	case "patrol":
		var p patrolProp
		if err := json.Unmarshal(value, &p); err != nil {
			return nil, fmt.Errorf("patrol: %w", err)
		}
		if p.Range < 0 || p.Duration < 0 {
			return nil, fmt.Errorf("patrol: range and duration must not be negative")
		}
		return &component.PatrolRange{Length: 2 * p.Range, Duration: p.Duration}, nil

	case "powerup":
		var s string
		if err := json.Unmarshal(value, &s); err != nil {
			return nil, fmt.Errorf("powerup: %w", err)
		}
		switch s {
		case "jump":
			return &component.PowerupJump{}, nil
		case "speed":
			return &component.PowerupSpeed{}, nil
		}
		return nil, fmt.Errorf("powerup: unknown kind %q", s)

	case "behavior":
		var def bhv.Def
		if err := json.Unmarshal(value, &def); err != nil {
			return nil, fmt.Errorf("behavior: %w", err)
		}
		return &component.Behavior{Def: def}, nil

	case "velocity":
		var xy [2]float64
		if err := json.Unmarshal(value, &xy); err != nil {
			return nil, fmt.Errorf("velocity: %w", err)
		}
		return &component.Velocity{X: xy[0], Y: xy[1]}, nil

	case "collider":
		var wh [2]int
		if err := json.Unmarshal(value, &wh); err != nil {
			return nil, fmt.Errorf("collider: %w", err)
		}
		return &component.Collider{W: wh[0], H: wh[1]}, nil
	}
	return &component.Unknown{Key: key, Value: string(value)}, nil
}

// parseAnimations decodes the clip table keeping document order, because the
// first clip listed is the one that starts active.
func parseAnimations(value json.RawMessage) (ecs.Component, error) {
	dec := json.NewDecoder(bytes.NewReader(value))
	if tok, err := dec.Token(); err != nil || tok != json.Delim('{') {
		return nil, fmt.Errorf("animations: expected an object")
	}

	anim := &component.Animator{Animations: map[string]component.Animation{}}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("animations: %w", err)
		}
		name, _ := tok.(string)

		var p animationProp
		if err := dec.Decode(&p); err != nil {
			return nil, fmt.Errorf("animations: %s: %w", name, err)
		}
		if p.Frames <= 0 || p.Duration < 0 {
			return nil, fmt.Errorf("animations: %s: frames must be positive and duration not negative", name)
		}
		if anim.Active == "" {
			anim.Active = name
		}
		anim.Animations[name] = component.Animation{
			StartX:   p.Start.X,
			StartY:   p.Start.Y,
			Frames:   p.Frames,
			Duration: p.Duration,
			Loop:     p.Loop,
		}
	}
	if anim.Active == "" {
		return nil, fmt.Errorf("animations: no clips")
	}
	return anim, nil
}
