package levels

import (
	"encoding/json"
	"testing"

	"github.com/milk9111/worldsaround/bhv"
	"github.com/milk9111/worldsaround/ecs"
	"github.com/milk9111/worldsaround/ecs/component"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProperty(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  ecs.Component
	}{
		{"player type", "type", `"player"`, &component.Player{}},
		{"enemy type", "type", `"enemy"`, &component.Enemy{}},
		{"unknown type", "type", `"chest"`, &component.Unknown{Key: "type", Value: "chest"}},
		{"name", "name", `"slime"`, &component.Name{Value: "slime"}},
		{"patrol doubles the range", "patrol", `{"range": 3, "duration": 2000}`, &component.PatrolRange{Length: 6, Duration: 2000}},
		{"jump powerup", "powerup", `"jump"`, &component.PowerupJump{}},
		{"speed powerup", "powerup", `"speed"`, &component.PowerupSpeed{}},
		{"behavior script", "behavior", `"hopper_walk.tengo"`, &component.Behavior{Def: bhv.Def{Script: "hopper_walk.tengo"}}},
		{
			"behavior tree", "behavior", `{"sequence": ["hopper_walk.tengo", {"wait": 600}, "hopper_turn.tengo"]}`,
			&component.Behavior{Def: bhv.Def{Sequence: []bhv.Def{{Script: "hopper_walk.tengo"}, {Wait: 600}, {Script: "hopper_turn.tengo"}}}},
		},
		{"collider", "collider", `[14, 16]`, &component.Collider{W: 14, H: 16}},
		{"velocity", "velocity", `[0, 1.5]`, &component.Velocity{X: 0, Y: 1.5}},
		{"unknown key", "shiny", `true`, &component.Unknown{Key: "shiny", Value: "true"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseProperty(tt.key, json.RawMessage(tt.value))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePropertyErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"type", `3`},
		{"name", `{}`},
		{"patrol", `"far"`},
		{"patrol", `{"range": -1, "duration": 10}`},
		{"powerup", `"fly"`},
		{"behavior", `[]`},
		{"behavior", `{}`},
		{"behavior", `{"wait": 10, "nop": true}`},
		{"behavior", `{"sequence": [{"negate": {}}]}`},
		{"collider", `"big"`},
		{"velocity", `{"x": 1}`},
		{"animations", `[]`},
		{"animations", `{}`},
		{"animations", `{"idle": {"frames": 0, "duration": 10}}`},
	}
	for _, tt := range tests {
		t.Run(tt.key+" "+tt.value, func(t *testing.T) {
			_, err := ParseProperty(tt.key, json.RawMessage(tt.value))
			assert.Error(t, err)
		})
	}
}

func TestParseAnimationsKeepsOrder(t *testing.T) {
	raw := `{
		"walk": {"start": {"x": 0, "y": 2}, "frames": 4, "duration": 400, "loop": true},
		"idle": {"start": {"x": 1, "y": 0}, "frames": 2, "duration": 200}
	}`

	c, err := ParseProperty("animations", json.RawMessage(raw))
	require.NoError(t, err)

	anim, ok := c.(*component.Animator)
	require.True(t, ok)
	assert.Equal(t, "walk", anim.Active)
	assert.Equal(t, 0, anim.Elapsed)
	assert.Equal(t, component.Animation{StartX: 0, StartY: 2, Frames: 4, Duration: 400, Loop: true}, anim.Animations["walk"])
	assert.Equal(t, component.Animation{StartX: 1, StartY: 0, Frames: 2, Duration: 200}, anim.Animations["idle"])
}
