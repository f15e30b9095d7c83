package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/worldsaround/ecs"
	"github.com/milk9111/worldsaround/ecs/component"
	"github.com/milk9111/worldsaround/profile"
)

type PlayerParams struct {
	Accel    float64
	Jump     float64
	MaxSpeed float64

	// PowerupDuration is how long an activated powerup lasts, in ms.
	PowerupDuration int
	JumpBoost       float64
	SpeedBoost      float64
}

func DefaultPlayerParams() PlayerParams {
	return PlayerParams{
		Accel:           0.5,
		Jump:            60,
		MaxSpeed:        100,
		PowerupDuration: 5000,
		JumpBoost:       1.5,
		SpeedBoost:      1.5,
	}
}

// PlayerInput is the most recently pressed key that is still held.
type PlayerInput struct {
	Key      ebiten.Key
	Held     bool
	Controls profile.Controls
}

var idleFor = map[string]string{
	"walk_left":  "idle_left",
	"walk_right": "idle_right",
}

// Player applies the held key to every player entity and counts down active
// powerups.
func Player(list *ecs.EntityList, dt int, in PlayerInput, p PlayerParams) {
	ctl := in.Controls
	ecs.ForEach4(list, func(e *ecs.Entity, _ *component.Player, vel *component.Velocity, anim *component.Animator, sprite *component.Sprite) {
		accel, jump, maxSpeed := p.Accel, p.Jump, p.MaxSpeed
		if active, ok := ecs.Get[*component.Active](e); ok {
			switch active.Powerup {
			case ecs.KindPowerupJump:
				jump *= p.JumpBoost
			case ecs.KindPowerupSpeed:
				accel *= p.SpeedBoost
				maxSpeed *= p.SpeedBoost
			}
		}

		if !in.Held {
			if idle, ok := idleFor[anim.Active]; ok {
				anim.Transition(idle)
			}
		} else {
			switch in.Key {
			case ctl.Left:
				vel.X -= accel
				anim.Transition("walk_left")
				sprite.Flip = true
			case ctl.Right:
				vel.X += accel
				anim.Transition("walk_right")
				sprite.Flip = false
			case ctl.Jump:
				if vel.Y == 0 {
					vel.Y -= jump
				}
			case ctl.Powerup1:
				activate(e, ecs.KindPowerupJump, p.PowerupDuration)
			case ctl.Powerup2:
				activate(e, ecs.KindPowerupSpeed, p.PowerupDuration)
			}
		}

		vel.X = cp.Clamp(vel.X, -maxSpeed, maxSpeed)
	})

	ecs.ForEach2(list, func(e *ecs.Entity, _ *component.Player, active *component.Active) {
		active.Remaining -= dt
		if active.Remaining <= 0 {
			e.Remove(ecs.KindActive)
		}
	})
}

// activate starts the powerup of kind k when e owns it and no other powerup
// is running.
func activate(e *ecs.Entity, k ecs.Kind, duration int) {
	if !e.Has(k) || e.Has(ecs.KindActive) {
		return
	}
	e.Add(&component.Active{Powerup: k, Remaining: duration})
}
