package component

import "github.com/milk9111/worldsaround/ecs"

// PowerupJump lets the owner activate a stronger jump.
type PowerupJump struct{}

func (*PowerupJump) Kind() ecs.Kind { return ecs.KindPowerupJump }

// PowerupSpeed lets the owner activate faster running.
type PowerupSpeed struct{}

func (*PowerupSpeed) Kind() ecs.Kind { return ecs.KindPowerupSpeed }

// Active marks a powerup as running. Remaining is in milliseconds.
type Active struct {
	Powerup   ecs.Kind
	Remaining int
}

func (*Active) Kind() ecs.Kind { return ecs.KindActive }
