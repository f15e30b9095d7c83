package ecs

import "strconv"

// Kind identifies a component type. The set of kinds is closed: every
// component the game knows about has a constant here, and an entity stores at
// most one component per kind.
type Kind uint8

const (
	KindPosition Kind = iota
	KindVelocity
	KindSize
	KindSprite
	KindAnimator
	KindName
	KindCollider
	KindPlayer
	KindEnemy
	KindPowerupJump
	KindPowerupSpeed
	KindActive
	KindPatrolRange
	KindTag
	KindBehavior
	KindUnknown

	kindCount
)

var kindNames = [kindCount]string{
	KindPosition:     "Position",
	KindVelocity:     "Velocity",
	KindSize:         "Size",
	KindSprite:       "Sprite",
	KindAnimator:     "Animator",
	KindName:         "Name",
	KindCollider:     "Collider",
	KindPlayer:       "Player",
	KindEnemy:        "Enemy",
	KindPowerupJump:  "PowerupJump",
	KindPowerupSpeed: "PowerupSpeed",
	KindActive:       "Active",
	KindPatrolRange:  "PatrolRange",
	KindTag:          "Tag",
	KindBehavior:     "Behavior",
	KindUnknown:      "Unknown",
}

func (k Kind) String() string {
	if !k.Valid() {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Valid reports whether k is one of the declared kinds.
func (k Kind) Valid() bool {
	return k < kindCount
}

// Component is implemented by every component type. Implementations use
// pointer receivers that never dereference, so Kind can be called on a nil
// pointer of the component type.
type Component interface {
	Kind() Kind
}

// KindOf returns the kind of component type T.
func KindOf[T Component]() Kind {
	var zero T
	return zero.Kind()
}
