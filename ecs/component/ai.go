package component

import (
	"github.com/milk9111/worldsaround/bhv"
	"github.com/milk9111/worldsaround/ecs"
)

// PatrolRange walks the owner Length tiles every Duration milliseconds,
// turning around at the end of each leg.
type PatrolRange struct {
	Length   int
	Duration int
	Elapsed  int
	Left     bool
}

func (*PatrolRange) Kind() ecs.Kind { return ecs.KindPatrolRange }

// Behavior drives the owner with a behavior tree. Tree is built lazily from
// Def by the behavior system.
type Behavior struct {
	Def  bhv.Def
	Tree bhv.Node
}

func (*Behavior) Kind() ecs.Kind { return ecs.KindBehavior }
