package component

import "github.com/milk9111/worldsaround/ecs"

type Player struct{}

func (*Player) Kind() ecs.Kind { return ecs.KindPlayer }

type Enemy struct{}

func (*Enemy) Kind() ecs.Kind { return ecs.KindEnemy }

type Name struct {
	Value string
}

func (*Name) Kind() ecs.Kind { return ecs.KindName }

// Tag marks a map object with a property name that has no dedicated parser.
type Tag struct {
	Name string
}

func (*Tag) Kind() ecs.Kind { return ecs.KindTag }

// Unknown records a property key or type value the level parser did not
// recognise.
type Unknown struct {
	Key   string
	Value string
}

func (*Unknown) Kind() ecs.Kind { return ecs.KindUnknown }
