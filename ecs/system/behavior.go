package system

import (
	"errors"

	"github.com/d5/tengo/v2"
	"github.com/milk9111/worldsaround/bhv"
	"github.com/milk9111/worldsaround/ecs"
	"github.com/milk9111/worldsaround/ecs/component"
	"go.uber.org/zap"
)

// ScriptSource returns the source of a named behavior script.
type ScriptSource func(name string) ([]byte, error)

type BehaviorParams struct {
	Scripts ScriptSource
	Log     *zap.Logger
}

// Behaviors ticks every behavior tree once, building trees from their Def
// on first use. The root is restarted whenever it finishes. An entity whose
// tree cannot be built or whose scripts fail loses its Behavior.
func Behaviors(list *ecs.EntityList, dt int, p BehaviorParams) {
	log := p.Log
	if log == nil {
		log = zap.NewNop()
	}

	ecs.ForEach(list, func(e *ecs.Entity, b *component.Behavior) {
		if b.Tree == nil {
			tree, err := buildTree(e, b.Def, p.Scripts)
			if err != nil {
				log.Warn("behavior disabled", zap.Stringer("entity", e), zap.Stringer("behavior", b.Def), zap.Error(err))
				e.Remove(ecs.KindBehavior)
				return
			}
			b.Tree = &bhv.Retry{Child: &bhv.Repeat{Child: tree}}
			b.Tree.Start()
		}

		if err := bhv.Err(b.Tree); err == nil {
			b.Tree.Update(dt)
		}

		if err := bhv.Err(b.Tree); err != nil {
			log.Warn("behavior script failed", zap.Stringer("entity", e), zap.Stringer("behavior", b.Def), zap.Error(err))
			e.Remove(ecs.KindBehavior)
		}
	})
}

func buildTree(e *ecs.Entity, def bhv.Def, scripts ScriptSource) (bhv.Node, error) {
	if scripts == nil {
		return nil, errors.New("no script source")
	}
	host := EntityHost(e)
	return bhv.Build(def, func(name string) (bhv.Node, error) {
		src, err := scripts(name)
		if err != nil {
			return nil, err
		}
		return bhv.NewScript(name, src, host)
	})
}

// EntityHost exposes an entity to behavior scripts:
//
//	host.position()       -> [x, y]
//	host.velocity()       -> [x, y]
//	host.move(dx, dy)     moves by dx, dy tiles
//	host.push(vx, vy)     adds to the velocity
//	host.transition(name) switches animation clip
//	host.animation()      -> active clip name
//	host.flip()           mirrors the sprite
func EntityHost(e *ecs.Entity) map[string]tengo.CallableFunc {
	return map[string]tengo.CallableFunc{
		"position": func(args ...tengo.Object) (tengo.Object, error) {
			pos, ok := ecs.Get[*component.Position](e)
			if !ok {
				return tengo.UndefinedValue, nil
			}
			return pair(pos.X, pos.Y), nil
		},
		"velocity": func(args ...tengo.Object) (tengo.Object, error) {
			vel, ok := ecs.Get[*component.Velocity](e)
			if !ok {
				return tengo.UndefinedValue, nil
			}
			return pair(vel.X, vel.Y), nil
		},
		"move": func(args ...tengo.Object) (tengo.Object, error) {
			dx, dy, err := twoFloats(args)
			if err != nil {
				return nil, err
			}
			if pos, ok := ecs.Get[*component.Position](e); ok {
				pos.X += dx
				pos.Y += dy
			}
			return tengo.UndefinedValue, nil
		},
		"push": func(args ...tengo.Object) (tengo.Object, error) {
			vx, vy, err := twoFloats(args)
			if err != nil {
				return nil, err
			}
			if vel, ok := ecs.Get[*component.Velocity](e); ok {
				vel.X += vx
				vel.Y += vy
			}
			return tengo.UndefinedValue, nil
		},
		"transition": func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 1 {
				return nil, tengo.ErrWrongNumArguments
			}
			name, ok := tengo.ToString(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "name", Expected: "string", Found: args[0].TypeName()}
			}
			if anim, ok := ecs.Get[*component.Animator](e); ok {
				anim.Transition(name)
			}
			return tengo.UndefinedValue, nil
		},
		"animation": func(args ...tengo.Object) (tengo.Object, error) {
			anim, ok := ecs.Get[*component.Animator](e)
			if !ok {
				return tengo.UndefinedValue, nil
			}
			return &tengo.String{Value: anim.Active}, nil
		},
		"flip": func(args ...tengo.Object) (tengo.Object, error) {
			if sprite, ok := ecs.Get[*component.Sprite](e); ok {
				sprite.Flip = !sprite.Flip
			}
			return tengo.UndefinedValue, nil
		},
	}
}

func pair(x, y float64) tengo.Object {
	return &tengo.ImmutableArray{Value: []tengo.Object{&tengo.Float{Value: x}, &tengo.Float{Value: y}}}
}

func twoFloats(args []tengo.Object) (float64, float64, error) {
	if len(args) != 2 {
		return 0, 0, tengo.ErrWrongNumArguments
	}
	a, ok := bhv.ToFloat(args[0])
	if !ok {
		return 0, 0, tengo.ErrInvalidArgumentType{Name: "first", Expected: "number", Found: args[0].TypeName()}
	}
	b, ok := bhv.ToFloat(args[1])
	if !ok {
		return 0, 0, tengo.ErrInvalidArgumentType{Name: "second", Expected: "number", Found: args[1].TypeName()}
	}
	return a, b, nil
}
