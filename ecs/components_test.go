package ecs_test

import "github.com/milk9111/worldsaround/ecs"

type testPosition struct {
	X, Y float64
}

func (*testPosition) Kind() ecs.Kind { return ecs.KindPosition }

type testVelocity struct {
	X, Y float64
}

func (*testVelocity) Kind() ecs.Kind { return ecs.KindVelocity }

type testSize struct {
	W, H int
}

func (*testSize) Kind() ecs.Kind { return ecs.KindSize }

type testEnemy struct{}

func (*testEnemy) Kind() ecs.Kind { return ecs.KindEnemy }
