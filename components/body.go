package components

import (
	"github.com/ByteArena/box2d"
	"github.com/automoto/jfighter/physics"
	"github.com/yohamta/donburi"
)

// BodyData links an entity to its rigid body. X, Y and Angle are the body
// transform in screen space, refreshed after every physics step.
type BodyData struct {
	Body  *box2d.B2Body
	Shape physics.Shape
	X, Y  float64
	Angle float64
}

var Body = donburi.NewComponentType[BodyData]()

type PhysicsWorldData struct {
	World *box2d.B2World
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()
