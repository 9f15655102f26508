package physics

import (
	"github.com/ByteArena/box2d"
	cfg "github.com/automoto/jfighter/config"
)

// Material is the set of fixture properties shared by generated bodies.
type Material struct {
	Density     float64 // kg/m^2
	Friction    float64 // 0-1
	Restitution float64 // 0-1
}

// CircleMaterial returns the configured material for circle bodies.
func CircleMaterial() Material {
	return Material{
		Density:     cfg.Physics.Density,
		Friction:    cfg.Physics.Friction,
		Restitution: cfg.Physics.Restitution,
	}
}

// BoxMaterial returns the configured material for box bodies.
func BoxMaterial() Material {
	return Material{
		Density:     cfg.Physics.BoxDensity,
		Friction:    cfg.Physics.BoxFriction,
		Restitution: cfg.Physics.BoxRestitution,
	}
}

// CreateCircleBody adds a dynamic circle body at (x, y) in world meters.
func CreateCircleBody(world *box2d.B2World, x, y float64) *box2d.B2Body {
	circle := box2d.MakeB2CircleShape()
	circle.M_radius = cfg.Physics.CircleRadius

	return createDynamicBody(world, x, y, &circle, CircleMaterial(), ShapeCircle)
}

// CreateBoxBody adds a dynamic box body at (x, y) in world meters.
func CreateBoxBody(world *box2d.B2World, x, y float64) *box2d.B2Body {
	box := box2d.MakeB2PolygonShape()
	box.SetAsBox(cfg.Physics.BoxHalfWidth, cfg.Physics.BoxHalfHeight)

	return createDynamicBody(world, x, y, &box, BoxMaterial(), ShapeBox)
}

// CreateGround adds a static slab spanning width meters with its top at y = 0.
func CreateGround(world *box2d.B2World, width float64) *box2d.B2Body {
	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_staticBody
	bd.Position.Set(width/2, -1)
	body := world.CreateBody(&bd)

	slab := box2d.MakeB2PolygonShape()
	slab.SetAsBox(width/2, 1)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = &slab
	fd.Friction = cfg.Physics.Friction
	body.CreateFixtureFromDef(&fd)

	body.SetUserData(MakeBodyDescriptor(ShapeGround))
	return body
}

func createDynamicBody(world *box2d.B2World, x, y float64, shape box2d.B2ShapeInterface, m Material, kind Shape) *box2d.B2Body {
	bd := box2d.MakeB2BodyDef()
	bd.Type = box2d.B2BodyType.B2_dynamicBody
	bd.Position.Set(x, y)
	body := world.CreateBody(&bd)

	fd := box2d.MakeB2FixtureDef()
	fd.Shape = shape
	fd.Density = m.Density
	fd.Friction = m.Friction
	fd.Restitution = m.Restitution
	body.CreateFixtureFromDef(&fd)

	// The fixed mass replaces the one derived from density.
	SetMass(body, cfg.Physics.BodyMass)

	body.SetUserData(MakeBodyDescriptor(kind))
	return body
}

// SetMass overrides a body's mass. The rotational inertia is left at zero,
// so the body translates but never rotates.
func SetMass(body *box2d.B2Body, mass float64) {
	var current box2d.B2MassData
	body.GetMassData(&current)

	md := box2d.B2MassData{
		Mass:   mass,
		Center: current.Center,
	}
	body.SetMassData(&md)
}
