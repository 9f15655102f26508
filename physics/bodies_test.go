package physics

import (
	"math"
	"testing"

	"github.com/ByteArena/box2d"
	cfg "github.com/automoto/jfighter/config"
)

func near(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

func checkFixture(t *testing.T, body *box2d.B2Body, want Material) *box2d.B2Fixture {
	t.Helper()
	f := body.GetFixtureList()
	if f == nil {
		t.Fatal("body has no fixture")
	}
	if f.GetNext() != nil {
		t.Error("body has more than one fixture")
	}
	if f.GetDensity() != want.Density {
		t.Errorf("density = %v, want %v", f.GetDensity(), want.Density)
	}
	if f.GetFriction() != want.Friction {
		t.Errorf("friction = %v, want %v", f.GetFriction(), want.Friction)
	}
	if f.GetRestitution() != want.Restitution {
		t.Errorf("restitution = %v, want %v", f.GetRestitution(), want.Restitution)
	}
	return f
}

func TestCreateCircleBody(t *testing.T) {
	cfg.Reset()
	world := NewWorld()

	body := CreateCircleBody(world, 12, 34)

	if body.GetType() != box2d.B2BodyType.B2_dynamicBody {
		t.Errorf("body type = %d, want dynamic", body.GetType())
	}
	pos := body.GetPosition()
	if pos.X != 12 || pos.Y != 34 {
		t.Errorf("position = (%v, %v), want (12, 34)", pos.X, pos.Y)
	}
	if !near(body.GetMass(), 100, 1e-9) {
		t.Errorf("mass = %v, want 100", body.GetMass())
	}

	f := checkFixture(t, body, Material{Density: 10, Friction: 0.4, Restitution: 1})
	circle, ok := f.GetShape().(*box2d.B2CircleShape)
	if !ok {
		t.Fatalf("shape = %T, want circle", f.GetShape())
	}
	if circle.M_radius != 6 {
		t.Errorf("radius = %v, want 6", circle.M_radius)
	}

	desc, ok := body.GetUserData().(BodyDescriptor)
	if !ok || desc.Shape != ShapeCircle {
		t.Errorf("user data = %#v, want circle descriptor", body.GetUserData())
	}
	if world.GetBodyCount() != 1 {
		t.Errorf("body count = %d, want 1", world.GetBodyCount())
	}
}

func TestCreateBoxBody(t *testing.T) {
	cfg.Reset()
	world := NewWorld()

	body := CreateBoxBody(world, -5, 8)

	if body.GetType() != box2d.B2BodyType.B2_dynamicBody {
		t.Errorf("body type = %d, want dynamic", body.GetType())
	}
	pos := body.GetPosition()
	if pos.X != -5 || pos.Y != 8 {
		t.Errorf("position = (%v, %v), want (-5, 8)", pos.X, pos.Y)
	}
	if !near(body.GetMass(), 100, 1e-9) {
		t.Errorf("mass = %v, want 100", body.GetMass())
	}

	f := checkFixture(t, body, Material{Density: 10, Friction: 0.4, Restitution: 0.1})
	box, ok := f.GetShape().(*box2d.B2PolygonShape)
	if !ok {
		t.Fatalf("shape = %T, want polygon", f.GetShape())
	}
	if box.M_count != 4 {
		t.Fatalf("vertex count = %d, want 4", box.M_count)
	}
	for i := 0; i < box.M_count; i++ {
		v := box.M_vertices[i]
		if math.Abs(v.X) != 10 || math.Abs(v.Y) != 10 {
			t.Errorf("vertex %d = (%v, %v), want half extents 10", i, v.X, v.Y)
		}
	}

	desc, ok := body.GetUserData().(BodyDescriptor)
	if !ok || desc.Shape != ShapeBox {
		t.Errorf("user data = %#v, want box descriptor", body.GetUserData())
	}
}

func TestBodyIDsAreUnique(t *testing.T) {
	cfg.Reset()
	world := NewWorld()

	a := CreateCircleBody(world, 0, 0).GetUserData().(BodyDescriptor)
	b := CreateBoxBody(world, 0, 0).GetUserData().(BodyDescriptor)
	if a.ID == "" || a.ID == b.ID {
		t.Errorf("descriptor ids %q and %q are not unique", a.ID, b.ID)
	}
}

func TestMaterialFollowsConfig(t *testing.T) {
	cfg.Reset()
	defer cfg.Reset()

	cfg.Physics.Restitution = 0.5
	cfg.Physics.BodyMass = 42
	world := NewWorld()

	body := CreateCircleBody(world, 0, 0)
	if got := body.GetFixtureList().GetRestitution(); got != 0.5 {
		t.Errorf("restitution = %v, want 0.5", got)
	}
	if !near(body.GetMass(), 42, 1e-9) {
		t.Errorf("mass = %v, want 42", body.GetMass())
	}
}

func TestBodiesDoNotRotate(t *testing.T) {
	cfg.Reset()

	tests := []struct {
		name   string
		create func(*box2d.B2World, float64, float64) *box2d.B2Body
	}{
		{"circle", CreateCircleBody},
		{"box", CreateBoxBody},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			world := NewWorld()
			body := tt.create(world, 0, 20)

			if i := body.GetInertia(); i != 0 {
				t.Errorf("inertia = %v, want 0", i)
			}

			body.ApplyAngularImpulse(1000, true)
			Step(world)

			if w := body.GetAngularVelocity(); w != 0 {
				t.Errorf("angular velocity after impulse = %v, want 0", w)
			}
			if a := body.GetAngle(); a != 0 {
				t.Errorf("angle after impulse = %v, want 0", a)
			}
			if !near(body.GetMass(), 100, 1e-9) {
				t.Errorf("mass = %v, want 100", body.GetMass())
			}
		})
	}
}

func TestBodiesFallUnderGravity(t *testing.T) {
	cfg.Reset()
	world := NewWorld()
	body := CreateBoxBody(world, 0, 50)

	for i := 0; i < 60; i++ {
		Step(world)
	}

	if y := body.GetPosition().Y; y >= 50 {
		t.Errorf("y after one second = %v, want below 50", y)
	}
	if vy := body.GetLinearVelocity().Y; vy >= 0 {
		t.Errorf("vertical velocity = %v, want negative", vy)
	}
}

func TestBoxSettlesOnGround(t *testing.T) {
	cfg.Reset()
	world := NewWorld()
	CreateGround(world, 200)
	body := CreateBoxBody(world, 100, 30)

	for i := 0; i < 600; i++ {
		Step(world)
	}

	if y := body.GetPosition().Y; !near(y, cfg.Physics.BoxHalfHeight, 0.5) {
		t.Errorf("resting y = %v, want about %v", y, cfg.Physics.BoxHalfHeight)
	}
}

func TestCircleBouncesOffGround(t *testing.T) {
	cfg.Reset()
	world := NewWorld()
	CreateGround(world, 200)
	body := CreateCircleBody(world, 100, 30)

	bounced := false
	for i := 0; i < 600 && !bounced; i++ {
		Step(world)
		bounced = body.GetLinearVelocity().Y > 0
	}
	if !bounced {
		t.Error("circle with full restitution never bounced")
	}
}

func TestScreenConversion(t *testing.T) {
	cfg.Reset()

	x, y := ToScreen(box2d.MakeB2Vec2(10, 0))
	if x != 40 || y != float64(cfg.C.Height) {
		t.Errorf("ToScreen(10, 0) = (%v, %v)", x, y)
	}

	wx, wy := ToWorld(x, y)
	if wx != 10 || wy != 0 {
		t.Errorf("ToWorld round trip = (%v, %v), want (10, 0)", wx, wy)
	}
}
