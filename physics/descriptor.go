package physics

import (
	"fmt"

	"github.com/google/uuid"
)

// Shape is the collision shape a generated body was built with.
type Shape int

const (
	ShapeCircle Shape = iota
	ShapeBox
	ShapeGround
)

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "Circle"
	case ShapeBox:
		return "Box"
	case ShapeGround:
		return "Ground"
	}
	return "UnknownShape"
}

// BodyDescriptor is set as user data on every generated body so contact
// callbacks and debug views can tell bodies apart.
type BodyDescriptor struct {
	Shape Shape
	ID    string
}

func MakeBodyDescriptor(shape Shape) BodyDescriptor {
	return BodyDescriptor{
		Shape: shape,
		ID:    uuid.NewString(),
	}
}

func (d BodyDescriptor) String() string {
	return fmt.Sprintf("%s(%s)", d.Shape, d.ID)
}
