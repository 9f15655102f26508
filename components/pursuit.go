package components

import "github.com/yohamta/donburi"

// PursuitData binds a pursuer to the entity it chases.
type PursuitData struct {
	Target donburi.Entity
}

var Pursuit = donburi.NewComponentType[PursuitData]()
