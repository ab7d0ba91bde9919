package components

import (
	"github.com/yohamta/donburi"
	dmath "github.com/yohamta/donburi/features/math"
)

// PointerData is the pointer state for the current tick, reduced to what
// transition evaluation needs. Singleton, written by the input system.
type PointerData struct {
	// Position is the pointer's world position, or nil when no pointer is
	// available this tick.
	Position *dmath.Vec2
	// JustPressed reports a left-button press that began this tick.
	JustPressed bool
}

var Pointer = donburi.NewComponentType[PointerData]()
