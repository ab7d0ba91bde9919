package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/vectorgameexperts/velloplay/components"
	cfg "github.com/vectorgameexperts/velloplay/config"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateInput polls the mouse and publishes it as the Pointer singleton,
// in world coordinates. Must run before the animation pipeline. A cursor
// outside the window publishes no position, which downstream stages treat
// as "no pointer this tick".
func UpdateInput(e *ecs.ECS) {
	pointer := getOrCreatePointer(e)
	pointer.Position = nil
	pointer.JustPressed = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	x, y := ebiten.CursorPosition()
	if x < 0 || y < 0 || x >= cfg.C.Width || y >= cfg.C.Height {
		return
	}

	pos := dmath.Vec2{X: float64(x), Y: float64(y)}
	if camEntry, ok := components.Camera.First(e.World); ok {
		view := components.Camera.Get(camEntry).ViewMatrix
		if !view.IsInvertible() {
			return
		}
		view.Invert()
		pos.X, pos.Y = view.Apply(pos.X, pos.Y)
	}
	pointer.Position = &pos
}

func getOrCreatePointer(e *ecs.ECS) *components.PointerData {
	entry, ok := components.Pointer.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Pointer))
	}
	return components.Pointer.Get(entry)
}
