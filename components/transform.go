package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

// TransformData is the entity's world transform, used for hit-testing the
// pointer against the asset's local bounds.
type TransformData struct {
	GeoM ebiten.GeoM
}

var Transform = donburi.NewComponentType[TransformData]()

// CameraData maps world space onto the screen. Singleton; optional. When
// absent, screen coordinates are taken as world coordinates.
type CameraData struct {
	ViewMatrix ebiten.GeoM
}

var Camera = donburi.NewComponentType[CameraData]()
