package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// ThemeData recolors named layers of a vector asset. Applied to the entity
// when a state carrying a theme override commits.
type ThemeData struct {
	Colors map[string]color.RGBA
}

var Theme = donburi.NewComponentType[ThemeData]()

func NewTheme() *ThemeData {
	return &ThemeData{Colors: map[string]color.RGBA{}}
}

// Add sets the color for a named layer.
func (t *ThemeData) Add(layer string, c color.RGBA) *ThemeData {
	t.Colors[layer] = c
	return t
}

// Color returns the override for a layer, if any.
func (t *ThemeData) Color(layer string) (color.RGBA, bool) {
	c, ok := t.Colors[layer]
	return c, ok
}

// Clone returns an independent copy, so per-entity edits don't leak into
// the state definition.
func (t *ThemeData) Clone() ThemeData {
	colors := make(map[string]color.RGBA, len(t.Colors))
	for k, v := range t.Colors {
		colors[k] = v
	}
	return ThemeData{Colors: colors}
}
