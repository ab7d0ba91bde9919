package systems

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/vectorgameexperts/velloplay/assets"
	"github.com/vectorgameexperts/velloplay/components"
	"github.com/vectorgameexperts/velloplay/playhead"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font/basicfont"
)

var (
	cardColor     = color.RGBA{R: 40, G: 44, B: 52, A: 255}
	progressColor = color.RGBA{R: 97, G: 175, B: 239, A: 255}
	labelColor    = color.RGBA{R: 220, G: 223, B: 228, A: 255}
)

// DrawAnimations renders a placeholder card per asset entity: the asset's
// bounds, the resolved playhead as a progress bar, and the current state
// id. Rasterizing actual vector content is a collaborator concern; this
// exists so the demo makes the pipeline observable.
func DrawAnimations(e *ecs.ECS, screen *ebiten.Image) {
	store := assetStore(e)
	if store == nil {
		return
	}
	components.Asset.Each(e.World, func(entry *donburi.Entry) {
		asset := store.Get(components.Asset.Get(entry).Handle)
		if asset == nil || !entry.HasComponent(components.Transform) {
			return
		}
		transform := components.Transform.Get(entry)
		// Card top-left in world space.
		x, y := transform.GeoM.Apply(-asset.Width/2, -asset.Height/2)

		fill := cardColor
		if entry.HasComponent(components.Theme) {
			if c, ok := components.Theme.Get(entry).Color("background"); ok {
				fill = c
			}
		}
		vector.DrawFilledRect(screen, float32(x), float32(y), float32(asset.Width), float32(asset.Height), fill, false)

		lottie, ok := asset.Data.(*assets.Lottie)
		if !ok {
			return
		}

		settings := playbackOrDefault(entry)
		start, end := settings.EffectiveSegment(lottie.Composition)
		frame := playhead.Bounds(
			lottie.RenderedFrames, start, end, settings.Intermission,
			settings.Direction == components.DirectionReverse, settings.Looping.LoopCap())

		progress := 0.0
		if end > start {
			progress = (frame - start) / (end - start)
		}
		barY := y + asset.Height - 8
		vector.DrawFilledRect(screen, float32(x+4), float32(barY), float32((asset.Width-8)*progress), 4, progressColor, false)

		label := fmt.Sprintf("frame %.1f", frame)
		if entry.HasComponent(components.Player) {
			player := components.Player.Get(entry)
			label = fmt.Sprintf("%s  frame %.1f", player.CurrentState, frame)
		}
		text.Draw(screen, label, basicfont.Face7x13, int(x+4), int(y+16), labelColor)
	})
}
