package systems

import (
	"fmt"

	"github.com/vectorgameexperts/velloplay/assets"
	"github.com/vectorgameexperts/velloplay/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// RunTransitions evaluates the current state's transition rules for every
// player that is not stopped. Rules run in declared order and the first
// match wins; at most one transition is armed per player per tick.
func RunTransitions(e *ecs.ECS) {
	store := assetStore(e)
	if store == nil {
		return
	}
	t := getOrCreateTime(e)

	var pointer *components.PointerData
	if entry, ok := components.Pointer.First(e.World); ok {
		pointer = components.Pointer.Get(entry)
	}

	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.Stopped {
			return
		}
		if !entry.HasComponent(components.Asset) {
			return
		}
		asset := store.Get(components.Asset.Get(entry).Handle)
		if asset == nil {
			// Not ready yet; evaluate again next tick.
			return
		}
		settings := playbackOrDefault(entry)

		isInside := false
		if pointer != nil && pointer.Position != nil && entry.HasComponent(components.Transform) {
			transform := components.Transform.Get(entry)
			isInside = pointerInside(asset, transform, *pointer.Position)
		}
		wasHovered := player.Hovered
		if isInside {
			player.Hovered = true
		}

		state := player.State()
		for _, tr := range state.Transitions {
			fired := false
			switch tr.Trigger {
			case components.TriggerOnAfter:
				if shownAt, shown := asset.Data.FirstFrame(); shown && t.Elapsed-shownAt >= tr.Secs {
					fired = true
				}
			case components.TriggerOnComplete:
				lottie, ok := asset.Data.(*assets.Lottie)
				if !ok {
					panic(fmt.Sprintf("invalid state %q: OnComplete is only valid for frame-based assets, use OnAfter", state.ID))
				}
				if lottie.RenderedFrames >= lottie.Composition.Length()+settings.Intermission {
					fired = true
				}
			case components.TriggerOnMouseEnter:
				fired = isInside
			case components.TriggerOnMouseClick:
				fired = isInside && pointer != nil && pointer.JustPressed
			case components.TriggerOnMouseLeave:
				if wasHovered && !isInside {
					player.Hovered = false
					fired = true
				}
			case components.TriggerOnShow:
				_, fired = asset.Data.FirstFrame()
			}
			if fired {
				player.NextState = tr.State
				break
			}
		}
	})
}

// pointerInside transforms the pointer's world position into the asset's
// local content space and tests it against the content rectangle. The
// content rectangle is top-left-origin with y growing downward against a
// y-up local frame, hence the -Height..0 band.
func pointerInside(asset *assets.VelloAsset, transform *components.TransformData, p dmath.Vec2) bool {
	world := transform.GeoM
	if !world.IsInvertible() {
		return false
	}
	world.Invert()
	x, y := world.Apply(p.X, p.Y)
	x, y = asset.LocalTransformCenter.Apply(x, y)
	return x >= 0 && x <= asset.Width && y >= -asset.Height && y <= 0
}
