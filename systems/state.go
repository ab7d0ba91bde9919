package systems

import (
	"fmt"
	"log"
	"math"

	"github.com/vectorgameexperts/velloplay/assets"
	"github.com/vectorgameexperts/velloplay/components"
	"github.com/vectorgameexperts/velloplay/playhead"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SetState commits pending transitions. The commit is two-phase: resolve
// the target state, verify its asset is ready, then mutate. If the asset
// is not ready the pending transition is re-armed unchanged and retried
// next tick, so a half-committed state is never observable.
func SetState(e *ecs.ECS) {
	store := assetStore(e)
	if store == nil {
		return
	}
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		player := components.Player.Get(entry)
		if player.NextState == "" {
			return
		}
		next := player.NextState
		player.NextState = ""
		log.Printf("animation controller transitioning to=%s", next)

		// Entering a state always resets run status; autoplay on the
		// target re-arms Playing on the next advance stage.
		player.Started = false
		player.Playing = false

		target, ok := player.States[next]
		if !ok {
			panic(fmt.Sprintf("state not found: %q", next))
		}

		if !entry.HasComponent(components.Asset) {
			return
		}
		binding := components.Asset.Get(entry)
		targetHandle := target.Asset
		if targetHandle == 0 {
			targetHandle = binding.Handle
		}

		asset := store.Get(targetHandle)
		if asset == nil {
			log.Printf("asset not ready for transition, re-queueing")
			player.NextState = next
			return
		}

		changedAssets := binding.Handle != targetHandle
		binding.Handle = targetHandle

		settings := playbackOrDefault(entry)

		switch data := asset.Data.(type) {
		case *assets.Lottie:
			resetPlayhead(player, target, data, settings, changedAssets)
		default:
			asset.Data.ClearFirstFrame()
		}

		if target.Theme != nil {
			theme := target.Theme.Clone()
			if entry.HasComponent(components.Theme) {
				components.Theme.SetValue(entry, theme)
			} else {
				donburi.Add(entry, components.Theme, &theme)
			}
		}

		newSettings := components.DefaultPlaybackSettings()
		if target.PlaybackSettings != nil {
			newSettings = *target.PlaybackSettings
		}
		if entry.HasComponent(components.Playback) {
			components.Playback.SetValue(entry, newSettings)
		} else {
			donburi.Add(entry, components.Playback, &newSettings)
		}

		player.CurrentState = next
	})
}

// resetPlayhead decides where the playhead lands in the target state.
// Reset flags and asset swaps force frame zero. Otherwise the playhead is
// remapped so the visible frame carries over: a direction flip mirrors the
// position about the composition end, and a same-direction hand-off
// collapses the accumulated loop count since the new state counts its own
// loops from scratch.
func resetPlayhead(player *components.LottiePlayer, target *components.AnimationState, data *assets.Lottie, settings components.PlaybackSettings, changedAssets bool) {
	// Where the playhead logically sits within its cycle, under the
	// outgoing settings. Must be computed before any mutation below.
	start, end := settings.EffectiveSegment(data.Composition)
	oldPlayhead := playhead.Bounds(
		data.RenderedFrames, start, end, settings.Intermission,
		settings.Direction == components.DirectionReverse, settings.Looping.LoopCap())

	data.ClearFirstFrame()

	if player.State().ResetPlayheadOnTransition || target.ResetPlayheadOnStart || changedAssets {
		data.RenderedFrames = 0
		return
	}

	oldDirection := settings.Direction
	newDirection := components.DirectionNormal
	if target.PlaybackSettings != nil {
		newDirection = target.PlaybackSettings.Direction
	}
	switch {
	case oldDirection == components.DirectionNormal && newDirection == components.DirectionReverse:
		data.RenderedFrames = math.Min(
			data.Composition.FrameEnd-oldPlayhead, playhead.Prev(data.Composition.FrameEnd))
	case oldDirection == components.DirectionReverse && newDirection == components.DirectionNormal:
		data.RenderedFrames = oldPlayhead
	default:
		data.RenderedFrames = math.Mod(data.RenderedFrames, data.Composition.Length())
		data.RenderedFrames = math.Min(data.RenderedFrames, playhead.Prev(data.Composition.FrameEnd))
	}
}
