package systems

import (
	"github.com/vectorgameexperts/velloplay/assets"
	"github.com/vectorgameexperts/velloplay/components"
	"github.com/vectorgameexperts/velloplay/playhead"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ApplyPlayerInputs consumes the one-shot requests made through the player
// API (Seek, SetIntermission, SetSpeed) and folds them into the playhead.
// Intermission is applied before seek: the seek's loop-preservation math
// depends on the already-updated intermission. Speed is a pure assignment
// and goes last.
func ApplyPlayerInputs(e *ecs.ECS) {
	store := assetStore(e)
	if store == nil {
		return
	}
	components.Player.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.Playback) || !entry.HasComponent(components.Asset) {
			return
		}
		player := components.Player.Get(entry)
		settings := components.Playback.Get(entry)

		asset := store.Get(components.Asset.Get(entry).Handle)
		if asset == nil {
			return
		}
		lottie, ok := asset.Data.(*assets.Lottie)
		if !ok {
			return
		}

		if player.PendingIntermission != nil {
			next := *player.PendingIntermission
			player.PendingIntermission = nil
			lottie.RenderedFrames = playhead.ApplyIntermission(
				lottie.RenderedFrames, lottie.Composition.Length(), settings.Intermission, next)
			settings.Intermission = next
		}
		if player.PendingSeekFrame != nil {
			frame := *player.PendingSeekFrame
			player.PendingSeekFrame = nil
			start, end := settings.EffectiveSegment(lottie.Composition)
			lottie.RenderedFrames = playhead.ApplySeek(
				lottie.RenderedFrames, frame, start, end, settings.Intermission,
				settings.Direction == components.DirectionReverse)
		}
		if player.PendingSpeed != nil {
			settings.Speed = *player.PendingSpeed
			player.PendingSpeed = nil
		}
	})
}
