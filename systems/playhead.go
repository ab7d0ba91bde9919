package systems

import (
	"github.com/vectorgameexperts/velloplay/assets"
	"github.com/vectorgameexperts/velloplay/components"
	"github.com/vectorgameexperts/velloplay/playhead"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// AdvancePlayheads integrates the tick's time step into every asset's
// playhead, exactly once per asset even when several entities share a
// handle. An asset with no controlling player advances unconditionally
// under default settings; a controlled one honors stop/pause/autoplay and
// records the first-shown timestamp when playback actually begins.
func AdvancePlayheads(e *ecs.ECS) {
	store := assetStore(e)
	if store == nil {
		return
	}
	t := getOrCreateTime(e)
	advanced := map[assets.Handle]bool{}

	components.Asset.Each(e.World, func(entry *donburi.Entry) {
		handle := components.Asset.Get(entry).Handle
		if advanced[handle] {
			return
		}
		asset := store.Get(handle)
		if asset == nil {
			return
		}
		advanced[handle] = true

		settings := playbackOrDefault(entry)

		lottie, frameBased := asset.Data.(*assets.Lottie)
		if !frameBased {
			// Static assets only track when they were first shown.
			asset.Data.MarkFirstFrame(t.Elapsed)
			return
		}

		if !entry.HasComponent(components.Player) {
			// A raw, uncontrolled asset still plays.
			lottie.RenderedFrames += playhead.Advance(t.Delta, settings.Speed, lottie.Composition.FrameRate)
			return
		}

		player := components.Player.Get(entry)
		if player.Stopped {
			return
		}
		if settings.Autoplay && !player.Started {
			player.Playing = true
		}
		if !player.Playing {
			return
		}

		if _, shown := lottie.FirstFrame(); !shown {
			lottie.MarkFirstFrame(t.Elapsed)
			player.Started = true
		}

		lottie.RenderedFrames += playhead.Advance(t.Delta, settings.Speed, lottie.Composition.FrameRate)
	})
}
