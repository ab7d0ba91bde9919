// Package systems implements the animation tick pipeline as donburi
// systems. The four stages must run in registration order each tick:
// pending player inputs fold into the playhead before it advances, the
// playhead advances before transitions read it, and transitions are
// decided before the commit stage consumes them.
package systems

import (
	"github.com/vectorgameexperts/velloplay/assets"
	"github.com/vectorgameexperts/velloplay/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Register adds the animation pipeline to e in the required stage order.
func Register(e *ecs.ECS) {
	e.AddSystem(ApplyPlayerInputs)
	e.AddSystem(AdvancePlayheads)
	e.AddSystem(RunTransitions)
	e.AddSystem(SetState)
}

// AdvanceTime folds dt into the Time singleton. The host scene calls this
// once per tick, before the pipeline runs. A dt of zero is a valid tick;
// time-dependent stages simply see no progress.
func AdvanceTime(e *ecs.ECS, dt float64) {
	if dt < 0 {
		dt = 0
	}
	t := getOrCreateTime(e)
	t.Delta = dt
	t.Elapsed += dt
}

func getOrCreateTime(e *ecs.ECS) *components.TimeData {
	entry, ok := components.Time.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Time))
	}
	return components.Time.Get(entry)
}

// assetStore returns the scene's asset arena, or nil before one is bound.
func assetStore(e *ecs.ECS) *assets.Store {
	entry, ok := components.AssetStore.First(e.World)
	if !ok {
		return nil
	}
	return components.AssetStore.Get(entry).Assets
}

// playbackOrDefault returns a copy of the entity's playback settings, or
// defaults when the entity carries none.
func playbackOrDefault(entry *donburi.Entry) components.PlaybackSettings {
	if entry.HasComponent(components.Playback) {
		return *components.Playback.Get(entry)
	}
	return components.DefaultPlaybackSettings()
}
