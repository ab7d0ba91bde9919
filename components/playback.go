package components

import (
	"math"

	"github.com/vectorgameexperts/velloplay/assets"
	"github.com/yohamta/donburi"
)

// PlaybackDirection is the direction to play the segments of an animation.
type PlaybackDirection int

const (
	// DirectionNormal plays first frame to last frame.
	DirectionNormal PlaybackDirection = 1
	// DirectionReverse plays last frame to first frame.
	DirectionReverse PlaybackDirection = -1
)

// PlaybackLoopBehavior controls whether playback loops, and how often.
// The zero value loops forever.
type PlaybackLoopBehavior struct {
	capped bool
	amount int
}

// Loop loops continuously.
func Loop() PlaybackLoopBehavior {
	return PlaybackLoopBehavior{}
}

// LoopAmount completes n loops, then holds the final frame.
func LoopAmount(n int) PlaybackLoopBehavior {
	return PlaybackLoopBehavior{capped: true, amount: n}
}

// DoNotLoop plays through once. Equivalent to LoopAmount(0).
func DoNotLoop() PlaybackLoopBehavior {
	return LoopAmount(0)
}

// LoopCap returns the number of completed loops permitted, or -1 when
// looping is unbounded.
func (b PlaybackLoopBehavior) LoopCap() float64 {
	if !b.capped {
		return -1
	}
	return float64(b.amount)
}

// Segment is a half-open frame range [Start, End).
type Segment struct {
	Start float64
	End   float64
}

// PlaybackSettings adjusts how one animation segment plays. Add it to an
// entity directly, or attach per-state overrides via AnimationState.
type PlaybackSettings struct {
	// Autoplay starts playback automatically when first encountered.
	Autoplay bool
	// Direction of playback.
	Direction PlaybackDirection
	// Speed multiplier. 1 is normal speed. Applied to time integration
	// as-is: zero freezes the playhead and negative values run it
	// backwards. No clamping is done.
	Speed float64
	// Intermission is idle time appended after each loop, counted in
	// frames. It participates directly in playhead arithmetic, which is
	// why it is not a wall-clock duration.
	Intermission float64
	// Looping behavior.
	Looping PlaybackLoopBehavior
	// Segments restricts playback to a frame range, clamped against the
	// composition's own bounds. Start > End collapses to an empty range.
	Segments Segment
}

// DefaultPlaybackSettings plays the whole composition forward, looping,
// at normal speed.
func DefaultPlaybackSettings() PlaybackSettings {
	return PlaybackSettings{
		Autoplay:  true,
		Direction: DirectionNormal,
		Speed:     1,
		Segments:  Segment{Start: math.Inf(-1), End: math.Inf(1)},
	}
}

// EffectiveSegment clamps the configured segment against the composition.
func (s PlaybackSettings) EffectiveSegment(c assets.Composition) (start, end float64) {
	start = math.Max(s.Segments.Start, c.FrameStart)
	end = math.Min(s.Segments.End, c.FrameEnd)
	return start, end
}

var Playback = donburi.NewComponentType[PlaybackSettings]()
