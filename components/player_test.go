package components

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vectorgameexperts/velloplay/assets"
)

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func compBounds(start, end float64) assets.Composition {
	return assets.Composition{FrameStart: start, FrameEnd: end, FrameRate: 60}
}

func TestNewPlayerArmsInitialTransition(t *testing.T) {
	p := NewPlayer("idle")
	// The very first tick performs a "transition" into the initial state.
	assert.Equal(t, "idle", p.NextState)
	assert.Equal(t, "idle", p.CurrentState)
	assert.False(t, p.IsPlaying())
	assert.False(t, p.IsStopped())
}

func TestBuilder(t *testing.T) {
	state := NewState("spin").
		WithPlaybackSettings(DefaultPlaybackSettings()).
		WithTheme(NewTheme().Add("background", rgba(1, 2, 3))).
		WithTransition(OnComplete("idle")).
		WithResetPlayheadOnStart(true).
		WithResetPlayheadOnTransition(true)

	require.NotNil(t, state.PlaybackSettings)
	require.NotNil(t, state.Theme)
	require.Len(t, state.Transitions, 1)
	assert.Equal(t, TriggerOnComplete, state.Transitions[0].Trigger)
	assert.Equal(t, "idle", state.Transitions[0].State)
	assert.True(t, state.ResetPlayheadOnStart)
	assert.True(t, state.ResetPlayheadOnTransition)
}

func TestValidate(t *testing.T) {
	p := NewPlayer("idle").
		WithState(NewState("idle").WithTransition(OnMouseEnter("hover"))).
		WithState(NewState("hover").WithTransition(OnMouseLeave("idle")))
	assert.NoError(t, p.Validate())
}

func TestValidateUnknownInitialState(t *testing.T) {
	p := NewPlayer("missing").WithState(NewState("idle"))
	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownState)
}

func TestValidateUnknownTransitionTarget(t *testing.T) {
	p := NewPlayer("idle").
		WithState(NewState("idle").WithTransition(OnShow("nowhere")))
	err := p.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownState)
	assert.Contains(t, err.Error(), "OnShow")
}

func TestStatePanicsOnMissingKey(t *testing.T) {
	p := NewPlayer("gone")
	assert.Panics(t, func() { p.State() })
}

func TestAllStates(t *testing.T) {
	p := NewPlayer("a").
		WithState(NewState("a")).
		WithState(NewState("b"))
	assert.Len(t, p.AllStates(), 2)
}

func TestPlayPauseStop(t *testing.T) {
	p := NewPlayer("idle")

	p.Play()
	assert.True(t, p.IsPlaying())
	assert.False(t, p.IsStopped())

	p.Pause()
	assert.False(t, p.IsPlaying())
	assert.False(t, p.IsStopped())

	p.Stop()
	assert.True(t, p.IsStopped())

	// Play un-stops.
	p.Play()
	assert.False(t, p.IsStopped())
	assert.True(t, p.IsPlaying())
}

func TestTogglePlay(t *testing.T) {
	p := NewPlayer("idle")
	p.TogglePlay()
	assert.True(t, p.IsPlaying())
	p.TogglePlay()
	assert.False(t, p.IsPlaying())
	// A stopped player toggles back to playing, not paused.
	p.Stop()
	p.TogglePlay()
	assert.True(t, p.IsPlaying())
	assert.False(t, p.IsStopped())
}

func TestResetArmsInitialStateAndSeek(t *testing.T) {
	p := NewPlayer("idle").WithState(NewState("idle")).WithState(NewState("other"))
	p.Transition("other")
	p.Reset()
	assert.Equal(t, "idle", p.NextState)
	require.NotNil(t, p.PendingSeekFrame)
	assert.Equal(t, -math.MaxFloat64, *p.PendingSeekFrame)
}

func TestPendingRequests(t *testing.T) {
	p := NewPlayer("idle")
	p.Seek(42)
	p.SetSpeed(2)
	p.SetIntermission(30)
	require.NotNil(t, p.PendingSeekFrame)
	require.NotNil(t, p.PendingSpeed)
	require.NotNil(t, p.PendingIntermission)
	assert.Equal(t, 42.0, *p.PendingSeekFrame)
	assert.Equal(t, 2.0, *p.PendingSpeed)
	assert.Equal(t, 30.0, *p.PendingIntermission)
}

func TestLoopCap(t *testing.T) {
	assert.Equal(t, -1.0, Loop().LoopCap())
	assert.Equal(t, 0.0, DoNotLoop().LoopCap())
	assert.Equal(t, 5.0, LoopAmount(5).LoopCap())
}

func TestEffectiveSegmentClamps(t *testing.T) {
	c := compBounds(10, 110)
	s := DefaultPlaybackSettings()
	start, end := s.EffectiveSegment(c)
	assert.Equal(t, 10.0, start)
	assert.Equal(t, 110.0, end)

	s.Segments = Segment{Start: 20, End: 90}
	start, end = s.EffectiveSegment(c)
	assert.Equal(t, 20.0, start)
	assert.Equal(t, 90.0, end)
}
