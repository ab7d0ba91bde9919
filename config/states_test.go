package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vectorgameexperts/velloplay/assets"
	"github.com/vectorgameexperts/velloplay/components"
)

const machineYAML = `
initial: idle
states:
  - id: idle
    asset: spinner
    transitions:
      - on: mouse_enter
        to: hover
  - id: hover
    loop: none
    speed: 2
    direction: reverse
    intermission: 30
    segments: [10, 90]
    reset_on_enter: true
    transitions:
      - on: mouse_leave
        to: idle
      - on: after
        to: idle
        secs: 5
`

func testAssets() map[string]assets.Handle {
	store := assets.NewStore()
	return map[string]assets.Handle{
		"spinner": store.Add(&assets.VelloAsset{Data: &assets.Lottie{}}),
	}
}

func TestParseAndBuild(t *testing.T) {
	sm, err := ParseStateMachine([]byte(machineYAML))
	require.NoError(t, err)
	assert.Equal(t, "idle", sm.Initial)
	require.Len(t, sm.States, 2)

	player, err := sm.Build(testAssets())
	require.NoError(t, err)
	assert.Equal(t, "idle", player.InitialState)
	require.Len(t, player.States, 2)

	idle := player.States["idle"]
	require.NotNil(t, idle)
	assert.NotZero(t, idle.Asset)
	assert.Nil(t, idle.PlaybackSettings)
	require.Len(t, idle.Transitions, 1)
	assert.Equal(t, components.TriggerOnMouseEnter, idle.Transitions[0].Trigger)

	hover := player.States["hover"]
	require.NotNil(t, hover)
	assert.True(t, hover.ResetPlayheadOnStart)
	require.NotNil(t, hover.PlaybackSettings)
	assert.Equal(t, 2.0, hover.PlaybackSettings.Speed)
	assert.Equal(t, components.DirectionReverse, hover.PlaybackSettings.Direction)
	assert.Equal(t, 30.0, hover.PlaybackSettings.Intermission)
	assert.Equal(t, components.Segment{Start: 10, End: 90}, hover.PlaybackSettings.Segments)
	assert.Equal(t, 0.0, hover.PlaybackSettings.Looping.LoopCap())
	require.Len(t, hover.Transitions, 2)
	assert.Equal(t, 5.0, hover.Transitions[1].Secs)
}

func TestBuildRejectsUnknownTransitionTarget(t *testing.T) {
	sm, err := ParseStateMachine([]byte(`
initial: idle
states:
  - id: idle
    transitions:
      - on: show
        to: nowhere
`))
	require.NoError(t, err)
	_, err = sm.Build(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, components.ErrUnknownState)
}

func TestBuildRejectsUnknownInitialState(t *testing.T) {
	sm, err := ParseStateMachine([]byte("initial: ghost\nstates:\n  - id: idle\n"))
	require.NoError(t, err)
	_, err = sm.Build(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, components.ErrUnknownState)
}

func TestBuildRejectsUnknownAsset(t *testing.T) {
	sm, err := ParseStateMachine([]byte("initial: idle\nstates:\n  - id: idle\n    asset: ghost\n"))
	require.NoError(t, err)
	_, err = sm.Build(map[string]assets.Handle{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown asset")
}

func TestBuildRejectsUnknownTrigger(t *testing.T) {
	sm, err := ParseStateMachine([]byte(`
initial: idle
states:
  - id: idle
    transitions:
      - on: telepathy
        to: idle
`))
	require.NoError(t, err)
	_, err = sm.Build(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown trigger")
}

func TestBuildRejectsBadLoopCount(t *testing.T) {
	sm, err := ParseStateMachine([]byte("initial: idle\nstates:\n  - id: idle\n    loop: sometimes\n"))
	require.NoError(t, err)
	_, err = sm.Build(nil)
	require.Error(t, err)
}

func TestLoopCountParses(t *testing.T) {
	sm, err := ParseStateMachine([]byte("initial: idle\nstates:\n  - id: idle\n    loop: \"3\"\n"))
	require.NoError(t, err)
	player, err := sm.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, 3.0, player.States["idle"].PlaybackSettings.Looping.LoopCap())
}

func TestParseRejectsMalformedYAML(t *testing.T) {
	_, err := ParseStateMachine([]byte("states: ["))
	assert.Error(t, err)
}
