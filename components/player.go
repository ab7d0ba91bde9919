package components

import (
	"errors"
	"fmt"
	"math"

	"github.com/vectorgameexperts/velloplay/assets"
	"github.com/yohamta/donburi"
)

// ErrUnknownState is returned by Validate when a player references a state
// id that was never registered.
var ErrUnknownState = errors.New("unknown state")

// LottiePlayer drives an animation through a graph of named states. It
// closely mirrors the behavior of dotLottie interactivity.
//
// See: https://docs.lottiefiles.com/dotlottie-js-external/
type LottiePlayer struct {
	InitialState string
	CurrentState string
	// NextState is the pending transition target. Empty means none. The
	// commit stage consumes it once per tick.
	NextState string
	States    map[string]*AnimationState

	// Pending one-shot requests, consumed at the start of the next tick.
	PendingSeekFrame    *float64
	PendingIntermission *float64
	PendingSpeed        *float64

	// Started is set once the first frame has been shown after entry.
	Started bool
	// Playing reports active playback. State machines continue while
	// paused; see Stopped.
	Playing bool
	// Stopped freezes both the playhead and transition evaluation.
	Stopped bool
	// Hovered latches pointer-inside across ticks for OnMouseLeave.
	Hovered bool
}

var Player = donburi.NewComponentType[LottiePlayer]()

// NewPlayer creates a player that will transition into initialState on its
// first tick.
func NewPlayer(initialState string) *LottiePlayer {
	return &LottiePlayer{
		InitialState: initialState,
		CurrentState: initialState,
		NextState:    initialState,
		States:       map[string]*AnimationState{},
	}
}

// WithState registers a state, keyed by its id.
func (p *LottiePlayer) WithState(s *AnimationState) *LottiePlayer {
	p.States[s.ID] = s
	return p
}

// Validate rejects players whose initial state or transition targets are
// not registered. Call it after construction; the tick path assumes
// validated data and panics on missing keys instead.
func (p *LottiePlayer) Validate() error {
	if _, ok := p.States[p.InitialState]; !ok {
		return fmt.Errorf("initial state %q: %w", p.InitialState, ErrUnknownState)
	}
	for id, s := range p.States {
		for _, t := range s.Transitions {
			if _, ok := p.States[t.State]; !ok {
				return fmt.Errorf("state %q: %s targets %q: %w", id, t.Trigger, t.State, ErrUnknownState)
			}
		}
	}
	return nil
}

// State returns the current state. Panics if the current state id is not
// registered; that is a configuration bug, not a runtime condition.
func (p *LottiePlayer) State() *AnimationState {
	s, ok := p.States[p.CurrentState]
	if !ok {
		panic(fmt.Sprintf("state not found: %q", p.CurrentState))
	}
	return s
}

// AllStates returns every registered state, in no particular order.
func (p *LottiePlayer) AllStates() []*AnimationState {
	states := make([]*AnimationState, 0, len(p.States))
	for _, s := range p.States {
		states = append(states, s)
	}
	return states
}

// Transition arms a transition to the given state on the next commit.
func (p *LottiePlayer) Transition(state string) {
	p.NextState = state
}

// Reset goes back to the initial state and seeks to the first frame.
func (p *LottiePlayer) Reset() {
	p.NextState = p.InitialState
	p.Seek(-math.MaxFloat64)
}

// Seek requests a seek to a specific frame, applied next tick.
func (p *LottiePlayer) Seek(frame float64) {
	p.PendingSeekFrame = &frame
}

// SetIntermission changes the pause between loops, in frames. Applies only
// to the current playback, not any underlying states.
func (p *LottiePlayer) SetIntermission(intermission float64) {
	p.PendingIntermission = &intermission
}

// SetSpeed changes the playback speed multiplier. Applies only to the
// current playback, not any underlying states.
func (p *LottiePlayer) SetSpeed(speed float64) {
	p.PendingSpeed = &speed
}

// TogglePlay plays if stopped or paused, otherwise pauses.
func (p *LottiePlayer) TogglePlay() {
	if p.Stopped || !p.Playing {
		p.Play()
	} else {
		p.Pause()
	}
}

// Play starts or resumes playback.
func (p *LottiePlayer) Play() {
	p.Playing = true
	p.Stopped = false
}

// Pause pauses the playhead. State machines continue to run.
func (p *LottiePlayer) Pause() {
	p.Playing = false
}

// Stop halts playback entirely. State machines will not run.
func (p *LottiePlayer) Stop() {
	p.Stopped = true
}

func (p *LottiePlayer) IsPlaying() bool {
	return p.Playing
}

func (p *LottiePlayer) IsStopped() bool {
	return p.Stopped
}

// AnimationState is a single node in a player's state graph.
type AnimationState struct {
	ID string
	// Asset optionally rebinds the entity to another asset on entry. Zero
	// keeps whatever asset is currently bound.
	Asset assets.Handle
	// Theme optionally recolors the asset on entry.
	Theme *ThemeData
	// PlaybackSettings optionally overrides playback for this state. Nil
	// falls back to DefaultPlaybackSettings.
	PlaybackSettings *PlaybackSettings
	// Transitions are evaluated in declared order; the first match wins.
	Transitions []AnimationTransition
	// ResetPlayheadOnTransition resets the playhead when leaving this state.
	ResetPlayheadOnTransition bool
	// ResetPlayheadOnStart resets the playhead when entering this state.
	ResetPlayheadOnStart bool
}

func NewState(id string) *AnimationState {
	return &AnimationState{ID: id}
}

func (s *AnimationState) WithAsset(h assets.Handle) *AnimationState {
	s.Asset = h
	return s
}

func (s *AnimationState) WithTheme(t *ThemeData) *AnimationState {
	s.Theme = t
	return s
}

func (s *AnimationState) WithPlaybackSettings(ps PlaybackSettings) *AnimationState {
	s.PlaybackSettings = &ps
	return s
}

func (s *AnimationState) WithTransition(t AnimationTransition) *AnimationState {
	s.Transitions = append(s.Transitions, t)
	return s
}

func (s *AnimationState) WithResetPlayheadOnTransition(reset bool) *AnimationState {
	s.ResetPlayheadOnTransition = reset
	return s
}

func (s *AnimationState) WithResetPlayheadOnStart(reset bool) *AnimationState {
	s.ResetPlayheadOnStart = reset
	return s
}
