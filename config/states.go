package config

import (
	"fmt"
	"strconv"

	"github.com/vectorgameexperts/velloplay/assets"
	"github.com/vectorgameexperts/velloplay/components"
	"gopkg.in/yaml.v3"
)

// StateMachine is the on-disk description of a LottiePlayer. Authoring a
// machine in YAML keeps transition targets checkable at load time instead
// of panicking mid-tick.
type StateMachine struct {
	Initial string        `yaml:"initial"`
	States  []StateConfig `yaml:"states"`
}

// StateConfig describes one AnimationState. Playback fields are pointers
// so that an omitted field means "no override".
type StateConfig struct {
	ID           string             `yaml:"id"`
	Asset        string             `yaml:"asset"`
	Autoplay     *bool              `yaml:"autoplay"`
	Speed        *float64           `yaml:"speed"`
	Direction    string             `yaml:"direction"` // normal | reverse
	Intermission *float64           `yaml:"intermission"`
	Loop         string             `yaml:"loop"` // forever | none | <count>
	Segments     *[2]float64        `yaml:"segments"`
	ResetOnEnter bool               `yaml:"reset_on_enter"`
	ResetOnExit  bool               `yaml:"reset_on_exit"`
	Transitions  []TransitionConfig `yaml:"transitions"`
}

// TransitionConfig describes one transition rule.
type TransitionConfig struct {
	On   string  `yaml:"on"` // after | complete | mouse_enter | mouse_click | mouse_leave | show
	To   string  `yaml:"to"`
	Secs float64 `yaml:"secs"`
}

// ParseStateMachine decodes a YAML state machine definition.
func ParseStateMachine(data []byte) (*StateMachine, error) {
	var sm StateMachine
	if err := yaml.Unmarshal(data, &sm); err != nil {
		return nil, fmt.Errorf("parse state machine: %w", err)
	}
	return &sm, nil
}

// Build constructs a validated LottiePlayer. Named assets are resolved
// through the given table; states without an asset name keep whatever
// asset is bound at runtime.
func (sm *StateMachine) Build(assetsByName map[string]assets.Handle) (*components.LottiePlayer, error) {
	player := components.NewPlayer(sm.Initial)
	for _, sc := range sm.States {
		if sc.ID == "" {
			return nil, fmt.Errorf("state with empty id")
		}
		state := components.NewState(sc.ID).
			WithResetPlayheadOnStart(sc.ResetOnEnter).
			WithResetPlayheadOnTransition(sc.ResetOnExit)

		if sc.Asset != "" {
			handle, ok := assetsByName[sc.Asset]
			if !ok {
				return nil, fmt.Errorf("state %q: unknown asset %q", sc.ID, sc.Asset)
			}
			state.WithAsset(handle)
		}

		if settings, overridden, err := sc.playbackSettings(); err != nil {
			return nil, fmt.Errorf("state %q: %w", sc.ID, err)
		} else if overridden {
			state.WithPlaybackSettings(settings)
		}

		for _, tc := range sc.Transitions {
			transition, err := tc.transition()
			if err != nil {
				return nil, fmt.Errorf("state %q: %w", sc.ID, err)
			}
			state.WithTransition(transition)
		}
		player.WithState(state)
	}
	if err := player.Validate(); err != nil {
		return nil, err
	}
	return player, nil
}

func (sc StateConfig) playbackSettings() (components.PlaybackSettings, bool, error) {
	settings := components.DefaultPlaybackSettings()
	overridden := false
	if sc.Autoplay != nil {
		settings.Autoplay = *sc.Autoplay
		overridden = true
	}
	if sc.Speed != nil {
		settings.Speed = *sc.Speed
		overridden = true
	}
	if sc.Intermission != nil {
		settings.Intermission = *sc.Intermission
		overridden = true
	}
	if sc.Segments != nil {
		settings.Segments = components.Segment{Start: sc.Segments[0], End: sc.Segments[1]}
		overridden = true
	}
	switch sc.Direction {
	case "", "normal":
	case "reverse":
		settings.Direction = components.DirectionReverse
		overridden = true
	default:
		return settings, false, fmt.Errorf("unknown direction %q", sc.Direction)
	}
	switch sc.Loop {
	case "", "forever":
	case "none":
		settings.Looping = components.DoNotLoop()
		overridden = true
	default:
		n, err := strconv.Atoi(sc.Loop)
		if err != nil || n < 0 {
			return settings, false, fmt.Errorf("unknown loop behavior %q", sc.Loop)
		}
		settings.Looping = components.LoopAmount(n)
		overridden = true
	}
	return settings, overridden, nil
}

func (tc TransitionConfig) transition() (components.AnimationTransition, error) {
	if tc.To == "" {
		return components.AnimationTransition{}, fmt.Errorf("transition %q has no target", tc.On)
	}
	switch tc.On {
	case "after":
		return components.OnAfter(tc.To, tc.Secs), nil
	case "complete":
		return components.OnComplete(tc.To), nil
	case "mouse_enter":
		return components.OnMouseEnter(tc.To), nil
	case "mouse_click":
		return components.OnMouseClick(tc.To), nil
	case "mouse_leave":
		return components.OnMouseLeave(tc.To), nil
	case "show":
		return components.OnShow(tc.To), nil
	default:
		return components.AnimationTransition{}, fmt.Errorf("unknown trigger %q", tc.On)
	}
}
