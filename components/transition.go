package components

import "fmt"

// TransitionTrigger enumerates the conditions that can drive a state change.
type TransitionTrigger int

const (
	TriggerOnAfter TransitionTrigger = iota
	TriggerOnComplete
	TriggerOnMouseEnter
	TriggerOnMouseClick
	TriggerOnMouseLeave
	TriggerOnShow
)

func (t TransitionTrigger) String() string {
	switch t {
	case TriggerOnAfter:
		return "OnAfter"
	case TriggerOnComplete:
		return "OnComplete"
	case TriggerOnMouseEnter:
		return "OnMouseEnter"
	case TriggerOnMouseClick:
		return "OnMouseClick"
	case TriggerOnMouseLeave:
		return "OnMouseLeave"
	case TriggerOnShow:
		return "OnShow"
	default:
		return fmt.Sprintf("TransitionTrigger(%d)", int(t))
	}
}

// AnimationTransition maps a trigger condition to a destination state.
type AnimationTransition struct {
	Trigger TransitionTrigger
	// State is the destination state id.
	State string
	// Secs is the wait before firing, used by OnAfter only.
	Secs float64
}

// OnAfter transitions after a set period of seconds since the state was
// first shown.
func OnAfter(state string, secs float64) AnimationTransition {
	return AnimationTransition{Trigger: TriggerOnAfter, State: state, Secs: secs}
}

// OnComplete transitions after all frames of the current loop (including
// its intermission) complete. Valid only for frame-based assets; use
// OnAfter for SVGs.
func OnComplete(state string) AnimationTransition {
	return AnimationTransition{Trigger: TriggerOnComplete, State: state}
}

// OnMouseEnter transitions when the pointer enters the asset's bounds.
func OnMouseEnter(state string) AnimationTransition {
	return AnimationTransition{Trigger: TriggerOnMouseEnter, State: state}
}

// OnMouseClick transitions when the left button is pressed while the
// pointer is inside the asset's bounds.
func OnMouseClick(state string) AnimationTransition {
	return AnimationTransition{Trigger: TriggerOnMouseClick, State: state}
}

// OnMouseLeave transitions when the pointer leaves the asset's bounds.
func OnMouseLeave(state string) AnimationTransition {
	return AnimationTransition{Trigger: TriggerOnMouseLeave, State: state}
}

// OnShow transitions once the asset has been shown at least once.
func OnShow(state string) AnimationTransition {
	return AnimationTransition{Trigger: TriggerOnShow, State: state}
}
