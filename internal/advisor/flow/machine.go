package flow

import (
	"errors"
	"fmt"
)

// View is the screen a client session currently shows.
type View string

const (
	ViewHome    View = "HOME"
	ViewInput   View = "INPUT"
	ViewLoading View = "LOADING"
	ViewResults View = "RESULTS"
	ViewSaved   View = "SAVED"
)

// Event drives a view transition.
type Event string

const (
	EventStartNew    Event = "START_NEW"
	EventSubmit      Event = "SUBMIT"
	EventPlanReady   Event = "PLAN_READY"
	EventPlanFailed  Event = "PLAN_FAILED"
	EventOpenSaved   Event = "OPEN_SAVED"
	EventOpenProject Event = "OPEN_PROJECT"
)

var ErrInvalidTransition = errors.New("invalid view transition")

// Next is the pure transition function. The navigation events
// (START_NEW, OPEN_SAVED) are reachable from every settled view; a
// LOADING session only leaves through PLAN_READY or PLAN_FAILED.
func Next(v View, e Event) (View, error) {
	switch e {
	case EventStartNew:
		if v == ViewLoading {
			return v, invalid(v, e)
		}
		return ViewInput, nil
	case EventOpenSaved:
		if v == ViewLoading {
			return v, invalid(v, e)
		}
		return ViewSaved, nil
	case EventSubmit:
		if v != ViewInput {
			return v, invalid(v, e)
		}
		return ViewLoading, nil
	case EventPlanReady:
		if v != ViewLoading {
			return v, invalid(v, e)
		}
		return ViewResults, nil
	case EventPlanFailed:
		if v != ViewLoading {
			return v, invalid(v, e)
		}
		return ViewInput, nil
	case EventOpenProject:
		if v != ViewSaved {
			return v, invalid(v, e)
		}
		return ViewResults, nil
	default:
		return v, fmt.Errorf("unknown event %q: %w", e, ErrInvalidTransition)
	}
}

func invalid(v View, e Event) error {
	return fmt.Errorf("event %s not allowed in view %s: %w", e, v, ErrInvalidTransition)
}
