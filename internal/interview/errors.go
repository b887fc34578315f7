package interview

import "fmt"

// InvalidTransitionError reports an action attempted in a phase that does not
// accept it, such as submitting an answer before the interview has started.
type InvalidTransitionError struct {
	Phase  Phase
	Action string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition: cannot %s in phase %s", e.Action, e.Phase)
}

func invalidTransition(phase Phase, action string) error {
	return &InvalidTransitionError{Phase: phase, Action: action}
}
