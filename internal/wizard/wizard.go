// Package wizard implements the four-step enrollment wizard state machine.
package wizard

import (
	"errors"
	"fmt"
)

// ErrInvalidTransition is returned for a move the current step does not allow.
var ErrInvalidTransition = errors.New("invalid wizard transition")

// Step is a wizard state. Steps are numbered the way the dashboard shows them.
type Step int

const (
	StepIdentification Step = iota + 1
	StepLocationCondition
	StepConfirmation
	StepSuccess
)

var stepNames = map[Step]string{
	StepIdentification:    "identification",
	StepLocationCondition: "location_condition",
	StepConfirmation:      "confirmation",
	StepSuccess:           "success",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Valid reports whether s is one of the four states.
func (s Step) Valid() bool {
	_, ok := stepNames[s]
	return ok
}

// Next advances Identification to LocationCondition and LocationCondition
// to Confirmation. Confirmation only leaves through Finish.
func (s Step) Next() (Step, error) {
	switch s {
	case StepIdentification, StepLocationCondition:
		return s + 1, nil
	}
	return s, fmt.Errorf("%w: next from %s", ErrInvalidTransition, s)
}

// Back returns to the previous editable step.
func (s Step) Back() (Step, error) {
	switch s {
	case StepLocationCondition, StepConfirmation:
		return s - 1, nil
	}
	return s, fmt.Errorf("%w: back from %s", ErrInvalidTransition, s)
}

// Finish completes the wizard from Confirmation.
func (s Step) Finish() (Step, error) {
	if s != StepConfirmation {
		return s, fmt.Errorf("%w: finish from %s", ErrInvalidTransition, s)
	}
	return StepSuccess, nil
}
