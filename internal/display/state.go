// Package display models what the page shows: exactly one of idle, loading,
// error or result at any time. Transitions are pure functions of the current
// state and an event.
package display

import (
	"city-weather/internal/types"
)

// Phase is the visible panel
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

// User-facing messages
const (
	MessageEmptyQuery   = "Please enter a city name."
	MessageCityNotFound = "City not found. Please try another name."
	MessageFailure      = "Something went wrong. Please try again."
)

// State is the whole display. Message is set only in PhaseError,
// Location and Conditions only in PhaseResult.
type State struct {
	Phase      Phase
	Message    string
	Location   types.Location
	Conditions types.CurrentConditions
}

// Idle is the initial state
func Idle() State {
	return State{Phase: PhaseIdle}
}

// Event drives a transition
type Event interface {
	apply(State) State
}

// SearchStarted shows the loading indicator and hides everything else
type SearchStarted struct{}

// ValidationFailed is raised for an empty query
type ValidationFailed struct{}

// CityNotFound is raised when the geocoder has no match
type CityNotFound struct{}

// SearchFailed is raised for a transport failure at either stage.
// Err is kept for diagnostics and never rendered.
type SearchFailed struct {
	Err error
}

// SearchSucceeded carries the data for the result panel
type SearchSucceeded struct {
	Location   types.Location
	Conditions types.CurrentConditions
}

func (SearchStarted) apply(State) State {
	return State{Phase: PhaseLoading}
}

func (ValidationFailed) apply(State) State {
	return errorState(MessageEmptyQuery)
}

func (CityNotFound) apply(State) State {
	return errorState(MessageCityNotFound)
}

func (SearchFailed) apply(State) State {
	return errorState(MessageFailure)
}

func (e SearchSucceeded) apply(State) State {
	return State{
		Phase:      PhaseResult,
		Location:   e.Location,
		Conditions: e.Conditions,
	}
}

func errorState(message string) State {
	return State{Phase: PhaseError, Message: message}
}

// Next returns the state that follows current after ev.
// Every transition replaces the whole state; nothing from current is carried over.
func Next(current State, ev Event) State {
	if ev == nil {
		return current
	}
	return ev.apply(current)
}
