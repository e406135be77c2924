package domain

import "fmt"

// State is one of the four disease states a cell can hold.
// The ordinal order is part of the model: states only ever move forward
// (Susceptible -> Latent -> Infected -> Recovered) and the infection rule
// tests "has been exposed" as an ordering comparison, see Exposed.
type State uint8

const (
	Susceptible State = iota
	Latent
	Infected
	Recovered
)

// States lists the valid states in ordinal order.
var States = [4]State{Susceptible, Latent, Infected, Recovered}

// Valid reports whether s is one of the four model states.
func (s State) Valid() bool {
	return s <= Recovered
}

// Exposed reports whether s counts as an infection source for a neighboring
// susceptible cell. This is the ordinal test s > Susceptible, which includes
// Recovered. That breadth is inherited from the reference model and is kept
// intentionally; recovered cells keep exposing their neighbors.
func (s State) Exposed() bool {
	return s > Susceptible
}

func (s State) String() string {
	switch s {
	case Susceptible:
		return "susceptible"
	case Latent:
		return "latent"
	case Infected:
		return "infected"
	case Recovered:
		return "recovered"
	default:
		return fmt.Sprintf("state(%d)", uint8(s))
	}
}

// ParseState resolves a state name as used in scenario files.
func ParseState(name string) (State, error) {
	switch name {
	case "susceptible":
		return Susceptible, nil
	case "latent":
		return Latent, nil
	case "infected":
		return Infected, nil
	case "recovered":
		return Recovered, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidSeedState, name)
	}
}
