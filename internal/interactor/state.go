package interactor

import "fmt"

// State is the controller's interaction mode.
type State int

const (
	Idle State = iota
	Rotating
	Dollying
	Clipping
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Rotating:
		return "rotating"
	case Dollying:
		return "dollying"
	case Clipping:
		return "clipping"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Button is a button transition on the tracked controller.
type Button int

const (
	PrimaryDown Button = iota
	PrimaryUp
	SecondaryDown
	SecondaryUp
	TertiaryDown
	TertiaryUp
)

func (b Button) String() string {
	switch b {
	case PrimaryDown:
		return "primary-down"
	case PrimaryUp:
		return "primary-up"
	case SecondaryDown:
		return "secondary-down"
	case SecondaryUp:
		return "secondary-up"
	case TertiaryDown:
		return "tertiary-down"
	case TertiaryUp:
		return "tertiary-up"
	}
	return fmt.Sprintf("Button(%d)", int(b))
}

// Guards are the preconditions evaluated before a transition.
type Guards struct {
	// Renderer is true when a renderer exists at the event position.
	Renderer bool
	// Prop is true when picking found a transformable object.
	Prop bool
}

type transition struct {
	to            State
	needsRenderer bool
	needsProp     bool
}

var transitions = map[State]map[Button]transition{
	Idle: {
		PrimaryDown:   {to: Rotating, needsRenderer: true, needsProp: true},
		SecondaryDown: {to: Dollying, needsRenderer: true},
		TertiaryDown:  {to: Clipping, needsRenderer: true},
	},
	Rotating: {PrimaryUp: {to: Idle}},
	Dollying: {SecondaryUp: {to: Idle}},
	Clipping: {TertiaryUp: {to: Idle}},
}

func lookup(s State, b Button) (transition, bool) {
	t, ok := transitions[s][b]
	return t, ok
}

// Next returns the state reached from s on b given the guard results.
// Unknown pairs and failed guards leave the state unchanged.
func Next(s State, b Button, g Guards) State {
	t, ok := lookup(s, b)
	if !ok {
		return s
	}
	if t.needsRenderer && !g.Renderer {
		return s
	}
	if t.needsProp && !g.Prop {
		return s
	}
	return t.to
}
