package interactor

import "time"

// Gesture identifies a non-modal gesture.
type Gesture string

const (
	GesturePinch Gesture = "pinch"
	GesturePan   Gesture = "pan"
)

// InteractionEvent is emitted after each move processed inside a session.
type InteractionEvent struct {
	State   State
	Pointer int
}

// SessionSummary is emitted when a session ends.
type SessionSummary struct {
	Mode     State
	Moves    int
	Duration time.Duration
}

// Hooks observe controller activity. Nil fields are skipped.
type Hooks struct {
	OnStateChange func(from, to State)
	OnInteraction func(InteractionEvent)
	OnGesture     func(Gesture)
	OnSessionEnd  func(SessionSummary)
	// OnRejected fires when a button press is ignored because another
	// session is active or a guard failed.
	OnRejected func(b Button, current State)
}

func (c *Controller) stateChanged(from, to State) {
	for _, h := range c.hooks {
		if h.OnStateChange != nil {
			h.OnStateChange(from, to)
		}
	}
}

func (c *Controller) interacted(ev InteractionEvent) {
	for _, h := range c.hooks {
		if h.OnInteraction != nil {
			h.OnInteraction(ev)
		}
	}
}

func (c *Controller) gestured(g Gesture) {
	for _, h := range c.hooks {
		if h.OnGesture != nil {
			h.OnGesture(g)
		}
	}
}

func (c *Controller) sessionEnded(s SessionSummary) {
	for _, h := range c.hooks {
		if h.OnSessionEnd != nil {
			h.OnSessionEnd(s)
		}
	}
}

func (c *Controller) rejected(b Button) {
	for _, h := range c.hooks {
		if h.OnRejected != nil {
			h.OnRejected(b, c.state)
		}
	}
}
