// Package interactor turns tracked controller input into scene manipulation.
//
// A Controller is driven by callbacks from the host event loop: button
// transitions, per-frame pose updates (OnMove) and the pinch and pan
// gestures. Buttons switch between the modal states Idle, Rotating, Dollying
// and Clipping; each OnMove is routed to the handler of the current state.
// Pinch and pan are single-shot gestures that run in any state.
//
// The controller is single-threaded: all callbacks must come from the same
// goroutine, in arrival order.
package interactor
