package interactor

import (
	"time"

	"spatial-interactor/internal/prop"
	"spatial-interactor/internal/scene"
)

// Session is the state of one modal gesture between its button down and up.
type Session struct {
	Mode State
	// Renderer is the renderer the gesture acts on. Moves that resolve a
	// renderer update it; clip teardown clears planes here.
	Renderer scene.Renderer
	// Prop is the grabbed object (Rotating only).
	Prop    *prop.Prop
	Pointer int
	Started time.Time
	Moves   int
}
