// Package pick resolves a world point to the transformable object under it.
package pick

import (
	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/prop"
	"spatial-interactor/internal/scene"
)

// Adapter wraps a scene.Picker and returns only transformable hits.
type Adapter struct {
	picker scene.Picker
}

// New returns an adapter around picker. A nil picker never hits.
func New(picker scene.Picker) *Adapter {
	return &Adapter{picker: picker}
}

// Pick hit-tests point in r and returns the prop of the nearest
// transformable ancestor of the hit node (the node itself included).
// Nothing is cached between calls.
func (a *Adapter) Pick(point mathutil.Vec3, r scene.Renderer) (*prop.Prop, bool) {
	if a == nil || a.picker == nil || r == nil {
		return nil, false
	}
	n, ok := a.picker.Pick(point, r)
	if !ok {
		return nil, false
	}
	for ; n != nil; n = n.Parent() {
		if t, ok := n.(scene.Transformable); ok {
			if p := t.Prop(); p != nil {
				return p, true
			}
		}
	}
	return nil, false
}
