package memscene

import (
	"iter"
	"math"

	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/scene"
)

// Renderer is a viewport of a Window with its own camera and actors.
type Renderer struct {
	Name string
	// Viewport is xmin, ymin, xmax, ymax in normalized display coordinates
	// with the origin at the bottom left.
	Viewport [4]float64

	camera *Camera
	actors []*Actor

	// lightDir is the headlight direction set when lights follow the
	// camera. Zero means the default studio rig.
	lightDir     mathutil.Vec3
	lightUpdates int
}

// NewRenderer returns a renderer covering viewport. A zero viewport means
// the whole window.
func NewRenderer(name string, viewport [4]float64, cam *Camera) *Renderer {
	if viewport == ([4]float64{}) {
		viewport = [4]float64{0, 0, 1, 1}
	}
	return &Renderer{Name: name, Viewport: viewport, camera: cam}
}

func (r *Renderer) AddActor(a *Actor) { r.actors = append(r.actors, a) }

func (r *Renderer) Actors() []*Actor { return r.actors }

func (r *Renderer) ActiveCamera() scene.Camera { return r.camera }

// Camera is ActiveCamera with its concrete type.
func (r *Renderer) Camera() *Camera { return r.camera }

func (r *Renderer) Parts() iter.Seq[scene.Part] {
	return func(yield func(scene.Part) bool) {
		for _, a := range r.actors {
			for _, p := range a.parts {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// ResetCameraClippingRange fits the near and far planes around every part
// in front of the camera.
func (r *Renderer) ResetCameraClippingRange() {
	dop := r.camera.DirectionOfProjection()
	if dop.IsZero() {
		return
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, a := range r.actors {
		for _, p := range a.parts {
			for _, c := range p.Corners() {
				d := c.Sub(r.camera.position).Dot(dop)
				lo = math.Min(lo, d)
				hi = math.Max(hi, d)
			}
		}
	}
	if hi <= 0 {
		return
	}
	far := hi * 1.01
	near := lo * 0.99
	if near < far*1e-3 {
		near = far * 1e-3
	}
	r.camera.clippingRange = [2]float64{near, far}
}

// UpdateLightsGeometryToFollowCamera points the headlight from the camera
// towards its focal point.
func (r *Renderer) UpdateLightsGeometryToFollowCamera() {
	r.lightDir = r.camera.position.Sub(r.camera.focal).Normalize()
	r.lightUpdates++
}

// LightDirection is the headlight direction, or zero if lights were never
// updated.
func (r *Renderer) LightDirection() mathutil.Vec3 { return r.lightDir }

// LightUpdates counts UpdateLightsGeometryToFollowCamera calls.
func (r *Renderer) LightUpdates() int { return r.lightUpdates }

func (r *Renderer) contains(nx, ny float64) bool {
	v := r.Viewport
	return nx >= v[0] && nx <= v[2] && ny >= v[1] && ny <= v[3]
}
