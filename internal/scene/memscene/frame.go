package memscene

import (
	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/scene"
)

// Frame is an immutable copy of a renderer's drawable state, safe to hand
// to another goroutine while the scene keeps changing.
type Frame struct {
	Renderer string
	View     View
	LightDir mathutil.Vec3
	Actors   []ActorFrame
}

// View is the camera state a frame is drawn from.
type View struct {
	Eye       mathutil.Vec3
	Focal     mathutil.Vec3
	Up        mathutil.Vec3
	ViewAngle float64
	Near, Far float64
}

type ActorFrame struct {
	Name    string
	Matrix  mathutil.Mat4
	Color   [3]uint8
	Texture string
	Parts   []PartFrame
}

type PartFrame struct {
	Name     string
	Min, Max mathutil.Vec3
	Planes   []scene.Plane
}

// Snapshot copies the renderer's current state.
func (r *Renderer) Snapshot() Frame {
	near, far := r.camera.ClippingRange()
	f := Frame{
		Renderer: r.Name,
		View: View{
			Eye:       r.camera.position,
			Focal:     r.camera.focal,
			Up:        r.camera.viewUp,
			ViewAngle: r.camera.viewAngle,
			Near:      near,
			Far:       far,
		},
		LightDir: r.lightDir,
		Actors:   make([]ActorFrame, 0, len(r.actors)),
	}
	for _, a := range r.actors {
		af := ActorFrame{
			Name:    a.Name,
			Matrix:  a.prop.Matrix(),
			Color:   a.Color,
			Texture: a.Texture,
			Parts:   make([]PartFrame, 0, len(a.parts)),
		}
		for _, p := range a.parts {
			af.Parts = append(af.Parts, PartFrame{
				Name:   p.Name,
				Min:    p.Min,
				Max:    p.Max,
				Planes: p.ClippingPlanes(),
			})
		}
		f.Actors = append(f.Actors, af)
	}
	return f
}
