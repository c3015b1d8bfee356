// Package scene declares the renderer-side collaborators the interaction
// controller talks to. Implementations live elsewhere (see memscene).
package scene

import (
	"iter"

	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/prop"
)

// Plane is a clipping plane. Points with (p-Origin)·Normal >= 0 are kept.
type Plane struct {
	Origin mathutil.Vec3
	Normal mathutil.Vec3
}

// Keeps reports whether p lies on the kept side of the plane.
func (pl Plane) Keeps(p mathutil.Vec3) bool {
	return p.Sub(pl.Origin).Dot(pl.Normal) >= 0
}

// Camera is the active viewpoint of a renderer together with the physical
// translation of the tracked space it sits in.
type Camera interface {
	Position() mathutil.Vec3
	SetPosition(mathutil.Vec3)
	FocalPoint() mathutil.Vec3
	SetFocalPoint(mathutil.Vec3)
	// Distance is |FocalPoint - Position|.
	Distance() float64
	// DirectionOfProjection is the unit vector from Position to FocalPoint.
	DirectionOfProjection() mathutil.Vec3
	PhysicalTranslation() mathutil.Vec3
	SetPhysicalTranslation(mathutil.Vec3)
}

// Part is one drawable leaf of an actor's assembly, owning a mapper's
// clipping plane set.
type Part interface {
	RemoveAllClippingPlanes()
	AddClippingPlane(Plane)
}

// Renderer is a viewport with its own camera and actors.
type Renderer interface {
	ActiveCamera() Camera
	// Parts yields every part of every actor in the renderer.
	Parts() iter.Seq[Part]
	ResetCameraClippingRange()
	UpdateLightsGeometryToFollowCamera()
}

// Node is anything a pick can hit. Parent returns nil at the root.
type Node interface {
	Parent() Node
}

// Transformable is a node that carries a prop.
type Transformable interface {
	Node
	Prop() *prop.Prop
}

// Picker hit-tests a world point inside a renderer.
type Picker interface {
	Pick(point mathutil.Vec3, r Renderer) (Node, bool)
}
