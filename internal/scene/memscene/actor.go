package memscene

import (
	"math"

	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/prop"
	"spatial-interactor/internal/scene"
)

// Actor is a transformable assembly of box parts.
type Actor struct {
	Name    string
	Color   [3]uint8
	Texture string

	prop  *prop.Prop
	parts []*Part
}

// NewActor wraps p. The actor takes its name from the prop.
func NewActor(p *prop.Prop) *Actor {
	return &Actor{Name: p.Name, Color: [3]uint8{160, 160, 170}, prop: p}
}

// Parent is always nil: actors are the roots of the pick hierarchy.
func (a *Actor) Parent() scene.Node { return nil }

func (a *Actor) Prop() *prop.Prop { return a.prop }

// AddPart attaches an axis-aligned box given in the actor's local frame.
func (a *Actor) AddPart(name string, lo, hi mathutil.Vec3) *Part {
	p := &Part{Name: name, Min: lo, Max: hi, actor: a}
	a.parts = append(a.parts, p)
	return p
}

func (a *Actor) Parts() []*Part { return a.parts }

// Part is a box leaf of an actor. It owns the clipping planes of its mapper.
type Part struct {
	Name     string
	Min, Max mathutil.Vec3

	actor  *Actor
	planes []scene.Plane
}

func (p *Part) Parent() scene.Node { return p.actor }

func (p *Part) Actor() *Actor { return p.actor }

func (p *Part) RemoveAllClippingPlanes() { p.planes = p.planes[:0] }

func (p *Part) AddClippingPlane(pl scene.Plane) { p.planes = append(p.planes, pl) }

// ClippingPlanes returns a copy of the current plane set.
func (p *Part) ClippingPlanes() []scene.Plane {
	return append([]scene.Plane(nil), p.planes...)
}

// Corners returns the eight box corners in world coordinates.
func (p *Part) Corners() [8]mathutil.Vec3 {
	m := p.actor.prop.Matrix()
	var out [8]mathutil.Vec3
	for i := range out {
		c := p.Min
		if i&1 != 0 {
			c[0] = p.Max[0]
		}
		if i&2 != 0 {
			c[1] = p.Max[1]
		}
		if i&4 != 0 {
			c[2] = p.Max[2]
		}
		out[i] = m.MulPoint(c)
	}
	return out
}

// Bounds is the world-space axis-aligned bounding box.
func (p *Part) Bounds() (lo, hi mathutil.Vec3) {
	lo = mathutil.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)}
	hi = mathutil.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)}
	for _, c := range p.Corners() {
		for k := 0; k < 3; k++ {
			lo[k] = math.Min(lo[k], c[k])
			hi[k] = math.Max(hi[k], c[k])
		}
	}
	return lo, hi
}
