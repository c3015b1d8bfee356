// Package prop models transformable scene objects and composes rigid
// transforms onto them.
package prop

import "spatial-interactor/internal/mathutil"

// Representation is the authoritative source of a prop's pose. It is either
// a UserMatrix or a Decomposed value, never both.
type Representation interface {
	matrix(origin mathutil.Vec3) mathutil.Mat4
}

// UserMatrix is an externally supplied world matrix that supersedes any
// position / orientation / scale.
type UserMatrix struct {
	M mathutil.Mat4
}

func (u UserMatrix) matrix(mathutil.Vec3) mathutil.Mat4 { return u.M }

// Decomposed is a pose held as separate position, orientation and scale.
type Decomposed struct {
	Position    mathutil.Vec3
	Orientation mathutil.Quat
	Scale       mathutil.Vec3
}

// NewDecomposed returns an identity pose at pos.
func NewDecomposed(pos mathutil.Vec3) Decomposed {
	return Decomposed{
		Position:    pos,
		Orientation: mathutil.QuatIdentity(),
		Scale:       mathutil.UnitScale,
	}
}

// matrix composes T(position) · T(origin) · R · S · T(-origin).
func (d Decomposed) matrix(origin mathutil.Vec3) mathutil.Mat4 {
	rs := mathutil.Mat4Mul(
		mathutil.FromMat3Translation(mathutil.QuatToMat3(d.Orientation), mathutil.Vec3{}),
		mathutil.Scaling(d.Scale),
	)
	m := mathutil.Mat4Mul(rs, mathutil.Translation(origin.Neg()))
	return mathutil.Mat4Mul(mathutil.Translation(d.Position.Add(origin)), m)
}

// Prop is a transformable object. Origin is the pivot for the prop's own
// rotation and scale; it is independent of any interaction pivot.
type Prop struct {
	Name   string
	Origin mathutil.Vec3

	rep Representation
}

// New returns a prop with a decomposed identity pose at pos.
func New(name string, pos mathutil.Vec3) *Prop {
	return &Prop{Name: name, rep: NewDecomposed(pos)}
}

// NewWithUserMatrix returns a prop whose pose is owned by m.
func NewWithUserMatrix(name string, m mathutil.Mat4) *Prop {
	return &Prop{Name: name, rep: UserMatrix{M: m}}
}

// Representation returns the authoritative representation.
func (p *Prop) Representation() Representation {
	if p.rep == nil {
		p.rep = NewDecomposed(mathutil.Vec3{})
	}
	return p.rep
}

// UserMatrix returns the user matrix, if one is authoritative.
func (p *Prop) UserMatrix() (mathutil.Mat4, bool) {
	u, ok := p.Representation().(UserMatrix)
	return u.M, ok
}

// SetUserMatrix makes m the sole source of truth for the pose.
func (p *Prop) SetUserMatrix(m mathutil.Mat4) {
	p.rep = UserMatrix{M: m}
}

// Decomposed returns the decomposed fields, if they are authoritative.
func (p *Prop) Decomposed() (Decomposed, bool) {
	d, ok := p.Representation().(Decomposed)
	return d, ok
}

// SetDecomposed makes d the source of truth, dropping any user matrix.
func (p *Prop) SetDecomposed(d Decomposed) {
	p.rep = d
}

// Matrix returns the effective world matrix.
func (p *Prop) Matrix() mathutil.Mat4 {
	return p.Representation().matrix(p.Origin)
}

// Position returns the world position of the prop's local origin point.
func (p *Prop) Position() mathutil.Vec3 {
	if d, ok := p.Decomposed(); ok {
		return d.Position
	}
	return p.Matrix().Position()
}

// AddPosition shifts the decomposed position. It has no effect on a prop
// driven by a user matrix; use Translate for that.
func (p *Prop) AddPosition(delta mathutil.Vec3) {
	if d, ok := p.Decomposed(); ok {
		d.Position = d.Position.Add(delta)
		p.rep = d
	}
}

// Translate moves the prop by delta in world space, writing to whichever
// representation is authoritative.
func (p *Prop) Translate(delta mathutil.Vec3) {
	if u, ok := p.UserMatrix(); ok {
		t := mathutil.NewTransform(u)
		t.Translate(delta)
		p.rep = UserMatrix{M: t.Matrix()}
		return
	}
	p.AddPosition(delta)
}
