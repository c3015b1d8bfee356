package mathutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertVecInDelta(t *testing.T, want, got Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-9, "component %d of %v", i, got)
	}
}

func TestQuatRotateMatchesMatrix(t *testing.T) {
	q := QuatFromAxisAngle(Deg2Rad(90), Vec3{0, 0, 1})
	v := Vec3{1, 0, 0}

	assertVecInDelta(t, Vec3{0, 1, 0}, q.Rotate(v))
	assertVecInDelta(t, Vec3{0, 1, 0}, QuatToMat3(q).MulVec3(v))
}

func TestQuatFromZeroAxisIsIdentity(t *testing.T) {
	assert.Equal(t, QuatIdentity(), QuatFromAxisAngle(1.5, Vec3{}))
}

func TestQuatAxisAngleRoundTrip(t *testing.T) {
	axis := Vec3{1, 2, 3}.Normalize()
	angle, got := QuatFromAxisAngle(0.7, axis).AxisAngle()
	assert.InDelta(t, 0.7, angle, 1e-12)
	assertVecInDelta(t, axis, got)

	angle, got = QuatIdentity().AxisAngle()
	assert.Zero(t, angle)
	assert.True(t, got.IsZero())
}

func TestMat3ToQuatAllBranches(t *testing.T) {
	for _, tc := range []struct {
		name  string
		angle float64
		axis  Vec3
	}{
		{"small", 0.3, Vec3{0, 1, 0}},
		{"half turn x", math.Pi, Vec3{1, 0, 0}},
		{"half turn y", math.Pi, Vec3{0, 1, 0}},
		{"half turn z", math.Pi, Vec3{0, 0, 1}},
		{"oblique", 2.5, Vec3{1, -1, 0.5}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			want := QuatToMat3(QuatFromAxisAngle(tc.angle, tc.axis))
			got := QuatToMat3(Mat3ToQuat(want))
			for i := range want {
				assert.InDelta(t, want[i], got[i], 1e-9)
			}
		})
	}
}

func TestDecomposeRecoversComponents(t *testing.T) {
	rot := QuatFromAxisAngle(Deg2Rad(40), Vec3{1, 1, 0})
	m := Mat4Mul(Translation(Vec3{1, 2, 3}),
		Mat4Mul(FromMat3Translation(QuatToMat3(rot), Vec3{}), Scaling(Vec3{2, 2, 2})))

	pos, q, scale := m.Decompose()
	assertVecInDelta(t, Vec3{1, 2, 3}, pos)
	assertVecInDelta(t, Vec3{2, 2, 2}, scale)

	rebuilt := Mat4Mul(Translation(pos),
		Mat4Mul(FromMat3Translation(QuatToMat3(q), Vec3{}), Scaling(scale)))
	assert.True(t, m.ApproxEqual(rebuilt, 1e-9))
}

func TestTransformMultiplyModes(t *testing.T) {
	tr := NewTransform(Scaling(Vec3{2, 2, 2}))
	tr.Translate(Vec3{1, 0, 0})
	// post: T · S, so a point at the origin lands at (1,0,0)
	assertVecInDelta(t, Vec3{1, 0, 0}, tr.Matrix().MulPoint(Vec3{}))

	tr = NewTransform(Scaling(Vec3{2, 2, 2}))
	tr.PreMultiply()
	tr.Translate(Vec3{1, 0, 0})
	// pre: S · T, the translation is scaled
	assertVecInDelta(t, Vec3{2, 0, 0}, tr.Matrix().MulPoint(Vec3{}))
}

func TestTransformIgnoresNullRotation(t *testing.T) {
	tr := NewTransform(Mat4Identity())
	tr.RotateWXYZ(0, Vec3{0, 1, 0})
	tr.RotateWXYZ(45, Vec3{})
	assert.True(t, tr.Matrix().IsIdentity())
}
