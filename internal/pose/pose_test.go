package pose

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"spatial-interactor/internal/mathutil"
)

func sample(pos mathutil.Vec3, angle float64, axis mathutil.Vec3) Sample {
	return Sample{Position: pos, Orientation: mathutil.AxisAngle{AngleDeg: angle, Axis: axis}}
}

func TestTranslationDelta(t *testing.T) {
	cur := sample(mathutil.Vec3{1, 2, 3}, 0, mathutil.Vec3{0, 1, 0})
	prev := sample(mathutil.Vec3{0.5, 2, 4}, 0, mathutil.Vec3{0, 1, 0})
	assert.Equal(t, mathutil.Vec3{0.5, 0, -1}, TranslationDelta(cur, prev))
}

func TestRotationDeltaOfIdenticalSamplesIsZero(t *testing.T) {
	for _, s := range []Sample{
		sample(mathutil.Vec3{}, 0, mathutil.Vec3{0, 1, 0}),
		sample(mathutil.Vec3{3, 1, 2}, 73, mathutil.Vec3{1, 1, 0}),
		sample(mathutil.Vec3{}, 180, mathutil.Vec3{0, 0, 1}),
		sample(mathutil.Vec3{}, 25, mathutil.Vec3{}),
	} {
		d := RotationDelta(s, s)
		assert.InDelta(t, 0, d.AngleDeg, 1e-6)
	}
}

func TestRotationDeltaSameAxis(t *testing.T) {
	prev := sample(mathutil.Vec3{}, 30, mathutil.Vec3{0, 1, 0})
	cur := sample(mathutil.Vec3{}, 75, mathutil.Vec3{0, 1, 0})

	d := RotationDelta(cur, prev)
	assert.InDelta(t, 45, d.AngleDeg, 1e-9)
	assert.InDelta(t, 1, d.Axis[1], 1e-9)
}

func TestRotationDeltaComposesBackToCurrent(t *testing.T) {
	prev := sample(mathutil.Vec3{}, 40, mathutil.Vec3{1, 0, 0})
	cur := sample(mathutil.Vec3{}, 110, mathutil.Vec3{0.2, 1, -0.4})

	d := RotationDelta(cur, prev)
	got := mathutil.QuatMul(d.Quat(), prev.Quat())

	v := mathutil.Vec3{0.3, -0.7, 1.1}
	want := cur.Quat().Rotate(v)
	rotated := got.Rotate(v)
	for i := range want {
		assert.InDelta(t, want[i], rotated[i], 1e-9)
	}
}
