package raster

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"

	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/scene"
	"spatial-interactor/internal/scene/memscene"
)

func cubeFrame(planes ...scene.Plane) memscene.Frame {
	return memscene.Frame{
		View: memscene.View{
			Eye:       mathutil.Vec3{0, 0, 10},
			Up:        mathutil.Vec3{0, 1, 0},
			ViewAngle: 30,
			Near:      0.1,
			Far:       100,
		},
		Actors: []memscene.ActorFrame{{
			Name:   "cube",
			Matrix: mathutil.Mat4Identity(),
			Color:  [3]uint8{200, 60, 60},
			Parts: []memscene.PartFrame{{
				Min:    mathutil.Vec3{-1, -1, -1},
				Max:    mathutil.Vec3{1, 1, 1},
				Planes: planes,
			}},
		}},
	}
}

func alphaAt(img *image.NRGBA, x, y int) uint8 {
	return img.NRGBAAt(x, y).A
}

type solid struct{ img *image.NRGBA }

func (s solid) Resolve(string) *image.NRGBA { return s.img }

func TestRenderCube(t *testing.T) {
	img := RenderFrame(cubeFrame(), nil, 64, 1)

	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
	assert.Equal(t, uint8(255), alphaAt(img, 32, 32))
	assert.Zero(t, alphaAt(img, 2, 2))

	c := img.NRGBAAt(32, 32)
	assert.Greater(t, c.R, c.B)
	cov := Coverage(img)
	assert.Greater(t, cov, 0.1)
	assert.Less(t, cov, 0.5)
}

func TestRenderHonoursClippingPlanes(t *testing.T) {
	// Keep y <= 0 only.
	plane := scene.Plane{Normal: mathutil.Vec3{0, -1, 0}}
	full := RenderFrame(cubeFrame(), nil, 64, 1)
	clipped := RenderFrame(cubeFrame(plane), nil, 64, 1)

	assert.Zero(t, alphaAt(clipped, 32, 24))
	assert.Equal(t, uint8(255), alphaAt(clipped, 32, 40))
	assert.Less(t, Coverage(clipped), Coverage(full))
}

func TestRenderSupersampleAndTexture(t *testing.T) {
	blue := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := 0; i < len(blue.Pix); i += 4 {
		blue.Pix[i+2], blue.Pix[i+3] = 255, 255
	}
	f := cubeFrame()
	f.Actors[0].Texture = "blue"

	img := RenderFrame(f, solid{blue}, 32, 2)
	assert.Equal(t, image.Rect(0, 0, 64, 64), img.Bounds())
	c := img.NRGBAAt(32, 32)
	assert.Greater(t, c.B, c.R)
}

func TestRenderSkipsUnviewableScenes(t *testing.T) {
	f := cubeFrame()
	f.View.Focal = f.View.Eye
	assert.Zero(t, Coverage(RenderFrame(f, nil, 16, 1)))

	f = cubeFrame()
	f.Actors[0].Matrix = mathutil.Translation(mathutil.Vec3{0, 0, 20})
	assert.Zero(t, Coverage(RenderFrame(f, nil, 16, 1)))

	f = cubeFrame()
	f.View.Far = 5
	assert.Zero(t, Coverage(RenderFrame(f, nil, 16, 1)))
}

func TestLightingFollowsDirection(t *testing.T) {
	key := NewLighting(mathutil.Vec3{})
	assert.InDelta(t, 1, key.Dir.Len(), 1e-12)

	hl := NewLighting(mathutil.Vec3{0, 0, 2})
	assert.Equal(t, mathutil.Vec3{0, 0, 1}, hl.Dir)
	assert.Greater(t, hl.Shade(mathutil.Vec3{0, 0, 1}), hl.Shade(mathutil.Vec3{1, 0, 0}))
	assert.Equal(t, hl.Shade(mathutil.Vec3{0, 0, 1}), hl.Shade(mathutil.Vec3{0, 0, -1}))
	assert.InDelta(t, hl.Ambient, hl.Shade(mathutil.Vec3{1, 0, 0}), 1e-12)

	assert.Equal(t, uint8(0), hl.Apply(0, 1))
	assert.Equal(t, uint8(255), hl.Apply(255, 1))
	assert.Less(t, hl.Apply(200, hl.Ambient), uint8(200))
}

func TestSampleTextureClampsToEdge(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	copy(tex.Pix, []uint8{255, 0, 0, 255, 0, 0, 255, 255})

	assert.Equal(t, [4]uint8{255, 0, 0, 255}, SampleTexture(tex, 0, 0))
	assert.Equal(t, [4]uint8{0, 0, 255, 255}, SampleTexture(tex, 1, 1))
	assert.Equal(t, [4]uint8{0, 0, 255, 255}, SampleTexture(tex, 1.5, 0))
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, SampleTexture(tex, -0.5, 0))

	mid := SampleTexture(tex, 0.5, 0.5)
	assert.InDelta(t, 128, int(mid[0]), 1)
	assert.InDelta(t, 128, int(mid[2]), 1)

	sub := tex.SubImage(image.Rect(1, 0, 2, 1)).(*image.NRGBA)
	assert.Equal(t, [4]uint8{0, 0, 255, 255}, SampleTexture(sub, 0.2, 0.7))
}

func TestProjectorCentersFocalPoint(t *testing.T) {
	p, ok := newProjector(cubeFrame().View, 100)
	assert.True(t, ok)

	v, ok := p.project(mathutil.Vec3{})
	assert.True(t, ok)
	assert.InDelta(t, 50, v.X, 1e-9)
	assert.InDelta(t, 50, v.Y, 1e-9)
	assert.InDelta(t, 0.1, v.InvZ, 1e-12)

	up, _ := p.project(mathutil.Vec3{0, 1, 0})
	assert.Less(t, up.Y, v.Y)

	_, ok = p.project(mathutil.Vec3{0, 0, 20})
	assert.False(t, ok)
}
