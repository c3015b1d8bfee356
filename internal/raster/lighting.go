package raster

import (
	"math"

	"spatial-interactor/internal/mathutil"
)

// keyLight is used until the renderer's lights follow the camera.
var keyLight = mathutil.Vec3{0.3, 0.5, 1}.Normalize()

// Lighting is a single directional light with a Phong response. Faces are
// lit two-sided so cut-open boxes show their interiors.
type Lighting struct {
	Dir       mathutil.Vec3
	Ambient   float64
	Diffuse   float64
	Specular  float64
	Shininess float64
	invGamma  float64
}

// NewLighting returns a light shining along dir, the direction from the
// focal point towards the light. A zero dir selects the fixed key light.
func NewLighting(dir mathutil.Vec3) Lighting {
	if dir.IsZero() {
		dir = keyLight
	}
	return Lighting{
		Dir:       dir.Normalize(),
		Ambient:   0.25,
		Diffuse:   0.75,
		Specular:  0.2,
		Shininess: 16,
		invGamma:  1 / 2.2,
	}
}

// Shade returns the intensity for a unit face normal. The viewer is assumed
// to sit along Dir, so the half vector equals Dir.
func (l *Lighting) Shade(normal mathutil.Vec3) float64 {
	ndl := math.Abs(normal.Dot(l.Dir))
	return l.Ambient + l.Diffuse*ndl + l.Specular*math.Pow(ndl, l.Shininess)
}

// Apply shades an sRGB channel and re-encodes it.
func (l *Lighting) Apply(c uint8, shade float64) uint8 {
	lin := srgbToLinear[c] * shade
	return clamp255(math.Pow(lin, l.invGamma) * 255)
}

var srgbToLinear [256]float64

func init() {
	for i := range srgbToLinear {
		srgbToLinear[i] = math.Pow(float64(i)/255, 2.2)
	}
}
