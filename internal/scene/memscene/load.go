package memscene

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/prop"
)

var (
	ErrNoRenderers = errors.New("memscene: scene has no renderers")
	ErrEmptyBox    = errors.New("memscene: part box has min > max")
)

// Scene is a loaded window together with where its textures live.
type Scene struct {
	Window     *Window
	TextureDir string
}

type fileScene struct {
	Window struct {
		Width             int   `yaml:"width"`
		Height            int   `yaml:"height"`
		LightFollowCamera *bool `yaml:"light_follow_camera"`
	} `yaml:"window"`
	TextureDir string         `yaml:"texture_dir"`
	Renderers  []fileRenderer `yaml:"renderers"`
}

type fileRenderer struct {
	Name     string     `yaml:"name"`
	Viewport [4]float64 `yaml:"viewport"`
	Camera   struct {
		Position   mathutil.Vec3 `yaml:"position"`
		FocalPoint mathutil.Vec3 `yaml:"focal_point"`
		ViewUp     mathutil.Vec3 `yaml:"view_up"`
		ViewAngle  float64       `yaml:"view_angle"`
	} `yaml:"camera"`
	Actors []fileActor `yaml:"actors"`
}

type fileActor struct {
	Name        string             `yaml:"name"`
	Position    mathutil.Vec3      `yaml:"position"`
	Origin      mathutil.Vec3      `yaml:"origin"`
	Orientation mathutil.AxisAngle `yaml:"orientation"`
	Scale       *mathutil.Vec3     `yaml:"scale"`
	// UserMatrix is row-major and replaces position, orientation and scale.
	UserMatrix *mathutil.Mat4 `yaml:"user_matrix"`
	Color      *[3]uint8      `yaml:"color"`
	Texture    string         `yaml:"texture"`
	Parts      []filePart     `yaml:"parts"`
}

type filePart struct {
	Name string        `yaml:"name"`
	Min  mathutil.Vec3 `yaml:"min"`
	Max  mathutil.Vec3 `yaml:"max"`
}

// Load reads a YAML scene file. A relative texture_dir is resolved against
// the scene file's directory.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("memscene: read %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("memscene: parse %s: %w", path, err)
	}
	if s.TextureDir != "" && !filepath.IsAbs(s.TextureDir) {
		s.TextureDir = filepath.Join(filepath.Dir(path), s.TextureDir)
	}
	return s, nil
}

// Parse builds a scene from YAML.
func Parse(data []byte) (*Scene, error) {
	var fs fileScene
	if err := yaml.Unmarshal(data, &fs); err != nil {
		return nil, err
	}
	if len(fs.Renderers) == 0 {
		return nil, ErrNoRenderers
	}

	w := NewWindow(fs.Window.Width, fs.Window.Height)
	if w.Width <= 0 {
		w.Width = 800
	}
	if w.Height <= 0 {
		w.Height = 600
	}
	if fs.Window.LightFollowCamera != nil {
		w.SetLightFollowCamera(*fs.Window.LightFollowCamera)
	}

	for i, fr := range fs.Renderers {
		name := fr.Name
		if name == "" {
			name = fmt.Sprintf("renderer%d", i)
		}
		cam := NewCamera(fr.Camera.Position, fr.Camera.FocalPoint, fr.Camera.ViewUp, fr.Camera.ViewAngle)
		ren := NewRenderer(name, fr.Viewport, cam)
		for _, fa := range fr.Actors {
			a, err := buildActor(fa)
			if err != nil {
				return nil, err
			}
			ren.AddActor(a)
		}
		ren.ResetCameraClippingRange()
		w.AddRenderer(ren)
	}

	return &Scene{Window: w, TextureDir: fs.TextureDir}, nil
}

func buildActor(fa fileActor) (*Actor, error) {
	var p *prop.Prop
	if fa.UserMatrix != nil {
		p = prop.NewWithUserMatrix(fa.Name, *fa.UserMatrix)
	} else {
		d := prop.NewDecomposed(fa.Position)
		d.Orientation = fa.Orientation.Quat()
		if fa.Scale != nil {
			d.Scale = *fa.Scale
		}
		p = prop.New(fa.Name, fa.Position)
		p.SetDecomposed(d)
	}
	p.Origin = fa.Origin

	a := NewActor(p)
	if fa.Color != nil {
		a.Color = *fa.Color
	}
	a.Texture = fa.Texture
	for _, fp := range fa.Parts {
		for k := 0; k < 3; k++ {
			if fp.Min[k] > fp.Max[k] {
				return nil, fmt.Errorf("%w: %s/%s", ErrEmptyBox, fa.Name, fp.Name)
			}
		}
		a.AddPart(fp.Name, fp.Min, fp.Max)
	}
	return a, nil
}
