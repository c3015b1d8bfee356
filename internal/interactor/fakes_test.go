package interactor

import (
	"iter"

	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/pick"
	"spatial-interactor/internal/pose"
	"spatial-interactor/internal/prop"
	"spatial-interactor/internal/scene"
)

type fakeTracker struct {
	pointer     int
	screen      [2]int
	current     map[int]pose.Sample
	last        map[int]pose.Sample
	touchX      float64
	touchY      float64
	scale       float64
	lastScale   float64
	translation mathutil.Vec3
}

func newFakeTracker() *fakeTracker {
	return &fakeTracker{
		current: map[int]pose.Sample{},
		last:    map[int]pose.Sample{},
	}
}

func (f *fakeTracker) PointerIndex() int                    { return f.pointer }
func (f *fakeTracker) EventPosition(int) (int, int)         { return f.screen[0], f.screen[1] }
func (f *fakeTracker) WorldPose(p int) pose.Sample          { return f.current[p] }
func (f *fakeTracker) LastWorldPose(p int) pose.Sample      { return f.last[p] }
func (f *fakeTracker) TouchPadPosition() (float64, float64) { return f.touchX, f.touchY }
func (f *fakeTracker) Scale() float64                       { return f.scale }
func (f *fakeTracker) LastScale() float64                   { return f.lastScale }
func (f *fakeTracker) Translation3D() mathutil.Vec3         { return f.translation }

// move records a new sample for pointer p, shifting the old one to last.
func (f *fakeTracker) move(p int, s pose.Sample) {
	f.pointer = p
	f.last[p] = f.current[p]
	f.current[p] = s
}

type fakeHost struct {
	renderer     scene.Renderer
	renders      int
	exits        int
	grabs        int
	releases     int
	lightsFollow bool
}

func (h *fakeHost) RendererAt(int, int) (scene.Renderer, bool) {
	return h.renderer, h.renderer != nil
}
func (h *fakeHost) Render()                 { h.renders++ }
func (h *fakeHost) Exit()                   { h.exits++ }
func (h *fakeHost) GrabFocus()              { h.grabs++ }
func (h *fakeHost) ReleaseFocus()           { h.releases++ }
func (h *fakeHost) LightFollowCamera() bool { return h.lightsFollow }

type fakeCamera struct {
	position mathutil.Vec3
	focal    mathutil.Vec3
	physical mathutil.Vec3
}

func (c *fakeCamera) Position() mathutil.Vec3                { return c.position }
func (c *fakeCamera) SetPosition(v mathutil.Vec3)            { c.position = v }
func (c *fakeCamera) FocalPoint() mathutil.Vec3              { return c.focal }
func (c *fakeCamera) SetFocalPoint(v mathutil.Vec3)          { c.focal = v }
func (c *fakeCamera) Distance() float64                      { return c.focal.Sub(c.position).Len() }
func (c *fakeCamera) DirectionOfProjection() mathutil.Vec3   { return c.focal.Sub(c.position).Normalize() }
func (c *fakeCamera) PhysicalTranslation() mathutil.Vec3     { return c.physical }
func (c *fakeCamera) SetPhysicalTranslation(v mathutil.Vec3) { c.physical = v }

type fakePart struct {
	planes []scene.Plane
}

func (p *fakePart) RemoveAllClippingPlanes()        { p.planes = nil }
func (p *fakePart) AddClippingPlane(pl scene.Plane) { p.planes = append(p.planes, pl) }

type fakeRenderer struct {
	camera      *fakeCamera
	parts       []*fakePart
	resets      int
	lightUpdate int
}

func (r *fakeRenderer) ActiveCamera() scene.Camera { return r.camera }
func (r *fakeRenderer) Parts() iter.Seq[scene.Part] {
	return func(yield func(scene.Part) bool) {
		for _, p := range r.parts {
			if !yield(p) {
				return
			}
		}
	}
}
func (r *fakeRenderer) ResetCameraClippingRange()           { r.resets++ }
func (r *fakeRenderer) UpdateLightsGeometryToFollowCamera() { r.lightUpdate++ }

type propNode struct{ p *prop.Prop }

func (n propNode) Parent() scene.Node { return nil }
func (n propNode) Prop() *prop.Prop   { return n.p }

type fakePicker struct{ hit *prop.Prop }

func (f *fakePicker) Pick(mathutil.Vec3, scene.Renderer) (scene.Node, bool) {
	if f.hit == nil {
		return nil, false
	}
	return propNode{p: f.hit}, true
}

type rig struct {
	tracker  *fakeTracker
	host     *fakeHost
	renderer *fakeRenderer
	camera   *fakeCamera
	picker   *fakePicker
	ctrl     *Controller
}

func newRig(opts ...Option) *rig {
	cam := &fakeCamera{position: mathutil.Vec3{0, 0, 10}}
	ren := &fakeRenderer{camera: cam, parts: []*fakePart{{}, {}}}
	r := &rig{
		tracker:  newFakeTracker(),
		host:     &fakeHost{renderer: ren},
		renderer: ren,
		camera:   cam,
		picker:   &fakePicker{},
	}
	r.ctrl = New(r.host, r.tracker, pick.New(r.picker), opts...)
	return r
}

func sample(pos mathutil.Vec3, angle float64, axis mathutil.Vec3) pose.Sample {
	return pose.Sample{Position: pos, Orientation: mathutil.AxisAngle{AngleDeg: angle, Axis: axis}}
}
