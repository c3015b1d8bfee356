package pick

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/prop"
	"spatial-interactor/internal/scene"
)

type node struct{ parent scene.Node }

func (n *node) Parent() scene.Node { return n.parent }

type transformable struct {
	node
	p *prop.Prop
}

func (t *transformable) Prop() *prop.Prop { return t.p }

type stubPicker struct {
	hit   scene.Node
	calls int
}

func (s *stubPicker) Pick(mathutil.Vec3, scene.Renderer) (scene.Node, bool) {
	s.calls++
	return s.hit, s.hit != nil
}

type nullRenderer struct{}

func (nullRenderer) ActiveCamera() scene.Camera          { return nil }
func (nullRenderer) Parts() iter.Seq[scene.Part]         { return func(func(scene.Part) bool) {} }
func (nullRenderer) ResetCameraClippingRange()           {}
func (nullRenderer) UpdateLightsGeometryToFollowCamera() {}

func TestPickWalksToTransformableAncestor(t *testing.T) {
	want := prop.New("assembly", mathutil.Vec3{})
	root := &transformable{p: want}
	leaf := &node{parent: &node{parent: root}}

	got, ok := New(&stubPicker{hit: leaf}).Pick(mathutil.Vec3{}, nullRenderer{})
	require.True(t, ok)
	assert.Same(t, want, got)
}

func TestPickPrefersNearestAncestor(t *testing.T) {
	outer := &transformable{p: prop.New("outer", mathutil.Vec3{})}
	inner := &transformable{node: node{parent: outer}, p: prop.New("inner", mathutil.Vec3{})}

	got, ok := New(&stubPicker{hit: inner}).Pick(mathutil.Vec3{}, nullRenderer{})
	require.True(t, ok)
	assert.Equal(t, "inner", got.Name)
}

func TestPickMisses(t *testing.T) {
	sp := &stubPicker{hit: &node{}}
	_, ok := New(sp).Pick(mathutil.Vec3{}, nullRenderer{})
	assert.False(t, ok, "hit without a transformable ancestor")

	_, ok = New(&stubPicker{}).Pick(mathutil.Vec3{}, nullRenderer{})
	assert.False(t, ok)

	_, ok = New(sp).Pick(mathutil.Vec3{}, nil)
	assert.False(t, ok)
}

func TestPickIsNotCached(t *testing.T) {
	sp := &stubPicker{hit: &transformable{p: prop.New("a", mathutil.Vec3{})}}
	a := New(sp)
	a.Pick(mathutil.Vec3{}, nullRenderer{})
	sp.hit = nil
	_, ok := a.Pick(mathutil.Vec3{}, nullRenderer{})
	assert.False(t, ok)
	assert.Equal(t, 2, sp.calls)
}
