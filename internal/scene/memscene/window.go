package memscene

import "spatial-interactor/internal/scene"

// Window hosts renderers and plays the event-loop side of the controller:
// render requests, focus and exit.
type Window struct {
	Width, Height int

	renderers   []*Renderer
	lightFollow bool

	// OnRender, if set, runs on every Render call.
	OnRender func()

	renders int
	focus   int
	exited  bool
}

// NewWindow returns an empty window of the given display size.
func NewWindow(width, height int) *Window {
	return &Window{Width: width, Height: height, lightFollow: true}
}

func (w *Window) AddRenderer(r *Renderer) { w.renderers = append(w.renderers, r) }

func (w *Window) Renderers() []*Renderer { return w.renderers }

// RendererAt returns the renderer whose viewport contains the display
// position. Later renderers are on top.
func (w *Window) RendererAt(x, y int) (scene.Renderer, bool) {
	if w.Width <= 0 || w.Height <= 0 {
		return nil, false
	}
	nx := float64(x) / float64(w.Width)
	ny := float64(y) / float64(w.Height)
	for i := len(w.renderers) - 1; i >= 0; i-- {
		if w.renderers[i].contains(nx, ny) {
			return w.renderers[i], true
		}
	}
	return nil, false
}

func (w *Window) Render() {
	w.renders++
	if w.OnRender != nil {
		w.OnRender()
	}
}

func (w *Window) Exit() { w.exited = true }

// GrabFocus and ReleaseFocus nest; the window holds focus while the count
// is positive.
func (w *Window) GrabFocus() { w.focus++ }

func (w *Window) ReleaseFocus() {
	if w.focus > 0 {
		w.focus--
	}
}

func (w *Window) LightFollowCamera() bool      { return w.lightFollow }
func (w *Window) SetLightFollowCamera(on bool) { w.lightFollow = on }
func (w *Window) Renders() int                 { return w.renders }
func (w *Window) HasFocus() bool               { return w.focus > 0 }
func (w *Window) Exited() bool                 { return w.exited }
