package interactor

import (
	"log/slog"
	"time"

	"spatial-interactor/internal/logging"
	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/pick"
	"spatial-interactor/internal/pose"
	"spatial-interactor/internal/scene"
)

// DefaultDollyMotionFactor scales touchpad input into dolly speed.
const DefaultDollyMotionFactor = 2.0

// Tracker supplies device input for the event being handled.
type Tracker interface {
	// PointerIndex is the pointer that raised the current event.
	PointerIndex() int
	// EventPosition is the screen position of the pointer's event.
	EventPosition(pointer int) (x, y int)
	WorldPose(pointer int) pose.Sample
	LastWorldPose(pointer int) pose.Sample
	// TouchPadPosition is the touchpad axis pair, each roughly in [-1, 1].
	TouchPadPosition() (x, y float64)
	// Scale and LastScale are the current and previous pinch scales.
	Scale() float64
	LastScale() float64
	// Translation3D is the pan gesture offset accumulated since the pan began.
	Translation3D() mathutil.Vec3
}

// Host is the window and event-loop side of the controller.
type Host interface {
	RendererAt(x, y int) (scene.Renderer, bool)
	Render()
	Exit()
	GrabFocus()
	ReleaseFocus()
	LightFollowCamera() bool
}

// Controller is the interaction state machine. It is not safe for
// concurrent use.
type Controller struct {
	host    Host
	tracker Tracker
	picker  *pick.Adapter
	logger  *slog.Logger
	hooks   []Hooks
	now     func() time.Time

	dollyMotionFactor       float64
	autoAdjustClippingRange bool

	state   State
	session *Session
	// current is the renderer resolved by the most recent event.
	current scene.Renderer
	// applied is the pan translation already added to the camera's
	// physical translation during the current pan gesture.
	applied mathutil.Vec3
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the diagnostic logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) { c.logger = l }
}

// WithHooks registers observers. May be given more than once.
func WithHooks(h Hooks) Option {
	return func(c *Controller) { c.hooks = append(c.hooks, h) }
}

// WithDollyMotionFactor overrides DefaultDollyMotionFactor.
func WithDollyMotionFactor(f float64) Option {
	return func(c *Controller) { c.dollyMotionFactor = f }
}

// WithAutoAdjustCameraClippingRange toggles near/far refitting after moves.
func WithAutoAdjustCameraClippingRange(on bool) Option {
	return func(c *Controller) { c.autoAdjustClippingRange = on }
}

// WithClock replaces time.Now for session timing.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// New returns an idle controller.
func New(host Host, tracker Tracker, picker *pick.Adapter, opts ...Option) *Controller {
	c := &Controller{
		host:                    host,
		tracker:                 tracker,
		picker:                  picker,
		logger:                  logging.NewNop(),
		now:                     time.Now,
		dollyMotionFactor:       DefaultDollyMotionFactor,
		autoAdjustClippingRange: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) State() State { return c.state }

// Session returns the active session, or nil when idle.
func (c *Controller) Session() *Session { return c.session }

func (c *Controller) DollyMotionFactor() float64     { return c.dollyMotionFactor }
func (c *Controller) SetDollyMotionFactor(f float64) { c.dollyMotionFactor = f }

func (c *Controller) AutoAdjustCameraClippingRange() bool { return c.autoAdjustClippingRange }
func (c *Controller) SetAutoAdjustCameraClippingRange(on bool) {
	c.autoAdjustClippingRange = on
}

// AppliedTranslation is the pan offset applied so far in the current pan.
func (c *Controller) AppliedTranslation() mathutil.Vec3 { return c.applied }

func (c *Controller) OnPrimaryDown()   { c.press(PrimaryDown) }
func (c *Controller) OnSecondaryDown() { c.press(SecondaryDown) }
func (c *Controller) OnTertiaryDown()  { c.press(TertiaryDown) }

// OnPrimaryUp ends a rotate session. The pan offset is reset on every
// primary release.
func (c *Controller) OnPrimaryUp() {
	c.applied = mathutil.Vec3{}
	c.release(PrimaryUp)
}

func (c *Controller) OnSecondaryUp() { c.release(SecondaryUp) }
func (c *Controller) OnTertiaryUp()  { c.release(TertiaryUp) }

// OnQuaternaryUp is a hard exit: any session is torn down, focus released
// and the host asked to exit.
func (c *Controller) OnQuaternaryUp() {
	if c.session != nil {
		c.teardown()
	}
	c.applied = mathutil.Vec3{}
	c.host.ReleaseFocus()
	c.logger.Info("exit requested")
	c.host.Exit()
}

// OnMove routes the latest pose sample to the active session's handler and
// then emits the interaction notification.
func (c *Controller) OnMove() {
	if c.session == nil {
		return
	}
	pointer := c.tracker.PointerIndex()
	ren := c.poke(pointer)
	if ren != nil {
		c.session.Renderer = ren
	}

	switch c.state {
	case Rotating:
		c.rotate(ren, pointer)
	case Dollying:
		c.dolly(ren, pointer)
	case Clipping:
		c.clip(ren, pointer)
	}
	c.session.Moves++
	c.interacted(InteractionEvent{State: c.state, Pointer: pointer})
}

// poke resolves the renderer under the pointer's event position and makes
// it current. It returns nil when there is none.
func (c *Controller) poke(pointer int) scene.Renderer {
	x, y := c.tracker.EventPosition(pointer)
	ren, ok := c.host.RendererAt(x, y)
	if !ok {
		ren = nil
	}
	c.current = ren
	return ren
}

func (c *Controller) press(b Button) {
	t, ok := lookup(c.state, b)
	if !ok {
		c.logger.Debug("button ignored", "button", b, "state", c.state)
		c.rejected(b)
		return
	}

	pointer := c.tracker.PointerIndex()
	var g Guards
	ren := c.poke(pointer)
	g.Renderer = ren != nil

	var s Session
	if t.needsProp && g.Renderer {
		s.Prop, g.Prop = c.picker.Pick(c.tracker.WorldPose(pointer).Position, ren)
	}

	next := Next(c.state, b, g)
	if next == c.state {
		c.logger.Debug("guard failed", "button", b, "renderer", g.Renderer, "prop", g.Prop)
		c.rejected(b)
		return
	}

	s.Mode = next
	s.Renderer = ren
	s.Pointer = pointer
	s.Started = c.now()
	c.applied = mathutil.Vec3{}
	c.session = &s
	c.host.GrabFocus()
	c.setState(next)
}

func (c *Controller) release(b Button) {
	if Next(c.state, b, Guards{}) == c.state {
		return
	}
	c.teardown()
	c.host.ReleaseFocus()
}

// teardown runs the end effect of the active session and returns to Idle.
// Focus is left to the caller.
func (c *Controller) teardown() {
	s := c.session
	if s.Mode == Clipping {
		c.clearClipping(s.Renderer)
	}
	c.session = nil
	c.setState(Idle)
	c.sessionEnded(SessionSummary{Mode: s.Mode, Moves: s.Moves, Duration: c.now().Sub(s.Started)})
}

func (c *Controller) setState(to State) {
	from := c.state
	c.state = to
	c.logger.Debug("state change", "from", from, "to", to)
	c.stateChanged(from, to)
}

func (c *Controller) resetClippingRange(ren scene.Renderer) {
	if c.autoAdjustClippingRange && ren != nil {
		ren.ResetCameraClippingRange()
	}
}
