package trace

import (
	"context"
	"fmt"
	"log/slog"

	"spatial-interactor/internal/logging"
)

// Controller is the event surface a Player drives.
type Controller interface {
	OnMove()
	OnPrimaryDown()
	OnPrimaryUp()
	OnSecondaryDown()
	OnSecondaryUp()
	OnTertiaryDown()
	OnTertiaryUp()
	OnQuaternaryUp()
	OnPinch()
	OnPan()
	OnPanEnd()
}

// Player feeds events into a Device and dispatches them to a Controller.
type Player struct {
	device     *Device
	ctrl       Controller
	logger     *slog.Logger
	onSnapshot func(seq int, label string)
	snapshots  int
}

type PlayerOption func(*Player)

func WithLogger(l *slog.Logger) PlayerOption {
	return func(p *Player) { p.logger = l }
}

// WithSnapshotHandler is called for every snapshot event with a running
// sequence number starting at 0.
func WithSnapshotHandler(fn func(seq int, label string)) PlayerOption {
	return func(p *Player) { p.onSnapshot = fn }
}

func NewPlayer(d *Device, c Controller, opts ...PlayerOption) *Player {
	p := &Player{device: d, ctrl: c, logger: logging.NewNop()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Play dispatches events in order. It stops after a quaternary release or
// when ctx is done, and returns how many events were dispatched.
func (p *Player) Play(ctx context.Context, events []Event) (int, error) {
	for i, ev := range events {
		if err := ctx.Err(); err != nil {
			return i, err
		}
		p.device.apply(ev)
		p.dispatch(ev)
		if ev.Kind == QuaternaryUp {
			p.logger.Info("trace stopped on exit", "event", i, "remaining", len(events)-i-1)
			return i + 1, nil
		}
	}
	return len(events), nil
}

func (p *Player) dispatch(ev Event) {
	switch ev.Kind {
	case Move, Touchpad:
		p.ctrl.OnMove()
	case PrimaryDown:
		p.ctrl.OnPrimaryDown()
	case PrimaryUp:
		p.ctrl.OnPrimaryUp()
	case SecondaryDown:
		p.ctrl.OnSecondaryDown()
	case SecondaryUp:
		p.ctrl.OnSecondaryUp()
	case TertiaryDown:
		p.ctrl.OnTertiaryDown()
	case TertiaryUp:
		p.ctrl.OnTertiaryUp()
	case QuaternaryUp:
		p.ctrl.OnQuaternaryUp()
	case Pinch:
		p.ctrl.OnPinch()
	case Pan:
		p.ctrl.OnPan()
	case PanEnd:
		p.ctrl.OnPanEnd()
	case Snapshot:
		label := ev.Label
		if label == "" {
			label = fmt.Sprintf("snapshot-%03d", p.snapshots)
		}
		if p.onSnapshot != nil {
			p.onSnapshot(p.snapshots, label)
		}
		p.snapshots++
	}
	p.logger.Debug("event", "kind", ev.Kind, "pointer", ev.Pointer)
}
