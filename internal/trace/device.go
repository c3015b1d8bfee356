package trace

import (
	"spatial-interactor/internal/mathutil"
	"spatial-interactor/internal/pose"
)

// Device is the tracker state rebuilt from trace events. It satisfies the
// controller's Tracker interface.
type Device struct {
	pointer int
	screen  map[int][2]int
	current map[int]pose.Sample
	last    map[int]pose.Sample

	touch       [2]float64
	scale       float64
	lastScale   float64
	translation mathutil.Vec3
}

// NewDevice returns a device with every pointer at the origin and a pinch
// scale of 1.
func NewDevice() *Device {
	return &Device{
		screen:    map[int][2]int{},
		current:   map[int]pose.Sample{},
		last:      map[int]pose.Sample{},
		scale:     1,
		lastScale: 1,
	}
}

func (d *Device) PointerIndex() int { return d.pointer }

func (d *Device) EventPosition(pointer int) (int, int) {
	s := d.screen[pointer]
	return s[0], s[1]
}

func (d *Device) WorldPose(pointer int) pose.Sample     { return d.current[pointer] }
func (d *Device) LastWorldPose(pointer int) pose.Sample { return d.last[pointer] }

func (d *Device) TouchPadPosition() (float64, float64) { return d.touch[0], d.touch[1] }

func (d *Device) Scale() float64               { return d.scale }
func (d *Device) LastScale() float64           { return d.lastScale }
func (d *Device) Translation3D() mathutil.Vec3 { return d.translation }

// apply folds ev into the device state. A pose update shifts the pointer's
// current sample into its last one; an event without a pose leaves the two
// equal so handlers see a zero delta.
func (d *Device) apply(ev Event) {
	d.pointer = ev.Pointer
	if ev.Screen != nil {
		d.screen[ev.Pointer] = *ev.Screen
	}
	if ev.Position != nil || ev.Orientation != nil {
		cur := d.current[ev.Pointer]
		next := cur
		if ev.Position != nil {
			next.Position = *ev.Position
		}
		if ev.Orientation != nil {
			next.Orientation = *ev.Orientation
		}
		d.last[ev.Pointer] = cur
		d.current[ev.Pointer] = next
	} else {
		d.last[ev.Pointer] = d.current[ev.Pointer]
	}

	switch ev.Kind {
	case Touchpad:
		if ev.Touch != nil {
			d.touch = *ev.Touch
		}
	case Pinch:
		d.lastScale = d.scale
		d.scale = ev.Scale
	case PinchEnd:
		d.scale, d.lastScale = 1, 1
	case Pan:
		if ev.Translation != nil {
			d.translation = *ev.Translation
		}
	case PanEnd:
		d.translation = mathutil.Vec3{}
	}
}
