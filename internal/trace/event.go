// Package trace replays recorded controller input through an interaction
// controller.
package trace

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"spatial-interactor/internal/mathutil"
)

// Kind names a trace event.
type Kind string

const (
	Move          Kind = "move"
	PrimaryDown   Kind = "primary_down"
	PrimaryUp     Kind = "primary_up"
	SecondaryDown Kind = "secondary_down"
	SecondaryUp   Kind = "secondary_up"
	TertiaryDown  Kind = "tertiary_down"
	TertiaryUp    Kind = "tertiary_up"
	QuaternaryUp  Kind = "quaternary_up"
	Touchpad      Kind = "touchpad"
	Pinch         Kind = "pinch"
	PinchEnd      Kind = "pinch_end"
	Pan           Kind = "pan"
	PanEnd        Kind = "pan_end"
	Snapshot      Kind = "snapshot"
)

var kinds = map[Kind]bool{
	Move: true, PrimaryDown: true, PrimaryUp: true,
	SecondaryDown: true, SecondaryUp: true,
	TertiaryDown: true, TertiaryUp: true, QuaternaryUp: true,
	Touchpad: true, Pinch: true, PinchEnd: true,
	Pan: true, PanEnd: true, Snapshot: true,
}

var (
	ErrUnknownKind = errors.New("trace: unknown event kind")
	ErrBadPointer  = errors.New("trace: negative pointer index")
)

// Event is one recorded input. Pose fields are optional on every kind; when
// present they update the pointer's pose before the event is dispatched.
type Event struct {
	Kind    Kind `yaml:"kind"`
	Pointer int  `yaml:"pointer"`
	// Screen is the display position used to find the renderer.
	Screen      *[2]int             `yaml:"screen"`
	Position    *mathutil.Vec3      `yaml:"position"`
	Orientation *mathutil.AxisAngle `yaml:"orientation"`
	// Touch is the touchpad x, y pair for touchpad events.
	Touch *[2]float64 `yaml:"touch"`
	// Scale is the absolute pinch scale since the pinch began.
	Scale float64 `yaml:"scale"`
	// Translation is the cumulative pan offset since the pan began.
	Translation *mathutil.Vec3 `yaml:"translation"`
	Label       string         `yaml:"label"`
}

type file struct {
	Events []Event `yaml:"events"`
}

// Load reads and validates a YAML trace file.
func Load(path string) ([]Event, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("trace: read %s: %w", path, err)
	}
	events, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("trace: parse %s: %w", path, err)
	}
	return events, nil
}

// Parse decodes and validates a YAML trace.
func Parse(data []byte) ([]Event, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}
	for i, ev := range f.Events {
		if !kinds[ev.Kind] {
			return nil, fmt.Errorf("%w %q at event %d", ErrUnknownKind, ev.Kind, i)
		}
		if ev.Pointer < 0 {
			return nil, fmt.Errorf("%w at event %d", ErrBadPointer, i)
		}
	}
	return f.Events, nil
}
