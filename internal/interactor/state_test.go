package interactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNext(t *testing.T) {
	all := Guards{Renderer: true, Prop: true}
	tests := []struct {
		from State
		on   Button
		g    Guards
		want State
	}{
		{Idle, PrimaryDown, all, Rotating},
		{Idle, PrimaryDown, Guards{Renderer: true}, Idle},
		{Idle, PrimaryDown, Guards{Prop: true}, Idle},
		{Idle, SecondaryDown, Guards{Renderer: true}, Dollying},
		{Idle, SecondaryDown, Guards{}, Idle},
		{Idle, TertiaryDown, Guards{Renderer: true}, Clipping},
		{Idle, TertiaryDown, Guards{}, Idle},
		{Idle, PrimaryUp, all, Idle},
		{Rotating, PrimaryUp, Guards{}, Idle},
		{Rotating, SecondaryDown, all, Rotating},
		{Rotating, SecondaryUp, all, Rotating},
		{Dollying, SecondaryUp, Guards{}, Idle},
		{Dollying, PrimaryDown, all, Dollying},
		{Dollying, PrimaryUp, all, Dollying},
		{Clipping, TertiaryUp, Guards{}, Idle},
		{Clipping, TertiaryDown, all, Clipping},
		{Clipping, PrimaryUp, all, Clipping},
	}
	for _, tt := range tests {
		t.Run(tt.from.String()+"/"+tt.on.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Next(tt.from, tt.on, tt.g))
		})
	}
}

func TestStringers(t *testing.T) {
	assert.Equal(t, "clipping", Clipping.String())
	assert.Equal(t, "State(9)", State(9).String())
	assert.Equal(t, "tertiary-up", TertiaryUp.String())
	assert.Equal(t, "Button(-1)", Button(-1).String())
}
