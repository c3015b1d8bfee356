package raster

import "math"

// FrameBuffer holds the rendering target as flat slices for cache locality.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // inverse view depth per pixel, larger is nearer
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   make([]float64, n),
	}
	fb.ClearDepth(math.Inf(-1))
	return fb
}

// ClearDepth resets every depth sample to z. Passing 1/far discards
// anything beyond the far plane.
func (fb *FrameBuffer) ClearDepth(z float64) {
	for i := range fb.ZBuf {
		fb.ZBuf[i] = z
	}
}
