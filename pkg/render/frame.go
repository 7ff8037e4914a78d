// pkg/render/frame.go
package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"
)

// Frame owns an offscreen gg context sized to the current canvas. The
// context is reallocated only when the canvas size changes.
type Frame struct {
	dc *gg.Context
}

// NewFrame creates an empty frame; the first Begin allocates the context.
func NewFrame() *Frame {
	return &Frame{}
}

// Begin prepares the context for a new frame of the given size and clears
// it with bg.
func (f *Frame) Begin(width, height int, bg color.Color) *gg.Context {
	if f.dc == nil || f.dc.Width() != width || f.dc.Height() != height {
		f.dc = gg.NewContext(width, height)
		f.dc.SetFontFace(basicfont.Face7x13)
	}
	f.dc.Identity()
	f.dc.ResetClip()
	f.dc.SetColor(bg)
	f.dc.Clear()
	return f.dc
}

// Image returns the rasterized frame.
func (f *Frame) Image() *image.RGBA {
	if f.dc == nil {
		return nil
	}
	if img, ok := f.dc.Image().(*image.RGBA); ok {
		return img
	}
	return nil
}

// SavePNG writes the current frame to path.
func (f *Frame) SavePNG(path string) error {
	if f.dc == nil {
		return fmt.Errorf("save %s: frame was never drawn", path)
	}
	if err := f.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
