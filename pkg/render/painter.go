// pkg/render/painter.go
package render

import (
	"image/color"

	"gender-selector/pkg/shape"

	"github.com/fogleman/gg"
)

// GradientEpsilon is added to the reveal radius to get the gradient radius,
// so the gradient never degenerates to a zero-radius circle and the disk
// edge stays hard.
const GradientEpsilon = 1.0

// Placement describes how an outline maps to the canvas: its bounding box
// top-left lands on Origin and local units are multiplied by Scale.
type Placement struct {
	Origin shape.Point
	Scale  float64
}

// ToScreen maps a point in outline-local space to canvas space.
func (p Placement) ToScreen(box shape.Rect, local shape.Point) shape.Point {
	return p.Origin.Add(local.Sub(box.Min()).Mul(p.Scale))
}

// ToLocal is the inverse of ToScreen.
func (p Placement) ToLocal(box shape.Rect, screen shape.Point) shape.Point {
	return screen.Sub(p.Origin).Mul(1 / p.Scale).Add(box.Min())
}

// Reveal is the gradient fill painted inside an outline.
type Reveal struct {
	Base   color.Color // fill under the gradient
	Stops  []Stop
	Center shape.Point // outline-local
	Radius float64     // outline-local
}

// PaintOutline draws o at placement p: a flat Base fill, then a disk of
// radius r.Radius around r.Center filled with the radial gradient and
// clipped to the outline. Outside the disk the Base fill stays visible
// whatever the last stop is. The context's transform and clip are
// restored before returning.
func PaintOutline(dc *gg.Context, o *shape.Outline, p Placement, r Reveal) {
	box := o.Bounds()

	dc.Push()
	defer dc.Pop()

	dc.Translate(p.Origin.X, p.Origin.Y)
	dc.Scale(p.Scale, p.Scale)
	dc.Translate(-box.X, -box.Y)

	dc.NewSubPath()
	o.Replay(dc)
	dc.SetColor(r.Base)
	dc.FillPreserve()
	dc.Clip()
	defer dc.ResetClip()

	if len(r.Stops) == 0 || r.Radius <= 0 {
		return
	}

	// Паттерны gg работают в координатах устройства, поэтому центр и радиус
	// переводим вручную.
	center := p.ToScreen(box, r.Center)
	radius := (r.Radius + GradientEpsilon) * p.Scale
	grad := gg.NewRadialGradient(center.X, center.Y, 0, center.X, center.Y, radius)
	for _, s := range r.Stops {
		grad.AddColorStop(s.Offset, s.Color)
	}
	dc.SetFillStyle(grad)
	dc.DrawCircle(r.Center.X, r.Center.Y, r.Radius)
	dc.Fill()
}

// DrawCaption writes text centered under the placed outline.
func DrawCaption(dc *gg.Context, o *shape.Outline, p Placement, text string, c color.Color, gap float64) {
	box := o.Bounds()
	bottom := p.ToScreen(box, shape.Point{X: box.Center().X, Y: box.Bottom()})
	dc.SetColor(c)
	dc.DrawStringAnchored(text, bottom.X, bottom.Y+gap, 0.5, 1)
}
