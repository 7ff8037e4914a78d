// pkg/shape/outline.go
package shape

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var (
	// ErrEmptyPath is returned when path data contains no drawing commands.
	ErrEmptyPath = errors.New("shape: empty path data")
	// ErrDegenerateBounds is returned when an outline has zero width or height.
	ErrDegenerateBounds = errors.New("shape: outline has degenerate bounds")
)

// Verb identifies a path segment kind.
type Verb uint8

const (
	MoveTo Verb = iota
	LineTo
	QuadTo
	CubicTo
	Close
)

// Segment is one path command. Pts holds up to three points: control
// points first, the end point last.
type Segment struct {
	Verb Verb
	Pts  [3]Point
}

// Tracer receives path commands. *gg.Context satisfies it directly.
type Tracer interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(x1, y1, x2, y2 float64)
	CubicTo(x1, y1, x2, y2, x3, y3 float64)
	ClosePath()
}

// Outline is an immutable vector outline with its bounding box computed
// once at construction.
type Outline struct {
	segments []Segment
	bounds   Rect
}

// Parse compiles SVG path data ("M0 0 L10 0 ...") into an Outline.
func Parse(data string) (*Outline, error) {
	data = strings.Join(strings.Fields(data), " ")
	if data == "" {
		return nil, ErrEmptyPath
	}

	cursor := &oksvg.PathCursor{ErrorMode: oksvg.StrictErrorMode}
	if err := cursor.CompilePath(data); err != nil {
		return nil, fmt.Errorf("compile path data: %w", err)
	}

	var c collector
	cursor.Path.AddTo(&c)
	return New(c.segments)
}

// New builds an Outline from raw segments. The slice is copied.
func New(segments []Segment) (*Outline, error) {
	if len(segments) == 0 {
		return nil, ErrEmptyPath
	}
	segs := make([]Segment, len(segments))
	copy(segs, segments)

	bounds := computeBounds(segs)
	if bounds.Empty() {
		return nil, fmt.Errorf("%w: %.2fx%.2f", ErrDegenerateBounds, bounds.W, bounds.H)
	}
	return &Outline{segments: segs, bounds: bounds}, nil
}

// Bounds returns the bounding box, including curve control points.
func (o *Outline) Bounds() Rect {
	return o.bounds
}

// Len returns the number of segments.
func (o *Outline) Len() int {
	return len(o.segments)
}

// Replay feeds every segment to t in order.
func (o *Outline) Replay(t Tracer) {
	for _, s := range o.segments {
		switch s.Verb {
		case MoveTo:
			t.MoveTo(s.Pts[0].X, s.Pts[0].Y)
		case LineTo:
			t.LineTo(s.Pts[0].X, s.Pts[0].Y)
		case QuadTo:
			t.QuadraticTo(s.Pts[0].X, s.Pts[0].Y, s.Pts[1].X, s.Pts[1].Y)
		case CubicTo:
			t.CubicTo(s.Pts[0].X, s.Pts[0].Y, s.Pts[1].X, s.Pts[1].Y, s.Pts[2].X, s.Pts[2].Y)
		case Close:
			t.ClosePath()
		}
	}
}

func pointCount(v Verb) int {
	switch v {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	}
	return 0
}

func computeBounds(segs []Segment) Rect {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, s := range segs {
		for i := 0; i < pointCount(s.Verb); i++ {
			p := s.Pts[i]
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if math.IsInf(minX, 1) {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// collector принимает команды rasterx.Path и переводит их в сегменты.
type collector struct {
	segments []Segment
}

var _ rasterx.Adder = (*collector)(nil)

func toPoint(p fixed.Point26_6) Point {
	return Point{X: float64(p.X) / 64, Y: float64(p.Y) / 64}
}

func (c *collector) Start(a fixed.Point26_6) {
	c.segments = append(c.segments, Segment{Verb: MoveTo, Pts: [3]Point{toPoint(a)}})
}

func (c *collector) Line(b fixed.Point26_6) {
	c.segments = append(c.segments, Segment{Verb: LineTo, Pts: [3]Point{toPoint(b)}})
}

func (c *collector) QuadBezier(b, d fixed.Point26_6) {
	c.segments = append(c.segments, Segment{Verb: QuadTo, Pts: [3]Point{toPoint(b), toPoint(d)}})
}

func (c *collector) CubeBezier(b, d, e fixed.Point26_6) {
	c.segments = append(c.segments, Segment{Verb: CubicTo, Pts: [3]Point{toPoint(b), toPoint(d), toPoint(e)}})
}

// Stop(false) приходит и между подпутями, и в конце пути; нас интересует только закрытие.
func (c *collector) Stop(closeLoop bool) {
	if closeLoop {
		c.segments = append(c.segments, Segment{Verb: Close})
	}
}
