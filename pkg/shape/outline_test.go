package shape

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// recorder записывает команды в текстовом виде.
type recorder struct {
	ops []string
}

func (r *recorder) MoveTo(x, y float64) { r.ops = append(r.ops, fmt.Sprintf("M%g,%g", x, y)) }
func (r *recorder) LineTo(x, y float64) { r.ops = append(r.ops, fmt.Sprintf("L%g,%g", x, y)) }
func (r *recorder) QuadraticTo(x1, y1, x2, y2 float64) {
	r.ops = append(r.ops, fmt.Sprintf("Q%g,%g,%g,%g", x1, y1, x2, y2))
}
func (r *recorder) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	r.ops = append(r.ops, fmt.Sprintf("C%g,%g,%g,%g,%g,%g", x1, y1, x2, y2, x3, y3))
}
func (r *recorder) ClosePath() { r.ops = append(r.ops, "Z") }

func TestParseSquare(t *testing.T) {
	o, err := Parse("M2 3 H12 V23 H2 Z")
	require.NoError(t, err)
	require.Equal(t, Rect{X: 2, Y: 3, W: 10, H: 20}, o.Bounds())

	var rec recorder
	o.Replay(&rec)
	require.Equal(t, "M2,3", rec.ops[0])
	require.Equal(t, "Z", rec.ops[len(rec.ops)-1])
	require.Contains(t, rec.ops, "L12,23")
}

func TestParseBoundsIncludeControlPoints(t *testing.T) {
	o, err := Parse("M0 0 C0 -8 10 -8 10 0 L10 4 L0 4 Z")
	require.NoError(t, err)
	b := o.Bounds()
	require.Equal(t, -8.0, b.Y)
	require.Equal(t, 12.0, b.H)
	require.Equal(t, 10.0, b.W)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("   ")
	require.True(t, errors.Is(err, ErrEmptyPath))

	_, err = Parse("M0 0 L10 0")
	require.True(t, errors.Is(err, ErrDegenerateBounds))
}

func TestNewCopiesSegments(t *testing.T) {
	segs := []Segment{
		{Verb: MoveTo, Pts: [3]Point{{0, 0}}},
		{Verb: LineTo, Pts: [3]Point{{4, 0}}},
		{Verb: LineTo, Pts: [3]Point{{4, 4}}},
		{Verb: Close},
	}
	o, err := New(segs)
	require.NoError(t, err)
	segs[2].Pts[0] = Point{100, 100}
	require.Equal(t, Rect{W: 4, H: 4}, o.Bounds())
	require.Equal(t, 4, o.Len())

	var rec recorder
	o.Replay(&rec)
	require.Equal(t, "M0,0 L4,0 L4,4 Z", strings.Join(rec.ops, " "))
}

func TestRectContainsIsHalfOpen(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 5}
	tests := []struct {
		p    Point
		want bool
	}{
		{Point{10, 10}, true},
		{Point{14.9, 14.9}, true},
		{Point{15, 12}, false},
		{Point{12, 15}, false},
		{Point{9.9, 12}, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, r.Contains(tt.p), "point %v", tt.p)
	}

	left := Rect{X: 0, Y: 0, W: 10, H: 10}
	right := Rect{X: 10, Y: 0, W: 10, H: 10}
	require.False(t, left.Overlaps(right))
	require.True(t, left.Overlaps(Rect{X: 9, Y: 9, W: 2, H: 2}))
	require.Equal(t, Point{15, 5}, right.Center())
}
