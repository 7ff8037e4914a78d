// internal/ui/selector.go
package ui

import (
	"errors"
	"fmt"
	"image/color"
	"time"

	"gender-selector/internal/config"
	"gender-selector/internal/utils"
	"gender-selector/pkg/render"
	"gender-selector/pkg/shape"

	"github.com/fogleman/gg"
)

// Options configures a Selector. OnSelected is required.
type Options struct {
	MaleStops   []render.Stop
	FemaleStops []render.Stop
	Gap         float64
	Scale       float64
	Default     Choice
	MaxRadius   float64
	Duration    time.Duration
	Ease        utils.EaseFunc
	Captions    bool
	OnSelected  func(Choice)
}

var (
	defaultMaleStops   = mustParseStops(config.MaleStops)
	defaultFemaleStops = mustParseStops(config.FemaleStops)
)

// mustParseStops разбирает встроенные стопы; ошибка здесь — ошибка сборки.
func mustParseStops(defs []string) []render.Stop {
	stops, err := render.ParseStops(defs)
	if err != nil {
		panic(fmt.Sprintf("ui: default color stops: %v", err))
	}
	return stops
}

// DefaultOptions возвращает значения по умолчанию без обработчика выбора.
func DefaultOptions() Options {
	return Options{
		MaleStops:   defaultMaleStops,
		FemaleStops: defaultFemaleStops,
		Gap:         config.DefaultGap,
		Scale:       config.DefaultScale,
		Default:     Female,
		MaxRadius:   config.MaxRevealRadius,
		Duration:    config.RevealDuration,
		Ease:        utils.EaseInOut,
	}
}

// Selector is the two-choice view: it lays out both outlines, hit-tests
// taps, animates the reveal radius of each choice and paints them.
type Selector struct {
	outlines  [2]*shape.Outline
	stops     [2][]render.Stop
	opts      Options
	selected  Choice
	anchor    shape.Point // экранная точка последнего выбора
	hasAnchor bool
	radius    [2]*Tween
}

// NewSelector creates a selector seeded with opts.Default. Radii start
// settled: the default choice fully revealed, the other collapsed.
func NewSelector(male, female *shape.Outline, opts Options) (*Selector, error) {
	if male == nil || female == nil {
		return nil, errors.New("selector: both outlines are required")
	}
	if opts.OnSelected == nil {
		return nil, errors.New("selector: OnSelected callback is required")
	}
	if opts.Scale <= 0 {
		return nil, fmt.Errorf("selector: scale must be positive, got %g", opts.Scale)
	}
	if !opts.Default.Valid() {
		return nil, fmt.Errorf("selector: invalid default %v", opts.Default)
	}

	s := &Selector{
		outlines: [2]*shape.Outline{Male: male, Female: female},
		stops:    [2][]render.Stop{Male: opts.MaleStops, Female: opts.FemaleStops},
		opts:     opts,
		selected: opts.Default,
	}
	for _, c := range Choices {
		start := 0.0
		if c == s.selected {
			start = opts.MaxRadius
		}
		s.radius[c] = NewTween(start, opts.Duration, opts.Ease)
	}
	return s, nil
}

// Selected returns the currently selected choice.
func (s *Selector) Selected() Choice { return s.selected }

// Radius returns the current reveal radius of c in outline-local units.
func (s *Selector) Radius(c Choice) float64 { return s.radius[c].Value() }

// Animating reports whether any reveal radius is still moving.
func (s *Selector) Animating() bool {
	return !s.radius[Male].Done() || !s.radius[Female].Done()
}

// Anchor returns the screen point recorded by the last tap-driven change.
func (s *Selector) Anchor() (shape.Point, bool) { return s.anchor, s.hasAnchor }

// Layout computes placements for a canvas of the given size.
func (s *Selector) Layout(width, height float64) Layout {
	return Place(width, height, s.outlines[Male].Bounds(), s.outlines[Female].Bounds(), s.opts.Gap, s.opts.Scale)
}

// HitRects returns the screen rectangles used for hit testing.
func (s *Selector) HitRects(width, height float64) [2]shape.Rect {
	l := s.Layout(width, height)
	var rects [2]shape.Rect
	for _, c := range Choices {
		rects[c] = l.HitRect(c, s.outlines[c].Bounds())
	}
	return rects
}

// Tap handles a tap at p on a canvas of the given size. Only the
// unselected choice can be hit; Male is tested before Female. It reports
// whether the selection changed.
func (s *Selector) Tap(width, height float64, p shape.Point) bool {
	rects := s.HitRects(width, height)
	for _, c := range Choices {
		if c == s.selected || !rects[c].Contains(p) {
			continue
		}
		s.anchor, s.hasAnchor = p, true
		s.transition(c)
		return true
	}
	return false
}

// Select changes the selection without a tap. The anchor is cleared so
// the gradient grows from the shape center. Selecting the current choice
// is a no-op.
func (s *Selector) Select(c Choice) bool {
	if !c.Valid() || c == s.selected {
		return false
	}
	s.hasAnchor = false
	s.transition(c)
	return true
}

func (s *Selector) transition(c Choice) {
	s.selected = c
	for _, choice := range Choices {
		target := 0.0
		if choice == c {
			target = s.opts.MaxRadius
		}
		s.radius[choice].Retarget(target)
	}
	s.opts.OnSelected(c)
}

// Update advances both reveal animations by dt.
func (s *Selector) Update(dt time.Duration) {
	for _, c := range Choices {
		s.radius[c].Advance(dt)
	}
}

// Draw paints both choices on dc, whose size defines the canvas.
func (s *Selector) Draw(dc *gg.Context) {
	layout := s.Layout(float64(dc.Width()), float64(dc.Height()))
	for _, c := range Choices {
		outline := s.outlines[c]
		box := outline.Bounds()
		p := layout[c]

		center := box.Center()
		if s.hasAnchor {
			center = p.ToLocal(box, s.anchor)
		}
		render.PaintOutline(dc, outline, p, render.Reveal{
			Base:   config.NeutralColor,
			Stops:  s.stops[c],
			Center: center,
			Radius: s.radius[c].Value(),
		})

		if s.opts.Captions {
			var captionColor color.Color = config.CaptionColor
			if c != s.selected {
				captionColor = render.DarkenColor(config.NeutralColor)
			}
			render.DrawCaption(dc, outline, p, c.Label(), captionColor, config.CaptionGap)
		}
	}
}
