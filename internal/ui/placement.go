// internal/ui/placement.go
package ui

import (
	"gender-selector/pkg/render"
	"gender-selector/pkg/shape"
)

// Layout — расположение обоих контуров на холсте для текущего кадра.
// Никогда не кэшируется между изменениями геометрии.
type Layout [2]render.Placement

// Place ставит два масштабированных контура рядом, по центру холста, с
// зазором gap между ними. Каждый контур центрируется по вертикали отдельно.
func Place(width, height float64, male, female shape.Rect, gap, scale float64) Layout {
	cx, cy := width/2, height/2
	return Layout{
		Male: {
			Origin: shape.Point{X: cx - male.W*scale - gap/2, Y: cy - male.H*scale/2},
			Scale:  scale,
		},
		Female: {
			Origin: shape.Point{X: cx + gap/2, Y: cy - female.H*scale/2},
			Scale:  scale,
		},
	}
}

// HitRect возвращает экранный прямоугольник контура с рамкой box.
func (l Layout) HitRect(c Choice, box shape.Rect) shape.Rect {
	p := l[c]
	return shape.Rect{X: p.Origin.X, Y: p.Origin.Y, W: box.W * p.Scale, H: box.H * p.Scale}
}
