// internal/state/selector_state.go
package state

import (
	"fmt"
	"time"

	"gender-selector/internal/app"
	"gender-selector/internal/config"
	"gender-selector/internal/event"
	"gender-selector/internal/ui"
	"gender-selector/pkg/render"
	"gender-selector/pkg/shape"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Убеждаемся, что SelectorState соответствует интерфейсу State
var _ State = (*SelectorState)(nil)

// SelectorState — единственный экран: виджет выбора, ввод мышью и касанием
type SelectorState struct {
	sm       *StateMachine
	app      *app.App
	frame    *render.Frame
	frameImg *ebiten.Image
	touchIDs []ebiten.TouchID
	hitboxes bool
	logSub   event.Subscription
}

func NewSelectorState(sm *StateMachine, a *app.App) *SelectorState {
	return &SelectorState{
		sm:       sm,
		app:      a,
		frame:    render.NewFrame(),
		hitboxes: a.Settings.Debug.Hitboxes,
	}
}

func (s *SelectorState) Enter() {
	s.logSub = s.app.Dispatcher.Subscribe(event.ChoiceSelected, app.SelectionLogger{})
}

func (s *SelectorState) Exit() {
	s.app.Dispatcher.Unsubscribe(s.logSub)
}

func (s *SelectorState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(nil) // Exit снимает подписку логгера
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		s.hitboxes = !s.hitboxes
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		s.app.Selector.Select(ui.Male)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		s.app.Selector.Select(ui.Female)
	}

	// Обработка касаний и левой кнопки мыши одинакова
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.handleTap(x, y)
	}
	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		s.handleTap(x, y)
	}

	s.app.Selector.Update(time.Duration(deltaTime * float64(time.Second)))
	return nil
}

func (s *SelectorState) handleTap(x, y int) {
	w, h := s.app.Size()
	s.app.Selector.Tap(float64(w), float64(h), shape.Point{X: float64(x), Y: float64(y)})
}

func (s *SelectorState) Draw(screen *ebiten.Image) {
	bounds := screen.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	// Виджет растеризуется через gg, затем кадр копируется в текстуру Ebiten
	s.app.Selector.Draw(s.frame.Begin(w, h, config.BackgroundColor))
	if s.frameImg == nil || s.frameImg.Bounds().Dx() != w || s.frameImg.Bounds().Dy() != h {
		if s.frameImg != nil {
			s.frameImg.Deallocate()
		}
		s.frameImg = ebiten.NewImage(w, h)
	}
	s.frameImg.WritePixels(s.frame.Image().Pix)
	screen.DrawImage(s.frameImg, nil)

	if s.hitboxes {
		for _, r := range s.app.Selector.HitRects(float64(w), float64(h)) {
			vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, config.HitboxColor, false)
		}
		if anchor, ok := s.app.Selector.Anchor(); ok {
			vector.DrawFilledCircle(screen, float32(anchor.X), float32(anchor.Y), 3, config.HitboxColor, true)
		}
	}

	sel := s.app.Selector
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Selected: %s  male r=%.1f  female r=%.1f",
		sel.Selected(), sel.Radius(ui.Male), sel.Radius(ui.Female)))
}
