// internal/app/app.go
package app

import (
	"fmt"
	"log"
	"time"

	"gender-selector/internal/assets"
	"gender-selector/internal/config"
	"gender-selector/internal/event"
	"gender-selector/internal/ui"
	"gender-selector/pkg/render"
	"gender-selector/pkg/shape"
)

// App связывает виджет выбора с диспетчером событий.
type App struct {
	Selector   *ui.Selector
	Dispatcher *event.Dispatcher
	Settings   config.Settings
}

// New loads the symbols, parses the configured color stops and builds the
// selector. Every selection change is published as event.ChoiceSelected.
func New(settings config.Settings) (*App, error) {
	symbols, err := assets.LoadSymbols(settings.Assets.MalePath, settings.Assets.FemalePath)
	if err != nil {
		return nil, err
	}
	maleStops, err := render.ParseStops(settings.Widget.MaleStops)
	if err != nil {
		return nil, fmt.Errorf("widget.male_stops: %w", err)
	}
	femaleStops, err := render.ParseStops(settings.Widget.FemaleStops)
	if err != nil {
		return nil, fmt.Errorf("widget.female_stops: %w", err)
	}
	def, err := ui.ParseChoice(settings.Widget.Default)
	if err != nil {
		return nil, fmt.Errorf("widget.default: %w", err)
	}

	a := &App{Dispatcher: event.NewDispatcher(), Settings: settings}

	opts := ui.DefaultOptions()
	opts.MaleStops = maleStops
	opts.FemaleStops = femaleStops
	opts.Gap = settings.Widget.Gap
	opts.Scale = settings.Widget.Scale
	opts.Default = def
	opts.Captions = settings.Widget.Captions
	opts.OnSelected = func(c ui.Choice) {
		a.Dispatcher.Dispatch(event.Event{Type: event.ChoiceSelected, Data: c})
	}

	a.Selector, err = ui.NewSelector(symbols.Male, symbols.Female, opts)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Size возвращает размер холста из настроек.
func (a *App) Size() (int, int) {
	return a.Settings.Window.Width, a.Settings.Window.Height
}

// SelectionLogger пишет каждое изменение выбора в лог.
type SelectionLogger struct{}

func (SelectionLogger) OnEvent(e event.Event) {
	log.Printf("Selection changed: %v", e.Data)
}

// SnapshotRequest describes a headless render: optional tap, then the
// animation is advanced by At before the frame is drawn.
type SnapshotRequest struct {
	Path string
	Tap  *shape.Point
	At   time.Duration
}

// Snapshot renders a single frame to a PNG file.
func (a *App) Snapshot(req SnapshotRequest) error {
	w, h := a.Size()
	if req.Tap != nil && !a.Selector.Tap(float64(w), float64(h), *req.Tap) {
		log.Printf("Snapshot tap at (%.1f, %.1f) did not change the selection", req.Tap.X, req.Tap.Y)
	}
	a.Selector.Update(req.At)

	frame := render.NewFrame()
	a.Selector.Draw(frame.Begin(w, h, config.BackgroundColor))
	if err := frame.SavePNG(req.Path); err != nil {
		return err
	}
	a.Dispatcher.Dispatch(event.Event{Type: event.SnapshotSaved, Data: req.Path})
	return nil
}
