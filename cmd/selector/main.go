// cmd/selector/main.go
package main

import (
	"flag"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"gender-selector/internal/app"
	"gender-selector/internal/config"
	"gender-selector/internal/event"
	"gender-selector/internal/state"
	"gender-selector/pkg/shape"

	"github.com/hajimehoshi/ebiten/v2"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	width, height  int
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "path to a TOML/YAML config file")
	snapshot := flag.String("snapshot", "", "render one frame to this PNG file and exit")
	tap := flag.String("tap", "", "snapshot only: tap position as x,y")
	at := flag.Duration("at", config.RevealDuration, "snapshot only: animation time after the tap")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	selectorApp, err := app.New(settings)
	if err != nil {
		log.Fatal(err)
	}

	if *snapshot != "" {
		req := app.SnapshotRequest{Path: *snapshot, At: *at}
		if *tap != "" {
			p, err := parsePoint(*tap)
			if err != nil {
				log.Fatal(err)
			}
			req.Tap = &p
		}
		selectorApp.Dispatcher.Subscribe(event.SnapshotSaved, event.ListenerFunc(func(e event.Event) {
			log.Printf("Snapshot written to %v", e.Data)
		}))
		if err := selectorApp.Snapshot(req); err != nil {
			log.Fatal(err)
		}
		return
	}

	sm := state.NewStateMachine()
	sm.SetState(state.NewSelectorState(sm, selectorApp))
	w, h := selectorApp.Size()
	game := &AppGame{
		stateMachine:   sm,
		width:          w,
		height:         h,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle("Gender Selector")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}

// parsePoint разбирает координаты вида "120,200"
func parsePoint(s string) (shape.Point, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return shape.Point{}, fmt.Errorf("tap %q: want x,y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return shape.Point{}, fmt.Errorf("tap %q: %w", s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return shape.Point{}, fmt.Errorf("tap %q: %w", s, err)
	}
	return shape.Point{X: x, Y: y}, nil
}
