// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 400
	ScreenHeight = 400
	MaxDeltaTime = 0.06

	DefaultGap   = 25.0
	DefaultScale = 7.0

	MaxRevealRadius = 80.0                   // в локальных единицах контура
	RevealDuration  = 500 * time.Millisecond // длительность перехода

	CaptionGap = 12.0 // отступ подписи от нижнего края контура
)

var (
	BackgroundColor = color.RGBA{250, 250, 250, 255}
	NeutralColor    = color.RGBA{224, 224, 224, 255} // заливка под градиентом
	CaptionColor    = color.RGBA{66, 66, 66, 255}
	HitboxColor     = color.RGBA{255, 0, 255, 160}

	// Стопы градиентов в формате "offset:#rrggbb[/alpha]", равномерно
	MaleStops   = []string{"0:#ffffff", "0.5:#add8e6", "1:#0000ff"}
	FemaleStops = []string{"0:#ffffff", "0.5:#ff80ff", "1:#ff00ff"}
)
