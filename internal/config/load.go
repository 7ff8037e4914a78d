// internal/config/load.go
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Settings — настройки, которые можно переопределить файлом или окружением.
type Settings struct {
	Window WindowSettings `mapstructure:"window"`
	Widget WidgetSettings `mapstructure:"widget"`
	Assets AssetSettings  `mapstructure:"assets"`
	Debug  DebugSettings  `mapstructure:"debug"`
}

type WindowSettings struct {
	Width  int `mapstructure:"width"`
	Height int `mapstructure:"height"`
}

type WidgetSettings struct {
	Gap         float64  `mapstructure:"gap"`
	Scale       float64  `mapstructure:"scale"`
	Default     string   `mapstructure:"default"`
	MaleStops   []string `mapstructure:"male_stops"`
	FemaleStops []string `mapstructure:"female_stops"`
	Captions    bool     `mapstructure:"captions"`
}

// AssetSettings: пустой путь — встроенный символ.
type AssetSettings struct {
	MalePath   string `mapstructure:"male_path"`
	FemalePath string `mapstructure:"female_path"`
}

type DebugSettings struct {
	Hitboxes bool `mapstructure:"hitboxes"`
}

// Load reads settings from defaults, an optional config file and env vars
// prefixed with SELECTOR_. An empty path falls back to $SELECTOR_CONFIG and
// then to ./selector.{toml,yaml} if present.
func Load(path string) (Settings, error) {
	v := viper.New()

	v.SetDefault("window.width", ScreenWidth)
	v.SetDefault("window.height", ScreenHeight)
	v.SetDefault("widget.gap", DefaultGap)
	v.SetDefault("widget.scale", DefaultScale)
	v.SetDefault("widget.default", "female")
	v.SetDefault("widget.male_stops", MaleStops)
	v.SetDefault("widget.female_stops", FemaleStops)
	v.SetDefault("widget.captions", true)
	v.SetDefault("assets.male_path", "")
	v.SetDefault("assets.female_path", "")
	v.SetDefault("debug.hitboxes", false)

	if path == "" {
		path = os.Getenv("SELECTOR_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("selector")
	}

	v.SetEnvPrefix("SELECTOR")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// явно указанный файл обязан существовать
		if path != "" || !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("read config: %w", err)
		}
	} else {
		log.Printf("Config loaded from %s", v.ConfigFileUsed())
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks ranges that the widget cannot recover from.
func (s Settings) Validate() error {
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", s.Window.Width, s.Window.Height)
	}
	if s.Widget.Scale <= 0 {
		return fmt.Errorf("widget.scale must be positive, got %g", s.Widget.Scale)
	}
	if s.Widget.Gap < 0 {
		return fmt.Errorf("widget.gap must not be negative, got %g", s.Widget.Gap)
	}
	if len(s.Widget.MaleStops) == 0 || len(s.Widget.FemaleStops) == 0 {
		return errors.New("widget color stops must not be empty")
	}
	switch strings.ToLower(strings.TrimSpace(s.Widget.Default)) {
	case "male", "female":
	default:
		return fmt.Errorf("widget.default must be male or female, got %q", s.Widget.Default)
	}
	return nil
}
