package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SELECTOR_CONFIG", "")

	s, err := Load("")
	require.NoError(t, err)
	require.Equal(t, ScreenWidth, s.Window.Width)
	require.Equal(t, DefaultGap, s.Widget.Gap)
	require.Equal(t, DefaultScale, s.Widget.Scale)
	require.Equal(t, "female", s.Widget.Default)
	require.Equal(t, MaleStops, s.Widget.MaleStops)
	require.True(t, s.Widget.Captions)
	require.False(t, s.Debug.Hitboxes)
}

func TestLoadFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "selector.toml")
	data := []byte(`
[widget]
gap = 40
default = "male"
female_stops = ["0:#ff0000", "1:#ff0000/0"]

[debug]
hitboxes = true
`)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	t.Setenv("SELECTOR_WIDGET_SCALE", "3.5")

	s, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 40.0, s.Widget.Gap)
	require.Equal(t, 3.5, s.Widget.Scale)
	require.Equal(t, "male", s.Widget.Default)
	require.Equal(t, []string{"0:#ff0000", "1:#ff0000/0"}, s.Widget.FemaleStops)
	require.True(t, s.Debug.Hitboxes)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	base := Settings{
		Window: WindowSettings{Width: 400, Height: 400},
		Widget: WidgetSettings{Gap: 25, Scale: 7, Default: "Female", MaleStops: MaleStops, FemaleStops: FemaleStops},
	}
	require.NoError(t, base.Validate())

	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"zero scale", func(s *Settings) { s.Widget.Scale = 0 }},
		{"negative gap", func(s *Settings) { s.Widget.Gap = -1 }},
		{"no stops", func(s *Settings) { s.Widget.MaleStops = nil }},
		{"unknown default", func(s *Settings) { s.Widget.Default = "other" }},
		{"empty window", func(s *Settings) { s.Window.Height = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := base
			tt.mutate(&s)
			require.Error(t, s.Validate())
		})
	}
}
