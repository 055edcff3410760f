package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newViper returns an isolated viper that only sees path (or nothing when path is empty).
func newViper(t *testing.T, path string) *viper.Viper {
	t.Helper()
	v := viper.New()
	if path == "" {
		path = filepath.Join(t.TempDir(), "absent.yaml")
	}
	Init(v, path)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(newViper(t, ""))
	require.NoError(t, err)

	tests := []struct {
		name string
		got  any
		want any
	}{
		{"AssetsDir", cfg.AssetsDir, "assets"},
		{"BodiesFile", cfg.BodiesFile, ""},
		{"LogFile", cfg.LogFile, "logs/solar.txt"},
		{"Window.Width", cfg.Window.Width, 1280},
		{"Window.Height", cfg.Window.Height, 720},
		{"Window.TargetFPS", cfg.Window.TargetFPS, 60},
		{"Scene.RotationMultiplier", cfg.Scene.RotationMultiplier, 77.0},
		{"Scene.OrbitMultiplier", cfg.Scene.OrbitMultiplier, 25000.0},
		{"Camera.ScrollDistance", cfg.Camera.ScrollDistance, 2000.0},
		{"Camera.Start.Position", cfg.Camera.Start.Position, [3]float64{0, 140, 460}},
		{"SunPulse.Enabled", cfg.SunPulse.Enabled, true},
		{"Debug.ShowFPS", cfg.Debug.ShowFPS, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.got)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SOLAR_WINDOW_WIDTH", "800")
	t.Setenv("SOLAR_CAMERA_SCROLL_DISTANCE", "3500")
	t.Setenv("SOLAR_DEBUG_SHOW_FPS", "true")

	cfg, err := Load(newViper(t, ""))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 3500.0, cfg.Camera.ScrollDistance)
	assert.True(t, cfg.Debug.ShowFPS)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solar.yaml")
	data := "assets_dir: /srv/assets\n" +
		"scene:\n  orbit_multiplier: 1000\n" +
		"camera:\n  end:\n    position: [1, 2, 3]\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := Load(newViper(t, path))
	require.NoError(t, err)
	assert.Equal(t, "/srv/assets", cfg.AssetsDir)
	assert.Equal(t, 1000.0, cfg.Scene.OrbitMultiplier)
	assert.Equal(t, [3]float64{1, 2, 3}, cfg.Camera.End.Position)
	assert.Equal(t, 77.0, cfg.Scene.RotationMultiplier)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [\n"), 0644))
	_, err := Load(newViper(t, path))
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("SOLAR_CAMERA_SCROLL_DISTANCE", "0")
	_, err := Load(newViper(t, ""))
	assert.ErrorContains(t, err, "scroll_distance")
}

func TestValidate(t *testing.T) {
	cfg, err := Load(newViper(t, ""))
	require.NoError(t, err)

	bad := cfg
	bad.Window.Height = 0
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Scene.RadiusScale = -1
	assert.Error(t, bad.Validate())

	bad = cfg
	bad.Camera.FovyDeg = 180
	assert.Error(t, bad.Validate())
}

func TestValidate_ScrollAndPulse(t *testing.T) {
	cfg, err := Load(newViper(t, ""))
	require.NoError(t, err)

	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"zero pixels per notch", func(c *Config) { c.Camera.PixelsPerNotch = 0 }, "pixels_per_notch"},
		{"negative pixels per notch", func(c *Config) { c.Camera.PixelsPerNotch = -100 }, "pixels_per_notch"},
		{"zero pulse base", func(c *Config) { c.SunPulse.Base = 0 }, "sun_pulse.base"},
		{"negative pulse base", func(c *Config) { c.SunPulse.Base = -1 }, "sun_pulse.base"},
		{"negative amplitude", func(c *Config) { c.SunPulse.Amplitude = -0.1 }, "sun_pulse.amplitude"},
		{"amplitude above base", func(c *Config) { c.SunPulse.Amplitude = 1.5 }, "sun_pulse.amplitude"},
		{"negative hz", func(c *Config) { c.SunPulse.Hz = -1 }, "sun_pulse.hz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bad := cfg
			tt.mutate(&bad)
			assert.ErrorContains(t, bad.Validate(), tt.field)
		})
	}

	t.Setenv("SOLAR_CAMERA_PIXELS_PER_NOTCH", "0")
	_, err = Load(newViper(t, ""))
	assert.ErrorContains(t, err, "pixels_per_notch")
}

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config", "solar.yaml")
	require.NoError(t, WriteDefault(path))

	cfg, err := Load(newViper(t, path))
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, [3]float64{70, 18, 110}, cfg.Camera.End.Position)

	assert.Error(t, WriteDefault(path))
}
