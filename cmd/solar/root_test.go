package main

import (
	"bytes"
	"math"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solar-system/internal/config"
	"solar-system/internal/logger"
)

func defaultConfig(t *testing.T) config.Config {
	t.Helper()
	v := viper.New()
	config.Init(v, filepath.Join(t.TempDir(), "absent.yaml"))
	cfg, err := config.Load(v)
	require.NoError(t, err)
	return cfg
}

func TestSceneOptions(t *testing.T) {
	cfg := defaultConfig(t)
	opts := sceneOptions(cfg)

	assert.Equal(t, cfg.AssetsDir, opts.AssetsDir)
	assert.Equal(t, 1.0/4000, opts.Scale.RadiusPerKm)
	assert.Equal(t, 25000.0, opts.Rates.OrbitMultiplier)
	assert.Equal(t, 2000.0, opts.Camera.Distance)
	assert.InDelta(t, -17*math.Pi/180, opts.Camera.Start.Rotation.X, 1e-12)
	assert.InDelta(t, 25*math.Pi/180, opts.Camera.End.Rotation.Y, 1e-12)
	assert.Equal(t, 460.0, opts.Camera.Start.Position[2])
}

func TestNewPulse(t *testing.T) {
	cfg := defaultConfig(t)
	p := newPulse(cfg.SunPulse)
	require.NotNil(t, p)
	assert.Equal(t, 0.08, p.Amplitude)

	cfg.SunPulse.Enabled = false
	assert.Nil(t, newPulse(cfg.SunPulse))
}

func TestNewDebug_MissingFontIsLogged(t *testing.T) {
	cfg := defaultConfig(t)
	cfg.AssetsDir = t.TempDir()
	cfg.Debug.ShowFPS = true
	cfg.Debug.Font = "Inter"
	log := logger.New("")

	d := newDebug(cfg, log)
	assert.True(t, d.ShowFPS)
	require.Len(t, log.Lines(), 1)
	assert.Contains(t, log.Lines()[0], `font "Inter" not found`)
}

func TestConfigInitCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solar.yaml")
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"config", "init", path})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "wrote "+path)
}
