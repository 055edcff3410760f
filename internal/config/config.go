package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. SOLAR_WINDOW_WIDTH.
const EnvPrefix = "SOLAR"

// DefaultPath is where `solar config init` writes and where Load looks first.
const DefaultPath = "config/solar.yaml"

// WindowConfig controls the host window.
type WindowConfig struct {
	Title      string `mapstructure:"title"`
	Width      int    `mapstructure:"width"`
	Height     int    `mapstructure:"height"`
	Fullscreen bool   `mapstructure:"fullscreen"`
	TargetFPS  int    `mapstructure:"target_fps"`
}

// SceneConfig controls km-to-world scaling and animation speed.
type SceneConfig struct {
	RadiusScale        float64 `mapstructure:"radius_scale"`
	DistanceScale      float64 `mapstructure:"distance_scale"`
	RotationMultiplier float64 `mapstructure:"rotation_multiplier"`
	OrbitMultiplier    float64 `mapstructure:"orbit_multiplier"`
	GlowRadius         float64 `mapstructure:"glow_radius"`
	Stars              int     `mapstructure:"stars"`
}

// PoseConfig is a camera pose: position in world units, rotation in degrees.
type PoseConfig struct {
	Position [3]float64 `mapstructure:"position"`
	Rotation [3]float64 `mapstructure:"rotation"`
}

// CameraConfig controls the scroll-driven camera.
type CameraConfig struct {
	FovyDeg        float64    `mapstructure:"fovy"`
	ScrollDistance float64    `mapstructure:"scroll_distance"`
	PixelsPerNotch float64    `mapstructure:"pixels_per_notch"`
	Start          PoseConfig `mapstructure:"start"`
	End            PoseConfig `mapstructure:"end"`
}

// SunPulseConfig controls the glow and light pulsing.
type SunPulseConfig struct {
	Enabled   bool    `mapstructure:"enabled"`
	Base      float64 `mapstructure:"base"`
	Amplitude float64 `mapstructure:"amplitude"`
	Hz        float64 `mapstructure:"hz"`
}

// DebugConfig holds debug overlays. All are off by default.
// Font is a font name searched under <assets_dir>/fonts; empty uses the raylib default.
type DebugConfig struct {
	ShowFPS      bool   `mapstructure:"show_fps"`
	ShowMemAlloc bool   `mapstructure:"show_memalloc"`
	ShowScroll   bool   `mapstructure:"show_scroll"`
	Font         string `mapstructure:"font"`
}

// Config holds all runtime configuration.
// Values are populated from solar.yaml, SOLAR_* env vars, and CLI flags.
type Config struct {
	AssetsDir  string         `mapstructure:"assets_dir"`
	BodiesFile string         `mapstructure:"bodies_file"`
	LogFile    string         `mapstructure:"log_file"`
	Window     WindowConfig   `mapstructure:"window"`
	Scene      SceneConfig    `mapstructure:"scene"`
	Camera     CameraConfig   `mapstructure:"camera"`
	SunPulse   SunPulseConfig `mapstructure:"sun_pulse"`
	Debug      DebugConfig    `mapstructure:"debug"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("assets_dir", "assets")
	v.SetDefault("bodies_file", "")
	v.SetDefault("log_file", "logs/solar.txt")

	v.SetDefault("window.title", "Solar System")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.fullscreen", false)
	v.SetDefault("window.target_fps", 60)

	v.SetDefault("scene.radius_scale", 1.0/4000)
	v.SetDefault("scene.distance_scale", 1.0/1000)
	v.SetDefault("scene.rotation_multiplier", 77.0)
	v.SetDefault("scene.orbit_multiplier", 25000.0)
	v.SetDefault("scene.glow_radius", 45.0)
	v.SetDefault("scene.stars", 4000)

	v.SetDefault("camera.fovy", 45.0)
	v.SetDefault("camera.scroll_distance", 2000.0)
	v.SetDefault("camera.pixels_per_notch", 100.0)
	v.SetDefault("camera.start.position", []float64{0, 140, 460})
	v.SetDefault("camera.start.rotation", []float64{-17, 0, 0})
	v.SetDefault("camera.end.position", []float64{70, 18, 110})
	v.SetDefault("camera.end.rotation", []float64{-6, 25, 0})

	v.SetDefault("sun_pulse.enabled", true)
	v.SetDefault("sun_pulse.base", 1.0)
	v.SetDefault("sun_pulse.amplitude", 0.08)
	v.SetDefault("sun_pulse.hz", 0.25)

	v.SetDefault("debug.show_fps", false)
	v.SetDefault("debug.show_memalloc", false)
	v.SetDefault("debug.show_scroll", false)
	v.SetDefault("debug.font", "")
}

// Init points v at the config file and environment. An empty path searches for
// solar.yaml in the working directory and config/.
func Init(v *viper.Viper, path string) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("solar")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("config")
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load reads configuration from v, applying built-in defaults for any values not set by
// config file, environment, or flags. A missing config file is not an error; a malformed one is.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("config: %w", err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values that would break the scene, the camera mapping or the light.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("config: window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	case c.Scene.RadiusScale <= 0 || c.Scene.DistanceScale <= 0:
		return fmt.Errorf("config: scene scales must be positive")
	case c.Scene.RotationMultiplier <= 0 || c.Scene.OrbitMultiplier <= 0:
		return fmt.Errorf("config: scene multipliers must be positive")
	case c.Camera.ScrollDistance <= 0:
		return fmt.Errorf("config: camera.scroll_distance must be positive, got %v", c.Camera.ScrollDistance)
	case c.Camera.FovyDeg <= 0 || c.Camera.FovyDeg >= 180:
		return fmt.Errorf("config: camera.fovy must be in (0, 180), got %v", c.Camera.FovyDeg)
	case c.Camera.PixelsPerNotch <= 0:
		return fmt.Errorf("config: camera.pixels_per_notch must be positive, got %v", c.Camera.PixelsPerNotch)
	case c.SunPulse.Base <= 0:
		// base is also the steady light intensity when the pulse is off
		return fmt.Errorf("config: sun_pulse.base must be positive, got %v", c.SunPulse.Base)
	case c.SunPulse.Amplitude < 0 || c.SunPulse.Amplitude > c.SunPulse.Base:
		return fmt.Errorf("config: sun_pulse.amplitude must be in [0, base], got %v", c.SunPulse.Amplitude)
	case c.SunPulse.Hz < 0:
		return fmt.Errorf("config: sun_pulse.hz must not be negative, got %v", c.SunPulse.Hz)
	}
	return nil
}

// WriteDefault writes the default configuration as YAML to path, creating its directory.
// An existing file is left untouched and reported as an error.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	v := viper.New()
	SetDefaults(v)
	v.SetConfigType("yaml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
