package main

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"solar-system/internal/bodies"
	"solar-system/internal/camera"
	"solar-system/internal/config"
	"solar-system/internal/debug"
	"solar-system/internal/env"
	"solar-system/internal/fonts"
	"solar-system/internal/graphics"
	"solar-system/internal/logger"
	"solar-system/internal/loop"
	"solar-system/internal/render"
	"solar-system/internal/scenegraph"
	"solar-system/internal/solar"
)

var vp = viper.New()

var rootCmd = &cobra.Command{
	Use:          "solar",
	Short:        "Scroll-driven 3D solar system",
	Long:         "Solar opens a window with the sun and planets spinning and orbiting. Scroll the mouse wheel to fly the camera.",
	SilenceUsage: true,
	RunE:         runScene,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default solar.yaml in . or config/)")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before the config")
	rootCmd.PersistentFlags().String("bodies", "", "body registry YAML (default built-in)")
	rootCmd.Flags().Bool("fullscreen", false, "open fullscreen")

	_ = vp.BindPFlag("bodies_file", rootCmd.PersistentFlags().Lookup("bodies"))
	_ = vp.BindPFlag("window.fullscreen", rootCmd.Flags().Lookup("fullscreen"))
}

func initConfig() {
	envFile, _ := rootCmd.PersistentFlags().GetString("env-file")
	if err := env.Load(envFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	config.Init(vp, cfgFile)
}

// sceneOptions converts configuration into scene construction options.
func sceneOptions(cfg config.Config) solar.Options {
	return solar.Options{
		AssetsDir: cfg.AssetsDir,
		Scale: solar.Scale{
			RadiusPerKm:   cfg.Scene.RadiusScale,
			DistancePerKm: cfg.Scene.DistanceScale,
		},
		Rates: solar.Rates{
			RotationMultiplier: cfg.Scene.RotationMultiplier,
			OrbitMultiplier:    cfg.Scene.OrbitMultiplier,
		},
		Camera: camera.Controller{
			Start:    pose(cfg.Camera.Start),
			End:      pose(cfg.Camera.End),
			Distance: cfg.Camera.ScrollDistance,
		},
		FovyDeg:    cfg.Camera.FovyDeg,
		GlowRadius: cfg.Scene.GlowRadius,
		LightPower: cfg.SunPulse.Base,
	}
}

// pose converts a configured pose (rotation in degrees) to a camera pose (radians).
func pose(p config.PoseConfig) camera.Pose {
	return camera.Pose{
		Position: mgl64.Vec3(p.Position),
		Rotation: scenegraph.Euler{
			X: mgl64.DegToRad(p.Rotation[0]),
			Y: mgl64.DegToRad(p.Rotation[1]),
			Z: mgl64.DegToRad(p.Rotation[2]),
		},
	}
}

// newDebug builds the overlay from config; a configured font that cannot be found is logged
// and the raylib default font is used.
func newDebug(cfg config.Config, log *logger.Logger) *debug.Debug {
	d := debug.New()
	d.ShowFPS = cfg.Debug.ShowFPS
	d.ShowMemAlloc = cfg.Debug.ShowMemAlloc
	d.ShowScroll = cfg.Debug.ShowScroll
	if cfg.Debug.Font != "" {
		path, err := fonts.Find(fonts.Dir(cfg.AssetsDir), cfg.Debug.Font)
		if err != nil {
			log.Logf("debug: font %q not found under %s", cfg.Debug.Font, fonts.Dir(cfg.AssetsDir))
		} else {
			d.SetFontPath(path)
		}
	}
	return d
}

// newPulse returns the sun pulse, or nil when disabled.
func newPulse(cfg config.SunPulseConfig) *loop.SunPulse {
	if !cfg.Enabled {
		return nil
	}
	return &loop.SunPulse{Base: cfg.Base, Amplitude: cfg.Amplitude, Hz: cfg.Hz}
}

// buildScene loads configuration and bodies and constructs the scene context.
func buildScene() (config.Config, *solar.SceneContext, error) {
	cfg, err := config.Load(vp)
	if err != nil {
		return config.Config{}, nil, err
	}
	reg, err := bodies.Load(cfg.BodiesFile)
	if err != nil {
		return config.Config{}, nil, err
	}
	ctx, err := solar.Build(reg, sceneOptions(cfg))
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, ctx, nil
}

func runScene(cmd *cobra.Command, args []string) error {
	cfg, ctx, err := buildScene()
	if err != nil {
		return err
	}
	log := logger.New(cfg.LogFile)
	log.Logf("solar: %d bodies, assets in %s", ctx.Registry.Len(), cfg.AssetsDir)

	r := render.New(log, newDebug(cfg, log), cfg.Scene.Stars)
	l := loop.New(ctx, r, newPulse(cfg.SunPulse))
	tracker := &camera.ScrollTracker{
		Distance:       cfg.Camera.ScrollDistance,
		PixelsPerNotch: cfg.Camera.PixelsPerNotch,
	}

	sized := false
	handle := func(ev loop.Event) {
		if err := l.Handle(ev); err != nil {
			log.Log(err.Error())
		}
	}
	update := func() {
		if !sized {
			w, h := graphics.Size()
			handle(loop.ResizeEvent{Width: w, Height: h})
			sized = true
		}
		if w, h, ok := graphics.Resized(); ok {
			handle(loop.ResizeEvent{Width: w, Height: h})
		}
		if wheel := graphics.WheelMove(); wheel != 0 {
			handle(loop.ScrollEvent{Offset: tracker.Apply(wheel)})
		}
	}

	graphics.Run(graphics.Options{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		TargetFPS:  cfg.Window.TargetFPS,
	}, update, l.Tick)
	log.Logf("solar: closed after %d frames", l.Frames())
	return nil
}
