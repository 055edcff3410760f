package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Options configures the host window.
type Options struct {
	Title      string
	Width      int
	Height     int
	Fullscreen bool
	TargetFPS  int
}

// Run opens the window and runs the main loop until the window is closed. Each frame it calls
// update (input and events), then clears the screen and calls draw.
// The window is resizable; fullscreen uses the primary monitor's size.
func Run(opts Options, update, draw func()) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	w, h := int32(opts.Width), int32(opts.Height)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
		w, h = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(w, h, opts.Title)
	defer rl.CloseWindow()

	if opts.TargetFPS > 0 {
		rl.SetTargetFPS(int32(opts.TargetFPS))
	}

	for !rl.WindowShouldClose() {
		update()

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		draw()
		rl.EndDrawing()
	}
}

// WheelMove returns the mouse wheel movement this frame in notches (positive = up).
func WheelMove() float64 {
	return float64(rl.GetMouseWheelMove())
}

// Resized reports the new framebuffer size when the window was resized this frame.
func Resized() (width, height int, ok bool) {
	if !rl.IsWindowResized() {
		return 0, 0, false
	}
	return rl.GetScreenWidth(), rl.GetScreenHeight(), true
}

// Size returns the current screen size in pixels.
func Size() (width, height int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}
