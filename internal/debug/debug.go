package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 20
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh overlay text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug holds the on-screen overlays. All overlays are off by default.
type Debug struct {
	ShowFPS      bool
	ShowMemAlloc bool
	ShowScroll   bool
	font         rl.Font // optional; when set, Draw uses DrawTextEx instead of default font
	fontPath     string
	frameCount   uint32
	lastFPS      string
	lastMem      string
	lastScroll   string
	memStats     runtime.MemStats
}

// New returns a Debug system with all overlays hidden.
func New() *Debug {
	return &Debug{}
}

// Enabled reports whether any overlay is shown.
func (d *Debug) Enabled() bool {
	return d.ShowFPS || d.ShowMemAlloc || d.ShowScroll
}

// SetFontPath sets a TTF/OTF file to draw overlays with. It is loaded on the first Draw,
// after the window exists. Empty = raylib default font.
func (d *Debug) SetFontPath(path string) {
	d.fontPath = path
}

// Draw renders enabled overlays at the top-right in green: FPS, then heap allocation,
// then camera scroll progress. Text is only recomputed every updateInterval frames.
func (d *Debug) Draw(progress float64) {
	if !d.Enabled() {
		return
	}
	if d.fontPath != "" {
		d.font = rl.LoadFont(d.fontPath)
		d.fontPath = ""
	}
	d.frameCount++
	update := d.frameCount%updateInterval == 0

	y := int32(padding)
	if d.ShowFPS {
		if update || d.lastFPS == "" {
			d.lastFPS = FormatFPS(rl.GetFPS())
		}
		d.drawRight(d.lastFPS, y)
		y += lineHeight
	}
	if d.ShowMemAlloc {
		if update || d.lastMem == "" {
			runtime.ReadMemStats(&d.memStats)
			d.lastMem = FormatMem(d.memStats.Alloc)
		}
		d.drawRight(d.lastMem, y)
		y += lineHeight
	}
	if d.ShowScroll {
		// Scroll changes between notches, not per frame; refresh every draw.
		d.lastScroll = FormatScroll(progress)
		d.drawRight(d.lastScroll, y)
	}
}

func (d *Debug) drawRight(text string, y int32) {
	screenW := int32(rl.GetScreenWidth())
	if d.font.Texture.ID != 0 {
		sz := float32(fontSize)
		pos := rl.NewVector2(float32(screenW)-rl.MeasureTextEx(d.font, text, sz, 1).X-float32(padding), float32(y))
		rl.DrawTextEx(d.font, text, pos, sz, 1, rl.Green)
		return
	}
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, screenW-w-padding, y, fontSize, rl.Green)
}

// FormatFPS returns the FPS overlay line.
func FormatFPS(fps int32) string {
	return fmt.Sprintf("FPS: %d", fps)
}

// FormatMem returns the heap overlay line for alloc bytes.
func FormatMem(alloc uint64) string {
	return fmt.Sprintf("Mem: %.2f MiB", float64(alloc)/(1024*1024))
}

// FormatScroll returns the camera progress line as a percentage.
func FormatScroll(progress float64) string {
	return fmt.Sprintf("Scroll: %3.0f%%", progress*100)
}
