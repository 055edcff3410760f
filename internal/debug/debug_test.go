package debug

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnabled(t *testing.T) {
	d := New()
	assert.False(t, d.Enabled())
	d.ShowScroll = true
	assert.True(t, d.Enabled())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "FPS: 60", FormatFPS(60))
	assert.Equal(t, "Mem: 1.50 MiB", FormatMem(3*512*1024))
	assert.Equal(t, "Scroll:  50%", FormatScroll(0.5))
	assert.Equal(t, "Scroll: 100%", FormatScroll(1))
}

func TestDraw_DisabledIsNoop(t *testing.T) {
	d := New()
	d.Draw(0.3)
	assert.Zero(t, d.frameCount)
}
