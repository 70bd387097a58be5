package chip8

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScrollRightThenLeftLosesEdgeColumns(t *testing.T) {
	d := newDisplay()
	d.hires = true
	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			d.plane1[y*DisplayWidth+x] = true
		}
	}

	d.scrollRight(4)
	d.scrollLeft(4)

	for y := 0; y < DisplayHeight; y++ {
		for x := 0; x < DisplayWidth; x++ {
			want := x < DisplayWidth-4
			require.Equalf(t, want, d.plane1[y*DisplayWidth+x], "x=%d y=%d", x, y)
		}
	}
}

func TestScrollOnlyAffectsSelectedPlanes(t *testing.T) {
	d := newDisplay()
	d.hires = true
	d.plane2[5] = true
	d.selectPlane(1) // plane 1 only

	d.scrollDown(1)

	assert.True(t, d.plane2[5], "unselected plane untouched")
}

func TestScrollDoublesInLoRes(t *testing.T) {
	d := newDisplay() // hires defaults false
	d.plane1[0] = true

	d.scrollRight(4)

	assert.False(t, d.plane1[4], "4 columns not yet reached in lo-res")
	assert.True(t, d.plane1[8], "lo-res doubles the scroll amount to 8")
}

func TestDrawPixelCollisionReporting(t *testing.T) {
	d := newDisplay()
	assert.False(t, d.drawPixel(0, 3, 3, false), "first draw: no collision")
	assert.True(t, d.drawPixel(0, 3, 3, false), "second draw toggles it back off: collision")
	assert.False(t, d.plane1[3*DisplayWidth+3])
}

func TestDrawPixelClipVsWrap(t *testing.T) {
	d := newDisplay()
	assert.False(t, d.drawPixel(0, DisplayWidth, 0, false), "clipped, no wraparound write")
	assert.False(t, d.plane1[0])

	assert.False(t, d.drawPixel(0, DisplayWidth, 0, true), "wrapped to column 0")
	assert.True(t, d.plane1[0])
}

func TestSelectedPlanesMask(t *testing.T) {
	d := newDisplay()
	d.selectPlane(0)
	assert.Empty(t, d.selectedPlanes())

	d.selectPlane(3)
	assert.Equal(t, []int{0, 1}, d.selectedPlanes())
}
