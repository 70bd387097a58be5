// Package pixel is the pixelgl-backed demo host for the chip8 core: a
// window that renders Frame snapshots and polls the keyboard into a
// Machine's keypad.
package pixel

import (
	"fmt"

	"github.com/chippy-vm/chippy/internal/chip8"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

const (
	screenWidth  float64 = 1024
	screenHeight float64 = 768
)

// KeyMap is the QWERTY -> CHIP-8 keypad translation. The core never
// sees a pixelgl.Button; this table is the only place that contract is
// expressed.
var KeyMap = map[chip8.KeyIndex]pixelgl.Button{
	0x1: pixelgl.Key1, 0x2: pixelgl.Key2, 0x3: pixelgl.Key3, 0xC: pixelgl.Key4,
	0x4: pixelgl.KeyQ, 0x5: pixelgl.KeyW, 0x6: pixelgl.KeyE, 0xD: pixelgl.KeyR,
	0x7: pixelgl.KeyA, 0x8: pixelgl.KeyS, 0x9: pixelgl.KeyD, 0xE: pixelgl.KeyF,
	0xA: pixelgl.KeyZ, 0x0: pixelgl.KeyX, 0xB: pixelgl.KeyC, 0xF: pixelgl.KeyV,
}

// Window embeds a pixelgl window and draws chip8.Frame snapshots onto
// the always-128x64 logical grid.
type Window struct {
	*pixelgl.Window
}

// NewWindow creates and opens a pixelgl window sized for the 128x64
// framebuffer.
func NewWindow() (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "chippy",
		Bounds: pixel.R(0, 0, screenWidth, screenHeight),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %v", err)
	}
	return &Window{Window: w}, nil
}

// PollInput forwards key edges to m.PressKey: a key pressed since the
// last poll is set down, a key released since the last poll is set up,
// and a key held steady is not re-sent. When the window loses focus
// every key is cleared.
func (w *Window) PollInput(m *chip8.Machine) {
	for idx, btn := range KeyMap {
		switch {
		case w.JustPressed(btn):
			m.PressKey(idx, true)
		case w.JustReleased(btn):
			m.PressKey(idx, false)
		}
	}
	if !w.Focused() {
		m.ClearKeys()
	}
}

// DrawFrame renders a Frame onto the window: plane 1 alone, plane 2
// alone, and both-on pixels each get their own shade since the core
// defines no palette.
func (w *Window) DrawFrame(f chip8.Frame) {
	w.Clear(colornames.Black)
	imDraw := imdraw.New(nil)
	cellW := screenWidth / float64(chip8.DisplayWidth)
	cellH := screenHeight / float64(chip8.DisplayHeight)

	for y := 0; y < chip8.DisplayHeight; y++ {
		for x := 0; x < chip8.DisplayWidth; x++ {
			i := y*chip8.DisplayWidth + x
			on1, on2 := f.Plane1[i], f.Plane2[i]
			if !on1 && !on2 {
				continue
			}
			switch {
			case on1 && on2:
				imDraw.Color = colornames.White
			case on1:
				imDraw.Color = colornames.Lightgray
			default:
				imDraw.Color = colornames.Dimgray
			}
			row := chip8.DisplayHeight - 1 - y
			imDraw.Push(pixel.V(cellW*float64(x), cellH*float64(row)))
			imDraw.Push(pixel.V(cellW*float64(x)+cellW, cellH*float64(row)+cellH))
			imDraw.Rectangle(0)
		}
	}

	imDraw.Draw(w)
	w.Update()
}
