package core

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Renderer is the monochrome frame interface the firmware loop draws with
type Renderer interface {
	// Clear sets every pixel of the frame buffer to on
	Clear(on bool)

	// DrawRect outlines a width x height rectangle at (top, left) in the on
	// color. With fill the interior is painted in the same color.
	DrawRect(top, left, width, height int16, on, fill bool)

	// Push transmits the frame buffer to the panel
	Push() error
}

// Splasher is implemented by renderers that can show a boot title
type Splasher interface {
	Splash(title string) error
}

var (
	pixelOn  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	pixelOff = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// Canvas implements Renderer on any TinyGo displayer (SSD1306 on the board)
type Canvas struct {
	display drivers.Displayer
	width   int16
	height  int16
}

// NewCanvas wraps a displayer; the frame size is taken from the device
func NewCanvas(d drivers.Displayer) *Canvas {
	w, h := d.Size()
	return &Canvas{display: d, width: w, height: h}
}

func pixelColor(on bool) color.RGBA {
	if on {
		return pixelOn
	}
	return pixelOff
}

func (c *Canvas) set(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.display.SetPixel(x, y, col)
}

func (c *Canvas) Clear(on bool) {
	col := pixelColor(on)
	for y := int16(0); y < c.height; y++ {
		for x := int16(0); x < c.width; x++ {
			c.display.SetPixel(x, y, col)
		}
	}
}

func (c *Canvas) DrawRect(top, left, width, height int16, on, fill bool) {
	if width <= 0 || height <= 0 {
		return
	}
	col := pixelColor(on)
	right := left + width - 1
	bottom := top + height - 1

	for x := left; x <= right; x++ {
		c.set(x, top, col)
		c.set(x, bottom, col)
	}
	for y := top; y <= bottom; y++ {
		c.set(left, y, col)
		c.set(right, y, col)
	}

	if fill {
		for x := left + 1; x < right; x++ {
			for y := top + 1; y < bottom; y++ {
				c.set(x, y, col)
			}
		}
	}
}

func (c *Canvas) Push() error {
	return c.display.Display()
}

// Splash clears the panel and writes title near the middle in the
// TomThumb font.
func (c *Canvas) Splash(title string) error {
	c.Clear(false)
	// TomThumb glyphs are 4px wide and 6px tall
	x := (c.width - int16(len(title))*4) / 2
	if x < 0 {
		x = 0
	}
	tinyfont.WriteLine(c.display, &tinyfont.TomThumb, x, c.height/2, title, pixelOn)
	return c.Push()
}
