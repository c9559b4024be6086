// Package display holds the frontend drivers. A driver is a
// gameboy.Frontend with a lifecycle; drivers register
// themselves through Install so the command line can pick one
// by name.
package display

import (
	"image"
	"image/color"

	"github.com/dotmatrix-emulator/dotmatrix/internal/gameboy"
	"github.com/dotmatrix-emulator/dotmatrix/internal/ppu"
)

// Driver is a frontend with a lifecycle.
type Driver interface {
	gameboy.Frontend
	// Start brings the frontend up. It must be called before
	// the driver is handed to GameBoy.Run.
	Start(title string) error
	// Stop tears the frontend down.
	Stop() error
}

// Palette is the classic green-tinted DMG palette, indexed by
// shade.
var Palette = [4]color.RGBA{
	{R: 0xE0, G: 0xF8, B: 0xD0, A: 0xFF},
	{R: 0x88, G: 0xC0, B: 0x70, A: 0xFF},
	{R: 0x34, G: 0x68, B: 0x56, A: 0xFF},
	{R: 0x08, G: 0x18, B: 0x20, A: 0xFF},
}

// FrameRGBA renders a shade buffer into dst as RGBA bytes. dst
// must hold 4 bytes per pixel.
func FrameRGBA(frame []ppu.Shade, dst []byte) {
	for i, shade := range frame {
		c := Palette[shade&0x03]
		dst[i*4+0] = c.R
		dst[i*4+1] = c.G
		dst[i*4+2] = c.B
		dst[i*4+3] = c.A
	}
}

// FrameImage renders a shade buffer into a new RGBA image.
func FrameImage(frame []ppu.Shade) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, ppu.ScreenWidth, ppu.ScreenHeight))
	FrameRGBA(frame, img.Pix)
	return img
}

var installed = map[string]func() Driver{}

// Install registers a driver factory under the given name.
// Drivers call Install from their init function.
func Install(name string, factory func() Driver) {
	installed[name] = factory
}

// Get returns a new driver by name, or nil if none is
// installed under it.
func Get(name string) Driver {
	factory, ok := installed[name]
	if !ok {
		return nil
	}
	return factory()
}

// Installed lists the registered driver names.
func Installed() []string {
	names := make([]string, 0, len(installed))
	for name := range installed {
		names = append(names, name)
	}
	return names
}
