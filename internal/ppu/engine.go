package ppu

// Engine is the capability interface a rendering backend
// implements. The PPU drives whichever Engine is attached and
// never depends on a concrete frontend.
type Engine interface {
	// PlacePixel is called once per pixel-transfer dot with
	// the screen coordinates and the final composed shade.
	PlacePixel(x, y uint8, shade Shade)
	// TileDataWritten is called after a write to the tile data
	// area, with the absolute address that changed.
	TileDataWritten(address uint16)
	// FrameComplete is called at the start of VBlank with the
	// finished 160x144 shade buffer, row-major.
	FrameComplete(frame []Shade)
}

// nullEngine is attached when no frontend is present, so the
// core can run headless without nil checks.
type nullEngine struct{}

func (nullEngine) PlacePixel(x, y uint8, shade Shade) {}
func (nullEngine) TileDataWritten(address uint16)     {}
func (nullEngine) FrameComplete(frame []Shade)        {}
