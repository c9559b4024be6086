// Package accessories implements link port peripherals. The
// printer speaks the Game Boy Printer packet protocol: magic
// bytes, command, payload with checksum, then two reply bytes
// from the printer.
package accessories

import (
	"image"
)

// packet parser positions
const (
	posMagic1 = iota
	posMagic2
	posID
	posCompression
	posLengthLow
	posLengthHigh
	posData
	posChecksumLow
	posChecksumHigh
	posKeepAlive
	posStatus
)

// printer commands
const (
	cmdInit   = 0x01
	cmdPrint  = 0x02
	cmdData   = 0x04
	cmdStatus = 0x0F
)

// status bits
const (
	statusChecksumError = 0x01
	statusPrinting      = 0x02
	statusDataFull      = 0x04
	statusReady         = 0x08
)

const (
	bandWidth  = 160
	bandHeight = 16
	bandBytes  = 0x280 // 40 tiles of 16 bytes
)

// Printer emulates the thermal printer. Attach it to the
// serial controller and poll HasPrintJob after the game prints.
type Printer struct {
	position int
	id       uint8

	compression bool
	length      uint16
	payload     []byte
	checksum    uint16

	reply  uint8
	status uint8

	// page accumulates decoded bands until a print command
	// fixes them into a job.
	page []uint8

	printJob image.Image
	hasJob   bool
}

func NewPrinter() *Printer {
	return &Printer{}
}

// Send returns the printer's reply to the last received byte.
func (p *Printer) Send() uint8 {
	return p.reply
}

// Receive consumes one byte from the link and advances the
// packet parser.
func (p *Printer) Receive(b uint8) {
	p.reply = 0

	switch p.position {
	case posMagic1:
		if b != 0x88 {
			return
		}
		p.checksum = 0
		p.payload = p.payload[:0]

	case posMagic2:
		if b != 0x33 {
			p.position = posMagic1
			return
		}

	case posID:
		p.id = b
		p.checksum += uint16(b)

	case posCompression:
		p.compression = b&0x01 != 0
		p.checksum += uint16(b)

	case posLengthLow:
		p.length = uint16(b)
		p.checksum += uint16(b)

	case posLengthHigh:
		p.length |= uint16(b) << 8
		p.checksum += uint16(b)
		if p.length == 0 {
			p.position = posChecksumLow
			return
		}

	case posData:
		p.payload = append(p.payload, b)
		p.checksum += uint16(b)
		if uint16(len(p.payload)) < p.length {
			return
		}

	case posChecksumLow:
		p.checksum ^= uint16(b)

	case posChecksumHigh:
		p.checksum ^= uint16(b) << 8
		if p.checksum != 0 {
			p.status |= statusChecksumError
		}

	case posKeepAlive:
		// alive marker expected by the game
		p.reply = 0x81

	case posStatus:
		p.runCommand()
		p.reply = p.status
		p.position = posMagic1
		return
	}

	p.position++
}

func (p *Printer) runCommand() {
	switch p.id {
	case cmdInit:
		p.status = 0
		p.page = p.page[:0]

	case cmdData:
		data := p.payload
		if p.compression {
			data = decompress(data)
		}
		for len(data) >= bandBytes {
			p.decodeBand(data[:bandBytes])
			data = data[bandBytes:]
			p.status |= statusDataFull
		}
		// an empty data packet marks the end of the page
		if len(p.payload) == 0 {
			p.status |= statusReady
		}

	case cmdPrint:
		if len(p.payload) == 4 {
			p.printPage(p.payload[2])
			p.status = statusPrinting
		}

	case cmdStatus:
	}
}

// decodeBand turns 40 2bpp tiles into two rows of 20 tiles of
// colour indices appended to the page.
func (p *Printer) decodeBand(data []byte) {
	band := make([]uint8, bandWidth*bandHeight)
	for tile := 0; tile < 40; tile++ {
		tileX := (tile % 20) * 8
		tileY := (tile / 20) * 8
		for y := 0; y < 8; y++ {
			low := data[tile*16+y*2]
			high := data[tile*16+y*2+1]
			for x := 0; x < 8; x++ {
				bit := uint8(7 - x)
				index := (low>>bit)&1 | (high>>bit&1)<<1
				band[(tileY+y)*bandWidth+tileX+x] = index
			}
		}
	}
	p.page = append(p.page, band...)
}

// printPage maps the accumulated page through the palette byte
// into a grayscale image and completes the job.
func (p *Printer) printPage(pal uint8) {
	height := len(p.page) / bandWidth
	img := image.NewGray(image.Rect(0, 0, bandWidth, height))
	for i, index := range p.page {
		shade := pal >> (index * 2) & 0x03
		img.Pix[i] = 255 - shade*85
	}
	p.printJob = img
	p.hasJob = true
	p.page = p.page[:0]
}

// decompress expands the printer's run-length encoding: a byte
// with the high bit set is a run of the following byte, any
// other byte is a literal count.
func decompress(data []byte) []byte {
	var out []byte
	for i := 0; i < len(data); {
		b := data[i]
		if b&0x80 != 0 {
			if i+1 >= len(data) {
				break
			}
			run := int(b&0x7F) + 2
			for j := 0; j < run; j++ {
				out = append(out, data[i+1])
			}
			i += 2
		} else {
			n := int(b) + 1
			if i+1+n > len(data) {
				break
			}
			out = append(out, data[i+1:i+1+n]...)
			i += 1 + n
		}
	}
	return out
}

// HasPrintJob reports whether a completed print is waiting.
func (p *Printer) HasPrintJob() bool {
	return p.hasJob
}

// NextPrintJob returns the completed print and clears it.
func (p *Printer) NextPrintJob() image.Image {
	p.hasJob = false
	return p.printJob
}
