package accessories

import (
	"bytes"
	"image"
	"testing"
)

// packet frames id and data into a printer packet with a valid
// checksum and the two reply placeholder bytes.
func packet(id uint8, data []byte) []byte {
	pkt := []byte{0x88, 0x33, id, 0x00, uint8(len(data)), uint8(len(data) >> 8)}
	pkt = append(pkt, data...)
	var sum uint16
	for _, b := range pkt[2:] {
		sum += uint16(b)
	}
	return append(pkt, uint8(sum), uint8(sum>>8), 0x00, 0x00)
}

// exchange feeds a packet byte by byte and returns the reply
// to each byte.
func exchange(p *Printer, pkt []byte) []uint8 {
	replies := make([]uint8, len(pkt))
	for i, b := range pkt {
		p.Receive(b)
		replies[i] = p.Send()
	}
	return replies
}

func TestPrinterKeepAlive(t *testing.T) {
	p := NewPrinter()
	replies := exchange(p, packet(cmdInit, nil))
	if replies[len(replies)-2] != 0x81 {
		t.Errorf("keepalive reply = %02X, want 81", replies[len(replies)-2])
	}
	if replies[len(replies)-1] != 0 {
		t.Errorf("status reply = %02X, want 0 after init", replies[len(replies)-1])
	}
}

func TestPrinterChecksumError(t *testing.T) {
	p := NewPrinter()
	pkt := packet(cmdStatus, nil)
	pkt[len(pkt)-3]++ // corrupt the checksum
	replies := exchange(p, pkt)
	if replies[len(replies)-1]&statusChecksumError == 0 {
		t.Errorf("status reply = %02X, want checksum error bit", replies[len(replies)-1])
	}
}

func TestPrinterIgnoresNoise(t *testing.T) {
	p := NewPrinter()
	exchange(p, []byte{0x00, 0xFF, 0x12})
	replies := exchange(p, packet(cmdInit, nil))
	if replies[len(replies)-2] != 0x81 {
		t.Error("parser should resync on the magic bytes")
	}
}

func TestPrinterPrintsPage(t *testing.T) {
	p := NewPrinter()
	exchange(p, packet(cmdInit, nil))

	// one band of solid colour 3 tiles
	band := bytes.Repeat([]byte{0xFF}, bandBytes)
	replies := exchange(p, packet(cmdData, band))
	if replies[len(replies)-1]&statusDataFull == 0 {
		t.Errorf("status = %02X, want data full", replies[len(replies)-1])
	}

	// empty data packet ends the page
	replies = exchange(p, packet(cmdData, nil))
	if replies[len(replies)-1]&statusReady == 0 {
		t.Errorf("status = %02X, want ready", replies[len(replies)-1])
	}

	// print with the identity palette
	exchange(p, packet(cmdPrint, []byte{0x01, 0x00, 0xE4, 0x40}))
	if !p.HasPrintJob() {
		t.Fatal("expected a print job")
	}

	img := p.NextPrintJob().(*image.Gray)
	if img.Bounds() != image.Rect(0, 0, bandWidth, bandHeight) {
		t.Fatalf("bounds = %v", img.Bounds())
	}
	for i, pix := range img.Pix {
		if pix != 0 {
			t.Fatalf("pixel %d = %d, want black", i, pix)
		}
	}
	if p.HasPrintJob() {
		t.Error("job should be cleared after retrieval")
	}
}

func TestPrinterCompressedData(t *testing.T) {
	p := NewPrinter()
	// run-length encode 0x280 bytes of 0xFF: runs of 129 (0x7F+2)
	var compressed []byte
	remaining := bandBytes
	for remaining > 0 {
		run := remaining
		if run > 129 {
			run = 129
		}
		compressed = append(compressed, 0x80|uint8(run-2), 0xFF)
		remaining -= run
	}
	pkt := []byte{0x88, 0x33, cmdData, 0x01, uint8(len(compressed)), uint8(len(compressed) >> 8)}
	pkt = append(pkt, compressed...)
	var sum uint16
	for _, b := range pkt[2:] {
		sum += uint16(b)
	}
	pkt = append(pkt, uint8(sum), uint8(sum>>8), 0x00, 0x00)

	replies := exchange(p, pkt)
	if replies[len(replies)-1]&statusDataFull == 0 {
		t.Errorf("status = %02X, want data full from compressed band", replies[len(replies)-1])
	}
}
