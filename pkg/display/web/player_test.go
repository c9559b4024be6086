package web

import (
	"testing"
	"time"

	"github.com/dotmatrix-emulator/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emulator/dotmatrix/internal/ppu"
)

func TestRenderPacesFrames(t *testing.T) {
	p := New(":0")
	frame := make([]ppu.Shade, ppu.ScreenWidth*ppu.ScreenHeight)

	start := time.Now()
	p.Render(frame) // first frame is not delayed
	p.Render(frame)
	if elapsed := time.Since(start); elapsed < frameDuration {
		t.Errorf("two frames took %v, want at least %v", elapsed, frameDuration)
	}
}

func TestHandleInput(t *testing.T) {
	p := New(":0")
	p.handleInput([]byte{inputPress, uint8(joypad.ButtonA)})
	p.handleInput([]byte{inputRelease, uint8(joypad.ButtonStart)})
	// malformed messages are ignored
	p.handleInput([]byte{inputPress})
	p.handleInput([]byte{inputPress, 0xFF})
	p.handleInput([]byte{0x7F, uint8(joypad.ButtonB)})

	pressed, released := p.PollButtons()
	if len(pressed) != 1 || pressed[0] != joypad.ButtonA {
		t.Errorf("pressed = %v", pressed)
	}
	if len(released) != 1 || released[0] != joypad.ButtonStart {
		t.Errorf("released = %v", released)
	}

	// the queues drain on poll
	pressed, released = p.PollButtons()
	if len(pressed) != 0 || len(released) != 0 {
		t.Errorf("queues not drained: %v %v", pressed, released)
	}
}
