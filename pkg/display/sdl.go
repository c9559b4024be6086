//go:build !test

package display

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/dotmatrix-emulator/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emulator/dotmatrix/internal/ppu"
	"github.com/dotmatrix-emulator/dotmatrix/pkg/utils"
)

func init() {
	Install("sdl", func() Driver {
		return &SDL{scale: 4}
	})
}

// SDL is a windowed frontend rendering through an SDL2
// streaming texture.
type SDL struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	pixels    []byte
	lastFrame []ppu.Shade

	title      string
	frames     int
	titleReset time.Time

	scale  int32
	closed bool
}

var keyMap = map[sdl.Keycode]joypad.Button{
	sdl.K_z:         joypad.ButtonA,
	sdl.K_x:         joypad.ButtonB,
	sdl.K_BACKSPACE: joypad.ButtonSelect,
	sdl.K_RETURN:    joypad.ButtonStart,
	sdl.K_RIGHT:     joypad.ButtonRight,
	sdl.K_LEFT:      joypad.ButtonLeft,
	sdl.K_UP:        joypad.ButtonUp,
	sdl.K_DOWN:      joypad.ButtonDown,
}

func (s *SDL) Start(title string) error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return err
	}

	var err error
	s.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		ppu.ScreenWidth*s.scale, ppu.ScreenHeight*s.scale,
		sdl.WINDOW_SHOWN)
	if err != nil {
		return err
	}
	s.renderer, err = sdl.CreateRenderer(s.window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return err
	}
	s.texture, err = s.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, ppu.ScreenWidth, ppu.ScreenHeight)
	if err != nil {
		return err
	}

	s.pixels = make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4)
	s.title = title
	s.titleReset = time.Now()
	return nil
}

func (s *SDL) Stop() error {
	if s.texture != nil {
		_ = s.texture.Destroy()
	}
	if s.renderer != nil {
		_ = s.renderer.Destroy()
	}
	if s.window != nil {
		_ = s.window.Destroy()
	}
	sdl.Quit()
	return nil
}

func (s *SDL) Closed() bool {
	return s.closed
}

func (s *SDL) PollButtons() (pressed, released []joypad.Button) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			s.closed = true
		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			if button, ok := keyMap[e.Keysym.Sym]; ok {
				if e.Type == sdl.KEYDOWN {
					pressed = append(pressed, button)
				} else {
					released = append(released, button)
				}
				continue
			}
			if e.Type != sdl.KEYDOWN {
				continue
			}
			switch e.Keysym.Sym {
			case sdl.K_ESCAPE:
				s.closed = true
			case sdl.K_s:
				s.screenshot(false)
			case sdl.K_c:
				s.screenshot(true)
			}
		}
	}
	return pressed, released
}

func (s *SDL) Render(frame []ppu.Shade) {
	s.lastFrame = frame
	FrameRGBA(frame, s.pixels)

	_ = s.texture.Update(nil, s.pixels, ppu.ScreenWidth*4)
	_ = s.renderer.Clear()
	_ = s.renderer.Copy(s.texture, nil, nil)
	s.renderer.Present()

	s.frames++
	if time.Since(s.titleReset) > time.Second {
		s.window.SetTitle(fmt.Sprintf("%s | FPS: %d", s.title, s.frames))
		s.frames = 0
		s.titleReset = time.Now()
	}
}

// screenshot saves the last rendered frame, scaled up to the
// window size, or copies it to the clipboard.
func (s *SDL) screenshot(toClipboard bool) {
	if s.lastFrame == nil {
		return
	}
	img := utils.ScaleImage(FrameImage(s.lastFrame), int(s.scale))
	if toClipboard {
		_ = utils.CopyImage(img)
		return
	}
	_ = utils.SaveImage(img)
}
