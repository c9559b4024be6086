// Package web serves frames to browsers over a websocket.
// Frames are brotli-compressed and deduplicated by xxhash, so a
// static screen costs two bytes per frame on the wire.
package web

import (
	"net/http"
	"sync"
	"time"

	"github.com/cespare/xxhash"
	"github.com/google/brotli/go/cbrotli"
	"github.com/gorilla/websocket"

	"github.com/dotmatrix-emulator/dotmatrix/internal/gameboy"
	"github.com/dotmatrix-emulator/dotmatrix/internal/joypad"
	"github.com/dotmatrix-emulator/dotmatrix/internal/ppu"
	"github.com/dotmatrix-emulator/dotmatrix/pkg/display"
)

// frameDuration is how long a frame takes on hardware, a shade
// under 60 per second.
const frameDuration = time.Second * gameboy.CyclesPerFrame / gameboy.ClockSpeed

// server to client message types
const (
	messageFrame  = 0x01 // brotli-compressed RGBA frame
	messageCached = 0x02 // index of a previously sent frame
)

// client to server message types
const (
	inputPress   = 0x01
	inputRelease = 0x02
)

func init() {
	display.Install("web", func() display.Driver {
		return New(":8090")
	})
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(*http.Request) bool { return true },
}

// Player is a remote frontend: it serves a websocket endpoint
// and streams every rendered frame to all connected clients.
type Player struct {
	addr   string
	server *http.Server

	clients map[*client]bool
	cache   *frameCache

	pressed  []joypad.Button
	released []joypad.Button

	pixels    []byte
	lastHash  uint64
	lastFrame time.Time
	quality   int

	closed bool
	mu     sync.Mutex
}

// New returns a Player serving on addr.
func New(addr string) *Player {
	return &Player{
		addr:    addr,
		clients: map[*client]bool{},
		cache:   newFrameCache(32),
		pixels:  make([]byte, ppu.ScreenWidth*ppu.ScreenHeight*4),
		quality: 4,
	}
}

func (p *Player) Start(string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", p.serveWS)
	p.server = &http.Server{Addr: p.addr, Handler: mux}
	go func() {
		_ = p.server.ListenAndServe()
	}()
	return nil
}

func (p *Player) Stop() error {
	p.mu.Lock()
	p.closed = true
	for c := range p.clients {
		close(c.send)
		delete(p.clients, c)
	}
	p.mu.Unlock()
	if p.server != nil {
		return p.server.Close()
	}
	return nil
}

func (p *Player) Closed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.closed
}

func (p *Player) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	c := &client{conn: conn, send: make(chan []byte, 64), player: p}

	p.mu.Lock()
	p.clients[c] = true
	p.mu.Unlock()

	go c.readPump()
	go c.writePump()
}

func (p *Player) unregister(c *client) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.clients[c] {
		delete(p.clients, c)
		close(c.send)
	}
}

// handleInput translates a client message into button events
// picked up by the next PollButtons.
func (p *Player) handleInput(message []byte) {
	if len(message) != 2 || message[1] > joypad.ButtonDown {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	switch message[0] {
	case inputPress:
		p.pressed = append(p.pressed, message[1])
	case inputRelease:
		p.released = append(p.released, message[1])
	}
}

func (p *Player) PollButtons() (pressed, released []joypad.Button) {
	p.mu.Lock()
	defer p.mu.Unlock()
	pressed, p.pressed = p.pressed, nil
	released, p.released = p.released, nil
	return pressed, released
}

// Render compresses the frame and broadcasts it. Frames whose
// hash was sent recently go out as a cache reference instead.
// There is no vsync here, so Render also paces the emulation to
// the hardware frame rate.
func (p *Player) Render(frame []ppu.Shade) {
	if wait := frameDuration - time.Since(p.lastFrame); wait > 0 {
		time.Sleep(wait)
	}
	p.lastFrame = time.Now()

	display.FrameRGBA(frame, p.pixels)
	hash := xxhash.Sum64(p.pixels)
	if hash == p.lastHash {
		return
	}
	p.lastHash = hash

	if i := p.cache.index(hash); i >= 0 {
		p.broadcast([]byte{messageCached, uint8(i)})
		return
	}

	compressed, err := cbrotli.Encode(p.pixels, cbrotli.WriterOptions{Quality: p.quality})
	if err != nil {
		return
	}
	p.cache.add(hash, compressed)
	p.broadcast(append([]byte{messageFrame}, compressed...))
}

func (p *Player) broadcast(message []byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for c := range p.clients {
		select {
		case c.send <- message:
		default:
			// slow client, drop it
			delete(p.clients, c)
			close(c.send)
		}
	}
}
