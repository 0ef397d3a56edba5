//go:build !rp2040 && !rp2350

package platform

import (
	"errors"
	"image/color"
	"sync"

	"tinygo.org/x/drivers/netlink"

	"envnode-go/x/logx"
)

// ErrNoAck is returned for transfers to an address nothing answers on.
var ErrNoAck = errors.New("i2c: no ack")

// FakePin is a simulated GPIO line.
type FakePin struct {
	mu    sync.RWMutex
	level bool
	edges int
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	if p.level != level {
		p.edges++
	}
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Get() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.level
}

// Edges counts level changes since creation.
func (p *FakePin) Edges() int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.edges
}

// SimDevice answers transfers for one I²C address.
type SimDevice interface {
	Tx(w, r []byte) error
}

// SimBus is an in-memory I²C bus. It implements drivers.I2C.
type SimBus struct {
	mu   sync.Mutex
	devs map[uint16]SimDevice
}

func NewSimBus() *SimBus { return &SimBus{devs: make(map[uint16]SimDevice)} }

// Attach places d at addr, replacing whatever was there.
func (b *SimBus) Attach(addr uint16, d SimDevice) {
	b.mu.Lock()
	b.devs[addr] = d
	b.mu.Unlock()
}

// Detach removes the device at addr, as if it were unplugged.
func (b *SimBus) Detach(addr uint16) {
	b.mu.Lock()
	delete(b.devs, addr)
	b.mu.Unlock()
}

func (b *SimBus) Tx(addr uint16, w, r []byte) error {
	b.mu.Lock()
	d, ok := b.devs[addr]
	b.mu.Unlock()
	if !ok {
		return ErrNoAck
	}
	return d.Tx(w, r)
}

// SimLatch behaves like a PCF8574: writes set the port, reads return it.
type SimLatch struct {
	mu   sync.Mutex
	port uint8
}

func NewSimLatch(port uint8) *SimLatch { return &SimLatch{port: port} }

func (l *SimLatch) Tx(w, r []byte) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(w) > 0 {
		l.port = w[len(w)-1]
	}
	for i := range r {
		r[i] = l.port
	}
	return nil
}

func (l *SimLatch) Port() uint8 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.port
}

// SimAck acknowledges every transfer and reads back zeros.
type SimAck struct{}

func (SimAck) Tx(_, r []byte) error {
	clear(r)
	return nil
}

// FramePanel is a monochrome in-memory panel.
type FramePanel struct {
	mu     sync.Mutex
	w, h   int16
	buf    []byte
	frames int
	on     bool
}

func NewFramePanel(w, h int16) *FramePanel {
	return &FramePanel{w: w, h: h, buf: make([]byte, int(w)*int(h)/8)}
}

func (p *FramePanel) Size() (int16, int16) { return p.w, p.h }

func (p *FramePanel) SetPixel(x, y int16, c color.RGBA) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	i := int(x) + int(y/8)*int(p.w)
	bit := byte(1) << uint(y%8)
	p.mu.Lock()
	if c.R|c.G|c.B != 0 {
		p.buf[i] |= bit
	} else {
		p.buf[i] &^= bit
	}
	p.mu.Unlock()
}

func (p *FramePanel) Display() error {
	p.mu.Lock()
	p.frames++
	p.on = true
	p.mu.Unlock()
	return nil
}

func (p *FramePanel) ClearBuffer() {
	p.mu.Lock()
	clear(p.buf)
	p.mu.Unlock()
}

func (p *FramePanel) PowerOff() {
	p.mu.Lock()
	p.on = false
	p.mu.Unlock()
}

// Lit reports whether the pixel at x,y is set.
func (p *FramePanel) Lit(x, y int16) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.buf[int(x)+int(y/8)*int(p.w)]&(1<<uint(y%8)) != 0
}

// Frames is the number of Display calls; On is false after PowerOff.
func (p *FramePanel) Frames() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frames
}

func (p *FramePanel) On() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.on
}

// SimLink stands in for a radio. The host is already on a network, so
// NetConnect succeeds at once unless Fail is set.
type SimLink struct {
	mu   sync.Mutex
	cb   func(netlink.Event)
	Fail error
}

func (l *SimLink) NetNotify(cb func(netlink.Event)) {
	l.mu.Lock()
	l.cb = cb
	l.mu.Unlock()
}

func (l *SimLink) NetConnect(p *netlink.ConnectParams) error {
	l.mu.Lock()
	cb, fail := l.cb, l.Fail
	l.mu.Unlock()
	if fail != nil {
		return fail
	}
	logx.Line("net", "simulated association with", p.Ssid)
	if cb != nil {
		cb(netlink.EventNetUp)
	}
	return nil
}

// Drop reports the link as down.
func (l *SimLink) Drop() {
	l.mu.Lock()
	cb := l.cb
	l.mu.Unlock()
	if cb != nil {
		cb(netlink.EventNetDown)
	}
}

func (l *SimLink) cbSet() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.cb != nil
}
