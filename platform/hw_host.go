//go:build !rp2040 && !rp2350

package platform

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"envnode-go/errcode"
	"envnode-go/platform/boards"
	"envnode-go/services/config"
	"envnode-go/services/display"
	"envnode-go/services/power"
	"envnode-go/services/sensor"
	"envnode-go/x/conv"
	"envnode-go/x/timex"
)

const (
	// EnvDebug, when non-empty, holds the simulated debug pin low.
	EnvDebug = "DEBUG"
	// EnvLatch carries the simulated expander latch (e.g. "0xbf") across a
	// suspend re-exec, as the real chip keeps it across a reset.
	EnvLatch = "ENVNODE_LATCH"
)

// Bench is the simulated hardware behind a host Open. Tests reach into it to
// unplug devices or inspect the latch.
type Bench struct {
	Bus    *SimBus
	Latch  *SimLatch
	Panel  *FramePanel
	Link   *SimLink
	LED    *FakePin
	Debug  *FakePin
	Reader sensor.Reader
}

// NewBench populates a bus with the expander (all channels off) and the
// display at the configured addresses.
func NewBench(cfg config.Config, debug bool) (*Bench, error) {
	b := &Bench{
		Bus:   NewSimBus(),
		Latch: NewSimLatch(0xFF),
		Panel: NewFramePanel(128, 64),
		Link:  &SimLink{},
		LED:   &FakePin{},
		Debug: &FakePin{},
	}
	b.Debug.Set(!debug)
	b.Bus.Attach(cfg.ExpanderAdr, b.Latch)
	b.Bus.Attach(cfg.DisplayAdr, SimAck{})

	switch cfg.Sensor {
	case config.SensorSimulated:
		b.Reader = sensor.Sim{Clock: timex.SystemClock{}, Delay: 50 * time.Millisecond}
	default:
		return nil, errcode.New(errcode.InvalidParams, "sensor", "unsupported on "+boards.Bench.Name+": "+cfg.Sensor)
	}
	return b, nil
}

// Hardware exposes the bench as the node's view of a board.
func (b *Bench) Hardware(s power.Suspender) Hardware {
	return Hardware{
		Board:     boards.Bench,
		I2C:       b.Bus,
		LED:       b.LED,
		Debug:     b.Debug,
		Link:      b.Link,
		Reader:    b.Reader,
		Panel:     func() display.Panel { return b.Panel },
		Suspender: s,
		HTTP:      http.DefaultClient,
		Clock:     timex.SystemClock{},
	}
}

// Open builds a bench whose suspension re-executes the process.
func Open(cfg config.Config) (Hardware, error) {
	if err := boards.Bench.Check(cfg.Pins); err != nil {
		return Hardware{}, err
	}
	b, err := NewBench(cfg, os.Getenv(EnvDebug) != "")
	if err != nil {
		return Hardware{}, err
	}
	if v := os.Getenv(EnvLatch); v != "" {
		if n, err := strconv.ParseUint(v, 0, 8); err == nil {
			_ = b.Latch.Tx([]byte{uint8(n)}, nil)
		}
	}
	return b.Hardware(power.SuspendFunc(func(d time.Duration) error {
		b.carryLatch()
		return reexec(d)
	})), nil
}

// carryLatch exports the latch for the next process image.
func (b *Bench) carryLatch() {
	_ = os.Setenv(EnvLatch, conv.Hex2(b.Latch.Port()))
}
