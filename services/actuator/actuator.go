// Package actuator writes the cycle's ActuatorState to the relay board behind
// the port expander. Relays are active-low: logical on drives the pin low.
//
// The expander latch is the only memory of the outputs across deep sleep, so
// a Hold decision must leave its channel's bit exactly as found.
package actuator

import (
	"envnode-go/errcode"
	"envnode-go/services/config"
	"envnode-go/types"
	"envnode-go/x/logx"
)

// Expander is a shadowed 8-bit output latch; *pcf8574.Device satisfies it.
type Expander interface {
	Set(pin uint8, high bool) error
	Pin(pin uint8) bool
	Flush() error
}

// loader is implemented by expanders whose shadow must be seeded from the
// chip before the first write.
type loader interface {
	Loaded() bool
	Load() error
}

type Bank struct {
	x  Expander
	ch config.Channels
}

func New(x Expander, ch config.Channels) *Bank {
	return &Bank{x: x, ch: ch}
}

// Apply updates the shadow for every decided channel and writes the latch
// once. The shadow is seeded from the chip first if it has not been yet.
func (b *Bank) Apply(s types.ActuatorState) error {
	const op = "actuate"
	if l, ok := b.x.(loader); ok && !l.Loaded() {
		if err := l.Load(); err != nil {
			return errcode.Wrap(errcode.ActuatorFailed, op, err)
		}
	}
	if err := b.set(b.ch.Intake, s.Intake); err != nil {
		return errcode.Wrap(errcode.ActuatorFailed, op, err)
	}
	if err := b.set(b.ch.Exhaust, s.Exhaust); err != nil {
		return errcode.Wrap(errcode.ActuatorFailed, op, err)
	}
	if s.Diffuser != types.Hold {
		if err := b.set(b.ch.Diffuser, s.Diffuser == types.On); err != nil {
			return errcode.Wrap(errcode.ActuatorFailed, op, err)
		}
	}
	if err := b.x.Flush(); err != nil {
		return errcode.Wrap(errcode.ActuatorFailed, op, err)
	}
	logx.Line("actuator", "intake", onOff(s.Intake), "exhaust", onOff(s.Exhaust), "diffuser", s.Diffuser.String())
	return nil
}

// On reports the logical level of c as last written or loaded.
func (b *Bank) On(c types.Channel) bool {
	switch c {
	case types.ChanIntake:
		return !b.x.Pin(b.ch.Intake)
	case types.ChanExhaust:
		return !b.x.Pin(b.ch.Exhaust)
	case types.ChanDiffuser:
		return !b.x.Pin(b.ch.Diffuser)
	}
	return false
}

// set writes the active-low level for a logical state.
func (b *Bank) set(pin uint8, on bool) error {
	return b.x.Set(pin, !on)
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
