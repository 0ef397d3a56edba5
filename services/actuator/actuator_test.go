package actuator

import (
	"errors"
	"testing"

	"envnode-go/drivers/pcf8574"
	"envnode-go/errcode"
	"envnode-go/services/config"
	"envnode-go/types"
)

type latchBus struct {
	latch  uint8
	writes int
	fail   bool
}

func (l *latchBus) Tx(addr uint16, w, r []byte) error {
	if l.fail {
		return errors.New("nack")
	}
	if len(w) > 0 {
		l.latch = w[0]
		l.writes++
	}
	if len(r) > 0 {
		r[0] = l.latch
	}
	return nil
}

func newBank(t *testing.T, latch uint8) (*Bank, *latchBus) {
	t.Helper()
	bus := &latchBus{latch: latch}
	dev := pcf8574.New(bus)
	if err := dev.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	return New(&dev, config.Defaults().Channels), bus
}

func TestApply_ActiveLowEncoding(t *testing.T) {
	b, bus := newBank(t, 0xFF)
	if err := b.Apply(types.ActuatorState{Intake: true, Exhaust: false, Diffuser: types.On}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	// intake pin 2 low, exhaust pin 3 high, diffuser pin 6 low.
	if want := uint8(0b1011_1011); bus.latch != want {
		t.Fatalf("latch=%#08b want %#08b", bus.latch, want)
	}
	if bus.writes != 1 {
		t.Fatalf("writes=%d want one register write", bus.writes)
	}
	if !b.On(types.ChanIntake) || b.On(types.ChanExhaust) || !b.On(types.ChanDiffuser) {
		t.Fatal("logical read-back mismatch")
	}
}

func TestApply_HoldLeavesDiffuserBit(t *testing.T) {
	for _, prevOn := range []bool{true, false} {
		latch := uint8(0xFF)
		if prevOn {
			latch &^= 1 << 6
		}
		b, bus := newBank(t, latch)
		if err := b.Apply(types.ActuatorState{Intake: false, Exhaust: true, Diffuser: types.Hold}); err != nil {
			t.Fatalf("Apply: %v", err)
		}
		if got := bus.latch&(1<<6) == 0; got != prevOn {
			t.Fatalf("prevOn=%v diffuser now on=%v", prevOn, got)
		}
		if b.On(types.ChanDiffuser) != prevOn {
			t.Fatal("On(diffuser) disagrees with latch")
		}
	}
}

func TestApply_LeavesUnusedPinsAlone(t *testing.T) {
	const unrelated = uint8(0b1011_0011) // pins 0,1,4,5,7
	b, bus := newBank(t, 0b0011_0011)
	_ = b.Apply(types.ActuatorState{Intake: true, Exhaust: true, Diffuser: types.Off})
	if bus.latch&unrelated != 0b0011_0011 {
		t.Fatalf("unrelated pins changed: %#08b", bus.latch)
	}
	if bus.latch != 0b0111_0011 {
		t.Fatalf("latch=%#08b want 0b01110011", bus.latch)
	}
}

func TestApply_SeedsShadowBeforeFirstWrite(t *testing.T) {
	bus := &latchBus{latch: 0xFF &^ (1 << 6)} // diffuser latched on before wake
	dev := pcf8574.New(bus)
	b := New(&dev, config.Defaults().Channels)
	if err := b.Apply(types.ActuatorState{Diffuser: types.Hold}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if bus.latch&(1<<6) != 0 {
		t.Fatalf("held diffuser was switched off: %#08b", bus.latch)
	}
}

func TestApply_BusError(t *testing.T) {
	b, bus := newBank(t, 0xFF)
	bus.fail = true
	if err := b.Apply(types.ActuatorState{}); errcode.Of(err) != errcode.ActuatorFailed {
		t.Fatalf("err=%v", err)
	}
}

func TestApply_HoldAfterFailedWriteKeepsChipLevel(t *testing.T) {
	b, bus := newBank(t, 0xFF)
	bus.fail = true
	if err := b.Apply(types.ActuatorState{Diffuser: types.On}); errcode.Of(err) != errcode.ActuatorFailed {
		t.Fatalf("err=%v", err)
	}
	bus.fail = false
	if err := b.Apply(types.ActuatorState{Diffuser: types.Hold}); err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if bus.latch != 0xFF {
		t.Fatalf("held diffuser took the unwritten level: latch=%#08b", bus.latch)
	}
}
