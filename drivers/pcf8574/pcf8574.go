// Package pcf8574 drives the PCF8574 8-bit quasi-bidirectional I²C port
// expander. The chip has one register: a write latches all eight pins, a
// read returns the pin levels.
//
// The driver keeps a shadow of the output latch so single pins can be
// changed without disturbing the others. Seed it once with Load after power
// up; the chip keeps its latch across an MCU reset as long as it stays
// powered.
package pcf8574

import (
	"errors"

	"tinygo.org/x/drivers"
)

// Default I²C address (A2..A0 tied low).
const Address = 0x20

// Power-on latch value: all pins high (weak pull-up).
const resetPort = 0xFF

var ErrInvalidPin = errors.New("pcf8574: invalid pin")

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x20 if zero.
	Address uint16
}

// Device wraps an I²C connection to a PCF8574.
type Device struct {
	bus     drivers.I2C
	Address uint16

	port   uint8
	loaded bool
	buf    [1]byte
}

// New creates a Device. The I²C bus must already be configured. It does not
// touch the chip.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address, port: resetPort}
}

// Configure applies optional config.
func (d *Device) Configure(cfg Config) {
	if cfg.Address != 0 {
		d.Address = cfg.Address
	}
}

// Read returns the current pin levels.
func (d *Device) Read() (uint8, error) {
	if err := d.bus.Tx(d.Address, nil, d.buf[:]); err != nil {
		return 0, err
	}
	return d.buf[0], nil
}

// Load seeds the shadow latch from the port. Outputs driven low read back as
// 0 and released outputs as 1, so the latch is recovered exactly for pins
// used as outputs.
func (d *Device) Load() error {
	v, err := d.Read()
	if err != nil {
		return err
	}
	d.port = v
	d.loaded = true
	return nil
}

// Loaded reports whether Load has succeeded since New.
func (d *Device) Loaded() bool { return d.loaded }

// Port returns the shadow latch.
func (d *Device) Port() uint8 { return d.port }

// Pin returns the shadow level of one pin.
func (d *Device) Pin(pin uint8) bool { return pin < 8 && d.port&(1<<pin) != 0 }

// Set changes one pin in the shadow latch only; call Flush to write it.
func (d *Device) Set(pin uint8, high bool) error {
	if pin > 7 {
		return ErrInvalidPin
	}
	if high {
		d.port |= 1 << pin
	} else {
		d.port &^= 1 << pin
	}
	return nil
}

// Flush writes the shadow latch to the chip. After a failed write the
// shadow no longer matches the chip, so it is marked unloaded and the next
// Load reseeds it.
func (d *Device) Flush() error {
	d.buf[0] = d.port
	if err := d.bus.Tx(d.Address, d.buf[:], nil); err != nil {
		d.loaded = false
		return err
	}
	return nil
}

// WritePin sets one pin and flushes.
func (d *Device) WritePin(pin uint8, high bool) error {
	if err := d.Set(pin, high); err != nil {
		return err
	}
	return d.Flush()
}
