// Package i2cx holds bus-level helpers shared by the I²C peripherals.
package i2cx

import "tinygo.org/x/drivers"

// Valid 7-bit address range probed by Scan (reserved addresses excluded).
const (
	FirstAddr uint16 = 0x08
	LastAddr  uint16 = 0x77
)

// Probe reports whether a device ACKs a one-byte read at addr.
func Probe(bus drivers.I2C, addr uint16) bool {
	var b [1]byte
	return bus.Tx(addr, nil, b[:]) == nil
}

// Scan returns every address in [FirstAddr, LastAddr] that answers Probe.
func Scan(bus drivers.I2C) []uint16 {
	var found []uint16
	for a := FirstAddr; a <= LastAddr; a++ {
		if Probe(bus, a) {
			found = append(found, a)
		}
	}
	return found
}

// Contains reports whether addr is in a Scan result.
func Contains(found []uint16, addr uint16) bool {
	for _, a := range found {
		if a == addr {
			return true
		}
	}
	return false
}
