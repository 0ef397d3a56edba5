// Package boards describes the boards the node runs on: GPIO range and the
// controllers present. Wiring lives in config.Pins; Check validates one
// against the other.
package boards

import (
	"envnode-go/errcode"
	"envnode-go/services/config"
	"envnode-go/x/conv"
)

type Board struct {
	Name             string
	GPIOMin, GPIOMax int

	// Controllers present (identities only; e.g. "i2c0", "uart0").
	I2C  []string
	UART []string

	// Onboard LED, if any.
	LED int
}

// Pico is the Raspberry Pi Pico / Pico W / Pico 2 family (GP0..GP28).
var Pico = Board{
	Name:    "pico",
	GPIOMin: 0,
	GPIOMax: 28,
	I2C:     []string{"i2c0", "i2c1"},
	UART:    []string{"uart0", "uart1"},
	LED:     25,
}

// Bench is the host build. Pins are simulated, so any small number will do.
var Bench = Board{
	Name:    "bench",
	GPIOMin: 0,
	GPIOMax: 63,
	I2C:     []string{"i2c0"},
	LED:     25,
}

// Check rejects pin assignments the board cannot honour.
func (b Board) Check(p config.Pins) error {
	op := "board " + b.Name
	for _, n := range []int{p.LED, p.Debug, p.DHT, p.I2CSDA, p.I2CSCL, p.UARTTX, p.UARTRX} {
		if n < b.GPIOMin || n > b.GPIOMax {
			return errcode.New(errcode.InvalidParams, op, "pin "+conv.Itoa(n)+" out of range")
		}
	}
	switch {
	case p.I2CSDA == p.I2CSCL:
		return errcode.New(errcode.InvalidParams, op, "i2c sda and scl share a pin")
	case p.LED == p.Debug:
		return errcode.New(errcode.InvalidParams, op, "led and debug share a pin")
	}
	return nil
}

// Has reports whether the board has the named controller.
func (b Board) Has(id string) bool {
	for _, v := range b.I2C {
		if v == id {
			return true
		}
	}
	for _, v := range b.UART {
		if v == id {
			return true
		}
	}
	return false
}
