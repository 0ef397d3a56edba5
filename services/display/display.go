// Package display shows the cycle's reading on a small monochrome OLED.
//
// The panel shares the I²C bus with the port expander and is probed by a
// bus scan every cycle; a missing panel fails the cycle.
package display

import (
	"context"
	"image/color"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinydraw"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freesans"

	"envnode-go/errcode"
	"envnode-go/types"
	"envnode-go/x/conv"
	"envnode-go/x/i2cx"
)

// Default SSD1306 I²C address.
const Address = 0x3C

var (
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

	valueFont tinyfont.Fonter = &freesans.Bold12pt7b
	labelFont tinyfont.Fonter = &tinyfont.TomThumb
)

// Panel is a framebuffer display that can blank its buffer and power down.
type Panel interface {
	drivers.Displayer
	ClearBuffer()
	PowerOff()
}

// Opener configures the panel once the scan has found it.
type Opener func() Panel

type Config struct {
	Address uint16
	// Hold is how long the reading stays up before the panel powers off.
	Hold time.Duration
}

type Display struct {
	bus  drivers.I2C
	open Opener
	cfg  Config
}

func New(bus drivers.I2C, open Opener, cfg Config) *Display {
	if cfg.Address == 0 {
		cfg.Address = Address
	}
	return &Display{bus: bus, open: open, cfg: cfg}
}

// Show scans for the panel, renders m, holds it, then powers the panel off.
func (d *Display) Show(ctx context.Context, m types.Measurement) error {
	const op = "display"
	if !i2cx.Contains(i2cx.Scan(d.bus), d.cfg.Address) {
		return errcode.New(errcode.DisplayNotFound, op, "cannot find display at "+conv.Hex2(uint8(d.cfg.Address)))
	}
	p := d.open()
	defer p.PowerOff()

	Render(p, m)
	if err := p.Display(); err != nil {
		return errcode.Wrap(errcode.DisplayFailed, op, err)
	}
	if d.cfg.Hold <= 0 {
		return nil
	}
	t := time.NewTimer(d.cfg.Hold)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return errcode.Wrap(errcode.MapDriverErr(ctx.Err(), errcode.DisplayFailed), op, ctx.Err())
	case <-t.C:
		return nil
	}
}

// Render draws the two-column layout into p's buffer: a frame, a centre
// divider, a label row, the one-decimal values and the unit row.
func Render(p Panel, m types.Measurement) {
	w, h := p.Size()
	half := w / 2

	p.ClearBuffer()
	_ = tinydraw.Rectangle(p, 0, 0, w, h, white)
	tinydraw.Line(p, half, 0, half, h-1, white)

	centred(p, labelFont, 0, half, 10, "TEMP")
	centred(p, labelFont, half, half, 10, "HUMIDITY")

	centred(p, valueFont, 0, half, h/2+8, conv.FormatDeci(int64(m.DeciTemp)))
	centred(p, valueFont, half, half, h/2+8, conv.FormatDeci(int64(m.DeciRH)))

	centred(p, labelFont, 0, half, h-5, m.Unit.Symbol())
	centred(p, labelFont, half, half, h-5, "%")
}

// centred writes text horizontally centred in the column [x0, x0+width) with
// its baseline at y.
func centred(p Panel, f tinyfont.Fonter, x0, width, y int16, text string) {
	inner, _ := tinyfont.LineWidth(f, text)
	x := x0 + (width-int16(inner))/2
	tinyfont.WriteLine(p, f, x, y, text, white)
}
