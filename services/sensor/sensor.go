// Package sensor produces the cycle's single Measurement from whichever
// temperature/humidity chip the board carries.
package sensor

import (
	"context"

	"envnode-go/errcode"
	"envnode-go/types"
	"envnode-go/x/conv"
	"envnode-go/x/logx"
	"envnode-go/x/mathx"
)

// Physical limits applied to every reading (tenths).
const (
	minDeciC  = -400
	maxDeciC  = 1250
	maxDeciRH = 1000
)

// Reader performs one blocking measurement in tenths of °C and %RH.
type Reader interface {
	Read(ctx context.Context) (deciC, deciRH int32, err error)
}

// ReaderFunc adapts a function to Reader.
type ReaderFunc func(ctx context.Context) (int32, int32, error)

func (f ReaderFunc) Read(ctx context.Context) (int32, int32, error) { return f(ctx) }

type Sensor struct {
	name string
	r    Reader
	unit types.TempUnit
}

func New(name string, r Reader, fahrenheit bool) *Sensor {
	s := &Sensor{name: name, r: r, unit: types.Celsius}
	if fahrenheit {
		s.unit = types.Fahrenheit
	}
	return s
}

// Measure takes one reading and converts it to the configured unit.
func (s *Sensor) Measure(ctx context.Context) (types.Measurement, error) {
	deciC, deciRH, err := s.r.Read(ctx)
	if err != nil {
		return types.Measurement{}, errcode.Wrap(errcode.MapDriverErr(err, errcode.SensorFailed), "measure "+s.name, err)
	}
	deciC = mathx.Clamp[int32](deciC, minDeciC, maxDeciC)
	deciRH = mathx.Clamp[int32](deciRH, 0, maxDeciRH)

	m := types.Measurement{DeciTemp: deciC, Unit: s.unit, DeciRH: uint16(deciRH)}
	if s.unit == types.Fahrenheit {
		m.DeciTemp = types.CelsiusToFahrenheit(deciC)
	}
	logx.Line("sensor", "Temperature =", conv.FormatDeci(int64(m.DeciTemp)), m.Unit.Symbol()+",",
		"Humidity =", conv.FormatDeci(int64(m.DeciRH)))
	return m, nil
}
