package sensor

import (
	"context"
	"time"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/shtc3"

	"envnode-go/drivers/aht20"
	"envnode-go/x/timex"
)

// AHT20 reads an AHT20 on an I²C bus.
type AHT20 struct {
	dev aht20.Device
}

func NewAHT20(bus drivers.I2C, addr uint16) *AHT20 {
	a := &AHT20{dev: aht20.New(bus)}
	a.dev.Configure(aht20.Config{Address: addr})
	return a
}

func (a *AHT20) Read(ctx context.Context) (int32, int32, error) {
	s, err := a.dev.Read(ctx)
	if err != nil {
		return 0, 0, err
	}
	return s.DeciCelsius(), s.DeciRelHumidity(), nil
}

// SHTC3 reads a Sensirion SHTC3, waking it for the measurement only.
type SHTC3 struct {
	dev shtc3.Device
}

func NewSHTC3(bus drivers.I2C) *SHTC3 {
	return &SHTC3{dev: shtc3.New(bus)}
}

func (s *SHTC3) Read(ctx context.Context) (int32, int32, error) {
	if err := s.dev.WakeUp(); err != nil {
		return 0, 0, err
	}
	defer func() { _ = s.dev.Sleep() }()
	milliC, rhx100, err := s.dev.ReadTemperatureHumidity()
	if err != nil {
		return 0, 0, err
	}
	return int32(milliC) / 100, int32(rhx100) / 10, nil
}

// Sim is a bench reader whose values follow the wall-clock minute, so a run
// of cycles walks through every actuator branch.
type Sim struct {
	Clock timex.Clock
	// Delay mimics the conversion time of a real part.
	Delay time.Duration
}

func (s Sim) Read(ctx context.Context) (int32, int32, error) {
	if s.Delay > 0 {
		t := time.NewTimer(s.Delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return 0, 0, ctx.Err()
		case <-t.C:
		}
	}
	minute := int32(timex.Minute(s.Clock))
	deciC := 180 + (minute*7)%100   // 18.0 .. 27.9
	deciRH := 200 + (minute*13)%200 // 20.0 .. 39.9
	return deciC, deciRH, nil
}
