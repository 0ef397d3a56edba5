// Package aht20 provides a driver for the AHT20 temperature/humidity sensor.
// It exposes a two-phase measurement API:
//
//	d.Trigger()              // start a measurement (fast)
//	err := d.Collect(&s)     // fetch when ready; returns ErrNotReady while busy
//
// d.Read(ctx) performs trigger + bounded polling until ready.
//
// NOTE: I2C.Tx MUST perform a write followed by a repeated-start read when both
// w and r are provided, without releasing the bus.
//
// Values are fixed-point tenths (deci-°C and deci-%RH).
package aht20

import (
	"context"
	"errors"
	"time"

	"tinygo.org/x/drivers"
)

// I2C address.
const Address = 0x38

const (
	cmdTrigger    = 0xAC
	cmdInitialize = 0xBE
	cmdSoftReset  = 0xBA
	cmdStatus     = 0x71

	statusBusy       = 0x80
	statusCalibrated = 0x08

	fullScale = 1 << 20
)

var (
	ErrTimeout  = errors.New("aht20: timeout")
	ErrNotReady = errors.New("aht20: not ready")
)

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Address defaults to 0x38 if zero.
	Address uint16
	// PollInterval is used by Read between Collect attempts. Default 15 ms.
	PollInterval time.Duration
	// CollectTimeout bounds the total wait in Read. Default 250 ms.
	CollectTimeout time.Duration
	// Sleep defaults to time.Sleep.
	Sleep func(time.Duration)
}

// Device wraps an I2C connection to an AHT20 device.
type Device struct {
	bus     drivers.I2C
	Address uint16

	cfg        Config
	configured bool
	buf        [7]byte
}

// New creates a new AHT20 connection. The I2C bus must already be configured.
// It does not touch the device.
func New(bus drivers.I2C) Device {
	return Device{bus: bus, Address: Address}
}

// Configure applies cfg and runs the calibration command if the device
// reports itself uncalibrated. Idempotent.
func (d *Device) Configure(cfg Config) {
	if cfg.Address != 0 {
		d.Address = cfg.Address
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = 15 * time.Millisecond
	}
	if cfg.CollectTimeout <= 0 {
		cfg.CollectTimeout = 250 * time.Millisecond
	}
	if cfg.Sleep == nil {
		cfg.Sleep = time.Sleep
	}
	d.cfg = cfg
	d.configured = true

	st, _ := d.Status()
	if st&statusCalibrated != 0 {
		return
	}
	// Tolerate devices that do not ACK immediately.
	_ = d.bus.Tx(d.Address, []byte{cmdInitialize, 0x08, 0x00}, nil)
	d.cfg.Sleep(10 * time.Millisecond)
}

// Reset issues a soft reset. Give the device ~20ms afterwards before using.
func (d *Device) Reset() error {
	return d.bus.Tx(d.Address, []byte{cmdSoftReset}, nil)
}

// Status reads the status byte.
func (d *Device) Status() (byte, error) {
	var b [1]byte
	if err := d.bus.Tx(d.Address, []byte{cmdStatus}, b[:]); err != nil {
		return 0, err
	}
	return b[0], nil
}

// Trigger starts a measurement. It does not block.
func (d *Device) Trigger() error {
	if !d.configured {
		d.Configure(Config{})
	}
	return d.bus.Tx(d.Address, []byte{cmdTrigger, 0x33, 0x00}, nil)
}

// Collect reads one measurement into out. If the device is still converting,
// ErrNotReady is returned. Bus errors are returned as-is.
func (d *Device) Collect(out *Sample) error {
	data := d.buf[:]
	if err := d.bus.Tx(d.Address, nil, data); err != nil {
		return err
	}
	if (data[0]&statusCalibrated) == 0 || (data[0]&statusBusy) != 0 {
		return ErrNotReady
	}
	out.RawHumidity = (uint32(data[1]) << 12) | (uint32(data[2]) << 4) | (uint32(data[3]) >> 4)
	out.RawTemp = (uint32(data[3]&0x0F) << 16) | (uint32(data[4]) << 8) | uint32(data[5])
	return nil
}

// Read triggers and polls until a sample is ready, the collect timeout
// elapses, or ctx is done.
func (d *Device) Read(ctx context.Context) (Sample, error) {
	var s Sample
	if err := d.Trigger(); err != nil {
		return s, err
	}
	deadline := time.Now().Add(d.cfg.CollectTimeout)
	for {
		err := d.Collect(&s)
		if err != ErrNotReady {
			return s, err
		}
		if time.Now().After(deadline) {
			return s, ErrTimeout
		}
		if err := ctx.Err(); err != nil {
			return s, err
		}
		d.cfg.Sleep(d.cfg.PollInterval)
	}
}

// Sample holds raw 20-bit readings.
type Sample struct {
	RawHumidity uint32
	RawTemp     uint32
}

// DeciRelHumidity returns tenths of %RH, rounded.
func (s Sample) DeciRelHumidity() int32 {
	return int32((int64(s.RawHumidity)*1000 + fullScale/2) / fullScale)
}

// DeciCelsius returns tenths of °C, rounded.
func (s Sample) DeciCelsius() int32 {
	return int32((int64(s.RawTemp)*2000+fullScale/2)/fullScale) - 500
}
