//go:build rp2040 || rp2350

package platform

import (
	"context"
	"device/arm"
	"image/color"
	"machine"
	"time"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/dht"
	"tinygo.org/x/drivers/ssd1306"

	"envnode-go/errcode"
	"envnode-go/platform/boards"
	"envnode-go/services/config"
	"envnode-go/services/display"
	"envnode-go/services/power"
	"envnode-go/services/sensor"
	"envnode-go/x/logx"
	"envnode-go/x/timex"
)

// Open configures the Pico's pins and buses from cfg.
func Open(cfg config.Config) (Hardware, error) {
	b := boards.Pico
	if err := b.Check(cfg.Pins); err != nil {
		return Hardware{}, err
	}
	if cfg.ConsoleUART {
		openConsole(cfg)
	}

	i2c := machine.I2C0
	err := i2c.Configure(machine.I2CConfig{
		Frequency: cfg.Pins.I2CFreqK * machine.KHz,
		SDA:       machine.Pin(cfg.Pins.I2CSDA),
		SCL:       machine.Pin(cfg.Pins.I2CSCL),
	})
	if err != nil {
		return Hardware{}, errcode.Wrap(errcode.InvalidParams, "i2c0", err)
	}

	led := machine.Pin(cfg.Pins.LED)
	led.Configure(machine.PinConfig{Mode: machine.PinOutput})
	dbg := machine.Pin(cfg.Pins.Debug)
	dbg.Configure(machine.PinConfig{Mode: machine.PinInputPullup})

	r, err := openReader(cfg, i2c)
	if err != nil {
		return Hardware{}, err
	}

	clk := resumeClock()
	return Hardware{
		Board:     b,
		I2C:       i2c,
		LED:       led,
		Debug:     dbg,
		Link:      openLink(),
		Reader:    r,
		Panel:     oledOpener(i2c, cfg.DisplayAdr),
		Suspender: deepSleep(clk),
		Clock:     clk,
		BootDelay: 2 * time.Second,
	}, nil
}

func openReader(cfg config.Config, i2c drivers.I2C) (sensor.Reader, error) {
	switch cfg.Sensor {
	case config.SensorDHT11:
		return dhtReader{dev: dht.New(machine.Pin(cfg.Pins.DHT), dht.DHT11)}, nil
	case config.SensorAHT20:
		return sensor.NewAHT20(i2c, cfg.SensorAdr), nil
	case config.SensorSHTC3:
		return sensor.NewSHTC3(i2c), nil
	}
	return nil, errcode.New(errcode.InvalidParams, "sensor", "unsupported on "+boards.Pico.Name+": "+cfg.Sensor)
}

// openConsole mirrors log lines to UART0 for boards without USB attached.
func openConsole(cfg config.Config) {
	u := uartx.UART0
	_ = u.Configure(uartx.UARTConfig{
		BaudRate: cfg.ConsoleBaud,
		TX:       machine.Pin(cfg.Pins.UARTTX),
		RX:       machine.Pin(cfg.Pins.UARTRX),
	})
	logx.Mirror = u
}

// deepSleep waits out the interval then resets the chip. Execution restarts
// at main with RAM cleared; the expander keeps its latch and the watchdog
// scratch registers keep the clock.
func deepSleep(clk timex.Clock) power.Suspender {
	return power.SuspendFunc(func(d time.Duration) error {
		time.Sleep(d)
		saveCarry(timex.PackCarry(clk.Now()))
		arm.SystemReset()
		return nil
	})
}

type dhtReader struct{ dev dht.Device }

// Read returns tenths of a degree and of %RH, as the driver does.
func (r dhtReader) Read(ctx context.Context) (int32, int32, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if err := r.dev.ReadMeasurements(); err != nil {
		return 0, 0, err
	}
	t, h, err := r.dev.Measurements()
	if err != nil {
		return 0, 0, err
	}
	return int32(t), int32(h), nil
}

// oled adapts an SSD1306 to display.Panel.
type oled struct {
	size  func() (int16, int16)
	set   func(x, y int16, c color.RGBA)
	show  func() error
	clear func()
	off   func()
}

func (o *oled) Size() (int16, int16)              { return o.size() }
func (o *oled) SetPixel(x, y int16, c color.RGBA) { o.set(x, y, c) }
func (o *oled) Display() error                    { return o.show() }
func (o *oled) ClearBuffer()                      { o.clear() }
func (o *oled) PowerOff()                         { o.off() }

func oledOpener(bus drivers.I2C, addr uint16) display.Opener {
	return func() display.Panel {
		dev := ssd1306.NewI2C(bus)
		dev.Configure(ssd1306.Config{Width: 128, Height: 64, Address: addr})
		return &oled{
			size:  dev.Size,
			set:   dev.SetPixel,
			show:  dev.Display,
			clear: dev.ClearBuffer,
			off:   func() { dev.Command(ssd1306.DISPLAYOFF) },
		}
	}
}
