// Package platform opens the board's peripherals and assembles them into a
// node. Open is per target (rp2 hardware or host bench); Build is shared.
package platform

import (
	"time"

	"tinygo.org/x/drivers"

	"envnode-go/drivers/pcf8574"
	"envnode-go/platform/boards"
	"envnode-go/services/actuator"
	"envnode-go/services/config"
	"envnode-go/services/display"
	"envnode-go/services/node"
	"envnode-go/services/power"
	"envnode-go/services/recovery"
	"envnode-go/services/sensor"
	"envnode-go/services/telemetry"
	"envnode-go/services/wifi"
	"envnode-go/x/logx"
	"envnode-go/x/timex"
)

// Pin is a digital line. machine.Pin satisfies it.
type Pin interface {
	Set(high bool)
	Get() bool
}

// Hardware is what Open found on the board.
type Hardware struct {
	Board boards.Board

	I2C   drivers.I2C
	LED   Pin // error indicator
	Debug Pin // pulled-up debug override

	Link      wifi.Linker // nil when the board has no radio
	Reader    sensor.Reader
	Panel     display.Opener
	Suspender power.Suspender
	HTTP      telemetry.Doer // nil uses http.DefaultClient
	Clock     timex.Clock
	Sleep     timex.SleepFunc

	// BootDelay lets a USB console enumerate before the first line.
	BootDelay time.Duration
}

// Build assembles a node over hw. The expander shadow is seeded here so the
// first Apply of the wake keeps whatever the diffuser was left at.
func Build(cfg config.Config, hw Hardware, session string) *node.Node {
	if hw.Link == nil {
		logx.Line("platform", "no network interface on", hw.Board.Name)
	}
	hw.LED.Set(false)

	x := pcf8574.New(hw.I2C)
	x.Configure(pcf8574.Config{Address: cfg.ExpanderAdr})
	if err := x.Load(); err != nil {
		logx.Line("platform", "expander not read:", err.Error())
	}

	return node.New(cfg, node.Peripherals{
		Link:      wifi.New(hw.Link, cfg.Secrets.WiFiSSID, cfg.Secrets.WiFiPassword, cfg.RetryEvery),
		Sensor:    sensor.New(cfg.Sensor, hw.Reader, cfg.Fahrenheit),
		Display:   display.New(hw.I2C, hw.Panel, display.Config{Address: cfg.DisplayAdr, Hold: cfg.DisplayHold}),
		Logger:    telemetry.New(cfg.WebhookURL, cfg.Secrets.APIKey, hw.HTTP),
		Actuators: actuator.New(&x, cfg.Channels),
		Clock:     hw.Clock,
		Recovery:  recovery.New(hw.LED, recovery.Config{Pulses: cfg.BlinkPulses, Period: cfg.BlinkPeriod}, hw.Sleep),
		Scheduler: power.New(hw.Debug, hw.Suspender, cfg.LogInterval),
	}, session)
}
