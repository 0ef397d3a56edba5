// Package config holds the node's static configuration. It is built once at
// boot and treated as read-only for the rest of the wake session.
package config

import (
	"time"

	"envnode-go/errcode"
)

// Sensor kinds understood by the platform layer.
const (
	SensorDHT11     = "dht11"
	SensorAHT20     = "aht20"
	SensorSHTC3     = "shtc3"
	SensorSimulated = "sim"
)

// DefaultWebhookURL is the ThingSpeak channel update endpoint.
const DefaultWebhookURL = "https://api.thingspeak.com/update?api_key={api_key}&field1={temperature}&field2={humidity}"

// Secrets are opaque strings read once at startup.
type Secrets struct {
	WiFiSSID     string
	WiFiPassword string
	APIKey       string
}

// Thresholds are tenths of the configured unit (temperature) or of %RH.
type Thresholds struct {
	IntakeAbove  int32
	DiffuserLow  uint16
	DiffuserHigh uint16
}

// Pins are MCU GPIO numbers.
type Pins struct {
	LED      int // error indicator output
	Debug    int // pulled-up input; low selects debug mode
	DHT      int // DHT11 data line
	I2CSDA   int
	I2CSCL   int
	UARTTX   int // console mirror (ConsoleUART)
	UARTRX   int
	I2CFreqK uint32
}

// Channels are PCF8574 pin numbers. Pins 4 and 5 are wired to the second fan
// pair but are not driven.
type Channels struct {
	Intake   uint8
	Exhaust  uint8
	Diffuser uint8
}

// Config is the complete static configuration.
type Config struct {
	Secrets    Secrets
	Thresholds Thresholds
	Pins       Pins
	Channels   Channels

	Sensor      string
	Fahrenheit  bool
	ExpanderAdr uint16
	DisplayAdr  uint16
	SensorAdr   uint16 // I²C sensors only; 0 means driver default

	WebhookURL  string
	LogInterval time.Duration
	DisplayHold time.Duration

	BlinkPulses int
	BlinkPeriod time.Duration

	// RetryEvery is the association retry period.
	RetryEvery time.Duration
	// StepTimeout bounds each blocking cycle step. Zero leaves steps
	// unbounded.
	StepTimeout time.Duration

	ConsoleUART bool
	ConsoleBaud uint32
}

// Defaults returns the stock configuration for a Pico-class board.
func Defaults() Config {
	return Config{
		Thresholds: Thresholds{
			IntakeAbove:  230,
			DiffuserLow:  280,
			DiffuserHigh: 320,
		},
		Pins: Pins{
			LED:      25,
			Debug:    14,
			DHT:      12,
			I2CSDA:   4,
			I2CSCL:   5,
			UARTTX:   0,
			UARTRX:   1,
			I2CFreqK: 100,
		},
		Channels: Channels{
			Intake:   2,
			Exhaust:  3,
			Diffuser: 6,
		},
		Sensor:      SensorDHT11,
		ExpanderAdr: 0x20,
		DisplayAdr:  0x3C,
		WebhookURL:  DefaultWebhookURL,
		LogInterval: 60 * time.Second,
		DisplayHold: 10 * time.Second,
		BlinkPulses: 3,
		BlinkPeriod: time.Second,
		RetryEvery:  time.Second,
		ConsoleBaud: 115200,
	}
}

// Validate rejects configurations the node cannot run with.
func (c Config) Validate() error {
	const op = "config"
	switch {
	case c.Thresholds.DiffuserLow > c.Thresholds.DiffuserHigh:
		return errcode.New(errcode.InvalidParams, op, "diffuser low threshold above high")
	case c.LogInterval <= 0:
		return errcode.New(errcode.InvalidParams, op, "log interval must be positive")
	case c.WebhookURL == "":
		return errcode.New(errcode.InvalidParams, op, "missing webhook url")
	case c.BlinkPulses < 0 || c.BlinkPeriod < 0:
		return errcode.New(errcode.InvalidParams, op, "negative blink settings")
	case c.StepTimeout < 0:
		return errcode.New(errcode.InvalidParams, op, "negative step timeout")
	case c.Channels.Intake > 7 || c.Channels.Exhaust > 7 || c.Channels.Diffuser > 7:
		return errcode.New(errcode.InvalidParams, op, "expander channel out of range")
	case c.Channels.Intake == c.Channels.Exhaust ||
		c.Channels.Intake == c.Channels.Diffuser ||
		c.Channels.Exhaust == c.Channels.Diffuser:
		return errcode.New(errcode.InvalidParams, op, "expander channels overlap")
	}
	switch c.Sensor {
	case SensorDHT11, SensorAHT20, SensorSHTC3, SensorSimulated:
	default:
		return errcode.New(errcode.InvalidParams, op, "unknown sensor "+c.Sensor)
	}
	return nil
}
