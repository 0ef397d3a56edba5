//go:build !rp2040 && !rp2350

package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"envnode-go/errcode"
	"envnode-go/x/logx"
	"envnode-go/x/strx"
)

// Environment variables read by Load.
const (
	EnvSSID        = "W_ID"
	EnvPassword    = "W_PW"
	EnvAPIKey      = "THINGSPEAK_KEY"
	EnvWebhook     = "WEBHOOK_URL"
	EnvInterval    = "LOG_INTERVAL"
	EnvFahrenheit  = "FAHRENHEIT"
	EnvSensor      = "SENSOR"
	EnvStepTimeout = "STEP_TIMEOUT"
	EnvHold        = "DISPLAY_HOLD"
)

// Load reads secrets and overrides from the environment, after loading a
// .env file if one is present.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		logx.Line("config", "no .env file loaded:", err.Error())
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from Defaults and the given lookup. The bench build
// defaults to the simulated sensor.
func FromEnv(getenv func(string) string) (Config, error) {
	c := Defaults()
	c.Secrets = Secrets{
		WiFiSSID:     getenv(EnvSSID),
		WiFiPassword: getenv(EnvPassword),
		APIKey:       getenv(EnvAPIKey),
	}
	c.WebhookURL = strx.Coalesce(getenv(EnvWebhook), c.WebhookURL)
	c.Sensor = strx.Coalesce(getenv(EnvSensor), SensorSimulated)

	var err error
	if c.LogInterval, err = seconds(getenv(EnvInterval), c.LogInterval); err != nil {
		return c, errcode.Wrap(errcode.InvalidParams, "config "+EnvInterval, err)
	}
	if c.StepTimeout, err = duration(getenv(EnvStepTimeout), c.StepTimeout); err != nil {
		return c, errcode.Wrap(errcode.InvalidParams, "config "+EnvStepTimeout, err)
	}
	if c.DisplayHold, err = duration(getenv(EnvHold), c.DisplayHold); err != nil {
		return c, errcode.Wrap(errcode.InvalidParams, "config "+EnvHold, err)
	}
	if v := getenv(EnvFahrenheit); v != "" {
		if c.Fahrenheit, err = strconv.ParseBool(v); err != nil {
			return c, errcode.Wrap(errcode.InvalidParams, "config "+EnvFahrenheit, err)
		}
	}
	return c, c.Validate()
}

// seconds parses a plain integer number of seconds (the firmware's native
// unit) or a Go duration string.
func seconds(v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return time.ParseDuration(v)
}

func duration(v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	return time.ParseDuration(v)
}
