// Package recovery turns a failed cycle into a visible indication. It never
// re-raises and never stops the node; the next cycle is the retry.
package recovery

import (
	"time"

	"envnode-go/errcode"
	"envnode-go/x/logx"
	"envnode-go/x/timex"
)

// Indicator is the error LED, in logical levels.
type Indicator interface {
	Set(on bool)
}

type Config struct {
	Pulses int           // number of on/off pulses
	Period time.Duration // one pulse: half on, half off
}

type Recovery struct {
	led   Indicator
	cfg   Config
	sleep timex.SleepFunc
}

// New returns a Recovery blinking led. A nil sleep uses time.Sleep.
func New(led Indicator, cfg Config, sleep timex.SleepFunc) *Recovery {
	return &Recovery{led: led, cfg: cfg, sleep: timex.OrSleep(sleep)}
}

// Recover logs cause, blinks the indicator and leaves it steady on. The
// indicator is not cleared by later successful cycles, so "on" reads as
// "some cycle since wake failed".
func (r *Recovery) Recover(cause error) {
	if cause != nil {
		logx.Line("recovery", string(errcode.Of(cause)), cause.Error())
	}
	half := r.cfg.Period / 2
	for i := 0; i < r.cfg.Pulses; i++ {
		r.led.Set(true)
		r.sleep(half)
		r.led.Set(false)
		r.sleep(half)
	}
	r.led.Set(true)
}
