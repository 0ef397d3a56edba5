//go:build rp2040 || rp2350

package platform

import (
	"device/rp"
	"time"

	"envnode-go/x/logx"
	"envnode-go/x/timex"
)

// The tick counter restarts at zero on every reset, so the wall clock is
// carried across deep sleep in watchdog scratch 0..2, which survive a soft
// reset. A power-on starts from the Unix epoch.
var (
	bootClock   timex.OffsetClock
	bootResumed bool
)

// resumeClock reads the carry once per boot and clears it so a later crash
// reset does not reuse it.
func resumeClock() timex.Clock {
	if bootResumed {
		return bootClock
	}
	bootResumed = true
	c := timex.Carry{rp.WATCHDOG.SCRATCH0.Get(), rp.WATCHDOG.SCRATCH1.Get(), rp.WATCHDOG.SCRATCH2.Get()}
	rp.WATCHDOG.SCRATCH0.Set(0)

	var ok bool
	bootClock, ok = timex.Resume(c, timex.SystemClock{})
	if ok {
		logx.Line("power", "clock resumed at", bootClock.Now().UTC().Format(time.RFC3339))
	} else {
		logx.Line("power", "no carried clock, counting from power-on")
	}
	return bootClock
}

func saveCarry(c timex.Carry) {
	rp.WATCHDOG.SCRATCH1.Set(c[1])
	rp.WATCHDOG.SCRATCH2.Set(c[2])
	rp.WATCHDOG.SCRATCH0.Set(c[0])
}
