package timex

import "time"

// NowMs returns Unix milliseconds as int64.
func NowMs() int64 { return time.Now().UnixMilli() }

// Clock is the wall-clock source. On boards whose counter restarts at zero
// on reset it is an OffsetClock resumed from a Carry.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always reports T. Handy for bench runs and tests.
type FixedClock struct{ T time.Time }

func (c FixedClock) Now() time.Time { return c.T }

// Minute is the UTC minute-of-hour of c.
func Minute(c Clock) int { return c.Now().UTC().Minute() }

// SleepFunc has the shape of time.Sleep so blocking waits can be stubbed.
type SleepFunc func(time.Duration)

// OrSleep returns f, or time.Sleep when f is nil.
func OrSleep(f SleepFunc) SleepFunc {
	if f == nil {
		return time.Sleep
	}
	return f
}

// OffsetClock is Base shifted by Offset. A nil Base reads time.Now.
type OffsetClock struct {
	Base   Clock
	Offset time.Duration
}

func (c OffsetClock) Now() time.Time {
	b := c.Base
	if b == nil {
		b = SystemClock{}
	}
	return b.Now().Add(c.Offset)
}

// Carry is a wall-clock time packed into three 32-bit words, sized for
// registers that survive a soft reset. Word 0 checks the other two, so
// zeroed or stale registers do not decode.
type Carry [3]uint32

const carryMagic uint32 = 0x454e5644

// PackCarry encodes t to whole Unix seconds.
func PackCarry(t time.Time) Carry {
	s := uint64(t.Unix())
	lo, hi := uint32(s), uint32(s>>32)
	return Carry{carryMagic ^ lo ^ hi, lo, hi}
}

// Time decodes c. ok is false when the check word does not match.
func (c Carry) Time() (t time.Time, ok bool) {
	if c[0] != carryMagic^c[1]^c[2] {
		return time.Time{}, false
	}
	return time.Unix(int64(uint64(c[2])<<32|uint64(c[1])), 0).UTC(), true
}

// Resume returns a clock that reads the carried time at base's current
// instant and advances with base from there. Without a valid carry the
// clock is base unshifted.
func Resume(c Carry, base Clock) (OffsetClock, bool) {
	t, ok := c.Time()
	if !ok {
		return OffsetClock{Base: base}, false
	}
	return OffsetClock{Base: base, Offset: t.Sub(base.Now())}, true
}
