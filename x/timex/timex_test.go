package timex

import (
	"testing"
	"time"
)

func TestMinute_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+0530", 5*3600+30*60)
	c := FixedClock{T: time.Date(2024, 3, 1, 12, 40, 0, 0, loc)}
	// 12:40 +05:30 is 07:10 UTC.
	if got := Minute(c); got != 10 {
		t.Fatalf("Minute=%d want 10", got)
	}
}

func TestOrSleep(t *testing.T) {
	called := time.Duration(0)
	f := OrSleep(func(d time.Duration) { called = d })
	f(3 * time.Millisecond)
	if called != 3*time.Millisecond {
		t.Fatal("custom sleep not used")
	}
	if OrSleep(nil) == nil {
		t.Fatal("nil sleep should fall back to time.Sleep")
	}
}

// stepClock is a base that restarts near zero, like a counter after reset.
type stepClock struct{ t time.Time }

func (c *stepClock) Now() time.Time { return c.t }

func TestResume_ContinuesCarriedTime(t *testing.T) {
	slept := time.Date(2024, 5, 1, 12, 7, 30, 0, time.UTC)
	base := &stepClock{t: time.Unix(3, 0)} // 3 s after reset
	c, ok := Resume(PackCarry(slept), base)
	if !ok {
		t.Fatal("valid carry rejected")
	}
	if !c.Now().Equal(slept) {
		t.Fatalf("resumed at %v want %v", c.Now(), slept)
	}
	if Minute(c) != 7 {
		t.Fatalf("Minute=%d want 7", Minute(c))
	}
	base.t = base.t.Add(40 * time.Second)
	if Minute(c) != 8 {
		t.Fatalf("Minute after 40 s=%d want 8", Minute(c))
	}
}

func TestResume_RejectsBadCarry(t *testing.T) {
	base := &stepClock{t: time.Unix(5, 0)}
	good := PackCarry(time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	stale := good
	stale[1]++
	for name, c := range map[string]Carry{"zero": {}, "stale": stale} {
		r, ok := Resume(c, base)
		if ok {
			t.Fatalf("%s: carry accepted", name)
		}
		if !r.Now().Equal(base.t) {
			t.Fatalf("%s: clock shifted to %v", name, r.Now())
		}
	}
}

func TestPackCarry_BeyondUint32Seconds(t *testing.T) {
	want := time.Date(2110, 1, 1, 0, 0, 0, 0, time.UTC)
	got, ok := PackCarry(want).Time()
	if !ok || !got.Equal(want) {
		t.Fatalf("got %v ok=%v", got, ok)
	}
}
