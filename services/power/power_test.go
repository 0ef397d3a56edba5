package power

import (
	"context"
	"errors"
	"testing"
	"time"
)

type pin struct{ level bool }

func (p *pin) Get() bool { return p.level }

type recSuspender struct {
	calls []time.Duration
	err   error
}

func (r *recSuspender) Suspend(d time.Duration) error {
	r.calls = append(r.calls, d)
	return r.err
}

func TestDebugAsserted_NeverSuspends(t *testing.T) {
	susp := &recSuspender{}
	s := New(&pin{level: false}, susp, time.Minute)
	for i := 0; i < 100; i++ {
		d, err := s.Next(context.Background())
		if d != Continue || err != nil {
			t.Fatalf("cycle %d: directive=%v err=%v", i, d, err)
		}
	}
	if len(susp.calls) != 0 {
		t.Fatalf("suspend called %d times in debug mode", len(susp.calls))
	}
}

func TestPulledUp_SuspendsForInterval(t *testing.T) {
	susp := &recSuspender{}
	s := New(&pin{level: true}, susp, 60*time.Second)
	d, err := s.Next(context.Background())
	if d != Suspend || err != nil {
		t.Fatalf("directive=%v err=%v", d, err)
	}
	if len(susp.calls) != 1 || susp.calls[0] != 60*time.Second {
		t.Fatalf("calls=%v", susp.calls)
	}
}

func TestPinSampledEveryCycle(t *testing.T) {
	p := &pin{level: false}
	s := New(p, &recSuspender{}, time.Second)
	if s.Decide() != Continue {
		t.Fatal("low pin should continue")
	}
	p.level = true
	if s.Decide() != Suspend {
		t.Fatal("released pin should suspend")
	}
}

func TestSuspendError_Reported(t *testing.T) {
	boom := errors.New("rtc")
	s := New(&pin{level: true}, SuspendFunc(func(time.Duration) error { return boom }), time.Second)
	if _, err := s.Next(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("err=%v", err)
	}
}

func TestCancelledContext_SkipsSuspend(t *testing.T) {
	susp := &recSuspender{}
	s := New(&pin{level: true}, susp, time.Second)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := s.Next(ctx); err == nil || len(susp.calls) != 0 {
		t.Fatalf("err=%v calls=%v", err, susp.calls)
	}
}
