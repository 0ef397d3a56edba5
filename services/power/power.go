// Package power decides what happens after each cycle: loop again at once
// (debug override) or suspend the whole process for the log interval.
//
// Suspension is not a sleep. Implementations either never return or return
// an error; on wake the program restarts from its entry point and nothing
// held in memory survives.
package power

import (
	"context"
	"time"

	"envnode-go/x/conv"
	"envnode-go/x/logx"
)

type Directive uint8

const (
	Continue Directive = iota
	Suspend
)

func (d Directive) String() string {
	if d == Suspend {
		return "suspend"
	}
	return "continue"
}

// DebugInput is the raw level of the pulled-up debug pin. Low means debug.
type DebugInput interface {
	Get() bool
}

// Suspender arms a wake alarm for d and enters the lowest power state.
type Suspender interface {
	Suspend(d time.Duration) error
}

// SuspendFunc adapts a function to Suspender.
type SuspendFunc func(d time.Duration) error

func (f SuspendFunc) Suspend(d time.Duration) error { return f(d) }

type Scheduler struct {
	debug    DebugInput
	susp     Suspender
	interval time.Duration
}

func New(debug DebugInput, susp Suspender, interval time.Duration) *Scheduler {
	return &Scheduler{debug: debug, susp: susp, interval: interval}
}

// Debug samples the override pin.
func (s *Scheduler) Debug() bool { return !s.debug.Get() }

// Decide samples the override pin once.
func (s *Scheduler) Decide() Directive {
	if s.Debug() {
		logx.Line("power", "debug mode detected")
		return Continue
	}
	return Suspend
}

// Next decides and carries out the directive. On real targets a Suspend
// does not return; if the suspender reports an error the caller keeps
// looping.
func (s *Scheduler) Next(ctx context.Context) (Directive, error) {
	d := s.Decide()
	if d == Continue {
		return d, nil
	}
	if err := ctx.Err(); err != nil {
		return d, err
	}
	logx.Line("power", "going into deepsleep for", conv.Itoa(int(s.interval/time.Second)), "seconds")
	return d, s.susp.Suspend(s.interval)
}
