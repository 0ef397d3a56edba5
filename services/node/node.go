// Package node runs the monitoring cycle: associate, measure, present, log,
// actuate, then recover on failure and hand over to the power scheduler.
//
// Nothing here outlives a suspension. The node is rebuilt from scratch on
// every wake; the actuator latch and the clock are the only memory.
package node

import (
	"context"
	"time"

	"envnode-go/services/climate"
	"envnode-go/services/config"
	"envnode-go/services/power"
	"envnode-go/types"
	"envnode-go/x/conv"
	"envnode-go/x/logx"
	"envnode-go/x/timex"
)

type Link interface {
	Ensure(ctx context.Context) error
}

type Sensor interface {
	Measure(ctx context.Context) (types.Measurement, error)
}

type Display interface {
	Show(ctx context.Context, m types.Measurement) error
}

type Logger interface {
	Submit(ctx context.Context, m types.Measurement) error
}

type Actuators interface {
	Apply(s types.ActuatorState) error
}

type Recoverer interface {
	Recover(cause error)
}

type Scheduler interface {
	Next(ctx context.Context) (power.Directive, error)
}

// Peripherals is every collaborator the cycle touches, built once at boot
// and passed in explicitly.
type Peripherals struct {
	Link      Link
	Sensor    Sensor
	Display   Display
	Logger    Logger
	Actuators Actuators
	Clock     timex.Clock
	Recovery  Recoverer
	Scheduler Scheduler
}

type Node struct {
	p           Peripherals
	th          config.Thresholds
	stepTimeout time.Duration
	session     string
	cycles      uint64
}

// New wires a node. session identifies this wake in the console log.
func New(cfg config.Config, p Peripherals, session string) *Node {
	if p.Clock == nil {
		p.Clock = timex.SystemClock{}
	}
	return &Node{p: p, th: cfg.Thresholds, stepTimeout: cfg.StepTimeout, session: session}
}

// Cycles is the number of cycles run since this wake.
func (n *Node) Cycles() uint64 { return n.cycles }

// Cycle runs steps 1-5 in order. The first failure ends the cycle, so the
// actuators are only written after a reading has been shown and logged.
func (n *Node) Cycle(ctx context.Context) types.CycleOutcome {
	n.cycles++
	if err := n.step(ctx, n.p.Link.Ensure); err != nil {
		return types.Failure(err)
	}

	var m types.Measurement
	err := n.step(ctx, func(ctx context.Context) error {
		var err error
		m, err = n.p.Sensor.Measure(ctx)
		return err
	})
	if err != nil {
		return types.Failure(err)
	}

	if err := n.step(ctx, func(ctx context.Context) error { return n.p.Display.Show(ctx, m) }); err != nil {
		return types.Failure(err)
	}
	if err := n.step(ctx, func(ctx context.Context) error { return n.p.Logger.Submit(ctx, m) }); err != nil {
		return types.Failure(err)
	}

	state := climate.Decide(m, timex.Minute(n.p.Clock), n.th)
	if err := n.p.Actuators.Apply(state); err != nil {
		return types.Failure(err)
	}
	return types.Success
}

// Step runs one cycle, recovers if it failed, then asks the scheduler what
// comes next. On hardware a Suspend directive does not return.
func (n *Node) Step(ctx context.Context) (types.CycleOutcome, power.Directive) {
	out := n.Cycle(ctx)
	if !out.OK() {
		n.p.Recovery.Recover(out.Err)
	}
	d, err := n.p.Scheduler.Next(ctx)
	if err != nil && ctx.Err() == nil {
		logx.Line("node", "suspend failed:", err.Error())
	}
	return out, d
}

// Run steps until ctx is done. It never stops on a cycle failure.
func (n *Node) Run(ctx context.Context) error {
	logx.Line("node", "wake session", n.session)
	for {
		if err := ctx.Err(); err != nil {
			logx.Line("node", "stopping after", conv.Itoa(int(n.cycles)), "cycles")
			return err
		}
		n.Step(ctx)
	}
}

// step runs fn under the optional per-step timeout.
func (n *Node) step(ctx context.Context, fn func(context.Context) error) error {
	if n.stepTimeout <= 0 {
		return fn(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, n.stepTimeout)
	defer cancel()
	return fn(ctx)
}
