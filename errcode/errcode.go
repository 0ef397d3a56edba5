package errcode

import (
	"context"
	"errors"
)

// Code is a stable, log-facing error identifier.
// It is a string newtype, comparable, allocation-free, and implements error.
type Code string

func (c Code) Error() string { return string(c) }

// Canonical codes (short, stable). Every code is recoverable: the node logs,
// blinks and carries on with the next cycle.
const (
	OK            Code = "ok"
	InvalidParams Code = "invalid_params"
	Timeout       Code = "timeout"

	NotAssociated   Code = "not_associated"
	SensorFailed    Code = "sensor_failed"
	DisplayNotFound Code = "display_not_found"
	DisplayFailed   Code = "display_failed"
	SubmitFailed    Code = "submit_failed"
	ActuatorFailed  Code = "actuator_failed"

	Error Code = "error" // generic fallback
)

// E keeps the failing operation and an optional cause next to the code.
type E struct {
	C   Code
	Op  string
	Msg string
	Err error
}

func (e *E) Error() string {
	s := string(e.C)
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += " (" + e.Err.Error() + ")"
	}
	return s
}
func (e *E) Unwrap() error { return e.Err }
func (e *E) Code() Code    { return e.C }

// Wrap builds an *E for op. A nil err yields nil so call sites can return
// Wrap(...) unconditionally.
func Wrap(c Code, op string, err error) error {
	if err == nil {
		return nil
	}
	return &E{C: c, Op: op, Err: err}
}

// New builds an *E without an underlying cause.
func New(c Code, op, msg string) error {
	return &E{C: c, Op: op, Msg: msg}
}

// Of extracts a Code from an error, defaulting to Error.
func Of(err error) Code {
	if err == nil {
		return OK
	}
	if c, ok := err.(Code); ok {
		return c
	}
	type coder interface{ Code() Code }
	if x, ok := err.(coder); ok {
		return x.Code()
	}
	type unwrapper interface{ Unwrap() error }
	if u, ok := err.(unwrapper); ok {
		return Of(u.Unwrap())
	}
	return Error
}

// MapDriverErr maps low-level driver errors to a Code. Context expiry is
// reported as Timeout; anything else keeps the caller's fallback.
func MapDriverErr(err error, fallback Code) Code {
	if err == nil {
		return OK
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Timeout
	}
	if c := Of(err); c != Error {
		return c
	}
	return fallback
}
