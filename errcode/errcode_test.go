package errcode

import (
	"context"
	"errors"
	"testing"
)

func TestCodesAreStableStrings(t *testing.T) {
	cases := map[string]Code{
		"ok":                OK,
		"not_associated":    NotAssociated,
		"sensor_failed":     SensorFailed,
		"display_not_found": DisplayNotFound,
		"submit_failed":     SubmitFailed,
		"actuator_failed":   ActuatorFailed,
		"timeout":           Timeout,
	}
	for want, c := range cases {
		if c.Error() != want {
			t.Fatalf("code %q mismatch: got %q", want, c.Error())
		}
	}
}

func TestOf_UnwrapsWrappedErrors(t *testing.T) {
	if Of(nil) != OK {
		t.Fatalf("Of(nil) != OK")
	}
	if Of(SubmitFailed) != SubmitFailed {
		t.Fatalf("bare code not recognised")
	}
	e := Wrap(SensorFailed, "measure", errors.New("bus nack"))
	if Of(e) != SensorFailed {
		t.Fatalf("Of(E) = %q", Of(e))
	}
	outer := &E{C: Error, Op: "outer", Err: e}
	if Of(outer) != Error {
		t.Fatalf("outer code should win, got %q", Of(outer))
	}
	if Of(errors.New("plain")) != Error {
		t.Fatalf("plain error should map to Error")
	}
}

func TestWrap_NilIsNil(t *testing.T) {
	if Wrap(SubmitFailed, "submit", nil) != nil {
		t.Fatal("Wrap(nil) should be nil")
	}
}

func TestE_ErrorString(t *testing.T) {
	e := &E{C: DisplayNotFound, Op: "display", Msg: "0x3c missing"}
	if got := e.Error(); got != "display: display_not_found: 0x3c missing" {
		t.Fatalf("Error() = %q", got)
	}
	cause := errors.New("eof")
	w := Wrap(SubmitFailed, "submit", cause)
	if !errors.Is(w, cause) {
		t.Fatal("cause not reachable through Unwrap")
	}
}

func TestMapDriverErr(t *testing.T) {
	if MapDriverErr(nil, SensorFailed) != OK {
		t.Fatal("nil should map to OK")
	}
	if MapDriverErr(context.DeadlineExceeded, SensorFailed) != Timeout {
		t.Fatal("deadline should map to Timeout")
	}
	if MapDriverErr(errors.New("nack"), SensorFailed) != SensorFailed {
		t.Fatal("unknown driver error should use fallback")
	}
	if MapDriverErr(DisplayNotFound, SensorFailed) != DisplayNotFound {
		t.Fatal("coded error should keep its code")
	}
}
