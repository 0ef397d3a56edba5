package types

import (
	"errors"
	"testing"
)

func TestCelsiusToFahrenheit(t *testing.T) {
	cases := map[int32]int32{0: 320, 1000: 2120, -400: -400, 250: 770, 1: 322, -1: 318, 3: 325, -178: 0}
	for in, want := range cases {
		if got := CelsiusToFahrenheit(in); got != want {
			t.Fatalf("CelsiusToFahrenheit(%d)=%d want %d", in, got, want)
		}
	}
}

func TestDecisionOf_String(t *testing.T) {
	if DecisionOf(true) != On || DecisionOf(false) != Off {
		t.Fatal("DecisionOf mismatch")
	}
	if Hold.String() != "hold" || On.String() != "on" || Off.String() != "off" {
		t.Fatal("Decision.String mismatch")
	}
	var zero Decision
	if zero != Hold {
		t.Fatal("zero Decision must be Hold")
	}
}

func TestCycleOutcome(t *testing.T) {
	if !Success.OK() {
		t.Fatal("Success not OK")
	}
	if Failure(errors.New("x")).OK() {
		t.Fatal("Failure reported OK")
	}
	if Celsius.Symbol() != "C" || Fahrenheit.Symbol() != "F" {
		t.Fatal("unit symbols")
	}
}
