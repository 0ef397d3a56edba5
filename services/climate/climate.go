// Package climate maps one measurement and the wall-clock minute to the
// desired actuator outputs. It is pure: no state, no I/O.
package climate

import (
	"envnode-go/services/config"
	"envnode-go/types"
	"envnode-go/x/mathx"
)

// Decide computes the actuator state for one cycle.
//
//   - intake fan on iff temperature is strictly above IntakeAbove (no band)
//   - exhaust fan on iff minute is even
//   - diffuser On below DiffuserLow, Off above DiffuserHigh, Hold inside
//     the inclusive band
func Decide(m types.Measurement, minute int, th config.Thresholds) types.ActuatorState {
	return types.ActuatorState{
		Intake:   m.DeciTemp > th.IntakeAbove,
		Exhaust:  minute%2 == 0,
		Diffuser: Diffuser(m.DeciRH, th.DiffuserLow, th.DiffuserHigh),
	}
}

// Diffuser is the hysteretic humidity rule.
func Diffuser(deciRH, low, high uint16) types.Decision {
	switch mathx.Classify(deciRH, low, high) {
	case mathx.Below:
		return types.On
	case mathx.Above:
		return types.Off
	}
	return types.Hold
}

// Resolve applies d to the previous level of a channel.
func Resolve(d types.Decision, prev bool) bool {
	switch d {
	case types.On:
		return true
	case types.Off:
		return false
	default:
		return prev
	}
}
