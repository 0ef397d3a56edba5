package types

// Decision is a per-channel actuator instruction. Hold leaves the latched
// output as it is; it is distinct from Off.
type Decision uint8

const (
	Hold Decision = iota
	On
	Off
)

func (d Decision) String() string {
	switch d {
	case On:
		return "on"
	case Off:
		return "off"
	default:
		return "hold"
	}
}

// DecisionOf lifts an absolute level into a Decision.
func DecisionOf(on bool) Decision {
	if on {
		return On
	}
	return Off
}

// ActuatorState is the desired output for one cycle. Intake and Exhaust are
// always absolute; Diffuser is hysteretic and may be Hold.
type ActuatorState struct {
	Intake   bool
	Exhaust  bool
	Diffuser Decision
}

// Channel names a logical actuator output.
type Channel uint8

const (
	ChanIntake Channel = iota
	ChanExhaust
	ChanDiffuser
)

func (c Channel) String() string {
	switch c {
	case ChanIntake:
		return "intake"
	case ChanExhaust:
		return "exhaust"
	case ChanDiffuser:
		return "diffuser"
	}
	return "?"
}
