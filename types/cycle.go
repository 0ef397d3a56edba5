package types

// CycleOutcome is the result of one cycle body: success, or failure with the
// cause that FailureRecovery reports. It is never persisted.
type CycleOutcome struct {
	Err error
}

func (o CycleOutcome) OK() bool { return o.Err == nil }

// Success is the zero outcome.
var Success = CycleOutcome{}

// Failure wraps a cause.
func Failure(err error) CycleOutcome { return CycleOutcome{Err: err} }
