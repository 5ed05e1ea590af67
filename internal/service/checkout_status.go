package service

// AttemptStatus tracks a single checkout attempt. Succeeded and Failed are
// terminal; a failed attempt is never retried automatically.
type AttemptStatus string

const (
	AttemptStatusIdle       AttemptStatus = "IDLE"
	AttemptStatusProcessing AttemptStatus = "PROCESSING"
	AttemptStatusSucceeded  AttemptStatus = "SUCCEEDED"
	AttemptStatusFailed     AttemptStatus = "FAILED"
)

// IsTerminal reports whether the attempt has reached a final state.
func (s AttemptStatus) IsTerminal() bool {
	return s == AttemptStatusSucceeded || s == AttemptStatusFailed
}

func (s AttemptStatus) String() string {
	return string(s)
}
