package models

// Stage is the coarse position of a session in its state machine.
// It only moves forward: Setup -> Playing -> Complete.
type Stage string

const (
	StageSetup    Stage = "setup"
	StagePlaying  Stage = "playing"
	StageComplete Stage = "complete"
)

// rank orders stages so transitions can be checked for direction.
func (s Stage) rank() int {
	switch s {
	case StageSetup:
		return 0
	case StagePlaying:
		return 1
	case StageComplete:
		return 2
	default:
		return -1
	}
}

// Before reports whether s comes strictly earlier than other.
func (s Stage) Before(other Stage) bool {
	return s.rank() < other.rank()
}
