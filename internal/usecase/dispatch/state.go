package dispatch

// State names a phase of a translation attempt, for logging and tests.
type State int

const (
	StateIdle State = iota
	StateArmed
	StateCapturingSelection
	StateTranslating
	StateValidating
	StatePastingBack
	StateAborted
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateArmed:
		return "armed"
	case StateCapturingSelection:
		return "capturing_selection"
	case StateTranslating:
		return "translating"
	case StateValidating:
		return "validating"
	case StatePastingBack:
		return "pasting_back"
	case StateAborted:
		return "aborted"
	default:
		return "unknown"
	}
}
