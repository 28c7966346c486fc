package lexres

// State reports whether a lexical resource has been loaded. Every resource
// starts Unloaded; consumers must check the state and degrade rather than
// fail when a resource is missing.
type State int

const (
	StateUnloaded State = iota
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "unloaded"
}

// POS tags used across all lexical resources.
const (
	TagNoun      = "n"
	TagVerb      = "v"
	TagAdjective = "a"
	TagAdverb    = "r"
)
