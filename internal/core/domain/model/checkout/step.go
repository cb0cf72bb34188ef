package checkout

// Step is the screen the checkout is on.
type Step int

const (
	// StepUnknown is the zero value.
	StepUnknown Step = iota
	// StepReviewing shows the editable cart.
	StepReviewing
	// StepConfirming shows customer fields, the map and the shipping summary.
	StepConfirming
)

func (s Step) String() string {
	switch s {
	case StepReviewing:
		return "REVIEWING"
	case StepConfirming:
		return "CONFIRMING"
	default:
		return "UNKNOWN"
	}
}
