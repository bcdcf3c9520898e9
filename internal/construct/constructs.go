package construct

// Construct is one of the five cognitive dimensions tracked per user.
type Construct string

const (
	Attention   Construct = "attention"
	Speed       Construct = "speed"
	Reasoning   Construct = "reasoning"
	Computation Construct = "computation"
	Reading     Construct = "reading"
)

// All returns the fixed construct universe in display order.
func All() []Construct {
	return []Construct{Attention, Speed, Reasoning, Computation, Reading}
}

// Known reports whether name is a member of the construct universe.
func Known(name string) bool {
	switch Construct(name) {
	case Attention, Speed, Reasoning, Computation, Reading:
		return true
	}
	return false
}

// DisplayName returns a human-readable name for a construct.
func DisplayName(c Construct) string {
	switch c {
	case Attention:
		return "Attention & Carefulness"
	case Speed:
		return "Processing Speed"
	case Reasoning:
		return "Logical Reasoning"
	case Computation:
		return "Computation"
	case Reading:
		return "Reading Comprehension"
	default:
		return string(c)
	}
}
