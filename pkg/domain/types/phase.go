package types

// Phase represents the conversation mode. It is never stored on the
// server; it is always recomputed from profile completeness per request.
type Phase string

const (
	// PhaseCollectingInfo is active while profile fields are still missing
	PhaseCollectingInfo Phase = "collecting_info"
	// PhaseQA is active once the profile is complete
	PhaseQA Phase = "qa"
)

// IsValid checks if the phase is a known value
func (p Phase) IsValid() bool {
	switch p {
	case PhaseCollectingInfo, PhaseQA:
		return true
	default:
		return false
	}
}

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}
