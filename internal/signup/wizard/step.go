package wizard

// Step is the visible page of the form.
type Step int

const (
	// StepIdentity collects username, email, phone and role.
	StepIdentity Step = iota
	// StepCredentials collects the password and its confirmation.
	StepCredentials
)

// String returns a stable name for logs and markup.
func (s Step) String() string {
	switch s {
	case StepIdentity:
		return "identity"
	case StepCredentials:
		return "credentials"
	default:
		return "unknown"
	}
}

// Offsets returns the horizontal translate percentages of the identity and
// credentials panels for step. Renderers animate between these values.
func (s Step) Offsets() (identity int, credentials int) {
	n := int(s)
	return n * -100, (1 - n) * 100
}
