package state

// Step identifies one stage of the wizard flow.
type Step int

const (
	ProfileSelection Step = iota
	HostConfig
	HostNamePrompt
	Done
)

// Title returns the display name shown in the title bar.
func (s Step) Title() string {
	switch s {
	case ProfileSelection:
		return "Profile Selection"
	case HostConfig:
		return "Host Configuration"
	case HostNamePrompt:
		return "Enter Host Name"
	case Done:
		return "Done"
	default:
		return "Unknown"
	}
}

// String returns the display name of the step.
func (s Step) String() string {
	return s.Title()
}
