// Package state holds the wizard's step machine: the current step, the
// list selections and the new-host name buffer.
package state

import "errors"

const (
	// NewHostLabel is the sentinel entry appended to the host list.
	NewHostLabel = "Create new host..."

	// UnnamedHostLabel is shown in the summary when a new host was left unnamed.
	UnnamedHostLabel = "<unnamed host>"
)

// ErrNoProfiles is returned by New when there is nothing to choose from.
var ErrNoProfiles = errors.New("at least one profile is required")

// Selection is a snapshot of the user's choices.
type Selection struct {
	Profile string
	Host    string
	NewHost bool
}

// Wizard is the mutable record the loop renders and the key handlers mutate.
// All operations are total: out-of-range moves saturate and moves that make
// no sense for the current step are ignored.
type Wizard struct {
	step Step

	profiles   []string
	profileIdx int

	hosts   []string // last entry is always NewHostLabel
	hostIdx int

	// newHost records which branch was taken out of HostConfig and decides
	// where Retreat goes from Done.
	newHost  bool
	hostName []rune
}

// New creates a wizard positioned on the first step with the first
// profile and host highlighted. The sentinel entry is appended to hosts.
func New(profiles, hosts []string) (*Wizard, error) {
	if len(profiles) == 0 {
		return nil, ErrNoProfiles
	}

	p := make([]string, len(profiles))
	copy(p, profiles)

	h := make([]string, 0, len(hosts)+1)
	h = append(h, hosts...)
	h = append(h, NewHostLabel)

	return &Wizard{
		step:     ProfileSelection,
		profiles: p,
		hosts:    h,
	}, nil
}

// Step returns the active step.
func (w *Wizard) Step() Step { return w.step }

// Profiles returns the profile choices.
func (w *Wizard) Profiles() []string { return w.profiles }

// Hosts returns the host choices, sentinel included.
func (w *Wizard) Hosts() []string { return w.hosts }

// ProfileIndex returns the highlighted profile index.
func (w *Wizard) ProfileIndex() int { return w.profileIdx }

// HostIndex returns the highlighted host index.
func (w *Wizard) HostIndex() int { return w.hostIdx }

// IsNewHost reports whether the user chose to create a new host.
func (w *Wizard) IsNewHost() bool { return w.newHost }

// HostName returns the new-host name typed so far.
func (w *Wizard) HostName() string { return string(w.hostName) }

// IsSentinel reports whether i is the "create new host" entry.
func (w *Wizard) IsSentinel(i int) bool { return i == len(w.hosts)-1 }

// MoveUp moves the highlighted entry of the active list up by one.
func (w *Wizard) MoveUp() {
	switch w.step {
	case ProfileSelection:
		if w.profileIdx > 0 {
			w.profileIdx--
		}
	case HostConfig:
		if w.hostIdx > 0 {
			w.hostIdx--
		}
	}
}

// MoveDown moves the highlighted entry of the active list down by one.
func (w *Wizard) MoveDown() {
	switch w.step {
	case ProfileSelection:
		if w.profileIdx+1 < len(w.profiles) {
			w.profileIdx++
		}
	case HostConfig:
		if w.hostIdx+1 < len(w.hosts) {
			w.hostIdx++
		}
	}
}

// Advance moves forward. Leaving HostConfig branches on the sentinel:
// the new-host path goes through HostNamePrompt, an existing host goes
// straight to Done.
func (w *Wizard) Advance() {
	switch w.step {
	case ProfileSelection:
		w.step = HostConfig
	case HostConfig:
		if w.IsSentinel(w.hostIdx) {
			w.newHost = true
			w.hostName = w.hostName[:0]
			w.step = HostNamePrompt
		} else {
			w.newHost = false
			w.step = Done
		}
	case HostNamePrompt:
		w.step = Done
	}
}

// Retreat moves backward. From Done the predecessor depends on the branch
// taken out of HostConfig.
func (w *Wizard) Retreat() {
	switch w.step {
	case HostConfig:
		w.step = ProfileSelection
	case HostNamePrompt:
		w.step = HostConfig
	case Done:
		if w.newHost {
			w.step = HostNamePrompt
		} else {
			w.step = HostConfig
		}
	}
}

// AppendChar adds r to the name buffer while the name prompt is active.
func (w *Wizard) AppendChar(r rune) {
	if w.step != HostNamePrompt {
		return
	}
	w.hostName = append(w.hostName, r)
}

// Backspace drops the last character of the name buffer while the name
// prompt is active.
func (w *Wizard) Backspace() {
	if w.step != HostNamePrompt || len(w.hostName) == 0 {
		return
	}
	w.hostName = w.hostName[:len(w.hostName)-1]
}

// SummaryProfileLabel returns the highlighted profile.
func (w *Wizard) SummaryProfileLabel() string {
	return w.profiles[w.profileIdx]
}

// SummaryHostLabel returns the host shown in the summary.
func (w *Wizard) SummaryHostLabel() string {
	if w.newHost {
		if len(w.hostName) == 0 {
			return UnnamedHostLabel
		}
		return string(w.hostName)
	}
	return w.hosts[w.hostIdx]
}

// Selection returns a snapshot of the current choices.
func (w *Wizard) Selection() Selection {
	return Selection{
		Profile: w.SummaryProfileLabel(),
		Host:    w.SummaryHostLabel(),
		NewHost: w.newHost,
	}
}
