package state

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	testProfiles = []string{"desktop (nix-dots)", "server (nixos-server)"}
	testHosts    = []string{"carbon", "helium"}
)

func newTestWizard(t *testing.T) *Wizard {
	t.Helper()
	w, err := New(testProfiles, testHosts)
	require.NoError(t, err)
	return w
}

func TestNew_InitialState(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)

	require.Equal(t, ProfileSelection, w.Step())
	require.Equal(t, 0, w.ProfileIndex())
	require.Equal(t, 0, w.HostIndex())
	require.False(t, w.IsNewHost())
	require.Empty(t, w.HostName())
	require.Equal(t, []string{"carbon", "helium", NewHostLabel}, w.Hosts())
	require.True(t, w.IsSentinel(2))
	require.False(t, w.IsSentinel(0))
}

func TestNew_NoProfiles(t *testing.T) {
	t.Parallel()

	w, err := New(nil, testHosts)
	require.ErrorIs(t, err, ErrNoProfiles)
	require.Nil(t, w)
}

func TestNew_NoHostsLeavesOnlySentinel(t *testing.T) {
	t.Parallel()

	w, err := New(testProfiles, nil)
	require.NoError(t, err)
	require.Equal(t, []string{NewHostLabel}, w.Hosts())

	w.Advance()
	w.Advance()
	require.Equal(t, HostNamePrompt, w.Step())
	require.True(t, w.IsNewHost())
}

func TestNew_CopiesInput(t *testing.T) {
	t.Parallel()

	profiles := []string{"a", "b"}
	w, err := New(profiles, testHosts)
	require.NoError(t, err)

	profiles[0] = "changed"
	require.Equal(t, "a", w.SummaryProfileLabel())
}

func TestMove_StaysInBounds(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)

	// Any run of moves keeps both indices in range.
	moves := []func(){w.MoveUp, w.MoveDown, w.MoveDown, w.MoveDown, w.MoveUp, w.MoveUp, w.MoveUp, w.MoveDown}
	for _, mv := range moves {
		mv()
		require.GreaterOrEqual(t, w.ProfileIndex(), 0)
		require.Less(t, w.ProfileIndex(), len(w.Profiles()))
	}

	w.Advance()
	for i := 0; i < 10; i++ {
		w.MoveDown()
		require.Less(t, w.HostIndex(), len(w.Hosts()))
	}
	require.Equal(t, 2, w.HostIndex())
	for i := 0; i < 10; i++ {
		w.MoveUp()
		require.GreaterOrEqual(t, w.HostIndex(), 0)
	}
	require.Equal(t, 0, w.HostIndex())
}

func TestMove_NoWraparound(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	w.MoveUp()
	require.Equal(t, 0, w.ProfileIndex())

	w.MoveDown()
	w.MoveDown()
	require.Equal(t, 1, w.ProfileIndex())
}

func TestMove_OnlyAffectsActiveList(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	w.MoveDown()
	w.Advance()
	w.MoveDown()

	require.Equal(t, 1, w.ProfileIndex())
	require.Equal(t, 1, w.HostIndex())

	// Moves on Done are ignored.
	w.Advance()
	require.Equal(t, Done, w.Step())
	w.MoveUp()
	require.Equal(t, 1, w.HostIndex())
}

func TestAdvanceRetreat_ProfileToHost(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	w.Advance()
	require.Equal(t, HostConfig, w.Step())

	w.Retreat()
	require.Equal(t, ProfileSelection, w.Step())

	// Retreat on the first step is a no-op.
	w.Retreat()
	require.Equal(t, ProfileSelection, w.Step())
}

func TestAdvance_HostConfigBranches(t *testing.T) {
	tests := []struct {
		name     string
		downs    int
		wantStep Step
		wantNew  bool
	}{
		{name: "first host", downs: 0, wantStep: Done, wantNew: false},
		{name: "second host", downs: 1, wantStep: Done, wantNew: false},
		{name: "sentinel", downs: 2, wantStep: HostNamePrompt, wantNew: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWizard(t)
			w.Advance()
			for i := 0; i < tt.downs; i++ {
				w.MoveDown()
			}
			w.Advance()

			require.Equal(t, tt.wantStep, w.Step())
			require.Equal(t, tt.wantNew, w.IsNewHost())
		})
	}
}

func TestAdvance_DoneIsTerminal(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	w.Advance()
	w.Advance()
	require.Equal(t, Done, w.Step())

	w.Advance()
	require.Equal(t, Done, w.Step())
}

func TestRetreat_FromDoneFollowsBranch(t *testing.T) {
	t.Parallel()

	t.Run("existing host", func(t *testing.T) {
		w := newTestWizard(t)
		w.Advance()
		w.Advance()

		for i := 0; i < 3; i++ {
			w.Retreat()
			require.Equal(t, HostConfig, w.Step())
			w.Advance()
			require.Equal(t, Done, w.Step())
		}
	})

	t.Run("new host", func(t *testing.T) {
		w := newTestWizard(t)
		w.Advance()
		w.MoveDown()
		w.MoveDown()
		w.Advance()
		w.Advance()

		for i := 0; i < 3; i++ {
			require.Equal(t, Done, w.Step())
			w.Retreat()
			require.Equal(t, HostNamePrompt, w.Step())
			w.Advance()
		}
	})

	t.Run("switching from new to existing", func(t *testing.T) {
		w := newTestWizard(t)
		w.Advance()
		w.MoveDown()
		w.MoveDown()
		w.Advance()
		w.Retreat()
		w.MoveUp()
		w.Advance()

		require.Equal(t, Done, w.Step())
		require.False(t, w.IsNewHost())
		w.Retreat()
		require.Equal(t, HostConfig, w.Step())
	})
}

func TestNameBuffer(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)

	// Typing outside the prompt is ignored.
	w.AppendChar('x')
	require.Empty(t, w.HostName())

	w.Advance()
	w.MoveDown()
	w.MoveDown()
	w.Advance()
	require.Equal(t, HostNamePrompt, w.Step())

	w.Backspace()
	require.Empty(t, w.HostName())

	for _, r := range "nöde" {
		w.AppendChar(r)
	}
	require.Equal(t, "nöde", w.HostName())

	for i := 0; i < 4; i++ {
		w.Backspace()
	}
	require.Empty(t, w.HostName())

	w.Backspace()
	require.Empty(t, w.HostName())
}

func TestNameBuffer_ClearedOnReentry(t *testing.T) {
	t.Parallel()

	w := newTestWizard(t)
	w.Advance()
	w.MoveDown()
	w.MoveDown()
	w.Advance()
	w.AppendChar('a')

	w.Retreat()
	w.Advance()
	require.Equal(t, HostNamePrompt, w.Step())
	require.Empty(t, w.HostName())
}

func TestSummaryHostLabel(t *testing.T) {
	t.Parallel()

	t.Run("named new host", func(t *testing.T) {
		w := newTestWizard(t)
		w.MoveDown()
		w.Advance()
		w.MoveDown()
		w.MoveDown()
		w.Advance()
		w.AppendChar('h')
		w.AppendChar('i')
		w.Advance()

		require.Equal(t, Done, w.Step())
		require.Equal(t, "hi", w.SummaryHostLabel())
		require.Equal(t, "server (nixos-server)", w.SummaryProfileLabel())
		require.Equal(t, Selection{Profile: "server (nixos-server)", Host: "hi", NewHost: true}, w.Selection())
	})

	t.Run("unnamed new host", func(t *testing.T) {
		w := newTestWizard(t)
		w.Advance()
		w.MoveDown()
		w.MoveDown()
		w.Advance()
		w.Advance()

		require.Equal(t, Done, w.Step())
		require.Equal(t, UnnamedHostLabel, w.SummaryHostLabel())
	})

	t.Run("existing host", func(t *testing.T) {
		w := newTestWizard(t)
		w.Advance()
		w.Advance()

		require.Equal(t, Done, w.Step())
		require.False(t, w.IsNewHost())
		require.Equal(t, "carbon", w.SummaryHostLabel())
	})
}

func TestStepTitles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		step Step
		want string
	}{
		{ProfileSelection, "Profile Selection"},
		{HostConfig, "Host Configuration"},
		{HostNamePrompt, "Enter Host Name"},
		{Done, "Done"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.step.Title())
		require.Equal(t, tt.want, tt.step.String())
	}
	require.Equal(t, "Unknown", Step(42).Title())
}
