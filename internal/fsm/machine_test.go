package fsm

import (
	"testing"
	"time"
)

// Test states mirroring the shape every game shares.
type testState int

const (
	stateMenu testState = iota
	statePlaying
	statePaused
	stateGameOver
	stateQuit
)

func (s testState) String() string {
	switch s {
	case stateMenu:
		return "menu"
	case statePlaying:
		return "playing"
	case statePaused:
		return "paused"
	case stateGameOver:
		return "game_over"
	case stateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

func testTable() Table[testState] {
	return Table[testState]{
		stateMenu:     {statePlaying, stateQuit},
		statePlaying:  {statePaused, stateGameOver, stateMenu, stateQuit},
		statePaused:   {statePlaying, stateMenu, stateQuit},
		stateGameOver: {stateMenu, statePlaying, stateQuit},
		stateQuit:     {},
	}
}

func newTestMachine(t *testing.T) *Machine[testState] {
	t.Helper()
	return New(stateMenu, testTable())
}

func TestNewMachine(t *testing.T) {
	m := newTestMachine(t)

	if m.Current() != stateMenu {
		t.Errorf("Current() = %v, expected menu", m.Current())
	}
	if _, ok := m.Previous(); ok {
		t.Error("Previous() should not exist before the first transition")
	}

	history := m.History()
	if len(history) != 1 {
		t.Fatalf("expected 1 initial history entry, got %d", len(history))
	}
	if history[0].HasFrom {
		t.Error("initial history entry should have no from-state")
	}
	if history[0].To != stateMenu || !history[0].Valid {
		t.Errorf("initial entry = %+v, expected valid entry to menu", history[0])
	}
}

func TestChangeStateFollowsTable(t *testing.T) {
	tests := []struct {
		name    string
		path    []testState // transitions applied before the attempt
		target  testState
		want    bool
		current testState // expected current state afterwards
	}{
		{
			name:    "menu to playing is allowed",
			target:  statePlaying,
			want:    true,
			current: statePlaying,
		},
		{
			name:    "menu to paused is rejected",
			target:  statePaused,
			want:    false,
			current: stateMenu,
		},
		{
			name:    "playing back to menu is allowed",
			path:    []testState{statePlaying},
			target:  stateMenu,
			want:    true,
			current: stateMenu,
		},
		{
			name:    "playing to paused is allowed",
			path:    []testState{statePlaying},
			target:  statePaused,
			want:    true,
			current: statePaused,
		},
		{
			name:    "game over to playing is allowed",
			path:    []testState{statePlaying, stateGameOver},
			target:  statePlaying,
			want:    true,
			current: statePlaying,
		},
		{
			name:    "self transition is rejected when not in table",
			path:    []testState{statePlaying},
			target:  statePlaying,
			want:    false,
			current: statePlaying,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMachine(t)
			for _, s := range tc.path {
				if !m.ChangeState(s) {
					t.Fatalf("setup transition to %v failed", s)
				}
			}

			got := m.ChangeState(tc.target)
			if got != tc.want {
				t.Errorf("ChangeState(%v) = %v, expected %v", tc.target, got, tc.want)
			}
			if m.Current() != tc.current {
				t.Errorf("Current() = %v, expected %v", m.Current(), tc.current)
			}
		})
	}
}

func TestChangeStateUpdatesPrevious(t *testing.T) {
	m := newTestMachine(t)

	m.ChangeState(statePlaying)
	prev, ok := m.Previous()
	if !ok || prev != stateMenu {
		t.Errorf("Previous() = %v, %v; expected menu, true", prev, ok)
	}

	m.ChangeState(statePaused)
	prev, _ = m.Previous()
	if prev != statePlaying {
		t.Errorf("Previous() = %v, expected playing", prev)
	}

	// A rejected attempt must not touch previous.
	m.ChangeState(stateGameOver) // paused -> game over is not in the table
	prev, _ = m.Previous()
	if prev != statePlaying {
		t.Errorf("Previous() after rejected attempt = %v, expected playing", prev)
	}
}

func TestCanTransitionToIsPure(t *testing.T) {
	m := newTestMachine(t)

	calls := 0
	m.OnExit(stateMenu, func() { calls++ })
	m.OnEnter(statePlaying, func() { calls++ })

	if !m.CanTransitionTo(statePlaying) {
		t.Error("CanTransitionTo(playing) should be true from menu")
	}
	if m.CanTransitionTo(statePaused) {
		t.Error("CanTransitionTo(paused) should be false from menu")
	}
	if calls != 0 {
		t.Errorf("CanTransitionTo ran %d callbacks, expected none", calls)
	}
	if len(m.History()) != 1 {
		t.Error("CanTransitionTo should not record history")
	}
}

func TestTerminalStateIsSink(t *testing.T) {
	m := newTestMachine(t)
	m.ChangeState(statePlaying)
	if !m.ChangeState(stateQuit) {
		t.Fatal("playing -> quit should succeed")
	}

	for _, target := range []testState{stateMenu, statePlaying, statePaused, stateGameOver, stateQuit} {
		if m.CanTransitionTo(target) {
			t.Errorf("CanTransitionTo(%v) from quit should be false", target)
		}
		if m.ChangeState(target) {
			t.Errorf("ChangeState(%v) from quit should fail", target)
		}
	}
	if m.Current() != stateQuit {
		t.Errorf("Current() = %v, expected quit", m.Current())
	}
	if len(m.ValidTransitions()) != 0 {
		t.Error("quit should have no valid transitions")
	}
}

func TestCallbackOrder(t *testing.T) {
	m := newTestMachine(t)
	m.ChangeState(statePlaying)

	var order []string
	m.OnExit(statePlaying, func() {
		order = append(order, "exit")
		if m.Current() != statePlaying {
			t.Error("exit callback must run before the state changes")
		}
	})
	m.OnEnter(statePaused, func() {
		order = append(order, "enter")
		if m.Current() != statePaused {
			t.Error("enter callback must run after the state changes")
		}
	})

	if !m.ChangeState(statePaused) {
		t.Fatal("playing -> paused should succeed")
	}

	if len(order) != 2 || order[0] != "exit" || order[1] != "enter" {
		t.Errorf("callback order = %v, expected [exit enter]", order)
	}
}

func TestCallbacksRunInRegistrationOrder(t *testing.T) {
	m := newTestMachine(t)

	var order []int
	for i := 0; i < 4; i++ {
		i := i
		m.OnEnter(statePlaying, func() { order = append(order, i) })
	}

	m.ChangeState(statePlaying)

	for i, got := range order {
		if got != i {
			t.Fatalf("callback order = %v, expected ascending registration order", order)
		}
	}
	if len(order) != 4 {
		t.Fatalf("expected 4 callbacks to run, got %d", len(order))
	}
}

func TestCallbackPanicIsIsolated(t *testing.T) {
	m := newTestMachine(t)
	m.ChangeState(statePlaying)

	ran := false
	m.OnExit(statePlaying, func() { panic("save failed") })
	m.OnExit(statePlaying, func() { ran = true })

	entered := false
	m.OnEnter(statePaused, func() { entered = true })

	// The panicking exit callback must not abort the transition, the later
	// exit callback, or the enter callbacks.
	if !m.ChangeState(statePaused) {
		t.Fatal("transition should complete despite a panicking callback")
	}
	if m.Current() != statePaused {
		t.Errorf("Current() = %v, expected paused", m.Current())
	}
	if !ran {
		t.Error("callbacks registered after the panicking one should still run")
	}
	if !entered {
		t.Error("enter callbacks should still run")
	}
}

func TestRejectedTransitionRunsNoCallbacks(t *testing.T) {
	m := newTestMachine(t)

	calls := 0
	m.OnExit(stateMenu, func() { calls++ })
	m.OnEnter(statePaused, func() { calls++ })

	if m.ChangeState(statePaused) {
		t.Fatal("menu -> paused should be rejected")
	}
	if calls != 0 {
		t.Errorf("rejected transition ran %d callbacks, expected none", calls)
	}

	history := m.History()
	last := history[len(history)-1]
	if last.Valid || last.To != statePaused {
		t.Errorf("rejected attempt should be recorded invalid, got %+v", last)
	}
}

func TestRemoveCallback(t *testing.T) {
	m := newTestMachine(t)

	var order []string
	keepID := m.OnEnter(statePlaying, func() { order = append(order, "keep") })
	dropID := m.OnEnter(statePlaying, func() { order = append(order, "drop") })

	if !m.Remove(statePlaying, dropID, Enter) {
		t.Fatal("Remove should report success for a registered callback")
	}
	if m.Remove(statePlaying, dropID, Enter) {
		t.Error("Remove should fail for an already removed callback")
	}
	if m.Remove(statePlaying, keepID, Exit) {
		t.Error("Remove with the wrong kind should not match")
	}

	m.ChangeState(statePlaying)
	if len(order) != 1 || order[0] != "keep" {
		t.Errorf("callbacks after removal = %v, expected [keep]", order)
	}
}

func TestHistoryBounded(t *testing.T) {
	now := time.Unix(0, 0)
	m := New(stateMenu, testTable(), WithClock[testState](func() time.Time { return now }))

	// Bounce between playing and paused far past the cap.
	m.ChangeState(statePlaying)
	for i := 0; i < 300; i++ {
		now = now.Add(time.Second)
		if i%2 == 0 {
			m.ChangeState(statePaused)
		} else {
			m.ChangeState(statePlaying)
		}
		if n := len(m.History()); n > historyCap {
			t.Fatalf("history length %d exceeds cap %d", n, historyCap)
		}
	}

	history := m.History()
	if len(history) > historyCap {
		t.Fatalf("final history length %d exceeds cap", len(history))
	}
	// Oldest entries are dropped first: the construction record is long gone
	// and entries remain in chronological order.
	if !history[0].HasFrom {
		t.Error("initial entry should have been trimmed away")
	}
	for i := 1; i < len(history); i++ {
		if history[i].At.Before(history[i-1].At) {
			t.Fatal("history entries out of chronological order")
		}
	}
}

func TestResetForcesTarget(t *testing.T) {
	tests := []struct {
		name string
		path []testState
	}{
		{name: "from menu itself"},
		{name: "from playing", path: []testState{statePlaying}},
		{name: "from paused", path: []testState{statePlaying, statePaused}},
		{name: "from terminal quit", path: []testState{stateQuit}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMachine(t)
			for _, s := range tc.path {
				m.ChangeState(s)
			}

			entered := false
			m.OnEnter(stateMenu, func() { entered = true })

			m.Reset(stateMenu)
			if m.Current() != stateMenu {
				t.Errorf("Current() after Reset = %v, expected menu", m.Current())
			}
			if !entered {
				t.Error("Reset should run enter callbacks for the target")
			}
		})
	}
}

func TestResetSkipsExitWhenAlreadyThere(t *testing.T) {
	m := newTestMachine(t)

	exits := 0
	m.OnExit(stateMenu, func() { exits++ })

	m.Reset(stateMenu)
	if exits != 0 {
		t.Errorf("Reset to the current state ran %d exit callbacks, expected none", exits)
	}

	m.ChangeState(statePlaying)
	exitsPlaying := 0
	m.OnExit(statePlaying, func() { exitsPlaying++ })
	m.Reset(stateMenu)
	if exitsPlaying != 1 {
		t.Errorf("Reset from playing ran %d exit callbacks, expected 1", exitsPlaying)
	}
}

func TestValidTransitionsSnapshot(t *testing.T) {
	m := newTestMachine(t)
	m.ChangeState(statePlaying)

	got := m.ValidTransitions()
	want := []testState{statePaused, stateGameOver, stateMenu, stateQuit}
	if len(got) != len(want) {
		t.Fatalf("ValidTransitions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ValidTransitions() = %v, expected %v", got, want)
		}
	}

	// Mutating the snapshot must not affect the machine.
	got[0] = stateQuit
	again := m.ValidTransitions()
	if again[0] != statePaused {
		t.Error("ValidTransitions must return a copy")
	}
}

func TestIsInState(t *testing.T) {
	m := newTestMachine(t)
	if !m.IsInState(stateMenu) {
		t.Error("IsInState(menu) should be true initially")
	}
	m.ChangeState(statePlaying)
	if m.IsInState(stateMenu) || !m.IsInState(statePlaying) {
		t.Error("IsInState should track the current state")
	}
}
