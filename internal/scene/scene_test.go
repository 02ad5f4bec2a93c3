package scene

import (
	"testing"

	"github.com/UnfriendlySpider/minigames/internal/core"
	"github.com/UnfriendlySpider/minigames/internal/fsm"
)

type testState int

const (
	stateMenu testState = iota
	statePlaying
	statePaused
	stateQuit
)

func testTable() fsm.Table[testState] {
	return fsm.Table[testState]{
		stateMenu:    {statePlaying, stateQuit},
		statePlaying: {statePaused, stateMenu, stateQuit},
		statePaused:  {statePlaying, stateMenu},
		stateQuit:    {},
	}
}

// recordingScene logs lifecycle calls and can request a transition.
type recordingScene struct {
	name    string
	log     *[]string
	next    testState
	hasNext bool
}

func (s *recordingScene) Enter() { *s.log = append(*s.log, s.name+":enter") }
func (s *recordingScene) Exit()  { *s.log = append(*s.log, s.name+":exit") }

func (s *recordingScene) HandleInput(in core.InputFrame) bool {
	*s.log = append(*s.log, s.name+":input")
	return true
}

func (s *recordingScene) Update(dt float64) (testState, bool) {
	*s.log = append(*s.log, s.name+":update")
	if s.hasNext {
		s.hasNext = false
		return s.next, true
	}
	return 0, false
}

func (s *recordingScene) Render(dst *core.Screen) {
	*s.log = append(*s.log, s.name+":render")
}

func newStage(t *testing.T) (*Stage[testState], *[]string, *recordingScene, *recordingScene) {
	t.Helper()
	var log []string
	st := NewStage(fsm.New(stateMenu, testTable()))
	menu := &recordingScene{name: "menu", log: &log}
	play := &recordingScene{name: "play", log: &log}
	st.Register(stateMenu, menu)
	st.Register(statePlaying, play)
	return st, &log, menu, play
}

func TestRegisterActivatesCurrentState(t *testing.T) {
	st, log, menu, _ := newStage(t)

	if st.Active() != Scene[testState](menu) {
		t.Fatal("registering the current state's scene should activate it")
	}
	if len(*log) != 1 || (*log)[0] != "menu:enter" {
		t.Errorf("log = %v, expected [menu:enter]", *log)
	}
}

func TestSceneSwitchOrder(t *testing.T) {
	st, log, _, _ := newStage(t)
	*log = (*log)[:0]

	if !st.Machine().ChangeState(statePlaying) {
		t.Fatal("menu -> playing should succeed")
	}

	want := []string{"menu:exit", "play:enter"}
	if len(*log) != len(want) {
		t.Fatalf("log = %v, expected %v", *log, want)
	}
	for i := range want {
		if (*log)[i] != want[i] {
			t.Fatalf("log = %v, expected %v", *log, want)
		}
	}
}

func TestSharedSceneNotReentered(t *testing.T) {
	st, log, _, play := newStage(t)
	// Paused reuses the playing scene.
	st.Register(statePaused, play)

	st.Machine().ChangeState(statePlaying)
	*log = (*log)[:0]

	st.Machine().ChangeState(statePaused)
	if len(*log) != 0 {
		t.Errorf("switching into a shared scene should not exit/enter it, log = %v", *log)
	}

	st.Machine().ChangeState(statePlaying)
	if len(*log) != 0 {
		t.Errorf("switching back within a shared scene should be silent, log = %v", *log)
	}

	st.Machine().ChangeState(stateMenu)
	if len(*log) != 2 || (*log)[0] != "play:exit" || (*log)[1] != "menu:enter" {
		t.Errorf("leaving the shared scene, log = %v", *log)
	}
}

func TestUpdateAppliesRequestedTransition(t *testing.T) {
	st, _, menu, _ := newStage(t)

	menu.next = statePlaying
	menu.hasNext = true

	if !st.Update(1.0 / 60.0) {
		t.Fatal("Update should apply the scene's requested transition")
	}
	if !st.Machine().IsInState(statePlaying) {
		t.Errorf("machine in %v, expected playing", st.Machine().Current())
	}
}

func TestUpdateIgnoresInvalidRequest(t *testing.T) {
	st, _, menu, _ := newStage(t)

	// Paused is not reachable from menu; the stage forwards the request and
	// the machine rejects it.
	menu.next = statePaused
	menu.hasNext = true

	if st.Update(1.0 / 60.0) {
		t.Error("Update should report false for a rejected transition")
	}
	if !st.Machine().IsInState(stateMenu) {
		t.Errorf("machine in %v, expected menu", st.Machine().Current())
	}
}

func TestDispatchGoesToActiveScene(t *testing.T) {
	st, log, _, _ := newStage(t)
	st.Machine().ChangeState(statePlaying)
	*log = (*log)[:0]

	st.HandleInput(core.NewInputFrame())
	st.Update(1.0 / 60.0)
	st.Render(core.NewScreen(10, 5))

	want := []string{"play:input", "play:update", "play:render"}
	if len(*log) != len(want) {
		t.Fatalf("log = %v, expected %v", *log, want)
	}
	for i := range want {
		if (*log)[i] != want[i] {
			t.Fatalf("log = %v, expected %v", *log, want)
		}
	}
}

func TestStageWithNoSceneForState(t *testing.T) {
	var log []string
	st := NewStage(fsm.New(stateMenu, testTable()))
	play := &recordingScene{name: "play", log: &log}
	st.Register(statePlaying, play)

	// No scene bound to menu: dispatch is a no-op rather than a panic.
	st.HandleInput(core.NewInputFrame())
	st.Update(1.0 / 60.0)
	st.Render(core.NewScreen(10, 5))
	if len(log) != 0 {
		t.Errorf("no scene should have been driven, log = %v", log)
	}

	st.Machine().ChangeState(statePlaying)
	if st.Active() != Scene[testState](play) {
		t.Error("entering a bound state should activate its scene")
	}
}
