// Package scene layers polymorphic scene objects on top of the fsm machine.
// A Stage owns one scene per state and keeps exactly one active, switching
// scenes through the machine's enter callbacks so that scene activation obeys
// the same ordering guarantees as every other state observer.
package scene

import (
	"github.com/UnfriendlySpider/minigames/internal/core"
	"github.com/UnfriendlySpider/minigames/internal/fsm"
)

// Scene is a handler for one or more game states. Enter and Exit bracket the
// scene's active lifetime; Update may request a transition by returning a
// target state and true.
type Scene[S comparable] interface {
	// Enter is called when the scene becomes active.
	Enter()

	// Exit is called when a different scene takes over.
	Exit()

	// HandleInput consumes the frame's input. It reports whether the input
	// was handled; unhandled input falls through to the game's global keys.
	HandleInput(in core.InputFrame) bool

	// Update advances the scene by dt seconds and may request the next state.
	Update(dt float64) (S, bool)

	// Render draws the scene into the screen buffer.
	Render(dst *core.Screen)
}

// Stage dispatches input, updates, and rendering to the scene bound to the
// machine's current state. Multiple states may share one scene (a pause state
// typically reuses the playing scene); the shared scene is not re-entered
// when moving between its states.
type Stage[S comparable] struct {
	machine *fsm.Machine[S]
	scenes  map[S]Scene[S]
	active  Scene[S]
}

// NewStage creates a stage driving scenes from the given machine.
func NewStage[S comparable](machine *fsm.Machine[S]) *Stage[S] {
	return &Stage[S]{
		machine: machine,
		scenes:  make(map[S]Scene[S]),
	}
}

// Machine returns the underlying state machine.
func (st *Stage[S]) Machine() *fsm.Machine[S] {
	return st.machine
}

// Register binds a scene to a state and wires the machine callback that
// activates it. If the machine is already in the state, the scene is
// activated immediately.
func (st *Stage[S]) Register(state S, sc Scene[S]) {
	st.scenes[state] = sc
	st.machine.OnEnter(state, func() { st.activate(state) })
	if st.machine.IsInState(state) {
		st.activate(state)
	}
}

func (st *Stage[S]) activate(state S) {
	next, ok := st.scenes[state]
	if !ok || next == st.active {
		return
	}
	if st.active != nil {
		st.active.Exit()
	}
	st.active = next
	st.active.Enter()
}

// Active returns the currently active scene, or nil before the first
// activation.
func (st *Stage[S]) Active() Scene[S] {
	return st.active
}

// HandleInput forwards the frame to the active scene.
func (st *Stage[S]) HandleInput(in core.InputFrame) bool {
	if st.active == nil {
		return false
	}
	return st.active.HandleInput(in)
}

// Update advances the active scene and applies any transition it requests.
// It reports whether a requested transition was applied.
func (st *Stage[S]) Update(dt float64) bool {
	if st.active == nil {
		return false
	}
	next, ok := st.active.Update(dt)
	if !ok {
		return false
	}
	if st.machine.IsInState(next) {
		return false
	}
	return st.machine.ChangeState(next)
}

// Render draws the active scene into the screen buffer.
func (st *Stage[S]) Render(dst *core.Screen) {
	if st.active == nil {
		return
	}
	st.active.Render(dst)
}
