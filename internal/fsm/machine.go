// Package fsm implements the scene state machine shared by every game in the
// collection: a current/previous state pair, a static table of legal
// transitions, ordered enter/exit callback lists per state, and a bounded
// transition history for diagnostics.
//
// The machine is generic over the state tag type, so each game declares its
// own closed enumeration and transition table and reuses the same mechanics.
// It is single-threaded: all mutation happens on the game loop.
package fsm

import (
	"time"

	"github.com/charmbracelet/log"
)

// Table maps each state to the ordered set of states reachable directly from
// it. A state with no entry (or an empty slice) is terminal: once entered, no
// further transitions succeed. Tables are fixed at construction and never
// mutated at runtime.
type Table[S comparable] map[S][]S

// Callback is a zero-argument side-effecting handler invoked on entering or
// exiting a state. Callbacks may perform I/O (scene setup, save-file writes);
// a panicking callback is isolated, logged, and never aborts the transition.
type Callback func()

// CallbackID identifies a registered callback so it can be removed later.
// Function values are not comparable in Go, so removal is by ID rather than
// by the function itself.
type CallbackID int

// Kind distinguishes enter callbacks from exit callbacks.
type Kind int

const (
	Enter Kind = iota
	Exit
)

// History bounds: the log keeps at most historyCap entries and is trimmed to
// the most recent historyTrim when the cap is exceeded.
const (
	historyCap  = 100
	historyTrim = 50
)

// HistoryEntry records one attempted or successful transition.
type HistoryEntry[S comparable] struct {
	From    S         // Zero value when HasFrom is false
	HasFrom bool      // False only for the construction record
	To      S
	At      time.Time
	Valid   bool // False for rejected attempts
}

type registration[S comparable] struct {
	id CallbackID
	fn Callback
}

// Machine gatekeeps and records all state transitions for one game session
// and notifies interested parties (scenes) of entry and exit.
type Machine[S comparable] struct {
	current  S
	previous S
	hasPrev  bool

	table   Table[S]
	enter   map[S][]registration[S]
	exit    map[S][]registration[S]
	history []HistoryEntry[S]
	nextID  CallbackID
	logger  *log.Logger
	now     func() time.Time
}

// Option configures a Machine at construction.
type Option[S comparable] func(*Machine[S])

// WithLogger sets the logger used for rejected transitions and callback
// failures. The default is the package-level charmbracelet logger.
func WithLogger[S comparable](l *log.Logger) Option[S] {
	return func(m *Machine[S]) { m.logger = l }
}

// WithClock overrides the time source for history timestamps. Tests use this
// for deterministic entries.
func WithClock[S comparable](now func() time.Time) Option[S] {
	return func(m *Machine[S]) { m.now = now }
}

// New creates a machine starting in the given state. The history begins with
// a single record for the initial state.
func New[S comparable](initial S, table Table[S], opts ...Option[S]) *Machine[S] {
	m := &Machine[S]{
		current: initial,
		table:   table,
		enter:   make(map[S][]registration[S]),
		exit:    make(map[S][]registration[S]),
		logger:  log.Default(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.record(HistoryEntry[S]{To: initial, At: m.now(), Valid: true})
	return m
}

// Current returns the current state.
func (m *Machine[S]) Current() S {
	return m.current
}

// Previous returns the state before the last transition, and whether one
// exists yet.
func (m *Machine[S]) Previous() (S, bool) {
	return m.previous, m.hasPrev
}

// IsInState reports whether the current state equals the given state.
func (m *Machine[S]) IsInState(state S) bool {
	return m.current == state
}

// CanTransitionTo reports whether the table permits a transition from the
// current state to target. Pure query, no side effects.
func (m *Machine[S]) CanTransitionTo(target S) bool {
	for _, s := range m.table[m.current] {
		if s == target {
			return true
		}
	}
	return false
}

// ValidTransitions returns a snapshot of the states reachable from the
// current state.
func (m *Machine[S]) ValidTransitions() []S {
	out := make([]S, len(m.table[m.current]))
	copy(out, m.table[m.current])
	return out
}

// ChangeState transitions to target if the table allows it. Exit callbacks
// for the outgoing state run strictly before the state changes; enter
// callbacks for the incoming state run strictly after. Rejected attempts are
// recorded in the history and logged, but run no callbacks and mutate no
// state.
func (m *Machine[S]) ChangeState(target S) bool {
	if !m.CanTransitionTo(target) {
		m.logger.Debug("state transition rejected", "from", m.current, "to", target)
		m.record(HistoryEntry[S]{From: m.current, HasFrom: true, To: target, At: m.now(), Valid: false})
		return false
	}
	m.transition(target, false)
	return true
}

// Reset forces the machine into target unconditionally, bypassing the
// transition table. Exit callbacks for the current state still run (skipped
// when already in target), enter callbacks for target run, and the change is
// recorded. This is an escape hatch for error recovery, not a substitute for
// ChangeState.
func (m *Machine[S]) Reset(target S) {
	m.transition(target, m.current == target)
}

func (m *Machine[S]) transition(target S, skipExit bool) {
	if !skipExit {
		for _, reg := range m.exit[m.current] {
			m.invoke(reg, m.current, Exit)
		}
	}

	m.previous = m.current
	m.hasPrev = true
	m.current = target
	m.record(HistoryEntry[S]{From: m.previous, HasFrom: true, To: target, At: m.now(), Valid: true})

	for _, reg := range m.enter[target] {
		m.invoke(reg, target, Enter)
	}
}

// invoke runs one callback in isolation: a panic is caught and logged so the
// transition and the remaining callbacks proceed. A broken save-on-pause
// handler must never take the game loop down with it.
func (m *Machine[S]) invoke(reg registration[S], state S, kind Kind) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("state callback failed", "state", state, "kind", kindName(kind), "id", reg.id, "err", r)
		}
	}()
	reg.fn()
}

func kindName(k Kind) string {
	if k == Enter {
		return "enter"
	}
	return "exit"
}

// OnEnter appends a callback to the enter list for state, in registration
// order. Duplicate registrations are permitted.
func (m *Machine[S]) OnEnter(state S, fn Callback) CallbackID {
	id := m.nextID
	m.nextID++
	m.enter[state] = append(m.enter[state], registration[S]{id: id, fn: fn})
	return id
}

// OnExit appends a callback to the exit list for state, in registration
// order.
func (m *Machine[S]) OnExit(state S, fn Callback) CallbackID {
	id := m.nextID
	m.nextID++
	m.exit[state] = append(m.exit[state], registration[S]{id: id, fn: fn})
	return id
}

// Remove deletes the first callback registered for state with the given ID
// and kind. It reports whether a callback was removed.
func (m *Machine[S]) Remove(state S, id CallbackID, kind Kind) bool {
	lists := m.enter
	if kind == Exit {
		lists = m.exit
	}
	regs := lists[state]
	for i, reg := range regs {
		if reg.id == id {
			lists[state] = append(regs[:i:i], regs[i+1:]...)
			return true
		}
	}
	return false
}

// History returns a copy of the bounded transition log, oldest first.
func (m *Machine[S]) History() []HistoryEntry[S] {
	out := make([]HistoryEntry[S], len(m.history))
	copy(out, m.history)
	return out
}

func (m *Machine[S]) record(e HistoryEntry[S]) {
	m.history = append(m.history, e)
	if len(m.history) > historyCap {
		trimmed := make([]HistoryEntry[S], historyTrim)
		copy(trimmed, m.history[len(m.history)-historyTrim:])
		m.history = trimmed
	}
}
