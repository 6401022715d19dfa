package game

import (
	"context"
	"log/slog"

	"github.com/samber/oops"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/overworld/internal/telemetry"
)

// HookFunc runs when a mode is entered, updated or exited.
type HookFunc func(ctx context.Context) error

// Hooks are the callbacks attached to one mode. Nil hooks do nothing.
type Hooks struct {
	OnEnter  HookFunc // Runs once each time the mode is pushed or switched to
	OnUpdate HookFunc // Runs every step while the mode is on top of the stack
	OnExit   HookFunc // Runs when the mode is popped or replaced
}

// TransitionKind says how a requested transition changes the mode stack.
type TransitionKind int

const (
	// TransitionPush enters a mode on top of the current one, which is paused.
	TransitionPush TransitionKind = iota
	// TransitionReplace exits the current mode and enters a new one in its place.
	TransitionReplace
	// TransitionPop exits the current mode and resumes the one beneath it.
	TransitionPop
)

// String returns a human-readable transition name.
func (k TransitionKind) String() string {
	switch k {
	case TransitionPush:
		return "push"
	case TransitionReplace:
		return "replace"
	case TransitionPop:
		return "pop"
	default:
		return "unknown"
	}
}

// Transition is a pending change to the mode stack.
type Transition struct {
	Kind TransitionKind
	Mode Mode // Target mode; unused for pops
}

// Machine is a push-down stack of modes.
// Transitions are requested during a step and applied together by Apply.
type Machine struct {
	stack   []Mode
	hooks   map[Mode]Hooks
	pending *Transition
	started bool
	logger  *slog.Logger
}

// NewMachine creates a machine whose stack holds only the initial mode.
func NewMachine(initial Mode, logger *slog.Logger) (*Machine, error) {
	if !initial.Valid() {
		return nil, errUnknownMode(initial)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Machine{
		stack:  []Mode{initial},
		hooks:  make(map[Mode]Hooks),
		logger: logger,
	}, nil
}

// Register attaches hooks to a mode, replacing any registered earlier.
func (m *Machine) Register(mode Mode, hooks Hooks) {
	m.hooks[mode] = hooks
}

// Start runs the initial mode's enter hook. Calling it again does nothing.
func (m *Machine) Start(ctx context.Context) error {
	if m.started {
		return nil
	}
	m.started = true
	return m.enter(ctx, m.Current())
}

// Current returns the mode on top of the stack.
func (m *Machine) Current() Mode {
	return m.stack[len(m.stack)-1]
}

// Depth returns the number of modes on the stack.
func (m *Machine) Depth() int {
	return len(m.stack)
}

// Stack returns a copy of the mode stack, bottom first.
func (m *Machine) Stack() []Mode {
	out := make([]Mode, len(m.stack))
	copy(out, m.stack)
	return out
}

// Pending returns the transition waiting for Apply, if any.
func (m *Machine) Pending() (Transition, bool) {
	if m.pending == nil {
		return Transition{}, false
	}
	return *m.pending, true
}

// RequestTransition asks for mode to be pushed at the end of the step.
func (m *Machine) RequestTransition(mode Mode) error {
	return m.request(Transition{Kind: TransitionPush, Mode: mode})
}

// RequestReplace asks for the current mode to be replaced by mode.
func (m *Machine) RequestReplace(mode Mode) error {
	return m.request(Transition{Kind: TransitionReplace, Mode: mode})
}

// RequestPop asks for the current mode to be popped.
func (m *Machine) RequestPop() error {
	return m.request(Transition{Kind: TransitionPop})
}

// request records t unless a transition is already pending for this step;
// the first request in a step wins.
func (m *Machine) request(t Transition) error {
	if t.Kind != TransitionPop && !t.Mode.Valid() {
		return errUnknownMode(t.Mode)
	}
	if m.pending != nil {
		m.logger.Debug("transition already pending, ignoring request",
			"pending", m.pending.Kind.String(),
			"requested", t.Kind.String(),
			"mode", t.Mode.String())
		return nil
	}
	m.pending = &t
	return nil
}

// discard drops the pending transition of an aborted step.
func (m *Machine) discard() {
	m.pending = nil
}

// Update runs the current mode's update hook.
func (m *Machine) Update(ctx context.Context) error {
	hook := m.hooks[m.Current()].OnUpdate
	if hook == nil {
		return nil
	}
	return hook(ctx)
}

// Apply performs the pending transition, if any, and reports whether the
// stack changed.
func (m *Machine) Apply(ctx context.Context) (bool, error) {
	if m.pending == nil {
		return false, nil
	}
	t := *m.pending
	m.pending = nil

	from := m.Current()
	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "mode.transition")
	defer span.End()
	span.SetAttributes(
		attribute.String("transition", t.Kind.String()),
		attribute.String("from", from.String()),
	)

	switch t.Kind {
	case TransitionPush:
		m.stack = append(m.stack, t.Mode)
		if err := m.enter(ctx, t.Mode); err != nil {
			return true, err
		}
	case TransitionReplace:
		if err := m.exit(ctx, from); err != nil {
			return false, err
		}
		m.stack[len(m.stack)-1] = t.Mode
		if err := m.enter(ctx, t.Mode); err != nil {
			return true, err
		}
	case TransitionPop:
		if len(m.stack) == 1 {
			return false, oops.Code(ErrCodeEmptyModeStack).
				With("mode", from.String()).
				Errorf("cannot pop the last mode")
		}
		if err := m.exit(ctx, from); err != nil {
			return false, err
		}
		m.stack = m.stack[:len(m.stack)-1]
	}

	to := m.Current()
	span.SetAttributes(
		attribute.String("to", to.String()),
		attribute.Int("depth", len(m.stack)),
	)
	m.logger.InfoContext(ctx, "mode changed",
		"transition", t.Kind.String(),
		"from", from.String(),
		"to", to.String(),
		"depth", len(m.stack))
	return true, nil
}

func (m *Machine) enter(ctx context.Context, mode Mode) error {
	if hook := m.hooks[mode].OnEnter; hook != nil {
		return hook(ctx)
	}
	return nil
}

func (m *Machine) exit(ctx context.Context, mode Mode) error {
	if hook := m.hooks[mode].OnExit; hook != nil {
		return hook(ctx)
	}
	return nil
}

func errUnknownMode(mode Mode) error {
	return oops.Code(ErrCodeUnknownMode).
		With("mode", int(mode)).
		Errorf("unknown mode %d", int(mode))
}
