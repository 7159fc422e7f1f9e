package tracking

import (
	"fmt"

	"github.com/felixgeelhaar/statekit"
)

// State constants for statekit integration.
// These must remain as untyped string constants for statekit.StateID
// compatibility. Values are kept in sync with the Status constants.
const (
	StatePending    = "Pending"
	StateInProgress = "In Progress"
	StateBlocked    = "Blocked"
	StateCompleted  = "Completed"
)

// init validates at startup that FSM state constants match Status values.
func init() {
	stateMap := map[string]Status{
		StatePending:    StatusPending,
		StateInProgress: StatusInProgress,
		StateBlocked:    StatusBlocked,
		StateCompleted:  StatusCompleted,
	}

	for fsmState, status := range stateMap {
		if fsmState != string(status) {
			panic(fmt.Sprintf("FSM state %q does not match Status %q - constants are out of sync", fsmState, status))
		}
	}
}

// ModuleContext carries state data.
type ModuleContext struct {
	ModuleID string
}

// StatusMachine enforces the module workflow transitions. The validation
// engine drives completions through it so an auto-complete can never skip
// an illegal transition.
type StatusMachine struct {
	interpreter *statekit.Interpreter[ModuleContext]
}

func NewStatusMachine(initialState string, moduleID string) (*StatusMachine, error) {
	builder := statekit.NewMachine[ModuleContext]("module-machine").
		WithInitial(statekit.StateID(initialState)).
		WithContext(ModuleContext{ModuleID: moduleID})

	builder.State(StatePending).
		On("start").Target(StateInProgress).
		On("block").Target(StateBlocked).
		Done()

	builder.State(StateInProgress).
		On("complete").Target(StateCompleted).
		On("block").Target(StateBlocked).
		On("stop").Target(StatePending).
		Done()

	builder.State(StateBlocked).
		On("unblock").Target(StatePending).
		Done()

	builder.State(StateCompleted).
		On("reopen").Target(StatePending).
		Done()

	machine, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build state machine: %w", err)
	}

	interpreter := statekit.NewInterpreter(machine)
	interpreter.Start()

	return &StatusMachine{interpreter: interpreter}, nil
}

// Transition attempts to move the module to a new state.
func (sm *StatusMachine) Transition(event string) error {
	before := sm.Current()
	sm.interpreter.Send(statekit.Event{Type: statekit.EventType(event)})
	after := sm.Current()

	if before != after {
		return nil
	}

	// In statekit, if no transition matches the state stays the same.
	return fmt.Errorf("the action '%s' is not allowed while the module is in the '%s' state", event, before)
}

func (sm *StatusMachine) Current() string {
	return string(sm.interpreter.State().Value)
}

// CurrentStatus returns the current state as a Status value object.
func (sm *StatusMachine) CurrentStatus() Status {
	return Status(sm.Current())
}

// CanTransition checks if the given event is valid for the current state.
func (sm *StatusMachine) CanTransition(event string) bool {
	return sm.CurrentStatus().CanTransitionWith(event)
}
