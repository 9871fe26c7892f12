package feed

import (
	"fmt"
)

// ActionState tracks an optimistic remote action through its lifecycle:
// Idle -> Pending -> {Committed | RolledBack}. A settled machine can begin a
// new cycle.
type ActionState int

const (
	ActionIdle ActionState = iota
	ActionPending
	ActionCommitted
	ActionRolledBack
)

func (s ActionState) String() string {
	switch s {
	case ActionIdle:
		return "idle"
	case ActionPending:
		return "pending"
	case ActionCommitted:
		return "committed"
	case ActionRolledBack:
		return "rolled_back"
	}
	return "unknown"
}

type actionFSM struct {
	state ActionState
}

func (f *actionFSM) Begin() error {
	if f.state == ActionPending {
		return fmt.Errorf("action already pending")
	}
	f.state = ActionPending
	return nil
}

func (f *actionFSM) Commit() error {
	if f.state != ActionPending {
		return fmt.Errorf("cannot commit from state %s", f.state)
	}
	f.state = ActionCommitted
	return nil
}

func (f *actionFSM) Rollback() error {
	if f.state != ActionPending {
		return fmt.Errorf("cannot roll back from state %s", f.state)
	}
	f.state = ActionRolledBack
	return nil
}

// Reset returns a settled machine to idle so a new cycle can begin. A
// pending action keeps its state.
func (f *actionFSM) Reset() {
	if f.state != ActionPending {
		f.state = ActionIdle
	}
}

func (f *actionFSM) State() ActionState {
	return f.state
}
