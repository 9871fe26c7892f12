package feed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActionFSMHappyPath(t *testing.T) {
	var fsm actionFSM
	assert.Equal(t, ActionIdle, fsm.State())

	require.NoError(t, fsm.Begin())
	assert.Equal(t, ActionPending, fsm.State())

	require.NoError(t, fsm.Commit())
	assert.Equal(t, ActionCommitted, fsm.State())
}

func TestActionFSMRollbackPath(t *testing.T) {
	var fsm actionFSM
	require.NoError(t, fsm.Begin())
	require.NoError(t, fsm.Rollback())
	assert.Equal(t, ActionRolledBack, fsm.State())

	// A settled machine can begin a new cycle.
	require.NoError(t, fsm.Begin())
	assert.Equal(t, ActionPending, fsm.State())
}

func TestActionFSMReset(t *testing.T) {
	var fsm actionFSM
	require.NoError(t, fsm.Begin())
	require.NoError(t, fsm.Commit())

	fsm.Reset()
	assert.Equal(t, ActionIdle, fsm.State())

	// Reset never interrupts an in-flight action.
	require.NoError(t, fsm.Begin())
	fsm.Reset()
	assert.Equal(t, ActionPending, fsm.State())
}

func TestActionFSMInvalidTransitions(t *testing.T) {
	var fsm actionFSM
	assert.Error(t, fsm.Commit())
	assert.Error(t, fsm.Rollback())

	require.NoError(t, fsm.Begin())
	assert.Error(t, fsm.Begin())
}
