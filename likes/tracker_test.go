package likes

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTrackerConfirmReconcilesToServer(t *testing.T) {
	tr := NewTracker(10)

	count, err := tr.Begin()
	require.NoError(t, err)
	assert.Equal(t, 11, count)
	assert.Equal(t, Pending, tr.State())

	count, err = tr.Succeed(15)
	require.NoError(t, err)
	assert.Equal(t, 15, count)
	assert.Equal(t, Confirmed, tr.State())
	assert.True(t, tr.Liked())

	_, err = tr.Begin()
	assert.ErrorIs(t, err, ErrAlreadyLiked)
	assert.Equal(t, 15, tr.Count())
}

func TestTrackerRollbackRearms(t *testing.T) {
	tr := NewTracker(3)

	_, err := tr.Begin()
	require.NoError(t, err)
	_, err = tr.Begin()
	assert.ErrorIs(t, err, ErrInFlight)

	count, err := tr.Fail()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	assert.Equal(t, RolledBack, tr.State())

	count, err = tr.Begin()
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestTrackerRejectsStrayTransitions(t *testing.T) {
	tr := NewTracker(-2)
	assert.Equal(t, 0, tr.Count())

	_, err := tr.Succeed(1)
	assert.ErrorIs(t, err, ErrNotPending)
	_, err = tr.Fail()
	assert.ErrorIs(t, err, ErrNotPending)
	assert.Equal(t, Idle, tr.State())
	assert.Equal(t, "idle", tr.State().String())
}
