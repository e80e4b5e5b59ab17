package dispatch_test

import (
	"testing"

	"freight/internal/core/domain/model/dispatch"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFromString(t *testing.T) {
	cases := map[string]dispatch.Status{
		"CREATED":     dispatch.StatusCreated,
		"ACCEPTED":    dispatch.StatusAccepted,
		"REJECTED":    dispatch.StatusRejected,
		"IN_PROGRESS": dispatch.StatusInProgress,
		"COMPLETED":   dispatch.StatusCompleted,
	}

	for str, want := range cases {
		t.Run(str, func(t *testing.T) {
			s, err := dispatch.StatusFromString(str)

			require.NoError(t, err)
			assert.Equal(t, want, s)
			assert.Equal(t, str, s.String())
		})
	}

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := dispatch.StatusFromString("PARKED")

		require.Error(t, err)
	})

	t.Run("rejects the unknown sentinel", func(t *testing.T) {
		_, err := dispatch.StatusFromString("UNKNOWN")

		require.Error(t, err)
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.True(t, dispatch.StatusRejected.IsTerminal())
	assert.True(t, dispatch.StatusCompleted.IsTerminal())
	assert.False(t, dispatch.StatusCreated.IsTerminal())
	assert.False(t, dispatch.StatusAccepted.IsTerminal())
	assert.False(t, dispatch.StatusInProgress.IsTerminal())
}

func TestStatus_Record(t *testing.T) {
	t.Run("accepted can progress", func(t *testing.T) {
		next, err := dispatch.StatusAccepted.Record(dispatch.StatusInProgress)

		require.NoError(t, err)
		assert.Equal(t, dispatch.StatusInProgress, next)
	})

	t.Run("in progress can complete", func(t *testing.T) {
		next, err := dispatch.StatusInProgress.Record(dispatch.StatusCompleted)

		require.NoError(t, err)
		assert.Equal(t, dispatch.StatusCompleted, next)
	})

	t.Run("terminal statuses refuse everything", func(t *testing.T) {
		_, err := dispatch.StatusCompleted.Record(dispatch.StatusInProgress)
		require.Error(t, err)

		_, err = dispatch.StatusRejected.Record(dispatch.StatusCompleted)
		require.Error(t, err)
	})

	t.Run("responses are not recordable", func(t *testing.T) {
		_, err := dispatch.StatusCreated.Record(dispatch.StatusAccepted)
		require.Error(t, err)

		_, err = dispatch.StatusCreated.Record(dispatch.StatusRejected)
		require.Error(t, err)
	})
}
