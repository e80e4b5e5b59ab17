package load_test

import (
	"testing"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustStop(t *testing.T, seq int, stopType load.StopType) load.Stop {
	t.Helper()
	s, err := load.NewStop(kernel.NewUUID(), kernel.NewUUID(), seq, stopType, nil, nil, "")
	require.NoError(t, err)
	return s
}

func TestNewStop(t *testing.T) {
	t.Run("creates valid stop", func(t *testing.T) {
		s, err := load.NewStop(kernel.NewUUID(), kernel.NewUUID(), 1, load.StopTypePickup, nil, nil, "dock 4")

		require.NoError(t, err)
		assert.Equal(t, 1, s.SequenceNumber())
		assert.Equal(t, load.StopTypePickup, s.StopType())
		assert.Equal(t, "dock 4", s.Instructions())
	})

	t.Run("rejects non-positive sequence number", func(t *testing.T) {
		_, err := load.NewStop(kernel.NewUUID(), kernel.NewUUID(), 0, load.StopTypePickup, nil, nil, "")
		require.Error(t, err)

		_, err = load.NewStop(kernel.NewUUID(), kernel.NewUUID(), -3, load.StopTypeDelivery, nil, nil, "")
		require.Error(t, err)
	})

	t.Run("rejects missing location", func(t *testing.T) {
		_, err := load.NewStop(kernel.NewUUID(), kernel.UUID{}, 1, load.StopTypePickup, nil, nil, "")

		require.Error(t, err)
	})

	t.Run("rejects unknown stop type", func(t *testing.T) {
		_, err := load.NewStop(kernel.NewUUID(), kernel.NewUUID(), 1, load.StopTypeUnknown, nil, nil, "")

		require.Error(t, err)
	})
}

func TestValidateStopPlan(t *testing.T) {
	t.Run("accepts pickup then delivery", func(t *testing.T) {
		stops := []load.Stop{
			mustStop(t, 1, load.StopTypePickup),
			mustStop(t, 2, load.StopTypeDelivery),
		}

		require.NoError(t, load.ValidateStopPlan(stops))
	})

	t.Run("accepts any permutation of 1..N", func(t *testing.T) {
		stops := []load.Stop{
			mustStop(t, 3, load.StopTypeDelivery),
			mustStop(t, 1, load.StopTypePickup),
			mustStop(t, 4, load.StopTypeDelivery),
			mustStop(t, 2, load.StopTypePickup),
		}

		require.NoError(t, load.ValidateStopPlan(stops))
	})

	t.Run("rejects plan without pickup", func(t *testing.T) {
		stops := []load.Stop{
			mustStop(t, 1, load.StopTypeDelivery),
			mustStop(t, 2, load.StopTypeDelivery),
		}

		require.ErrorIs(t, load.ValidateStopPlan(stops), load.ErrIncompleteRoute)
	})

	t.Run("rejects plan without delivery", func(t *testing.T) {
		stops := []load.Stop{
			mustStop(t, 1, load.StopTypePickup),
		}

		require.ErrorIs(t, load.ValidateStopPlan(stops), load.ErrIncompleteRoute)
	})

	t.Run("rejects empty plan", func(t *testing.T) {
		require.ErrorIs(t, load.ValidateStopPlan(nil), load.ErrIncompleteRoute)
	})

	t.Run("rejects gap in sequence", func(t *testing.T) {
		stops := []load.Stop{
			mustStop(t, 1, load.StopTypePickup),
			mustStop(t, 3, load.StopTypeDelivery),
		}

		require.ErrorIs(t, load.ValidateStopPlan(stops), load.ErrNonContiguousSequence)
	})

	t.Run("rejects sequence not starting at 1", func(t *testing.T) {
		stops := []load.Stop{
			mustStop(t, 2, load.StopTypePickup),
			mustStop(t, 3, load.StopTypeDelivery),
		}

		require.ErrorIs(t, load.ValidateStopPlan(stops), load.ErrNonContiguousSequence)
	})

	t.Run("rejects duplicate sequence numbers", func(t *testing.T) {
		stops := []load.Stop{
			mustStop(t, 1, load.StopTypePickup),
			mustStop(t, 1, load.StopTypeDelivery),
			mustStop(t, 2, load.StopTypeDelivery),
		}

		require.ErrorIs(t, load.ValidateStopPlan(stops), load.ErrNonContiguousSequence)
	})
}
