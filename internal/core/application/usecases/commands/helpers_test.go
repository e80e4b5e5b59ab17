package commands_test

import (
	"testing"

	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/stretchr/testify/require"
)

func testTenantCtx(t *testing.T) kernel.TenantContext {
	t.Helper()
	tenantCtx, err := kernel.NewTenantContext(kernel.NewUUID(), kernel.NewUUID(), kernel.RoleDispatcher)
	require.NoError(t, err)
	return tenantCtx
}

func testStopParams() []commands.StopParams {
	return []commands.StopParams{
		{LocationID: kernel.NewUUID(), SequenceNumber: 1, StopType: load.StopTypePickup},
		{LocationID: kernel.NewUUID(), SequenceNumber: 2, StopType: load.StopTypeDelivery},
	}
}

func storedLoad(t *testing.T, tenantID kernel.UUID) *load.Load {
	t.Helper()
	pickup, err := load.NewStop(kernel.NewUUID(), kernel.NewUUID(), 1, load.StopTypePickup, nil, nil, "")
	require.NoError(t, err)
	delivery, err := load.NewStop(kernel.NewUUID(), kernel.NewUUID(), 2, load.StopTypeDelivery, nil, nil, "")
	require.NoError(t, err)

	aggregate, err := load.NewLoad(kernel.NewUUID(), tenantID, "ACME-1001",
		load.ModeFTL, load.EquipmentDryVan, []load.Stop{pickup, delivery})
	require.NoError(t, err)
	return aggregate
}
