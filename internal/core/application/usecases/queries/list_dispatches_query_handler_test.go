package queries_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/dispatchrepo"
	"freight/internal/adapters/out/postgres/loadrepo"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DispatchQueriesTestSuite covers the dispatch board and tracking trail read
// models against a real PostgreSQL database.
type DispatchQueriesTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	boardHandler queries.ListDispatchesQueryHandler
	trailHandler queries.ListTrackingEventsQueryHandler
	loads        *loadrepo.GormLoadRepository
	dispatches   *dispatchrepo.GormDispatchRepository
	events       *dispatchrepo.GormTrackingEventRepository
	tenantCtx    kernel.TenantContext
}

func (suite *DispatchQueriesTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&loadrepo.LoadDTO{},
		&loadrepo.StopDTO{},
		&loadrepo.ItemDTO{},
		&loadrepo.AccessorialDTO{},
		&dispatchrepo.DispatchDTO{},
		&dispatchrepo.TrackingEventDTO{},
	)
	suite.Require().NoError(err)

	suite.boardHandler = queries.NewListDispatchesQueryHandler(db)
	suite.trailHandler = queries.NewListTrackingEventsQueryHandler(db)
	suite.loads = loadrepo.NewGormLoadRepository(db, noopTracker{})
	suite.dispatches = dispatchrepo.NewGormDispatchRepository(db, noopTracker{})
	suite.events = dispatchrepo.NewGormTrackingEventRepository(db)
}

func (suite *DispatchQueriesTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DispatchQueriesTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE loads, load_stops, load_items, accessorial_charges, dispatches, tracking_events",
	).Error
	suite.Require().NoError(err)

	tenantCtx, err := kernel.NewTenantContext(kernel.NewUUID(), kernel.NewUUID(), kernel.RoleDispatcher)
	suite.Require().NoError(err)
	suite.tenantCtx = tenantCtx
}

func (suite *DispatchQueriesTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query, err := queries.NewListDispatchesQuery(suite.tenantCtx, "")
	suite.Require().NoError(err)

	result, err := suite.boardHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *DispatchQueriesTestSuite) TestHandle_JoinsLoadReference() {
	seededLoad := suite.seedLoad("BOARD-1001")
	seededDispatch := suite.seedDispatch(seededLoad)

	query, err := queries.NewListDispatchesQuery(suite.tenantCtx, "")
	suite.Require().NoError(err)

	result, err := suite.boardHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(seededDispatch.ID(), result[0].ID)
	suite.Equal(seededLoad.ID(), result[0].LoadID)
	suite.Equal("BOARD-1001", result[0].LoadReferenceNumber)
	suite.Equal("CREATED", result[0].Status)
	suite.Require().NotNil(result[0].DriverID)
	suite.Equal(*seededDispatch.DriverID(), *result[0].DriverID)
	suite.Nil(result[0].CarrierID)
}

func (suite *DispatchQueriesTestSuite) TestHandle_FiltersByStatus() {
	seededLoad := suite.seedLoad("BOARD-2001")
	created := suite.seedDispatch(seededLoad)
	accepted := suite.seedDispatch(seededLoad)

	suite.Require().NoError(accepted.Accept(time.Now().UTC()))
	suite.Require().NoError(suite.dispatches.Update(context.Background(), accepted))

	query, err := queries.NewListDispatchesQuery(suite.tenantCtx, "ACCEPTED")
	suite.Require().NoError(err)

	result, err := suite.boardHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(accepted.ID(), result[0].ID)
	suite.NotEqual(created.ID(), result[0].ID)
	suite.NotNil(result[0].AcceptedAt)
}

func (suite *DispatchQueriesTestSuite) TestHandle_ExcludesOtherTenants() {
	seededLoad := suite.seedLoad("BOARD-3001")
	suite.seedDispatch(seededLoad)

	otherTenant, err := kernel.NewTenantContext(kernel.NewUUID(), kernel.NewUUID(), kernel.RoleDispatcher)
	suite.Require().NoError(err)

	query, err := queries.NewListDispatchesQuery(otherTenant, "")
	suite.Require().NoError(err)

	result, err := suite.boardHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *DispatchQueriesTestSuite) seedLoad(reference string) *load.Load {
	pickup, err := load.NewStop(kernel.NewUUID(), kernel.NewUUID(), 1, load.StopTypePickup, nil, nil, "")
	suite.Require().NoError(err)
	delivery, err := load.NewStop(kernel.NewUUID(), kernel.NewUUID(), 2, load.StopTypeDelivery, nil, nil, "")
	suite.Require().NoError(err)

	seeded, err := load.NewLoad(
		kernel.NewUUID(), suite.tenantCtx.TenantID(), reference, load.ModeFTL,
		load.EquipmentDryVan, []load.Stop{pickup, delivery})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.loads.Add(context.Background(), seeded))
	return seeded
}

func (suite *DispatchQueriesTestSuite) seedDispatch(seededLoad *load.Load) *dispatch.Dispatch {
	driverID := kernel.NewUUID()

	seeded, err := dispatch.NewDispatch(
		kernel.NewUUID(), suite.tenantCtx.TenantID(), seededLoad.ID(), &driverID, nil, nil, nil, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.dispatches.Add(context.Background(), seeded))
	return seeded
}

func TestDispatchQueriesTestSuite(t *testing.T) {
	suite.Run(t, new(DispatchQueriesTestSuite))
}
