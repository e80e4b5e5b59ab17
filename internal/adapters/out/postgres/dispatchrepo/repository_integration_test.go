package dispatchrepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/dispatchrepo"
	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// DispatchRepositoryIntegrationTestSuite provides integration tests for
// DispatchRepository and TrackingEventRepository using PostgreSQL containers.
type DispatchRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *dispatchrepo.GormDispatchRepository
	events     *dispatchrepo.GormTrackingEventRepository
	tracker    *MockAggregateTracker
	tenantID   kernel.UUID
}

func (suite *DispatchRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&dispatchrepo.DispatchDTO{},
		&dispatchrepo.TrackingEventDTO{},
	))
}

func (suite *DispatchRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE dispatches, tracking_events").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = dispatchrepo.NewGormDispatchRepository(suite.db, suite.tracker)
	suite.events = dispatchrepo.NewGormTrackingEventRepository(suite.db)
	suite.tenantID = kernel.NewUUID()
}

func (suite *DispatchRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestAdd_ValidDispatch_Success() {
	ctx := context.Background()

	testDispatch := suite.createTestDispatch()
	suite.tracker.On("TrackAggregate", testDispatch.ID(), testDispatch).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testDispatch))

	var count int64
	suite.Require().NoError(suite.db.Model(&dispatchrepo.DispatchDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestGet_ExistingDispatch_ReturnsAggregate() {
	ctx := context.Background()

	original := suite.createTestDispatch()
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, suite.tenantID, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(suite.tenantID, retrieved.TenantID())
	suite.Equal(original.LoadID(), retrieved.LoadID())
	suite.Require().NotNil(retrieved.DriverID())
	suite.Equal(*original.DriverID(), *retrieved.DriverID())
	suite.Nil(retrieved.CarrierID())
	suite.Equal(dispatch.StatusCreated, retrieved.Status())
	suite.Equal("first morning pickup", retrieved.Notes())
	suite.Nil(retrieved.AcceptedAt())
	suite.Nil(retrieved.RejectedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestGet_WrongTenant_ReturnsNotFound() {
	ctx := context.Background()

	testDispatch := suite.createTestDispatch()
	suite.tracker.On("TrackAggregate", testDispatch.ID(), testDispatch).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testDispatch))

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID(), testDispatch.ID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestUpdate_AcceptedDispatch_PersistsTimestamps() {
	ctx := context.Background()

	testDispatch := suite.createTestDispatch()
	suite.tracker.On("TrackAggregate", testDispatch.ID(), testDispatch).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testDispatch))

	acceptedAt := time.Date(2025, 6, 2, 8, 0, 0, 0, time.UTC)
	suite.Require().NoError(testDispatch.Accept(acceptedAt))
	suite.Require().NoError(suite.repository.Update(ctx, testDispatch))

	retrieved, err := suite.repository.Get(ctx, suite.tenantID, testDispatch.ID())
	suite.Require().NoError(err)
	suite.Equal(dispatch.StatusAccepted, retrieved.Status())
	suite.Require().NotNil(retrieved.AcceptedAt())
	suite.True(retrieved.AcceptedAt().Equal(acceptedAt))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestUpdate_NonExistentDispatch_ReturnsNotFound() {
	testDispatch := suite.createTestDispatch()

	err := suite.repository.Update(context.Background(), testDispatch)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestAddTrackingEvent_WithPosition_PersistsCoordinates() {
	ctx := context.Background()

	point, err := kernel.NewGeoPoint(41.8781, -87.6298)
	suite.Require().NoError(err)

	dispatchID := kernel.NewUUID()
	event, err := dispatch.NewTrackingEvent(
		kernel.NewUUID(),
		suite.tenantID,
		kernel.NewUUID(),
		&dispatchID,
		dispatch.EventArrival,
		&point,
		"arrived at dock 4",
		time.Date(2025, 6, 2, 14, 15, 0, 0, time.UTC),
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.events.Add(ctx, event))

	var dto dispatchrepo.TrackingEventDTO
	suite.Require().NoError(suite.db.First(&dto).Error)
	suite.Equal("ARRIVAL", dto.EventType)
	suite.Require().NotNil(dto.Latitude)
	suite.InDelta(41.8781, *dto.Latitude, 0.0001)
	suite.Require().NotNil(dto.Longitude)
	suite.InDelta(-87.6298, *dto.Longitude, 0.0001)
	suite.Equal("arrived at dock 4", dto.Notes)
}

func (suite *DispatchRepositoryIntegrationTestSuite) TestAddTrackingEvent_WithoutPosition_PersistsNulls() {
	ctx := context.Background()

	event, err := dispatch.NewTrackingEvent(
		kernel.NewUUID(),
		suite.tenantID,
		kernel.NewUUID(),
		nil,
		dispatch.EventDelay,
		nil,
		"weather hold",
		time.Now().UTC(),
		kernel.NewUUID(),
	)
	suite.Require().NoError(err)

	suite.Require().NoError(suite.events.Add(ctx, event))

	var dto dispatchrepo.TrackingEventDTO
	suite.Require().NoError(suite.db.First(&dto).Error)
	suite.Nil(dto.Latitude)
	suite.Nil(dto.Longitude)
	suite.Nil(dto.DispatchID)
}

func (suite *DispatchRepositoryIntegrationTestSuite) createTestDispatch() *dispatch.Dispatch {
	driverID := kernel.NewUUID()
	plannedStart := time.Date(2025, 6, 2, 6, 0, 0, 0, time.UTC)

	testDispatch, err := dispatch.NewDispatch(
		kernel.NewUUID(),
		suite.tenantID,
		kernel.NewUUID(),
		&driverID,
		nil,
		&plannedStart,
		nil,
		"first morning pickup",
	)
	suite.Require().NoError(err)
	return testDispatch
}

func TestDispatchRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(DispatchRepositoryIntegrationTestSuite))
}
