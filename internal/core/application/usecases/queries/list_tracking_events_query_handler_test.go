package queries_test

import (
	"context"
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/dispatch"
	"freight/internal/core/domain/model/kernel"
)

func (suite *DispatchQueriesTestSuite) TestTrackingTrail_EmptyLoad_ReturnsEmptySlice() {
	query, err := queries.NewListTrackingEventsQuery(suite.tenantCtx, kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.trailHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *DispatchQueriesTestSuite) TestTrackingTrail_OrderedByTimestamp() {
	ctx := context.Background()
	loadID := kernel.NewUUID()

	base := time.Date(2025, 6, 5, 10, 0, 0, 0, time.UTC)

	// Insert out of order to prove the handler sorts by event time
	suite.seedEvent(loadID, dispatch.EventDeparture, base.Add(2*time.Hour), "left consignee")
	suite.seedEvent(loadID, dispatch.EventArrival, base, "arrived at consignee")
	suite.seedEvent(loadID, dispatch.EventDelay, base.Add(time.Hour), "dock congestion")

	query, err := queries.NewListTrackingEventsQuery(suite.tenantCtx, loadID)
	suite.Require().NoError(err)

	result, err := suite.trailHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("ARRIVAL", result[0].EventType)
	suite.Equal("DELAY", result[1].EventType)
	suite.Equal("DEPARTURE", result[2].EventType)
	suite.True(result[0].Timestamp.Before(result[1].Timestamp))
	suite.True(result[1].Timestamp.Before(result[2].Timestamp))
}

func (suite *DispatchQueriesTestSuite) TestTrackingTrail_PositionIsOptional() {
	ctx := context.Background()
	loadID := kernel.NewUUID()

	point, err := kernel.NewGeoPoint(34.0522, -118.2437)
	suite.Require().NoError(err)

	withPosition, err := dispatch.NewTrackingEvent(
		kernel.NewUUID(), suite.tenantCtx.TenantID(), loadID, nil,
		dispatch.EventArrival, &point, "", time.Now().UTC(), kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.events.Add(ctx, withPosition))

	suite.seedEvent(loadID, dispatch.EventException, time.Now().UTC().Add(time.Minute), "flat tire")

	query, err := queries.NewListTrackingEventsQuery(suite.tenantCtx, loadID)
	suite.Require().NoError(err)

	result, err := suite.trailHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Require().NotNil(result[0].Latitude)
	suite.InDelta(34.0522, *result[0].Latitude, 0.0001)
	suite.Require().NotNil(result[0].Longitude)
	suite.InDelta(-118.2437, *result[0].Longitude, 0.0001)
	suite.Nil(result[1].Latitude)
	suite.Nil(result[1].Longitude)
}

func (suite *DispatchQueriesTestSuite) TestTrackingTrail_ExcludesOtherTenants() {
	ctx := context.Background()
	loadID := kernel.NewUUID()

	suite.seedEvent(loadID, dispatch.EventArrival, time.Now().UTC(), "")

	otherTenant, err := kernel.NewTenantContext(kernel.NewUUID(), kernel.NewUUID(), kernel.RoleViewer)
	suite.Require().NoError(err)

	query, err := queries.NewListTrackingEventsQuery(otherTenant, loadID)
	suite.Require().NoError(err)

	result, err := suite.trailHandler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Empty(result)
}

func (suite *DispatchQueriesTestSuite) seedEvent(
	loadID kernel.UUID, eventType dispatch.EventType, at time.Time, notes string,
) {
	event, err := dispatch.NewTrackingEvent(
		kernel.NewUUID(), suite.tenantCtx.TenantID(), loadID, nil,
		eventType, nil, notes, at, kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.events.Add(context.Background(), event))
}
