package queries_test

import (
	"context"
	"time"

	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/load"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

func (suite *LoadQueriesTestSuite) TestGetLoad_FullDetail_ReturnsChildren() {
	ctx := context.Background()

	seeded := suite.seedLoad("REF-5001", load.ModeFTL, load.StatusDraft)

	weight := 800
	item, err := load.NewItem(kernel.NewUUID(), "machine parts", &weight, nil, nil, "133-3")
	suite.Require().NoError(err)
	seeded.AttachItems([]load.Item{item})

	charge, err := load.NewAccessorialCharge(
		kernel.NewUUID(), load.AccessorialDetention, decimal.NewFromInt(120), "2h at shipper")
	suite.Require().NoError(err)
	seeded.AttachAccessorials([]load.AccessorialCharge{charge})
	suite.Require().NoError(suite.repository.Update(ctx, seeded))

	doc, err := load.NewDocument(
		kernel.NewUUID(), load.DocumentBOL, "bol.pdf", "docs/bol.pdf", kernel.NewUUID())
	suite.Require().NoError(err)
	suite.Require().NoError(
		suite.repository.AddDocument(ctx, suite.tenantCtx.TenantID(), seeded.ID(), doc))

	query, err := queries.NewGetLoadQuery(suite.tenantCtx, seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Equal(seeded.ID(), result.ID)
	suite.Equal("REF-5001", result.ReferenceNumber)
	suite.Equal("FTL", result.Mode)
	suite.Equal("DRY_VAN", result.EquipmentType)
	suite.Equal("DRAFT", result.Status)
	suite.Equal("USD", result.Currency)

	suite.Require().Len(result.Stops, 2)
	suite.Equal("PICKUP", result.Stops[0].StopType)
	suite.Equal(1, result.Stops[0].SequenceNumber)
	suite.Equal("DELIVERY", result.Stops[1].StopType)

	suite.Require().Len(result.Items, 1)
	suite.Equal("machine parts", result.Items[0].Description)
	suite.Require().NotNil(result.Items[0].Weight)
	suite.Equal(800, *result.Items[0].Weight)
	suite.Equal("133-3", result.Items[0].NMFCCode)

	suite.Require().Len(result.Accessorials, 1)
	suite.Equal("DETENTION", result.Accessorials[0].ChargeType)
	suite.True(result.Accessorials[0].Amount.Equal(decimal.NewFromInt(120)))

	suite.Require().Len(result.Documents, 1)
	suite.Equal("BOL", result.Documents[0].DocType)
	suite.Equal("bol.pdf", result.Documents[0].FileName)
}

func (suite *LoadQueriesTestSuite) TestGetLoad_ScheduledTimes_RoundTrip() {
	ctx := context.Background()

	arrival := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)
	departure := time.Date(2025, 6, 10, 9, 30, 0, 0, time.UTC)

	pickup, err := load.NewStop(
		kernel.NewUUID(), kernel.NewUUID(), 1, load.StopTypePickup, &arrival, &departure, "dock 12")
	suite.Require().NoError(err)
	delivery, err := load.NewStop(
		kernel.NewUUID(), kernel.NewUUID(), 2, load.StopTypeDelivery, nil, nil, "")
	suite.Require().NoError(err)

	seeded, err := load.NewLoad(
		kernel.NewUUID(), suite.tenantCtx.TenantID(), "REF-5002", load.ModeFTL,
		load.EquipmentReefer, []load.Stop{pickup, delivery})
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Add(ctx, seeded))

	query, err := queries.NewGetLoadQuery(suite.tenantCtx, seeded.ID())
	suite.Require().NoError(err)

	result, err := suite.getHandler.Handle(ctx, query)
	suite.Require().NoError(err)

	suite.Require().Len(result.Stops, 2)
	suite.Require().NotNil(result.Stops[0].ScheduledArrival)
	suite.True(result.Stops[0].ScheduledArrival.Equal(arrival))
	suite.Require().NotNil(result.Stops[0].ScheduledDeparture)
	suite.True(result.Stops[0].ScheduledDeparture.Equal(departure))
	suite.Equal("dock 12", result.Stops[0].Instructions)
	suite.Nil(result.Stops[1].ScheduledArrival)
}

func (suite *LoadQueriesTestSuite) TestGetLoad_NonExistent_ReturnsNotFound() {
	query, err := queries.NewGetLoadQuery(suite.tenantCtx, kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *LoadQueriesTestSuite) TestGetLoad_WrongTenant_ReturnsNotFound() {
	seeded := suite.seedLoad("REF-6001", load.ModeFTL, load.StatusDraft)

	otherTenant, err := kernel.NewTenantContext(kernel.NewUUID(), kernel.NewUUID(), kernel.RoleViewer)
	suite.Require().NoError(err)

	query, err := queries.NewGetLoadQuery(otherTenant, seeded.ID())
	suite.Require().NoError(err)

	_, err = suite.getHandler.Handle(context.Background(), query)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}
