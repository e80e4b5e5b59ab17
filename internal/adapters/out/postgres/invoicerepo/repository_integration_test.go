package invoicerepo_test

import (
	"context"
	"testing"
	"time"

	"freight/internal/adapters/out/postgres/invoicerepo"
	"freight/internal/core/domain/model/invoice"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/shopspring/decimal"
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

// InvoiceRepositoryIntegrationTestSuite provides integration tests for
// InvoiceRepository using PostgreSQL containers.
type InvoiceRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *invoicerepo.GormInvoiceRepository
	tracker    *MockAggregateTracker
	tenantID   kernel.UUID
}

func (suite *InvoiceRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&invoicerepo.InvoiceDTO{}))
}

func (suite *InvoiceRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE invoices").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = invoicerepo.NewGormInvoiceRepository(suite.db, suite.tracker)
	suite.tenantID = kernel.NewUUID()
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestAdd_ValidInvoice_Success() {
	ctx := context.Background()

	testInvoice := suite.createTestInvoice("INV-1001")
	suite.tracker.On("TrackAggregate", testInvoice.ID(), testInvoice).Once()

	suite.Require().NoError(suite.repository.Add(ctx, testInvoice))

	var count int64
	suite.Require().NoError(suite.db.Model(&invoicerepo.InvoiceDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestAdd_DuplicateNumber_ReturnsConflict() {
	ctx := context.Background()

	first := suite.createTestInvoice("INV-2001")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	duplicate := suite.createTestInvoice("INV-2001")
	err := suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err)

	var conflictErr *errs.ConflictError
	suite.Require().ErrorAs(err, &conflictErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestAdd_SameNumberDifferentTenants_Succeeds() {
	ctx := context.Background()

	first := suite.createTestInvoice("INV-3001")
	suite.tracker.On("TrackAggregate", first.ID(), first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	other := suite.createTestInvoiceForTenant(kernel.NewUUID(), "INV-3001")
	suite.tracker.On("TrackAggregate", other.ID(), other).Once()
	suite.Require().NoError(suite.repository.Add(ctx, other))

	var count int64
	suite.Require().NoError(suite.db.Model(&invoicerepo.InvoiceDTO{}).Count(&count).Error)
	suite.Equal(int64(2), count)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGet_ExistingInvoice_ReturnsAggregate() {
	ctx := context.Background()

	original := suite.createTestInvoice("INV-4001")
	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.repository.Add(ctx, original))

	retrieved, err := suite.repository.Get(ctx, suite.tenantID, original.ID())
	suite.Require().NoError(err)

	suite.Equal(original.ID(), retrieved.ID())
	suite.Equal(suite.tenantID, retrieved.TenantID())
	suite.Equal(original.LoadID(), retrieved.LoadID())
	suite.Equal("INV-4001", retrieved.InvoiceNumber())
	suite.True(retrieved.Amount().Equal(decimal.NewFromInt(2450)))
	suite.Equal("USD", retrieved.Currency())
	suite.Equal(invoice.StatusDraft, retrieved.Status())
	suite.Nil(retrieved.IssuedAt())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestGet_WrongTenant_ReturnsNotFound() {
	ctx := context.Background()

	testInvoice := suite.createTestInvoice("INV-5001")
	suite.tracker.On("TrackAggregate", testInvoice.ID(), testInvoice).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testInvoice))

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID(), testInvoice.ID())
	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestUpdate_StatusAndIssuedAt_Persisted() {
	ctx := context.Background()

	testInvoice := suite.createTestInvoice("INV-6001")
	suite.tracker.On("TrackAggregate", testInvoice.ID(), testInvoice).Twice()
	suite.Require().NoError(suite.repository.Add(ctx, testInvoice))

	issuedAt := time.Date(2025, 7, 1, 12, 0, 0, 0, time.UTC)
	testInvoice.MarkIssued(issuedAt)
	suite.Require().NoError(testInvoice.SetStatus(invoice.StatusSent))
	suite.Require().NoError(suite.repository.Update(ctx, testInvoice))

	retrieved, err := suite.repository.Get(ctx, suite.tenantID, testInvoice.ID())
	suite.Require().NoError(err)
	suite.Equal(invoice.StatusSent, retrieved.Status())
	suite.Require().NotNil(retrieved.IssuedAt())
	suite.True(retrieved.IssuedAt().Equal(issuedAt))

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) TestUpdate_NonExistentInvoice_ReturnsNotFound() {
	testInvoice := suite.createTestInvoice("INV-7001")

	err := suite.repository.Update(context.Background(), testInvoice)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *InvoiceRepositoryIntegrationTestSuite) createTestInvoice(number string) *invoice.Invoice {
	return suite.createTestInvoiceForTenant(suite.tenantID, number)
}

func (suite *InvoiceRepositoryIntegrationTestSuite) createTestInvoiceForTenant(
	tenantID kernel.UUID, number string,
) *invoice.Invoice {
	billedTo := kernel.NewUUID()
	dueDate := time.Date(2025, 7, 31, 0, 0, 0, 0, time.UTC)

	testInvoice, err := invoice.NewInvoice(
		kernel.NewUUID(),
		tenantID,
		kernel.NewUUID(),
		number,
		&billedTo,
		decimal.NewFromInt(2450),
		"USD",
		&dueDate,
	)
	suite.Require().NoError(err)
	return testInvoice
}

func TestInvoiceRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceRepositoryIntegrationTestSuite))
}
