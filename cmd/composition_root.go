package cmd

import (
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	freighthttp "freight/internal/adapters/in/http"
	"freight/internal/adapters/out/postgres"
	"freight/internal/adapters/out/redis/summarycache"
	"freight/internal/core/application/usecases/commands"
	"freight/internal/core/application/usecases/queries"
)

const defaultSummaryCacheTTL = 2 * time.Minute

// CompositionRoot assembles use cases from their infrastructure dependencies.
type CompositionRoot struct {
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	summaryCache queries.SummaryCache
	logger       *logrus.Logger
}

// NewCompositionRoot wires the application graph. The Redis client may be
// nil; the dashboard is then computed on every request.
func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *logrus.Logger) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}

	if redisClient != nil {
		ttl := defaultSummaryCacheTTL
		if config.SummaryCacheTTL != "" {
			parsed, err := time.ParseDuration(config.SummaryCacheTTL)
			if err != nil {
				logger.WithError(err).Warn("invalid SUMMARY_CACHE_TTL, using default")
			} else {
				ttl = parsed
			}
		}

		cache, err := summarycache.NewRedisSummaryCache(redisClient, ttl)
		if err != nil {
			logger.WithError(err).Warn("summary cache disabled")
		} else {
			root.summaryCache = cache
		}
	}

	return root
}

// CreateServer assembles the HTTP server with every command and query handler.
func (c *CompositionRoot) CreateServer() *freighthttp.Server {
	return freighthttp.NewServer(
		freighthttp.CommandHandlers{
			CreateLoad:          c.CreateCreateLoadCommandHandler(),
			UpdateLoad:          c.CreateUpdateLoadCommandHandler(),
			CancelLoad:          c.CreateCancelLoadCommandHandler(),
			CalculateRate:       c.CreateCalculateRateCommandHandler(),
			AttachDocument:      c.CreateAttachDocumentCommandHandler(),
			AppendTrackingEvent: c.CreateAppendTrackingEventCommandHandler(),
			CreateDispatch:      c.CreateCreateDispatchCommandHandler(),
			AcceptDispatch:      c.CreateAcceptDispatchCommandHandler(),
			RejectDispatch:      c.CreateRejectDispatchCommandHandler(),
			RecordDispatch:      c.CreateRecordDispatchStatusCommandHandler(),
			CreateInvoice:       c.CreateCreateInvoiceCommandHandler(),
			UpdateInvoice:       c.CreateUpdateInvoiceCommandHandler(),
		},
		freighthttp.QueryHandlers{
			ListLoads:          c.CreateListLoadsQueryHandler(),
			GetLoad:            c.CreateGetLoadQueryHandler(),
			ListDispatches:     c.CreateListDispatchesQueryHandler(),
			ListTrackingEvents: c.CreateListTrackingEventsQueryHandler(),
			ListInvoices:       c.CreateListInvoicesQueryHandler(),
			DashboardSummary:   c.CreateDashboardSummaryQueryHandler(),
		},
		c.logger,
	)
}

func (c *CompositionRoot) loadUoWFactory() commands.LoadUoWFactory {
	return FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) dispatchUoWFactory() commands.DispatchUoWFactory {
	return FuncDispatchUoWFactory(func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) invoiceUoWFactory() commands.InvoiceUoWFactory {
	return FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	return commands.NewCreateLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateUpdateLoadCommandHandler() commands.UpdateLoadCommandHandler {
	return commands.NewUpdateLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateCancelLoadCommandHandler() commands.CancelLoadCommandHandler {
	return commands.NewCancelLoadCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateCalculateRateCommandHandler() commands.CalculateRateCommandHandler {
	return commands.NewCalculateRateCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateAttachDocumentCommandHandler() commands.AttachDocumentCommandHandler {
	return commands.NewAttachDocumentCommandHandler(c.loadUoWFactory())
}

func (c *CompositionRoot) CreateAppendTrackingEventCommandHandler() commands.AppendTrackingEventCommandHandler {
	return commands.NewAppendTrackingEventCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateCreateDispatchCommandHandler() commands.CreateDispatchCommandHandler {
	return commands.NewCreateDispatchCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateAcceptDispatchCommandHandler() commands.AcceptDispatchCommandHandler {
	return commands.NewAcceptDispatchCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateRejectDispatchCommandHandler() commands.RejectDispatchCommandHandler {
	return commands.NewRejectDispatchCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateRecordDispatchStatusCommandHandler() commands.RecordDispatchStatusCommandHandler {
	return commands.NewRecordDispatchStatusCommandHandler(c.dispatchUoWFactory())
}

func (c *CompositionRoot) CreateCreateInvoiceCommandHandler() commands.CreateInvoiceCommandHandler {
	return commands.NewCreateInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateUpdateInvoiceCommandHandler() commands.UpdateInvoiceCommandHandler {
	return commands.NewUpdateInvoiceCommandHandler(c.invoiceUoWFactory())
}

func (c *CompositionRoot) CreateListLoadsQueryHandler() queries.ListLoadsQueryHandler {
	return queries.NewListLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLoadQueryHandler() queries.GetLoadQueryHandler {
	return queries.NewGetLoadQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDispatchesQueryHandler() queries.ListDispatchesQueryHandler {
	return queries.NewListDispatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListTrackingEventsQueryHandler() queries.ListTrackingEventsQueryHandler {
	return queries.NewListTrackingEventsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListInvoicesQueryHandler() queries.ListInvoicesQueryHandler {
	return queries.NewListInvoicesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateDashboardSummaryQueryHandler() queries.DashboardSummaryQueryHandler {
	return queries.NewDashboardSummaryQueryHandler(c.gormDB, c.summaryCache)
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncDispatchUoWFactory func() commands.DispatchUoW

func (f FuncDispatchUoWFactory) Create() commands.DispatchUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}
