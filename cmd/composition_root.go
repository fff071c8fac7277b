package cmd

import (
	"hubops/internal/adapters/in/http"
	"hubops/internal/adapters/out/booking"
	"hubops/internal/adapters/out/postgres"
	"hubops/internal/core/application/usecases/commands"
	"hubops/internal/core/application/usecases/queries"
	"hubops/internal/core/domain/services"
	"hubops/internal/core/ports"
	"hubops/internal/jobs"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	allocator  *services.CodeAllocator
	lookup     ports.BookingLookup
	logger     *logrus.Logger
}

// NewCompositionRoot wires use cases over gormDB. locker scopes code
// allocation; pass a locks.KeyedMutex for a single instance or a
// locks.RedisLocker when several instances share the database.
func NewCompositionRoot(cfg Config, gormDB *gorm.DB, locker ports.ScopeLocker, logger *logrus.Logger) (CompositionRoot, error) {
	mode, err := services.ParseNumberingMode(cfg.SequenceMode)
	if err != nil {
		return CompositionRoot{}, err
	}
	uowFactory := postgres.NewGormUnitOfWorkFactory(gormDB)

	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: uowFactory,
		allocator: services.NewCodeAllocator(locker, services.AllocatorConfig{
			Mode:        mode,
			MaxAttempts: cfg.SequenceMaxAttempts,
		}),
		lookup: booking.NewRegistryLookup(uowFactory.Create().ConsignmentRepository(), cfg.LookupTimeout()),
		logger: logger,
	}, nil
}

func (c *CompositionRoot) sequenceUoWFactory() commands.SequenceUoWFactory {
	return FuncSequenceUoWFactory(func() commands.SequenceUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) batchUoWFactory() commands.BatchUoWFactory {
	return FuncBatchUoWFactory(func() commands.BatchUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) consignmentUoWFactory() commands.ConsignmentUoWFactory {
	return FuncConsignmentUoWFactory(func() commands.ConsignmentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) documentUoWFactory() commands.DocumentUoWFactory {
	return FuncDocumentUoWFactory(func() commands.DocumentUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pricingUoWFactory() commands.PricingUoWFactory {
	return FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAllocateSequenceCommandHandler() commands.AllocateSequenceCommandHandler {
	return commands.NewAllocateSequenceCommandHandler(c.sequenceUoWFactory(), c.allocator)
}

func (c *CompositionRoot) CreateOpenBatchCommandHandler() commands.OpenBatchCommandHandler {
	return commands.NewOpenBatchCommandHandler(c.batchUoWFactory(), c.allocator)
}

func (c *CompositionRoot) CreateCloseBatchCommandHandler() commands.CloseBatchCommandHandler {
	return commands.NewCloseBatchCommandHandler(c.batchUoWFactory())
}

func (c *CompositionRoot) CreateRegisterConsignmentCommandHandler() commands.RegisterConsignmentCommandHandler {
	return commands.NewRegisterConsignmentCommandHandler(c.consignmentUoWFactory(), c.allocator)
}

func (c *CompositionRoot) CreateUpdateConsignmentStatusCommandHandler() commands.UpdateConsignmentStatusCommandHandler {
	return commands.NewUpdateConsignmentStatusCommandHandler(c.consignmentUoWFactory())
}

func (c *CompositionRoot) CreateVoidConsignmentCommandHandler() commands.VoidConsignmentCommandHandler {
	return commands.NewVoidConsignmentCommandHandler(c.consignmentUoWFactory())
}

func (c *CompositionRoot) CreateOverrideConsignmentStatusCommandHandler() commands.OverrideConsignmentStatusCommandHandler {
	return commands.NewOverrideConsignmentStatusCommandHandler(c.consignmentUoWFactory())
}

func (c *CompositionRoot) CreateCreateDocumentCommandHandler() commands.CreateDocumentCommandHandler {
	return commands.NewCreateDocumentCommandHandler(c.documentUoWFactory(), c.allocator)
}

func (c *CompositionRoot) CreateAddDocumentMemberCommandHandler() commands.AddDocumentMemberCommandHandler {
	return commands.NewAddDocumentMemberCommandHandler(c.documentUoWFactory(), c.lookup)
}

func (c *CompositionRoot) CreateRemoveDocumentMemberCommandHandler() commands.RemoveDocumentMemberCommandHandler {
	return commands.NewRemoveDocumentMemberCommandHandler(c.documentUoWFactory())
}

func (c *CompositionRoot) CreateResolveDocumentMemberCommandHandler() commands.ResolveDocumentMemberCommandHandler {
	return commands.NewResolveDocumentMemberCommandHandler(c.documentUoWFactory())
}

func (c *CompositionRoot) CreateCompleteDocumentCommandHandler() commands.CompleteDocumentCommandHandler {
	return commands.NewCompleteDocumentCommandHandler(c.documentUoWFactory())
}

func (c *CompositionRoot) CreateUpsertPricingRuleCommandHandler() commands.UpsertPricingRuleCommandHandler {
	return commands.NewUpsertPricingRuleCommandHandler(c.pricingUoWFactory(), c.cfg.PricingMirrorAttempts)
}

func (c *CompositionRoot) CreateGetActiveBatchQueryHandler() queries.GetActiveBatchQueryHandler {
	return queries.NewGetActiveBatchQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetConsignmentQueryHandler() queries.GetConsignmentQueryHandler {
	return queries.NewGetConsignmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDocumentQueryHandler() queries.GetDocumentQueryHandler {
	return queries.NewGetDocumentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListDocumentsQueryHandler() queries.ListDocumentsQueryHandler {
	return queries.NewListDocumentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPricingRuleQueryHandler() queries.GetPricingRuleQueryHandler {
	return queries.NewGetPricingRuleQueryHandler(c.gormDB)
}

// CreateHTTPServer binds every use case to the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(http.Handlers{
		AllocateSequence:  c.CreateAllocateSequenceCommandHandler(),
		OpenBatch:         c.CreateOpenBatchCommandHandler(),
		CloseBatch:        c.CreateCloseBatchCommandHandler(),
		RegisterCN:        c.CreateRegisterConsignmentCommandHandler(),
		UpdateStatus:      c.CreateUpdateConsignmentStatusCommandHandler(),
		VoidCN:            c.CreateVoidConsignmentCommandHandler(),
		OverrideStatus:    c.CreateOverrideConsignmentStatusCommandHandler(),
		CreateDocument:    c.CreateCreateDocumentCommandHandler(),
		AddMember:         c.CreateAddDocumentMemberCommandHandler(),
		RemoveMember:      c.CreateRemoveDocumentMemberCommandHandler(),
		ResolveMember:     c.CreateResolveDocumentMemberCommandHandler(),
		CompleteDocument:  c.CreateCompleteDocumentCommandHandler(),
		UpsertPricingRule: c.CreateUpsertPricingRuleCommandHandler(),

		GetActiveBatch: c.CreateGetActiveBatchQueryHandler(),
		GetConsignment: c.CreateGetConsignmentQueryHandler(),
		GetDocument:    c.CreateGetDocumentQueryHandler(),
		ListDocuments:  c.CreateListDocumentsQueryHandler(),
		GetPricingRule: c.CreateGetPricingRuleQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListDocumentsQueryHandler(), jobs.StaleDocumentConfig{
		Schedule: c.cfg.StaleDocumentSchedule,
		MaxAge:   c.cfg.StaleDocumentAge(),
	}, c.logger)
}

type FuncSequenceUoWFactory func() commands.SequenceUoW

func (f FuncSequenceUoWFactory) Create() commands.SequenceUoW {
	return f()
}

type FuncBatchUoWFactory func() commands.BatchUoW

func (f FuncBatchUoWFactory) Create() commands.BatchUoW {
	return f()
}

type FuncConsignmentUoWFactory func() commands.ConsignmentUoW

func (f FuncConsignmentUoWFactory) Create() commands.ConsignmentUoW {
	return f()
}

type FuncDocumentUoWFactory func() commands.DocumentUoW

func (f FuncDocumentUoWFactory) Create() commands.DocumentUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}
