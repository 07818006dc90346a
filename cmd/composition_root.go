package cmd

import (
	"log/slog"
	"strings"

	"gorm.io/gorm"

	httpin "marketplace/internal/adapters/in/http"
	"marketplace/internal/adapters/out/escrow"
	"marketplace/internal/adapters/out/notify"
	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/adapters/out/postgres/orderrepo"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/ports"
	"marketplace/internal/jobs"
	"marketplace/internal/pkg/orderlock"
)

// CompositionRoot wires adapters into use case handlers. It owns the shared
// infrastructure: the database connection, the per-order lock registry, the
// gateways, and the transition executor all handlers run through.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory

	locks    *orderlock.Registry
	clock    ports.Clock
	escrow   *escrow.LedgerEscrowGateway
	notifier ports.NotifierGateway
	logger   *slog.Logger

	executor       commands.TransitionExecutor
	arbitrationFee kernel.Money

	config Config
	closer func() error
}

// NewCompositionRoot builds the object graph from configuration and an open
// database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	arbitrationFee, err := kernel.NewMoney(config.ArbitrationFeeUnits)
	if err != nil {
		return nil, err
	}

	root := &CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		locks:          orderlock.NewRegistry(),
		clock:          ports.SystemClock{},
		escrow:         escrow.NewLedgerEscrowGateway(logger),
		logger:         logger,
		arbitrationFee: arbitrationFee,
		config:         config,
		closer:         func() error { return nil },
	}

	if config.KafkaHost != "" {
		kafkaNotifier := notify.NewKafkaNotifierGateway(
			strings.Split(config.KafkaHost, ","), config.KafkaNotificationTopic)
		root.notifier = kafkaNotifier
		root.closer = kafkaNotifier.Close
	} else {
		root.notifier = notify.NewLogNotifierGateway(logger)
	}

	root.executor = commands.NewTransitionExecutor(
		root.orderUoWFactory(), root.locks, root.clock, root.escrow, root.notifier, logger)

	return root, nil
}

// Close releases resources held by the composition root.
func (c *CompositionRoot) Close() error {
	return c.closer()
}

// EscrowGateway exposes the ledger so operational tooling can fund accounts.
func (c *CompositionRoot) EscrowGateway() *escrow.LedgerEscrowGateway {
	return c.escrow
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

// CreateServerHandlers assembles every use case handler the HTTP server
// mounts.
func (c *CompositionRoot) CreateServerHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:           commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.escrow),
		DeliverWork:           commands.NewDeliverWorkCommandHandler(c.executor),
		AcceptDelivery:        commands.NewAcceptDeliveryCommandHandler(c.executor),
		ProfessionalComplete:  commands.NewProfessionalCompleteCommandHandler(c.executor),
		RateOrder:             commands.NewRateOrderCommandHandler(c.executor),
		SubmitBuyerReview:     commands.NewSubmitBuyerReviewCommandHandler(c.executor),
		AddAdditionalInfo:     commands.NewAddAdditionalInfoCommandHandler(c.executor),
		RequestCancellation:   commands.NewRequestCancellationCommandHandler(c.executor),
		RespondToCancellation: commands.NewRespondToCancellationCommandHandler(c.executor),
		WithdrawCancellation:  commands.NewWithdrawCancellationCommandHandler(c.executor),
		RequestRevision:       commands.NewRequestRevisionCommandHandler(c.executor),
		RespondToRevision:     commands.NewRespondToRevisionCommandHandler(c.executor),
		CompleteRevision:      commands.NewCompleteRevisionCommandHandler(c.executor),
		RequestExtension:      commands.NewRequestExtensionCommandHandler(c.executor),
		RespondToExtension:    commands.NewRespondToExtensionCommandHandler(c.executor),
		OpenDispute:           commands.NewOpenDisputeCommandHandler(c.executor),
		RespondToDispute:      commands.NewRespondToDisputeCommandHandler(c.executor),
		RequestArbitration: commands.NewRequestArbitrationCommandHandler(
			c.executor, c.escrow, c.arbitrationFee),
		CancelDispute: commands.NewCancelDisputeCommandHandler(c.executor),
		DecideDispute: commands.NewDecideDisputeCommandHandler(c.executor, c.arbitrationFee),

		GetOrder:        c.CreateGetOrderQueryHandler(),
		GetActiveOrders: queries.NewGetActiveOrdersQueryHandler(c.gormDB),
	}
}

// CreateGetOrderQueryHandler builds the single order query over a
// non-transactional repository.
func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	reader := orderrepo.NewGormOrderRepository(c.gormDB, noopTracker{})
	return queries.NewGetOrderQueryHandler(reader)
}

// CreateJobManager builds the background job manager with the deadline sweep.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	sweepHandler := commands.NewSweepDeadlinesCommandHandler(
		c.orderUoWFactory(), c.executor, c.clock, c.logger)
	return jobs.NewJobManager(sweepHandler, c.config.SweepSchedule, c.logger)
}

// FuncOrderUoWFactory adapts a function to the commands.OrderUoWFactory
// interface.
type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

// noopTracker satisfies the repository's tracker dependency for read-only
// use; queries never persist aggregates.
type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, interface{}) {}
