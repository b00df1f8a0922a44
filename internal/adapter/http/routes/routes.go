package routes

import (
	"context"
	"fmt"
	"log"
	"strconv"

	_ "pagseguro_gateway/docs" // This will be auto-generated
	"pagseguro_gateway/internal/adapter/http/handlers"
	"pagseguro_gateway/internal/adapter/persistence/repository"
	"pagseguro_gateway/internal/config"
	"pagseguro_gateway/internal/infrastructure/database"
	"pagseguro_gateway/internal/infrastructure/logging"
	"pagseguro_gateway/internal/infrastructure/messaging"
	"pagseguro_gateway/internal/infrastructure/pagseguro"
	"pagseguro_gateway/internal/usecase"
	"pagseguro_gateway/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const serviceName = "pagseguro-gateway"

var (
	_ interfaces.ICheckoutGateway    = (*pagseguro.Client)(nil)
	_ interfaces.ITransactionGateway = (*pagseguro.Client)(nil)
	_ interfaces.IPreApprovalGateway = (*pagseguro.Client)(nil)
)

// Handlers groups everything the router serves.
type Handlers struct {
	Checkout     *handlers.CheckoutHandler
	Transaction  *handlers.TransactionHandler
	Notification *handlers.NotificationHandler
	PreApproval  *handlers.PreApprovalHandler
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := logging.New(logging.Config{ServiceName: serviceName, Env: cfg.AppEnv, Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logging.Sync(logger)

	h, closeFn, err := buildHandlers(context.Background(), cfg, logger)
	if err != nil {
		logger.Fatal("[routes] startup failed", zap.Error(err))
	}
	defer closeFn()

	router := NewRouter(h, logger)

	logger.Info("[routes] listening", zap.Int("port", cfg.HTTPPort), zap.Bool("sandbox", cfg.PagSeguro.Sandbox))
	if err := router.Run(":" + strconv.Itoa(cfg.HTTPPort)); err != nil {
		logger.Fatal("Failed to startup the application", zap.Error(err))
	}
}

// NewRouter builds the engine with middlewares, swagger and the /v1 routes.
func NewRouter(h Handlers, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addPagSeguroRoutes(v1, h)
	return router
}

func buildHandlers(ctx context.Context, cfg config.Config, logger *zap.Logger) (Handlers, func(), error) {
	client, err := pagseguro.NewClient(cfg.PagSeguro.Token, cfg.PagSeguroConfig(),
		pagseguro.WithLogger(logger),
		pagseguro.WithEmail(cfg.PagSeguro.Email),
		pagseguro.WithPublicKey(cfg.PagSeguro.PublicKey),
	)
	if err != nil {
		return Handlers{}, nil, fmt.Errorf("pagseguro client: %w", err)
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB())
	if err != nil {
		return Handlers{}, nil, err
	}
	checkoutRepo := repository.NewCheckoutRecordDynamoRepository(ddb, cfg.CheckoutsTable)

	closeFn := func() {}
	var publisher interfaces.IEventPublisher = messaging.NopPublisher{}
	if cfg.NATSURL != "" {
		nc, err := messaging.ConnectNats(cfg.NATSURL)
		if err != nil {
			return Handlers{}, nil, err
		}
		publisher = messaging.NewNatsPublisher(nc, logger)
		closeFn = func() { _ = nc.Drain() }
	} else {
		logger.Warn("[routes] NATS_URL not set; events are not published")
	}

	checkoutUseCase := usecase.NewCheckoutUseCase(checkoutRepo, client, publisher, logger)
	transactionUseCase := usecase.NewTransactionUseCase(client, logger)
	notificationUseCase := usecase.NewNotificationUseCase(client, client, publisher, logger)
	preApprovalUseCase := usecase.NewPreApprovalUseCase(client, publisher, logger)

	return Handlers{
		Checkout:     handlers.NewCheckoutHandler(checkoutUseCase, logger),
		Transaction:  handlers.NewTransactionHandler(transactionUseCase, logger),
		Notification: handlers.NewNotificationHandler(notificationUseCase, logger),
		PreApproval:  handlers.NewPreApprovalHandler(preApprovalUseCase, logger),
	}, closeFn, nil
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Recovered from panic", zap.Any("panic", recovered), zap.String("path", c.Request.URL.Path))
		c.AbortWithStatus(500)
	}))
}
