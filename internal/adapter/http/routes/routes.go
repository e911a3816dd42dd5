package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"speaker_bureau/internal/adapter/http/handlers"
	"speaker_bureau/internal/adapter/http/middleware"
	"speaker_bureau/internal/adapter/persistence/repository"
	"speaker_bureau/internal/infrastructure/config"
	"speaker_bureau/internal/infrastructure/database"
	"speaker_bureau/internal/infrastructure/notifications"
	"speaker_bureau/internal/usecase"
	"speaker_bureau/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type storage struct {
	firmOffers interfaces.IFirmOfferRepository
	deals      interfaces.IDealRepository
	proposals  interfaces.IProposalRepository
}

// Run wires the storage driver and notification dispatcher, then serves HTTP
// until ctx is cancelled.
func Run(ctx context.Context, cfg config.Config, log zerolog.Logger) error {
	store, closeStore, err := connectStorage(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	notifier, closeNotifier := connectNotifier(cfg, log)
	defer closeNotifier()

	links := usecase.NewFirmOfferLinks(cfg.PublicAppURL)
	firmOfferUseCase := usecase.NewFirmOfferUseCase(store.firmOffers, store.deals, store.proposals, notifier, links, log)

	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := NewRouter(log, firmOfferUseCase, links)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("storage", cfg.Storage.Driver).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to startup the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Dur("timeout", cfg.ShutdownTimeout).Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with every route registered.
func NewRouter(log zerolog.Logger, uc usecase.IFirmOfferUseCase, links usecase.FirmOfferLinks) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addFirmOfferRoutes(v1, handlers.NewFirmOfferHandler(uc, links, log))
	addClientRoutes(v1, handlers.NewClientFirmOfferHandler(uc, log))
	addSpeakerRoutes(v1, handlers.NewSpeakerReviewHandler(uc, log))
	return router
}

func setMiddlewares(router *gin.Engine, log zerolog.Logger) {
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.Recovery(log))
}

func connectStorage(ctx context.Context, cfg config.Config, log zerolog.Logger) (storage, func(), error) {
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		pool, err := database.ConnectPostgres(ctx, cfg.Storage.DatabaseURL)
		if err != nil {
			return storage{}, nil, err
		}
		if err := database.ApplyMigrations(ctx, pool); err != nil {
			pool.Close()
			return storage{}, nil, err
		}
		log.Info().Msg("postgres storage ready")
		return storage{
			firmOffers: repository.NewFirmOfferPostgresRepository(pool),
			deals:      repository.NewDealPostgresRepository(pool),
			proposals:  repository.NewProposalPostgresRepository(pool),
		}, pool.Close, nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return storage{}, nil, err
		}
		log.Info().Str("table", cfg.Storage.FirmOffersTable).Msg("dynamodb storage ready")
		return storage{
			firmOffers: repository.NewFirmOfferDynamoRepository(ddb, cfg.Storage.FirmOffersTable),
			deals:      repository.NewDealDynamoRepository(ddb, cfg.Storage.DealsTable),
			proposals:  repository.NewProposalDynamoRepository(ddb, cfg.Storage.ProposalsTable),
		}, func() {}, nil
	}
}

// connectNotifier falls back to the log dispatcher when NATS is not
// configured or unreachable at startup.
func connectNotifier(cfg config.Config, log zerolog.Logger) (interfaces.INotificationDispatcher, func()) {
	if cfg.NATS.URL == "" {
		return notifications.NewLogDispatcher(log), func() {}
	}
	nc, err := notifications.ConnectNATS(cfg.NATS.URL, log)
	if err != nil {
		log.Warn().Err(err).Msg("nats unavailable, notification intents will only be logged")
		return notifications.NewLogDispatcher(log), func() {}
	}
	return notifications.NewNATSDispatcher(nc, cfg.NATS.SubjectPrefix, log), func() {
		if err := nc.Drain(); err != nil {
			log.Warn().Err(err).Msg("nats drain failed")
		}
	}
}
