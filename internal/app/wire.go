//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"courier-management/internal/handlers/rest/auth_login_post"
	"courier-management/internal/handlers/rest/auth_me_get"
	"courier-management/internal/handlers/rest/deliveries_generate_post"
	"courier-management/internal/handlers/rest/deliveries_get"
	"courier-management/internal/handlers/rest/delivery_delete"
	"courier-management/internal/handlers/rest/delivery_get"
	"courier-management/internal/handlers/rest/delivery_post"
	"courier-management/internal/handlers/rest/delivery_put"
	"courier-management/internal/handlers/tasks/delivery_expiry"
	pkgauth "courier-management/internal/pkg/auth"
	"courier-management/internal/pkg/config"
	"courier-management/internal/pkg/factory/courier_handle"
	"courier-management/internal/pkg/factory/generation_pattern"

	deliveryRepo "courier-management/internal/repository/delivery"
	userRepo "courier-management/internal/repository/user"
	authService "courier-management/internal/service/auth"
	courierService "courier-management/internal/service/courier"
	deliveryService "courier-management/internal/service/delivery"
	generationService "courier-management/internal/service/generation"

	"courier-management/pkg/background"
	"courier-management/pkg/logger"
	"courier-management/pkg/querier"
	"courier-management/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	ExpiryInterval time.Duration
)

type Application struct {
	ServiceDelivery   ServiceDelivery
	ServiceGeneration ServiceGeneration
	ServiceAuth       ServiceAuth
	TokenManager      *pkgauth.TokenManager
	BackgroundWorkers *background.Worker
}

type ServiceDelivery interface {
	deliveries_get.Service
	delivery_get.Service
	delivery_post.Service
	delivery_put.Service
	delivery_delete.Service
}

type ServiceGeneration interface {
	deliveries_generate_post.Service
}

type ServiceAuth interface {
	auth_login_post.Service
	auth_me_get.Service
}

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideExpiryInterval,
		provideTokenManager,

		provideDeliveryRepository,
		provideUserRepository,
		generation_pattern.New,

		provideServiceDelivery,
		provideServiceGeneration,
		provideServiceAuth,

		provideDeliveryExpiryTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceDelivery), new(*deliveryService.Delivery)),
		wire.Bind(new(ServiceGeneration), new(*generationService.Generation)),
		wire.Bind(new(ServiceAuth), new(*authService.Auth)),

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(generationService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(generationService.PatternFactory), new(*generation_pattern.PatternFactory)),
		wire.Bind(new(authService.Repository), new(*userRepo.Repository)),
		wire.Bind(new(authService.TokenIssuer), new(*pkgauth.TokenManager)),

		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(delivery_expiry.Service), new(*deliveryService.Delivery)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	CourierService *courierService.Service
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-courier-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideDeliveryRepository,
		provideServiceDelivery,

		provideStatusHandlerFactory,
		provideCourierService,

		wire.Bind(new(deliveryService.Repository), new(*deliveryRepo.Repository)),
		wire.Bind(new(deliveryService.TxManager), new(*tx.Manager)),
		wire.Bind(new(courierService.HandlerFactory), new(*courier_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryRepository(querier *querier.Querier) *deliveryRepo.Repository {
	return deliveryRepo.New(querier)
}

func provideUserRepository(querier *querier.Querier) *userRepo.Repository {
	return userRepo.New(querier)
}

func provideServiceDelivery(
	repository deliveryService.Repository,
	txManager deliveryService.TxManager,
) *deliveryService.Delivery {
	return deliveryService.New(repository, txManager)
}

func provideServiceGeneration(
	repository generationService.Repository,
	patterns generationService.PatternFactory,
) *generationService.Generation {
	return generationService.New(repository, patterns)
}

func provideServiceAuth(
	repository authService.Repository,
	tokens authService.TokenIssuer,
) *authService.Auth {
	return authService.New(repository, tokens)
}

func provideTokenManager(cfg *config.Config) *pkgauth.TokenManager {
	return pkgauth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func provideExpiryInterval(cfg *config.Config) ExpiryInterval {
	return ExpiryInterval(cfg.Tasks.DeliveryExpiryInterval)
}

func provideCourierService(handlerFactory courierService.HandlerFactory) *courierService.Service {
	return courierService.New(handlerFactory)
}

func provideStatusHandlerFactory(deliveryService *deliveryService.Delivery) *courier_handle.StatusHandlerFactory {
	return courier_handle.NewStatusHandlerFactory(deliveryService)
}

func provideDeliveryExpiryTask(
	log logger.Logger,
	deliveryService delivery_expiry.Service,
	interval ExpiryInterval,
) *delivery_expiry.DeliveryExpiry {
	return delivery_expiry.NewDeliveryExpiry(log, deliveryService, time.Duration(interval))
}

func provideTaskList(
	deliveryExpiryTask *delivery_expiry.DeliveryExpiry,
) []background.Task {
	return []background.Task{
		deliveryExpiryTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
