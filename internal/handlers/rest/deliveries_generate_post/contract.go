//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveries_generate_post_test
package deliveries_generate_post

import (
	"context"

	"courier-management/internal/entities"
	"courier-management/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GenerateDeliveries(ctx context.Context, gen entities.DeliveryGeneration, actingUserID int64) (*entities.GenerationResult, error)
}
