//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_me_get_test
package auth_me_get

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
	CurrentUser(ctx context.Context, userID int64) (*entities.User, error)
}
