//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_login_post_test
package auth_login_post

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
	Login(ctx context.Context, login, password string) (string, *entities.User, error)
}
