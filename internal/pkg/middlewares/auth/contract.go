package auth

import (
	pkgauth "courier-management/internal/pkg/auth"
	"courier-management/pkg/logger"
)

type TokenVerifier interface {
	Verify(tokenString string) (*pkgauth.Actor, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
