//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_status_changed_test
package courier_status_changed

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
	ProcessCourierStatusChange(ctx context.Context, event entities.CourierStatusEvent) (int64, error)
}

// statusChangedEvent — формат сообщения в топике courier.status.changed.
type statusChangedEvent struct {
	CourierID int64  `json:"courier_id"`
	Status    string `json:"status"`
}
