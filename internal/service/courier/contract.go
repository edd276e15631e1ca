//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=courier_test
package courier

import (
	"context"

	"courier-management/internal/entities"
)

type DeliveryService interface {
	CancelCourierDeliveries(ctx context.Context, courierID int64) (int64, error)
}

type (
	ExecuteFn      func(ctx context.Context, courierID int64) (int64, error)
	HandlerFactory interface {
		GetHandler(status entities.CourierStatusType) (ExecuteFn, error)
	}
)
