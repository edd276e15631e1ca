//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"courier-management/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	GetByID(ctx context.Context, id int64) (*entities.Delivery, error)
	List(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error)
	Update(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	Delete(ctx context.Context, id int64) error

	CancelActiveByCourier(ctx context.Context, courierID int64) (int64, error)
	CancelPendingBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
