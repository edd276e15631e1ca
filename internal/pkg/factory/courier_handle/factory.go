package courier_handle

import (
	"context"
	"fmt"

	"courier-management/internal/entities"
	"courier-management/internal/service/courier"
)

type StatusHandlerFactory struct {
	deliveryService courier.DeliveryService
}

func NewStatusHandlerFactory(deliveryService courier.DeliveryService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		deliveryService: deliveryService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.CourierStatusType) (courier.ExecuteFn, error) {
	switch status {
	case entities.CourierActive:
		return f.activeHandler, nil
	case entities.CourierPaused:
		return f.pausedHandler, nil
	case entities.CourierDeactivated:
		return f.deactivatedHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", courier.ErrUndefinedStatus, status)
	}
}

// activeHandler: курьер вернулся в строй, доставки не трогаем.
func (f *StatusHandlerFactory) activeHandler(_ context.Context, _ int64) (int64, error) {
	return 0, nil
}

func (f *StatusHandlerFactory) pausedHandler(ctx context.Context, courierID int64) (int64, error) {
	cancelled, err := f.deliveryService.CancelCourierDeliveries(ctx, courierID)
	if err != nil {
		return 0, fmt.Errorf("cancel deliveries for paused courier %d: %w", courierID, err)
	}
	return cancelled, nil
}

func (f *StatusHandlerFactory) deactivatedHandler(ctx context.Context, courierID int64) (int64, error) {
	cancelled, err := f.deliveryService.CancelCourierDeliveries(ctx, courierID)
	if err != nil {
		return 0, fmt.Errorf("cancel deliveries for deactivated courier %d: %w", courierID, err)
	}
	return cancelled, nil
}
