package delivery_expiry

import (
	"context"
	"time"

	"courier-management/pkg/logger"
)

type Service interface {
	CleanupOverdueDeliveries(ctx context.Context) (int64, error)
}

// DeliveryExpiry периодически отменяет pending-доставки с прошедшей датой.
type DeliveryExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewDeliveryExpiry(log logger.Logger, service Service, interval time.Duration) *DeliveryExpiry {
	return &DeliveryExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (d *DeliveryExpiry) TTL() time.Duration {
	return d.interval
}

func (d *DeliveryExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	rowsAffected, err := d.service.CleanupOverdueDeliveries(ctxWithTimeout)

	if rowsAffected > 0 {
		d.log.With(
			logger.NewField("cancelled_deliveries", rowsAffected),
		).Info("delivery expiry")
	}

	return err
}

func (d *DeliveryExpiry) Info() string {
	return "delivery expiry"
}
