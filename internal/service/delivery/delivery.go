package delivery

import (
	"context"
	"fmt"
	"time"

	"courier-management/internal/entities"
)

type Delivery struct {
	repository Repository
	txManager  TxManager
}

func New(repository Repository, txManager TxManager) *Delivery {
	return &Delivery{
		repository: repository,
		txManager:  txManager,
	}
}

// CreateDelivery создает доставку в статусе pending от имени actingUserID.
// Статус из запроса игнорировать нельзя молча: всё кроме pending — ошибка.
func (d *Delivery) CreateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify, actingUserID int64) (*entities.Delivery, error) {
	if actingUserID <= 0 {
		return nil, fmt.Errorf("acting user: %w", ErrMissingRequiredFields)
	}
	if deliveryModify.CourierID == nil || deliveryModify.ScheduledDate == nil {
		return nil, ErrMissingRequiredFields
	}
	if !isValidCourierID(*deliveryModify.CourierID) {
		return nil, ErrInvalidCourierID
	}
	if !isValidScheduledDate(*deliveryModify.ScheduledDate, time.Now().UTC()) {
		return nil, ErrInvalidScheduledDate
	}
	if deliveryModify.Status != nil && *deliveryModify.Status != entities.DeliveryPending {
		return nil, fmt.Errorf("%w: new delivery must start as %s", ErrInvalidStatus, entities.DeliveryPending)
	}

	pending := entities.DeliveryPending
	scheduledDate := truncateToDate(*deliveryModify.ScheduledDate)
	createModify := entities.DeliveryModify{
		CourierID:       deliveryModify.CourierID,
		Status:          &pending,
		ScheduledDate:   &scheduledDate,
		CreatedByUserID: &actingUserID,
	}

	created, err := d.repository.Create(ctx, createModify)
	if err != nil {
		return nil, fmt.Errorf("create delivery: %w", err)
	}
	return created, nil
}

// UpdateDelivery применяет патч к существующей доставке. Смена статуса
// проверяется по таблице переходов; чтение и запись идут в одной транзакции,
// чтобы два конкурентных обновления не перемешались.
func (d *Delivery) UpdateDelivery(ctx context.Context, id int64, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}
	if deliveryModify.CourierID == nil &&
		deliveryModify.Status == nil &&
		deliveryModify.ScheduledDate == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}

	if deliveryModify.CourierID != nil && !isValidCourierID(*deliveryModify.CourierID) {
		return nil, ErrInvalidCourierID
	}
	if deliveryModify.Status != nil && !isValidStatus(*deliveryModify.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *deliveryModify.Status)
	}
	if deliveryModify.ScheduledDate != nil {
		if !isValidScheduledDate(*deliveryModify.ScheduledDate, time.Now().UTC()) {
			return nil, ErrInvalidScheduledDate
		}
		scheduledDate := truncateToDate(*deliveryModify.ScheduledDate)
		deliveryModify.ScheduledDate = &scheduledDate
	}

	var updated *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := d.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		if deliveryModify.Status != nil && *deliveryModify.Status != current.Status {
			if !current.Status.CanTransitionTo(*deliveryModify.Status) {
				return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, *deliveryModify.Status)
			}
		}

		deliveryModify.ID = &id
		updated, err = d.repository.Update(ctx, deliveryModify)
		if err != nil {
			return fmt.Errorf("update delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (d *Delivery) DeleteDelivery(ctx context.Context, id int64) error {
	if !isValidDeliveryID(id) {
		return ErrInvalidDeliveryID
	}

	err := d.repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete delivery: %w", err)
	}
	return nil
}

func (d *Delivery) GetDeliveryByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	if !isValidDeliveryID(id) {
		return nil, ErrInvalidDeliveryID
	}

	deliveryEntity, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery: %w", err)
	}
	return deliveryEntity, nil
}

func (d *Delivery) GetDeliveries(ctx context.Context, filter entities.DeliveryFilter) ([]entities.Delivery, error) {
	if filter.Status != nil && !isValidStatus(*filter.Status) {
		return nil, fmt.Errorf("%w: %s", ErrInvalidStatus, *filter.Status)
	}
	if filter.CourierID != nil && !isValidCourierID(*filter.CourierID) {
		return nil, ErrInvalidCourierID
	}
	if filter.Date != nil {
		date := truncateToDate(*filter.Date)
		filter.Date = &date
	}

	deliveries, err := d.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}
	return deliveries, nil
}

// CancelCourierDeliveries отменяет все незавершенные доставки курьера.
// Используется обработчиком событий о смене статуса курьера.
func (d *Delivery) CancelCourierDeliveries(ctx context.Context, courierID int64) (int64, error) {
	if !isValidCourierID(courierID) {
		return 0, ErrInvalidCourierID
	}

	cancelled, err := d.repository.CancelActiveByCourier(ctx, courierID)
	if err != nil {
		return 0, fmt.Errorf("cancel courier deliveries: %w", err)
	}
	return cancelled, nil
}

// CleanupOverdueDeliveries отменяет pending-доставки, чья плановая дата уже
// прошла. Запускается фоновой задачей.
func (d *Delivery) CleanupOverdueDeliveries(ctx context.Context) (int64, error) {
	cutoff := truncateToDate(time.Now().UTC())

	cancelled, err := d.repository.CancelPendingBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup overdue deliveries: %w", err)
	}
	return cancelled, nil
}
