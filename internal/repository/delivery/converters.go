package delivery

import "courier-management/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
		ID:              d.ID,
		CourierID:       d.CourierID,
		Status:          entities.DeliveryStatusType(d.Status),
		ScheduledDate:   d.ScheduledDate,
		CreatedByUserID: d.CreatedByUserID,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func FromDomainModify(d *entities.DeliveryModify) *DeliveryModifyDB {
	if d == nil {
		return nil
	}
	deliveryModifyDB := &DeliveryModifyDB{
		ID:              d.ID,
		CourierID:       d.CourierID,
		ScheduledDate:   d.ScheduledDate,
		CreatedByUserID: d.CreatedByUserID,
	}
	if d.Status != nil {
		status := d.Status.String()
		deliveryModifyDB.Status = &status
	}
	return deliveryModifyDB
}
