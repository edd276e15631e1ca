package entities

import "time"

type Delivery struct {
	ID              int64
	CourierID       int64
	Status          DeliveryStatusType
	ScheduledDate   time.Time
	CreatedByUserID int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type DeliveryStatusType string

const (
	DeliveryPending    DeliveryStatusType = "pending"
	DeliveryAssigned   DeliveryStatusType = "assigned"
	DeliveryInProgress DeliveryStatusType = "in_progress"
	DeliveryDelivered  DeliveryStatusType = "delivered"
	DeliveryCancelled  DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// deliveryTransitions — закрытая таблица переходов статусов.
// pending -> assigned -> in_progress -> delivered; cancelled доступен из
// любого нетерминального статуса. delivered и cancelled — терминальные.
var deliveryTransitions = map[DeliveryStatusType][]DeliveryStatusType{
	DeliveryPending:    {DeliveryAssigned, DeliveryCancelled},
	DeliveryAssigned:   {DeliveryInProgress, DeliveryCancelled},
	DeliveryInProgress: {DeliveryDelivered, DeliveryCancelled},
	DeliveryDelivered:  {},
	DeliveryCancelled:  {},
}

func (s DeliveryStatusType) IsValid() bool {
	_, ok := deliveryTransitions[s]
	return ok
}

func (s DeliveryStatusType) IsTerminal() bool {
	next, ok := deliveryTransitions[s]
	return ok && len(next) == 0
}

func (s DeliveryStatusType) CanTransitionTo(next DeliveryStatusType) bool {
	for _, allowed := range deliveryTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

type DeliveryModify struct {
	ID              *int64
	CourierID       *int64
	Status          *DeliveryStatusType
	ScheduledDate   *time.Time
	CreatedByUserID *int64
}

// DeliveryFilter — конъюнктивные фильтры листинга, nil-поле не ограничивает.
type DeliveryFilter struct {
	Date      *time.Time
	CourierID *int64
	Status    *DeliveryStatusType
}

// DeliveryGeneration описывает один запрос на массовую генерацию доставок.
// Живет один вызов движка генерации и нигде не сохраняется.
type DeliveryGeneration struct {
	DateFrom    time.Time
	DateTo      time.Time
	CourierPool []int64
	Pattern     string
}

type GenerationResult struct {
	GeneratedCount int64
	Deliveries     []Delivery
}
