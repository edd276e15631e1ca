package entities

// Курьеры живут в отдельном сервисе, здесь храним только ссылку по id.
// Событие о смене статуса курьера приходит через Kafka.

type CourierStatusType string

const (
	CourierActive      CourierStatusType = "active"
	CourierPaused      CourierStatusType = "paused"
	CourierDeactivated CourierStatusType = "deactivated"
)

func (s CourierStatusType) String() string {
	return string(s)
}

type CourierStatusEvent struct {
	CourierID int64
	Status    CourierStatusType
}
