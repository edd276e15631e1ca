//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=generation_test
package generation

import (
	"context"
	"time"

	"courier-management/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	ExistsActiveOnDate(ctx context.Context, courierID int64, date time.Time) (bool, error)
}

// Candidate — одна пара (дата, курьер), предложенная паттерном.
type Candidate struct {
	Date      time.Time
	CourierID int64
}

type (
	// Pattern задает правило обхода диапазона дат и пула курьеров.
	// Кандидаты возвращаются в детерминированном порядке: сначала по дате,
	// внутри даты — в порядке пула.
	Pattern interface {
		Candidates(from, to time.Time, couriers []int64) []Candidate
	}

	PatternFactory interface {
		GetPattern(name string) (Pattern, error)
	}
)
