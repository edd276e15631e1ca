package generation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"courier-management/internal/entities"
	deliveryservice "courier-management/internal/service/delivery"
)

// DefaultPattern — полный кросс-продукт: каждая дата x каждый курьер.
const DefaultPattern = "daily"

type Generation struct {
	repository Repository
	patterns   PatternFactory
}

func New(repository Repository, patterns PatternFactory) *Generation {
	return &Generation{
		repository: repository,
		patterns:   patterns,
	}
}

// GenerateDeliveries синтезирует pending-доставки по диапазону дат и пулу
// курьеров. Пары (дата, курьер), у которых уже есть неотмененная доставка,
// пропускаются, поэтому повторный запуск того же запроса ничего не дублирует.
//
// Каждая вставка коммитится отдельно. Если хранилище отвалилось посреди
// прогона, возвращаем уже закоммиченную часть ВМЕСТЕ с ошибкой — ни полный
// успех, ни полный провал тут были бы враньем.
func (g *Generation) GenerateDeliveries(ctx context.Context, gen entities.DeliveryGeneration, actingUserID int64) (*entities.GenerationResult, error) {
	if actingUserID <= 0 {
		return nil, fmt.Errorf("acting user: %w", ErrMissingRequiredFields)
	}
	if err := validateGeneration(gen); err != nil {
		return nil, err
	}

	patternName := gen.Pattern
	if patternName == "" {
		patternName = DefaultPattern
	}
	pattern, err := g.patterns.GetPattern(patternName)
	if err != nil {
		return nil, fmt.Errorf("resolve pattern: %w", err)
	}

	from := truncateToDate(gen.DateFrom)
	to := truncateToDate(gen.DateTo)
	candidates := pattern.Candidates(from, to, gen.CourierPool)

	inserted := make([]entities.Delivery, 0, len(candidates))
	pending := entities.DeliveryPending

	for _, candidate := range candidates {
		exists, err := g.repository.ExistsActiveOnDate(ctx, candidate.CourierID, candidate.Date)
		if err != nil {
			return partialResult(inserted), fmt.Errorf("check existing delivery: %w", err)
		}
		if exists {
			continue
		}

		candidateDate := candidate.Date
		courierID := candidate.CourierID
		deliveryModify := entities.DeliveryModify{
			CourierID:       &courierID,
			Status:          &pending,
			ScheduledDate:   &candidateDate,
			CreatedByUserID: &actingUserID,
		}

		created, err := g.repository.Create(ctx, deliveryModify)
		if err != nil {
			// Конкурентный прогон успел вставить эту пару между проверкой и
			// вставкой: уникальный индекс хранилища закрыл гонку, просто
			// пропускаем пару.
			if errors.Is(err, deliveryservice.ErrDeliveryExists) {
				continue
			}
			return partialResult(inserted), fmt.Errorf("insert generated delivery: %w", err)
		}

		inserted = append(inserted, *created)
	}

	return partialResult(inserted), nil
}

func validateGeneration(gen entities.DeliveryGeneration) error {
	if gen.DateFrom.IsZero() || gen.DateTo.IsZero() {
		return ErrEmptyDateRange
	}
	if truncateToDate(gen.DateTo).Before(truncateToDate(gen.DateFrom)) {
		return ErrInvalidDateRange
	}
	if len(gen.CourierPool) == 0 {
		return ErrEmptyCourierPool
	}
	for _, courierID := range gen.CourierPool {
		if courierID <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidCourierID, courierID)
		}
	}
	return nil
}

func partialResult(inserted []entities.Delivery) *entities.GenerationResult {
	return &entities.GenerationResult{
		GeneratedCount: int64(len(inserted)),
		Deliveries:     inserted,
	}
}

func truncateToDate(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
