package generation_pattern

import (
	"fmt"
	"time"

	"courier-management/internal/service/generation"
)

// PatternFactory отдает стратегию перебора (дата, курьер) по имени паттерна.
// Точка расширения: новые правила генерации добавляются сюда, движок
// генерации про конкретные паттерны не знает.
type PatternFactory struct{}

func New() *PatternFactory {
	return &PatternFactory{}
}

func (f *PatternFactory) GetPattern(name string) (generation.Pattern, error) {
	switch name {
	case "daily":
		return dailyPattern{}, nil
	case "weekdays":
		return weekdaysPattern{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", generation.ErrUnknownPattern, name)
	}
}

// dailyPattern — каждая дата диапазона x каждый курьер пула.
type dailyPattern struct{}

func (dailyPattern) Candidates(from, to time.Time, couriers []int64) []generation.Candidate {
	return enumerate(from, to, couriers, func(time.Time) bool { return true })
}

// weekdaysPattern пропускает субботу и воскресенье.
type weekdaysPattern struct{}

func (weekdaysPattern) Candidates(from, to time.Time, couriers []int64) []generation.Candidate {
	return enumerate(from, to, couriers, func(date time.Time) bool {
		weekday := date.Weekday()
		return weekday != time.Saturday && weekday != time.Sunday
	})
}

func enumerate(from, to time.Time, couriers []int64, include func(time.Time) bool) []generation.Candidate {
	candidates := make([]generation.Candidate, 0)
	for date := from; !date.After(to); date = date.AddDate(0, 0, 1) {
		if !include(date) {
			continue
		}
		for _, courierID := range couriers {
			candidates = append(candidates, generation.Candidate{
				Date:      date,
				CourierID: courierID,
			})
		}
	}
	return candidates
}
