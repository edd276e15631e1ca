package courier

import (
	"context"
	"errors"
	"fmt"

	"courier-management/internal/entities"
)

// Service обрабатывает события о смене статуса курьера из Kafka.
type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

// ProcessCourierStatusChange подбирает действие по статусу курьера и
// выполняет его. Неизвестные статусы пропускаются без ошибки — событие
// от чужой версии схемы не должно ронять воркер.
func (s *Service) ProcessCourierStatusChange(ctx context.Context, event entities.CourierStatusEvent) (int64, error) {
	if event.CourierID <= 0 || event.Status == "" {
		return 0, ErrMissingRequiredFields
	}

	executeFn, err := s.statusFactory.GetHandler(event.Status)
	if err != nil {
		if errors.Is(err, ErrUndefinedStatus) {
			return 0, nil
		}
		return 0, err
	}

	affected, err := executeFn(ctx, event.CourierID)
	if err != nil {
		return 0, fmt.Errorf("handle courier status %s: %w", event.Status, err)
	}
	return affected, nil
}
