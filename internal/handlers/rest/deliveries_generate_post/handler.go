package deliveries_generate_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"courier-management/internal/entities"
	"courier-management/internal/generated/dto"
	"courier-management/internal/pkg/auth"
	"courier-management/internal/service/generation"
	"courier-management/pkg/logger"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var generateDTO dto.GenerateDeliveriesRequest
	err := json.NewDecoder(r.Body).Decode(&generateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	generationEntity := entities.DeliveryGeneration{
		DateFrom:    generateDTO.DateRangeStart.Time,
		DateTo:      generateDTO.DateRangeEnd.Time,
		CourierPool: generateDTO.CourierPool,
	}
	if generateDTO.Pattern != nil {
		generationEntity.Pattern = *generateDTO.Pattern
	}

	result, err := h.service.GenerateDeliveries(r.Context(), generationEntity, actor.UserID)
	if err != nil {
		switch {
		case errors.Is(err, generation.ErrMissingRequiredFields),
			errors.Is(err, generation.ErrEmptyDateRange),
			errors.Is(err, generation.ErrInvalidDateRange),
			errors.Is(err, generation.ErrEmptyCourierPool),
			errors.Is(err, generation.ErrInvalidCourierID),
			errors.Is(err, generation.ErrUnknownPattern):
			w.WriteHeader(http.StatusBadRequest)
			return
		default:
		}

		// Хранилище отвалилось посреди прогона: уже закоммиченная часть
		// отдается клиенту вместе с 500, чтобы повтор был осознанным.
		if result == nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		h.log.With(
			logger.NewField("error", err),
			logger.NewField("generated_count", result.GeneratedCount),
		).Error("delivery generation finished partially")

		h.writeResult(w, http.StatusInternalServerError, result)
		return
	}

	h.writeResult(w, http.StatusOK, result)
}

func (h *Handler) writeResult(w http.ResponseWriter, status int, result *entities.GenerationResult) {
	response := dto.GenerateDeliveriesResponse{
		GeneratedCount:      result.GeneratedCount,
		GeneratedDeliveries: make([]dto.Delivery, len(result.Deliveries)),
	}
	for i, delivery := range result.Deliveries {
		response.GeneratedDeliveries[i].ID = delivery.ID
		response.GeneratedDeliveries[i].CourierID = delivery.CourierID
		response.GeneratedDeliveries[i].Status = dto.DeliveryStatus(delivery.Status)
		response.GeneratedDeliveries[i].ScheduledDate = openapi_types.Date{Time: delivery.ScheduledDate}
		response.GeneratedDeliveries[i].CreatedByUserID = delivery.CreatedByUserID
		response.GeneratedDeliveries[i].CreatedAt = delivery.CreatedAt
		response.GeneratedDeliveries[i].UpdatedAt = delivery.UpdatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
