package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"courier-management/internal/entities"
	"courier-management/internal/generated/dto"
	"courier-management/internal/pkg/auth"
	"courier-management/internal/service/delivery"
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

	var deliveryCreateDTO dto.DeliveryCreateRequest
	err := json.NewDecoder(r.Body).Decode(&deliveryCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	scheduledDate := deliveryCreateDTO.ScheduledDate.Time
	deliveryModifyEntity := entities.DeliveryModify{
		CourierID:     &deliveryCreateDTO.CourierID,
		ScheduledDate: &scheduledDate,
	}

	deliveryEntity, err := h.service.CreateDelivery(r.Context(), deliveryModifyEntity, actor.UserID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidCourierID),
			errors.Is(err, delivery.ErrInvalidScheduledDate),
			errors.Is(err, delivery.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.Delivery{
		ID:              deliveryEntity.ID,
		CourierID:       deliveryEntity.CourierID,
		Status:          dto.DeliveryStatus(deliveryEntity.Status),
		ScheduledDate:   openapi_types.Date{Time: deliveryEntity.ScheduledDate},
		CreatedByUserID: deliveryEntity.CreatedByUserID,
		CreatedAt:       deliveryEntity.CreatedAt,
		UpdatedAt:       deliveryEntity.UpdatedAt,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
