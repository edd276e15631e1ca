package delivery_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"courier-management/internal/entities"
	"courier-management/internal/generated/dto"
	"courier-management/internal/service/delivery"
	"courier-management/pkg/logger"
	"github.com/gorilla/mux"
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
	idStr := mux.Vars(r)["id"]
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var deliveryUpdateDTO dto.DeliveryUpdateRequest
	err = json.NewDecoder(r.Body).Decode(&deliveryUpdateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var deliveryModifyEntity entities.DeliveryModify

	// Опциональные параметры
	if deliveryUpdateDTO.CourierID != nil {
		deliveryModifyEntity.CourierID = deliveryUpdateDTO.CourierID
	}
	if deliveryUpdateDTO.ScheduledDate != nil {
		scheduledDate := deliveryUpdateDTO.ScheduledDate.Time
		deliveryModifyEntity.ScheduledDate = &scheduledDate
	}
	if deliveryUpdateDTO.Status != nil {
		statusType := entities.DeliveryStatusType(*deliveryUpdateDTO.Status)
		deliveryModifyEntity.Status = &statusType
	}

	deliveryEntity, err := h.service.UpdateDelivery(r.Context(), id, deliveryModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidCourierID),
			errors.Is(err, delivery.ErrInvalidScheduledDate),
			errors.Is(err, delivery.ErrInvalidStatus):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrInvalidTransition),
			errors.Is(err, delivery.ErrDeliveryExists):
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
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
