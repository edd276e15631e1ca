package delivery_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

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

	deliveryEntity, err := h.service.GetDeliveryByID(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrInvalidDeliveryID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	deliveryDTO := dto.Delivery{
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
	err = json.NewEncoder(w).Encode(deliveryDTO)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
