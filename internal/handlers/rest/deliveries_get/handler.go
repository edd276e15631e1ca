package deliveries_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"courier-management/internal/entities"
	"courier-management/internal/generated/dto"
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
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryEntities, err := h.service.GetDeliveries(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidStatus),
			errors.Is(err, delivery.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	deliveryDTOs := make([]dto.Delivery, len(deliveryEntities))
	for i, delivery := range deliveryEntities {
		deliveryDTOs[i].ID = delivery.ID
		deliveryDTOs[i].CourierID = delivery.CourierID
		deliveryDTOs[i].Status = dto.DeliveryStatus(delivery.Status)
		deliveryDTOs[i].ScheduledDate = openapi_types.Date{Time: delivery.ScheduledDate}
		deliveryDTOs[i].CreatedByUserID = delivery.CreatedByUserID
		deliveryDTOs[i].CreatedAt = delivery.CreatedAt
		deliveryDTOs[i].UpdatedAt = delivery.UpdatedAt
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(deliveryDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.DeliveryFilter, error) {
	var filter entities.DeliveryFilter
	query := r.URL.Query()

	if dateStr := query.Get("date"); dateStr != "" {
		date, err := time.Parse(time.DateOnly, dateStr)
		if err != nil {
			return entities.DeliveryFilter{}, err
		}
		filter.Date = &date
	}
	if courierIDStr := query.Get("courier_id"); courierIDStr != "" {
		courierID, err := strconv.ParseInt(courierIDStr, 10, 64)
		if err != nil {
			return entities.DeliveryFilter{}, err
		}
		filter.CourierID = &courierID
	}
	if statusStr := query.Get("status"); statusStr != "" {
		status := entities.DeliveryStatusType(statusStr)
		filter.Status = &status
	}

	return filter, nil
}
