package auth_me_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"courier-management/internal/generated/dto"
	"courier-management/internal/pkg/auth"
	authservice "courier-management/internal/service/auth"
	"courier-management/pkg/logger"
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

	user, err := h.service.CurrentUser(r.Context(), actor.UserID)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrUserNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.CurrentUserResponse{
		ID:    user.ID,
		Login: user.Login,
		Role:  user.Role.String(),
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
