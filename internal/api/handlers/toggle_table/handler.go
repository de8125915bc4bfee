package toggle_table

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/selection"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTable       = "некорректный номер столика"
	msgNotFound           = "сессия не найдена"
)

type Handler struct {
	service SelectionService
	logger  Logger
}

func NewHandler(service SelectionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/toggle
// Клик по столику: выбрать, снять выбор или 409, если столик занят
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ToggleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/toggle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Toggle(sessionID, string(req.Table))
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrOccupiedConflict):
			handlers.RespondConflict(w, domain.RejectedOccupiedMessage)

		case errors.Is(err, domain.ErrInvalidResource):
			h.logger.Warn("POST /sessions/{id}/toggle - Invalid table: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidTable)

		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/toggle - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("POST /sessions/{id}/toggle - Failed to toggle table: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSelection(result.Session, result.Cleared))
}
