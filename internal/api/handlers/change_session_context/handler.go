package change_session_context

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
	msgInvalidContext     = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
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

// Handle PUT /api/v1/sessions/{sessionId}/context
// Смена даты или времени сбрасывает выбранный столик
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req ChangeContextRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /sessions/{id}/context - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.ChangeContext(sessionID, req.Date, req.Hour)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParse):
			h.logger.Warn("PUT /sessions/{id}/context - Invalid context: session=%s, date=%q, hour=%q",
				sessionID, req.Date, req.Hour)
			handlers.RespondBadRequest(w, msgInvalidContext)

		case errors.Is(err, selection.ErrSessionNotFound):
			h.logger.Warn("PUT /sessions/{id}/context - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("PUT /sessions/{id}/context - Failed to change context: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromSelection(result.Session, result.Cleared))
}
