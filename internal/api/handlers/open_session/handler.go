package open_session

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidContext     = "некорректные дата или время, ожидается YYYY-MM-DD и HH:MM"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req OpenSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.Open(req.Date, req.Hour)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrParse):
			h.logger.Warn("POST /sessions - Invalid context: date=%q, hour=%q", req.Date, req.Hour)
			handlers.RespondBadRequest(w, msgInvalidContext)

		default:
			h.logger.Error("POST /sessions - Failed to open session: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions - Session opened: session=%s", session.ID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromSession(*session))
}
