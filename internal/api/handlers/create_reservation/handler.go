package create_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	createReservation "github.com/m04kA/SMC-TableBooking/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgNotFound           = "сессия не найдена"
	msgNothingSelected    = "столик не выбран"
	msgBackendUnavailable = "не удалось отправить бронирование, попробуйте позже"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(sessionID))
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/reservations - Invalid input: session=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createReservation.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/reservations - Session not found: session=%s", sessionID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, createReservation.ErrNothingSelected):
			h.logger.Warn("POST /sessions/{id}/reservations - Nothing selected: session=%s", sessionID)
			handlers.RespondBadRequest(w, msgNothingSelected)

		case errors.Is(err, createReservation.ErrTableOccupied):
			handlers.RespondConflict(w, domain.RejectedOccupiedMessage)

		case errors.Is(err, createReservation.ErrTransport):
			h.logger.Error("POST /sessions/{id}/reservations - Backend rejected reservation: session=%s, error=%v", sessionID, err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /sessions/{id}/reservations - Failed to create reservation: session=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/reservations - Reservation created: session=%s, id=%d, table=%s",
		sessionID, result.Reservation.ID, result.Reservation.Table)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
