package refresh_occupancy

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	refreshOccupancy "github.com/m04kA/SMC-TableBooking/internal/usecase/refresh_occupancy"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidWindow      = "некорректное окно дат, ожидаются minDate и maxDate в формате YYYY-MM-DD"
	msgSourceUnavailable  = "не удалось получить бронирования, используется предыдущий индекс занятости"
)

type Handler struct {
	useCase RefreshOccupancyUseCase
	logger  Logger
}

func NewHandler(useCase RefreshOccupancyUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/refresh
// Body (optional): {"minDate": "YYYY-MM-DD", "maxDate": "YYYY-MM-DD"}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req RefreshRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /refresh - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /refresh - Invalid window: %v", err)
		handlers.RespondBadRequest(w, msgInvalidWindow)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, refreshOccupancy.ErrInvalidInput):
			h.logger.Warn("POST /refresh - Invalid window: %v", err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, refreshOccupancy.ErrTransport):
			h.logger.Error("POST /refresh - Source unavailable: %v", err)
			handlers.RespondBadGateway(w, msgSourceUnavailable)

		default:
			h.logger.Error("POST /refresh - Failed to refresh occupancy: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /refresh - Refresh finished: generation=%d, applied=%t, entries=%d",
		result.Generation, result.Applied, result.Entries)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
