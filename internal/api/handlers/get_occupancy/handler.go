package get_occupancy

import (
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

const (
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHour = "некорректный формат времени, ожидается HH:MM"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/occupancy
// Query params: date (YYYY-MM-DD), hour (HH:MM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := domain.ParseDateKey(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /occupancy - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slot, err := domain.ParseTimeToSlot(query.Get("hour"))
	if err != nil {
		h.logger.Warn("GET /occupancy - Invalid hour: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHour)
		return
	}

	response := toResponse(
		date,
		slot,
		h.service.IsAnyOccupantAt(date, slot),
		h.service.OccupantsOf(date, slot),
		h.service.Snapshot(),
	)

	handlers.RespondJSON(w, http.StatusOK, response)
}
