package get_availability

import (
	"net/http"

	"github.com/m04kA/SMC-TableBooking/internal/api/handlers"
	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

const (
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidHour  = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTable = "некорректный номер столика"
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

// Handle GET /api/v1/availability
// Query params: date (YYYY-MM-DD), hour (HH:MM), table
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	date, err := domain.ParseDateKey(query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	slot, err := domain.ParseTimeToSlot(query.Get("hour"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid hour: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHour)
		return
	}

	table, err := domain.NewResourceID(query.Get("table"))
	if err != nil {
		h.logger.Warn("GET /availability - Invalid table: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTable)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, AvailabilityResponse{
		Date:      string(date),
		Hour:      slot.String(),
		Table:     table,
		Available: h.service.IsAvailable(date, slot, table),
	})
}
