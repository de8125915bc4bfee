package get_occupancy

import "github.com/m04kA/SMC-TableBooking/internal/domain"

type AvailabilityService interface {
	IsAnyOccupantAt(date domain.DateKey, slot domain.TimeSlot) bool
	OccupantsOf(date domain.DateKey, slot domain.TimeSlot) []domain.ResourceID
	Snapshot() *domain.OccupancySnapshot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
