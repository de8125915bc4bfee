package get_availability

import "github.com/m04kA/SMC-TableBooking/internal/domain"

type AvailabilityService interface {
	IsAvailable(date domain.DateKey, slot domain.TimeSlot, resource domain.ResourceID) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
