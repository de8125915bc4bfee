package open_session

import "github.com/m04kA/SMC-TableBooking/internal/domain"

type SelectionService interface {
	Open(date, hour string) (*domain.SelectionSession, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
