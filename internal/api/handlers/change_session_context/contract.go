package change_session_context

import "github.com/m04kA/SMC-TableBooking/internal/service/selection"

type SelectionService interface {
	ChangeContext(id, date, hour string) (*selection.Result, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
