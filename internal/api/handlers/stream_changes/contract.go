package stream_changes

import "github.com/m04kA/SMC-TableBooking/internal/domain"

type ChangeSubscriber interface {
	Subscribe(buffer int) (<-chan domain.Change, func())
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
