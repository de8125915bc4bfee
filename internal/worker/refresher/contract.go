package refresher

import (
	"context"

	refreshOccupancyUC "github.com/m04kA/SMC-TableBooking/internal/usecase/refresh_occupancy"
)

// RefreshUseCase интерфейс use case обновления индекса занятости
type RefreshUseCase interface {
	Execute(ctx context.Context, req *refreshOccupancyUC.Request) (*refreshOccupancyUC.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
