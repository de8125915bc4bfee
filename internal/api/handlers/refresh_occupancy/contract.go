package refresh_occupancy

import (
	"context"

	refreshOccupancy "github.com/m04kA/SMC-TableBooking/internal/usecase/refresh_occupancy"
)

type RefreshOccupancyUseCase interface {
	Execute(ctx context.Context, req *refreshOccupancy.Request) (*refreshOccupancy.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
