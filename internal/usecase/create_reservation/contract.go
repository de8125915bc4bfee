package create_reservation

import (
	"context"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
	"github.com/m04kA/SMC-TableBooking/internal/service/selection"
	refreshOccupancyUC "github.com/m04kA/SMC-TableBooking/internal/usecase/refresh_occupancy"
)

// ReservationCreator интерфейс отправки бронирования в backend (HTTP API или PostgreSQL)
type ReservationCreator interface {
	CreateReservation(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
}

// SelectionService интерфейс сервиса сессий выбора столика
type SelectionService interface {
	Get(id string) (*domain.SelectionSession, error)
	Reset(id string) (*selection.Result, error)
}

// AvailabilityQuery интерфейс сервиса доступности столиков
type AvailabilityQuery interface {
	IsAvailable(date domain.DateKey, slot domain.TimeSlot, resource domain.ResourceID) bool
}

// OccupancyRefresher интерфейс обновления индекса занятости после бронирования
type OccupancyRefresher interface {
	Execute(ctx context.Context, req *refreshOccupancyUC.Request) (*refreshOccupancyUC.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
