package refresh_occupancy

import (
	"context"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// RecordSource интерфейс источника бронирований и событий (backend API или PostgreSQL)
type RecordSource interface {
	GetBookings(ctx context.Context, window domain.DateWindow) ([]domain.Record, error)
	GetEvents(ctx context.Context, window domain.DateWindow) ([]domain.Record, error)
	GetRepeatingEvents(ctx context.Context, window domain.DateWindow) ([]domain.Record, error)
}

// OccupancyPublisher интерфейс публикации индекса занятости
type OccupancyPublisher interface {
	BeginRefresh() uint64
	Commit(snapshot *domain.OccupancySnapshot) error
}

// Metrics интерфейс метрик обновления
type Metrics interface {
	ObserveRefresh(result string, duration time.Duration)
	SetOccupancy(entries int, generation uint64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
