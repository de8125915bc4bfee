package selection

import (
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// AvailabilityQuery интерфейс сервиса доступности столиков
type AvailabilityQuery interface {
	IsAvailable(date domain.DateKey, slot domain.TimeSlot, resource domain.ResourceID) bool
}

// ChangePublisher интерфейс рассылки уведомлений об изменениях
type ChangePublisher interface {
	Publish(change domain.Change)
}

// Metrics интерфейс метрик сессий выбора
type Metrics interface {
	IncSelectionRejected()
	SetActiveSessions(count int)
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
