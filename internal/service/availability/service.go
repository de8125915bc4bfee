package availability

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Service отвечает на вопросы "свободен ли столик R в дату D и время T"
// по последнему полностью собранному индексу занятости
type Service struct {
	store    *Store
	notifier *Notifier
	logger   Logger
}

// NewService создает новый экземпляр сервиса доступности
func NewService(store *Store, notifier *Notifier, logger Logger) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		logger:   logger,
	}
}

// IsAvailable возвращает true, если столик свободен
func (s *Service) IsAvailable(date domain.DateKey, slot domain.TimeSlot, resource domain.ResourceID) bool {
	return !s.store.Load().Index.IsOccupied(date, slot, resource)
}

// IsAnyOccupantAt возвращает true, если в этот слот занят хотя бы один столик
func (s *Service) IsAnyOccupantAt(date domain.DateKey, slot domain.TimeSlot) bool {
	return s.store.Load().Index.IsAnyOccupantAt(date, slot)
}

// OccupantsOf возвращает занятые столики в слоте
func (s *Service) OccupantsOf(date domain.DateKey, slot domain.TimeSlot) []domain.ResourceID {
	return s.store.Load().Index.OccupantsOf(date, slot)
}

// Snapshot возвращает текущий опубликованный снимок
func (s *Service) Snapshot() *domain.OccupancySnapshot {
	return s.store.Load()
}

// Generation возвращает поколение опубликованного индекса, 0 до первого обновления
func (s *Service) Generation() uint64 {
	return s.store.Load().Generation
}

// RefreshedAt возвращает время публикации текущего индекса
func (s *Service) RefreshedAt() time.Time {
	return s.store.Load().RefreshedAt
}

// BeginRefresh выдает поколение для нового обновления данных
func (s *Service) BeginRefresh() uint64 {
	return s.store.Begin()
}

// Commit публикует собранный индекс и уведомляет подписчиков.
// Устаревший результат отбрасывается с ErrStaleGeneration, текущий индекс остается в силе.
func (s *Service) Commit(snapshot *domain.OccupancySnapshot) error {
	if err := s.store.Commit(snapshot); err != nil {
		if errors.Is(err, ErrStaleGeneration) {
			s.logger.Warn("Availability: discarded stale snapshot: %v", err)
		}
		return err
	}

	s.logger.Info("Availability: published generation=%d, window=%s, entries=%d",
		snapshot.Generation, snapshot.Window, snapshot.Index.Len())

	s.notifier.Publish(domain.Change{
		Kind:       domain.ChangeOccupancy,
		Generation: snapshot.Generation,
		At:         time.Now(),
	})

	return nil
}

// Publish пробрасывает уведомление об изменении выбора столика
func (s *Service) Publish(change domain.Change) {
	s.notifier.Publish(change)
}

// Subscribe подписывает слой отрисовки на изменения занятости и выбора
func (s *Service) Subscribe(buffer int) (<-chan domain.Change, func()) {
	return s.notifier.Subscribe(buffer)
}
