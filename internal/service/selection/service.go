package selection

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Service хранит выбор столика для каждой сессии гостя.
// Выбор имеет смысл только для той даты и того времени, для которых он сделан.
type Service struct {
	mu           sync.Mutex
	sessions     map[string]*domain.SelectionSession
	maxSessions  int
	availability AvailabilityQuery
	publisher    ChangePublisher
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса выбора столика
func NewService(
	availability AvailabilityQuery,
	publisher ChangePublisher,
	metrics Metrics,
	maxSessions int,
	logger Logger,
) *Service {
	return &Service{
		sessions:     make(map[string]*domain.SelectionSession),
		maxSessions:  maxSessions,
		availability: availability,
		publisher:    publisher,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Open открывает сессию выбора для даты и времени
func (s *Service) Open(date, hour string) (*domain.SelectionSession, error) {
	dateKey, slot, err := parseContext(date, hour)
	if err != nil {
		s.logger.Warn("Selection.Open: invalid context date=%q, hour=%q: %v", date, hour, err)
		return nil, err
	}

	now := s.timeProvider.Now()
	session := &domain.SelectionSession{
		ID:        uuid.NewString(),
		Date:      dateKey,
		Slot:      slot,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	if len(s.sessions) >= s.maxSessions {
		s.evictOldestLocked()
	}
	s.sessions[session.ID] = session
	count := len(s.sessions)
	result := *session
	s.mu.Unlock()

	s.metrics.SetActiveSessions(count)
	s.logger.Info("Selection.Open: session=%s, date=%s, hour=%s", result.ID, result.Date, result.Slot)

	return &result, nil
}

// Get возвращает копию сессии
func (s *Service) Get(id string) (*domain.SelectionSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrSessionNotFound
	}

	result := *session
	return &result, nil
}

// ChangeContext переключает сессию на другую дату или время и сбрасывает выбор
func (s *Service) ChangeContext(id, date, hour string) (*Result, error) {
	dateKey, slot, err := parseContext(date, hour)
	if err != nil {
		s.logger.Warn("Selection.ChangeContext: session=%s, invalid context date=%q, hour=%q: %v", id, date, hour, err)
		return nil, err
	}

	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	transition := domain.ResetSelection(session.Selection)
	session.Date = dateKey
	session.Slot = slot
	session.Selection = transition.State
	session.UpdatedAt = s.timeProvider.Now()
	result := &Result{Session: *session, Cleared: transition.Cleared}
	s.mu.Unlock()

	s.logger.Info("Selection.ChangeContext: session=%s, date=%s, hour=%s", id, dateKey, slot)
	s.publish(result)

	return result, nil
}

// Toggle обрабатывает клик по столику: выбирает его, снимает выбор или отказывает, если столик занят
func (s *Service) Toggle(id, resource string) (*Result, error) {
	resourceID, err := domain.NewResourceID(resource)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	occupied := !s.availability.IsAvailable(session.Date, session.Slot, resourceID)
	transition, err := domain.Select(session.Selection, resourceID, occupied)
	if err != nil {
		s.mu.Unlock()
		if errors.Is(err, domain.ErrOccupiedConflict) {
			s.metrics.IncSelectionRejected()
			s.logger.Info("Selection.Toggle: session=%s, table=%s is already booked", id, resourceID)
		}
		return nil, err
	}

	session.Selection = transition.State
	session.UpdatedAt = s.timeProvider.Now()
	result := &Result{Session: *session, Cleared: transition.Cleared}
	s.mu.Unlock()

	s.publish(result)
	return result, nil
}

// Reset сбрасывает выбор столика в сессии
func (s *Service) Reset(id string) (*Result, error) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrSessionNotFound
	}

	transition := domain.ResetSelection(session.Selection)
	session.Selection = transition.State
	session.UpdatedAt = s.timeProvider.Now()
	result := &Result{Session: *session, Cleared: transition.Cleared}
	s.mu.Unlock()

	s.publish(result)
	return result, nil
}

// Close закрывает сессию
func (s *Service) Close(id string) error {
	s.mu.Lock()
	if _, ok := s.sessions[id]; !ok {
		s.mu.Unlock()
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	count := len(s.sessions)
	s.mu.Unlock()

	s.metrics.SetActiveSessions(count)
	s.logger.Info("Selection.Close: session=%s", id)
	return nil
}

// evictOldestLocked удаляет сессию, которая дольше всех не менялась. Вызывается под s.mu
func (s *Service) evictOldestLocked() {
	var oldest *domain.SelectionSession
	for _, session := range s.sessions {
		if oldest == nil || session.UpdatedAt.Before(oldest.UpdatedAt) {
			oldest = session
		}
	}
	if oldest != nil {
		delete(s.sessions, oldest.ID)
		s.logger.Warn("Selection: session limit %d reached, evicted session=%s", s.maxSessions, oldest.ID)
	}
}

func (s *Service) publish(result *Result) {
	selected, _ := result.Session.Selection.Resource()
	s.publisher.Publish(domain.Change{
		Kind:      domain.ChangeSelection,
		SessionID: result.Session.ID,
		Selected:  selected,
		Cleared:   result.Cleared,
		At:        result.Session.UpdatedAt,
	})
}

func parseContext(date, hour string) (domain.DateKey, domain.TimeSlot, error) {
	dateKey, err := domain.ParseDateKey(date)
	if err != nil {
		return "", 0, err
	}

	slot, err := domain.ParseTimeToSlot(hour)
	if err != nil {
		return "", 0, err
	}

	return dateKey, slot, nil
}
