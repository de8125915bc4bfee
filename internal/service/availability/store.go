package availability

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Store хранит опубликованный снимок индекса занятости.
// Читатели получают снимок без блокировок; публикация сравнивает поколения,
// чтобы результат более старого обновления не перезаписал более новый.
type Store struct {
	issued  atomic.Uint64
	current atomic.Pointer[domain.OccupancySnapshot]
	mu      sync.Mutex
}

// NewStore создает хранилище с пустым индексом поколения 0
func NewStore() *Store {
	s := &Store{}
	s.current.Store(&domain.OccupancySnapshot{Index: domain.NewOccupancyIndex()})
	return s
}

// Begin выдает номер поколения для нового обновления
func (s *Store) Begin() uint64 {
	return s.issued.Add(1)
}

// Load возвращает текущий опубликованный снимок, никогда nil
func (s *Store) Load() *domain.OccupancySnapshot {
	return s.current.Load()
}

// Commit публикует снимок, если его поколение новее опубликованного
func (s *Store) Commit(snapshot *domain.OccupancySnapshot) error {
	if snapshot == nil || snapshot.Index == nil {
		return ErrNilIndex
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	applied := s.current.Load().Generation
	if snapshot.Generation <= applied {
		return fmt.Errorf("%w: generation=%d, applied=%d", ErrStaleGeneration, snapshot.Generation, applied)
	}

	s.current.Store(snapshot)
	return nil
}
