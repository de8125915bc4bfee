package availability

import (
	"sync"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// Notifier рассылает уведомления об изменениях подписчикам (слой отрисовки).
// Медленный подписчик не блокирует публикацию: если его буфер заполнен, событие для него теряется.
type Notifier struct {
	mu     sync.RWMutex
	nextID int
	subs   map[int]chan domain.Change
}

// NewNotifier создает новый экземпляр рассыльщика
func NewNotifier() *Notifier {
	return &Notifier{
		subs: make(map[int]chan domain.Change),
	}
}

// Subscribe возвращает канал уведомлений и функцию отписки
func (n *Notifier) Subscribe(buffer int) (<-chan domain.Change, func()) {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan domain.Change, buffer)

	n.mu.Lock()
	id := n.nextID
	n.nextID++
	n.subs[id] = ch
	n.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			n.mu.Lock()
			delete(n.subs, id)
			n.mu.Unlock()
			close(ch)
		})
	}

	return ch, unsubscribe
}

// Publish отправляет уведомление всем подписчикам
func (n *Notifier) Publish(change domain.Change) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for _, ch := range n.subs {
		select {
		case ch <- change:
		default:
		}
	}
}

// Subscribers возвращает количество активных подписчиков
func (n *Notifier) Subscribers() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}
