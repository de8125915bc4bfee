package stream_changes

import (
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// ChangeEvent модель события в потоке изменений
type ChangeEvent struct {
	Kind       domain.ChangeKind  `json:"kind"`
	Generation uint64             `json:"generation,omitempty"`
	SessionID  string             `json:"sessionId,omitempty"`
	Selected   *domain.ResourceID `json:"selected,omitempty"`
	Cleared    *domain.ResourceID `json:"cleared,omitempty"`
	At         time.Time          `json:"at"`
}

func toEvent(change domain.Change) ChangeEvent {
	event := ChangeEvent{
		Kind:       change.Kind,
		Generation: change.Generation,
		SessionID:  change.SessionID,
		At:         change.At,
	}
	if change.Selected != "" {
		selected := change.Selected
		event.Selected = &selected
	}
	if change.Cleared != "" {
		cleared := change.Cleared
		event.Cleared = &cleared
	}
	return event
}
