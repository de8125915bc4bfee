package handlers

import (
	"time"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// SessionResponse модель сессии выбора столика
type SessionResponse struct {
	ID            string             `json:"id"`
	Date          string             `json:"date"`
	Hour          string             `json:"hour"`
	SelectedTable *domain.ResourceID `json:"selectedTable"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// SelectionResponse модель ответа на действие гостя.
// Cleared - столик, с которого нужно снять отметку выбора
type SelectionResponse struct {
	Session SessionResponse    `json:"session"`
	Cleared *domain.ResourceID `json:"cleared,omitempty"`
}

// FromSession конвертирует сессию в HTTP модель
func FromSession(session domain.SelectionSession) SessionResponse {
	response := SessionResponse{
		ID:        session.ID,
		Date:      string(session.Date),
		Hour:      session.Slot.String(),
		CreatedAt: session.CreatedAt,
		UpdatedAt: session.UpdatedAt,
	}
	if table, ok := session.Selection.Resource(); ok {
		response.SelectedTable = &table
	}
	return response
}

// FromSelection конвертирует результат действия гостя в HTTP модель
func FromSelection(session domain.SelectionSession, cleared domain.ResourceID) SelectionResponse {
	response := SelectionResponse{Session: FromSession(session)}
	if cleared != "" {
		response.Cleared = &cleared
	}
	return response
}
