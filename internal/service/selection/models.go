package selection

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// Result состояние сессии после действия гостя.
// Cleared - столик, с которого нужно снять отметку выбора (пусто, если такого нет).
type Result struct {
	Session domain.SelectionSession
	Cleared domain.ResourceID
}
