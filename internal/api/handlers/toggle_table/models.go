package toggle_table

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// ToggleRequest HTTP request model. Номер столика принимается числом или строкой
type ToggleRequest struct {
	Table domain.ResourceID `json:"table"`
}
