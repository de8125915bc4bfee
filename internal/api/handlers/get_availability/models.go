package get_availability

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date      string            `json:"date"`
	Hour      string            `json:"hour"`
	Table     domain.ResourceID `json:"table"`
	Available bool              `json:"available"`
}
