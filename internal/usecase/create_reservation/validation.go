package create_reservation

import (
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-TableBooking/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SessionID == "" {
		return fmt.Errorf("%w: sessionID is required", ErrInvalidInput)
	}

	if req.Duration < domain.MinDurationHours || req.Duration > domain.MaxDurationHours {
		return fmt.Errorf("%w: duration must be between %.1f and %d hours", ErrInvalidInput,
			domain.MinDurationHours, domain.MaxDurationHours)
	}

	// Длительность кратна получасу, как и сетка слотов
	if math.Mod(req.Duration, float64(domain.SlotStep)) != 0 {
		return fmt.Errorf("%w: duration must be a multiple of %.1f hours", ErrInvalidInput, float64(domain.SlotStep))
	}

	if req.People < domain.MinPeople || req.People > domain.MaxPeople {
		return fmt.Errorf("%w: people must be between %d and %d", ErrInvalidInput, domain.MinPeople, domain.MaxPeople)
	}

	if len(req.Starters) > domain.MaxStarters {
		return fmt.Errorf("%w: at most %d starters allowed", ErrInvalidInput, domain.MaxStarters)
	}

	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		return fmt.Errorf("%w: phone is required", ErrInvalidInput)
	}
	if len(phone) > domain.MaxPhoneLength {
		return fmt.Errorf("%w: phone is longer than %d characters", ErrInvalidInput, domain.MaxPhoneLength)
	}

	if len(req.Address) > domain.MaxAddressLength {
		return fmt.Errorf("%w: address is longer than %d characters", ErrInvalidInput, domain.MaxAddressLength)
	}

	return nil
}
