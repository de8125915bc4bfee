package create_reservation

import (
	"github.com/m04kA/SMC-TableBooking/internal/domain"
	createReservation "github.com/m04kA/SMC-TableBooking/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Duration float64  `json:"duration"` // часы
	People   int      `json:"people"`
	Starters []string `json:"starters"`
	Phone    string   `json:"phone"`
	Address  string   `json:"address"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        int64              `json:"id"`
	Date      string             `json:"date"`
	Hour      string             `json:"hour"`
	Table     domain.ResourceID  `json:"table"`
	Duration  float64            `json:"duration"`
	People    int                `json:"people"`
	Starters  []string           `json:"starters"`
	Phone     string             `json:"phone"`
	Address   string             `json:"address"`
	Cleared   *domain.ResourceID `json:"cleared,omitempty"`
	Refreshed bool               `json:"refreshed"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r CreateReservationRequest) ToUseCaseRequest(sessionID string) *createReservation.Request {
	return &createReservation.Request{
		SessionID: sessionID,
		Duration:  r.Duration,
		People:    r.People,
		Starters:  r.Starters,
		Phone:     r.Phone,
		Address:   r.Address,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) ReservationResponse {
	starters := resp.Reservation.Starters
	if starters == nil {
		starters = []string{}
	}

	response := ReservationResponse{
		ID:        resp.Reservation.ID,
		Date:      string(resp.Reservation.Date),
		Hour:      resp.Reservation.Hour,
		Table:     resp.Reservation.Table,
		Duration:  resp.Reservation.Duration,
		People:    resp.Reservation.People,
		Starters:  starters,
		Phone:     resp.Reservation.Phone,
		Address:   resp.Reservation.Address,
		Refreshed: resp.Refreshed,
	}
	if resp.Cleared != "" {
		cleared := resp.Cleared
		response.Cleared = &cleared
	}
	return response
}
