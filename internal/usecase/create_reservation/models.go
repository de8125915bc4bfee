package create_reservation

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// Request модель запроса на бронирование выбранного столика
type Request struct {
	SessionID string
	Duration  float64 // часы
	People    int
	Starters  []string
	Phone     string
	Address   string
}

// Response модель ответа с созданным бронированием
type Response struct {
	Reservation domain.Reservation
	Cleared     domain.ResourceID // столик, с которого снята отметка выбора
	Refreshed   bool              // false, если обновление индекса не удалось
}
