package venueapi

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// Params имена эндпоинтов и query параметров backend API
type Params struct {
	BookingPath    string // "booking"
	EventPath      string // "event"
	DateStartParam string // "date_gte"
	DateEndParam   string // "date_lte"
	RepeatParam    string // готовый фрагмент query, например "repeat_ne=false"
	NotRepeatParam string // готовый фрагмент query, например "repeat=false"
}

// RecordPayload строка бронирования или события в том виде, в котором её отдаёт backend
type RecordPayload struct {
	ID       int64             `json:"id"`
	Date     string            `json:"date,omitempty"`
	Hour     string            `json:"hour"`
	Duration float64           `json:"duration"`
	Table    domain.ResourceID `json:"table"`
	Repeat   domain.RepeatRule `json:"repeat"`
}

// ReservationPayload тело POST запроса на создание бронирования
type ReservationPayload struct {
	ID       int64             `json:"id,omitempty"`
	Date     string            `json:"date"`
	Hour     string            `json:"hour"`
	Table    domain.ResourceID `json:"table"`
	Duration float64           `json:"duration"`
	People   int               `json:"ppl"`
	Starters []string          `json:"starters"`
	Phone    string            `json:"phone"`
	Address  string            `json:"address"`
}

// toBooking конвертирует строку в разовое бронирование
func (p RecordPayload) toBooking() domain.Record {
	record := domain.NewBooking(domain.DateKey(p.Date), p.Hour, p.Duration, p.Table)
	record.ID = p.ID
	return record
}

// toEvent конвертирует строку в разовое событие
func (p RecordPayload) toEvent() domain.Record {
	record := domain.NewEvent(domain.DateKey(p.Date), p.Hour, p.Duration, p.Table)
	record.ID = p.ID
	return record
}

// toRepeatingEvent конвертирует строку в повторяющееся событие
func (p RecordPayload) toRepeatingEvent() domain.Record {
	record := domain.NewRepeatingEvent(p.Repeat, p.Hour, p.Duration, p.Table)
	record.ID = p.ID
	return record
}

func fromReservation(r *domain.Reservation) ReservationPayload {
	starters := r.Starters
	if starters == nil {
		starters = []string{}
	}

	return ReservationPayload{
		Date:     string(r.Date),
		Hour:     r.Hour,
		Table:    r.Table,
		Duration: r.Duration,
		People:   r.People,
		Starters: starters,
		Phone:    r.Phone,
		Address:  r.Address,
	}
}

func (p ReservationPayload) toReservation() *domain.Reservation {
	return &domain.Reservation{
		ID:       p.ID,
		Date:     domain.DateKey(p.Date),
		Hour:     p.Hour,
		Table:    p.Table,
		Duration: p.Duration,
		People:   p.People,
		Starters: p.Starters,
		Phone:    p.Phone,
		Address:  p.Address,
	}
}
