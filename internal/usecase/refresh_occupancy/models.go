package refresh_occupancy

import "github.com/m04kA/SMC-TableBooking/internal/domain"

// Request модель запроса на обновление индекса занятости
type Request struct {
	Window *domain.DateWindow // nil - окно по умолчанию: сегодня + windowDays
}

// Response модель ответа с результатом обновления
type Response struct {
	Generation uint64
	Applied    bool // false, если пока шло обновление, опубликовали более новый индекс
	Window     domain.DateWindow
	Records    int
	Skipped    int // записи с некорректной датой или временем
	Dates      int
	Entries    int
}
