package create_reservation

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия выбора не найдена
	ErrSessionNotFound = errors.New("create_reservation: session not found")

	// ErrNothingSelected возвращается, когда в сессии не выбран столик
	ErrNothingSelected = errors.New("create_reservation: no table selected")

	// ErrTableOccupied возвращается, когда выбранный столик успели занять
	ErrTableOccupied = errors.New("create_reservation: table is already booked")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrTransport возвращается, когда backend не принял бронирование
	ErrTransport = errors.New("create_reservation: failed to submit reservation")
)
