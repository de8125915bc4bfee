package refresh_occupancy

import "errors"

var (
	// ErrTransport возвращается, когда не удалось получить хотя бы один из трёх списков.
	// Ранее опубликованный индекс остаётся в силе.
	ErrTransport = errors.New("refresh: failed to fetch reservation records")

	// ErrInvalidInput возвращается при некорректном окне дат
	ErrInvalidInput = errors.New("refresh: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("refresh: internal error")
)
