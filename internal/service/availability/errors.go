package availability

import "errors"

var (
	// ErrStaleGeneration возвращается, когда уже опубликован индекс более нового обновления
	ErrStaleGeneration = errors.New("availability: stale occupancy generation")

	// ErrNilIndex возвращается при попытке опубликовать пустой снимок
	ErrNilIndex = errors.New("availability: occupancy index is nil")
)
