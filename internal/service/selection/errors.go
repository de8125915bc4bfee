package selection

import "errors"

var (
	// ErrSessionNotFound возвращается, когда сессия выбора не найдена или уже закрыта
	ErrSessionNotFound = errors.New("selection: session not found")
)
