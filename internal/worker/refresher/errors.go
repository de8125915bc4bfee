package refresher

import "errors"

var (
	// ErrInvalidSchedule возвращается при некорректном cron-выражении
	ErrInvalidSchedule = errors.New("refresher: invalid schedule")
)
