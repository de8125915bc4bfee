package domain

import "errors"

var (
	// ErrParse возвращается при некорректном формате даты или времени
	ErrParse = errors.New("domain: parse error")

	// ErrOccupiedConflict возвращается при попытке выбрать занятый столик
	ErrOccupiedConflict = errors.New("domain: table is already booked")

	// ErrInvalidResource возвращается при пустом или слишком длинном идентификаторе столика
	ErrInvalidResource = errors.New("domain: invalid table id")
)
