package domain

import "errors"

var (
	// ErrMalformedTimeSlot возвращается, когда HH:MM не парсится или начало слота не раньше конца
	ErrMalformedTimeSlot = errors.New("malformed time slot")

	// ErrInvalidSessionDuration возвращается при неположительной или слишком большой длительности сессии
	ErrInvalidSessionDuration = errors.New("invalid session duration")

	// ErrInvalidDate возвращается, когда строка не является календарной датой YYYY-MM-DD
	ErrInvalidDate = errors.New("invalid calendar date")

	// ErrInvalidSpecialDateType возвращается для неизвестного типа особой даты
	ErrInvalidSpecialDateType = errors.New("invalid special date type")
)
