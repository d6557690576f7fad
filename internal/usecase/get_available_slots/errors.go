package get_available_slots

import "errors"

var (
	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("get_available_slots: invalid date range")

	// ErrInvalidMode возвращается при недопустимом фильтре типа консультации
	ErrInvalidMode = errors.New("get_available_slots: invalid consultation mode filter")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
