package generate_slots

import "errors"

var (
	// ErrInvalidDateRange возвращается при некорректном диапазоне дат
	ErrInvalidDateRange = errors.New("generate_slots: invalid date range")

	// ErrInvalidTimeWindow возвращается при некорректном окне времени дня
	ErrInvalidTimeWindow = errors.New("generate_slots: invalid time window")

	// ErrInvalidDuration возвращается при недопустимой длительности слота
	ErrInvalidDuration = errors.New("generate_slots: invalid slot duration")

	// ErrEmptyWeekdays возвращается при пустом наборе дней недели
	ErrEmptyWeekdays = errors.New("generate_slots: weekdays set is empty")

	// ErrInvalidWeekday возвращается при дне недели вне диапазона 1-7
	ErrInvalidWeekday = errors.New("generate_slots: invalid weekday")

	// ErrInvalidMode возвращается при недопустимом типе консультации
	ErrInvalidMode = errors.New("generate_slots: invalid consultation mode")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("generate_slots: internal error")
)
