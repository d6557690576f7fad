package create_appointment

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	// (в том числе когда переданный ID устарел после изменения слотов)
	ErrSlotNotFound = errors.New("create_appointment: slot not found")

	// ErrSlotAlreadyBooked возвращается, когда слот уже занят другим агендаментом
	// Это штатный исход конкурентного бронирования: вызывающая сторона
	// перезапрашивает доступность и выбирает другой слот
	ErrSlotAlreadyBooked = errors.New("create_appointment: slot already booked")

	// ErrModeNotAllowed возвращается, когда тип консультации несовместим
	// с разрешенным типом слота
	ErrModeNotAllowed = errors.New("create_appointment: mode not allowed for this slot")

	// ErrMissingRequiredField возвращается при отсутствии обязательного поля
	ErrMissingRequiredField = errors.New("create_appointment: missing required field")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
