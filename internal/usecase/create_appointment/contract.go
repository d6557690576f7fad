package create_appointment

import (
	"context"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	"github.com/consultarprocessos/CP-SchedulingService/internal/notifier"
)

// SlotRepository интерфейс репозитория слотов
type SlotRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	Claim(ctx context.Context, id string) error
}

// AppointmentRepository интерфейс репозитория агендаментов
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки подтверждения бронирования
type Notifier interface {
	SendBookingConfirmation(ctx context.Context, appt *domain.Appointment, contact notifier.Contact) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
