package domain

import (
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

// AppointmentStatus represents the status of a consultation appointment
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// AppointmentOrigin tags where the appointment was created from
type AppointmentOrigin string

const (
	OriginSite  AppointmentOrigin = "site"
	OriginAdmin AppointmentOrigin = "admin"
)

// Appointment represents a confirmed consultation claiming exactly one slot
type Appointment struct {
	ID         string
	SlotID     string
	ClientID   string
	ClientName string

	// ProcessReference optionally links the consultation to a tracked legal process
	ProcessReference *string

	// Date, StartTime and EndTime are copied from the claimed slot at booking
	// time so the appointment stays meaningful even if the slot is altered
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	Mode   ConsultationMode
	Notes  *string
	Origin AppointmentOrigin
	Status AppointmentStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the appointment has not been cancelled
func (a *Appointment) IsActive() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled returns true if the appointment can still be cancelled
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled
}

// CanBeCompleted returns true if the appointment can be marked as completed
func (a *Appointment) CanBeCompleted() bool {
	return a.Status == StatusScheduled
}

// AppointmentsFilter фильтр для выборки агендаментов
type AppointmentsFilter struct {
	ClientID  *string            // Фильтр по клиенту (опционально)
	StartDate *time.Time         // Начало периода (опционально)
	EndDate   *time.Time         // Конец периода (опционально)
	Status    *AppointmentStatus // Фильтр по статусу (опционально)
}
