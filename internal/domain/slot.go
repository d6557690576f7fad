package domain

import (
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

// ConsultationMode represents how a consultation is held
type ConsultationMode string

const (
	ModeOnline   ConsultationMode = "online"
	ModeInPerson ConsultationMode = "in_person"
	// ModeBoth is valid only as a slot's allowed mode or a query filter,
	// never as the mode of a concrete appointment
	ModeBoth ConsultationMode = "both"
)

// IsValidSlotMode returns true if the mode can be assigned to a slot
func IsValidSlotMode(m ConsultationMode) bool {
	return m == ModeOnline || m == ModeInPerson || m == ModeBoth
}

// IsValidAppointmentMode returns true if the mode can be assigned to an appointment
func IsValidAppointmentMode(m ConsultationMode) bool {
	return m == ModeOnline || m == ModeInPerson
}

// Slot represents a single bookable availability window
type Slot struct {
	ID              string
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	AllowedMode     ConsultationMode
	Available       bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// AllowsMode returns true if an appointment with the given mode may claim this slot
func (s *Slot) AllowsMode(mode ConsultationMode) bool {
	if !IsValidAppointmentMode(mode) {
		return false
	}
	return s.AllowedMode == ModeBoth || s.AllowedMode == mode
}

// MatchesFilter returns true if the slot is visible under the given mode filter
// An empty or "both" filter matches any slot; otherwise the slot must allow the mode
func (s *Slot) MatchesFilter(filter ConsultationMode) bool {
	if filter == "" || filter == ModeBoth {
		return true
	}
	return s.AllowedMode == ModeBoth || s.AllowedMode == filter
}

// SlotsFilter фильтр для выборки слотов
type SlotsFilter struct {
	DateFrom      *time.Time        // Начало периода (опционально)
	DateTo        *time.Time        // Конец периода (опционально)
	Mode          *ConsultationMode // Фильтр по разрешенному типу консультации (опционально)
	OnlyAvailable bool              // Только незабронированные слоты
}
