package domain

// Slot duration values allowed at batch creation
const (
	SlotDuration30 = 30
	SlotDuration60 = 60
)

// AllowedDurations длительности слотов, допустимые при пакетной генерации
var AllowedDurations = []int{SlotDuration30, SlotDuration60}

// IsAllowedDuration returns true if the duration is one of the permitted values
func IsAllowedDuration(minutes int) bool {
	for _, d := range AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// Weekday numbering follows ISO 8601: 1 = Monday .. 7 = Sunday
const (
	MinWeekday = 1
	MaxWeekday = 7
)

// Default batch generation parameters (the admin form defaults)
const (
	DefaultTimeStart       = "09:00"
	DefaultTimeEnd         = "18:00"
	DefaultDurationMinutes = SlotDuration60
)

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxBatchRangeDays           = 366 // защита от случайной генерации на годы вперед
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
