package generate_slots

import (
	"fmt"
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
)

// validateRequest валидирует запрос целиком, до создания хотя бы одного слота
// Каждое нарушение - отдельная ошибка, чтобы вызывающая сторона могла
// показать конкретную причину
func validateRequest(req *Request) error {
	if req.DateStart.IsZero() || req.DateEnd.IsZero() {
		return fmt.Errorf("%w: dateStart and dateEnd are required", ErrInvalidDateRange)
	}

	if req.DateStart.After(req.DateEnd) {
		return fmt.Errorf("%w: dateStart is after dateEnd", ErrInvalidDateRange)
	}

	if req.DateEnd.Sub(req.DateStart) > time.Duration(domain.MaxBatchRangeDays)*24*time.Hour {
		return fmt.Errorf("%w: range exceeds %d days", ErrInvalidDateRange, domain.MaxBatchRangeDays)
	}

	if req.TimeStart.IsZero() || req.TimeEnd.IsZero() {
		return fmt.Errorf("%w: timeStart and timeEnd are required", ErrInvalidTimeWindow)
	}

	if err := req.TimeStart.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeWindow, err)
	}

	if err := req.TimeEnd.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeWindow, err)
	}

	if !req.TimeStart.IsBefore(req.TimeEnd) {
		return fmt.Errorf("%w: timeStart must be before timeEnd", ErrInvalidTimeWindow)
	}

	if !domain.IsAllowedDuration(req.DurationMinutes) {
		return fmt.Errorf("%w: durationMinutes must be one of %v", ErrInvalidDuration, domain.AllowedDurations)
	}

	if len(req.Weekdays) == 0 {
		return ErrEmptyWeekdays
	}

	for _, wd := range req.Weekdays {
		if wd < domain.MinWeekday || wd > domain.MaxWeekday {
			return fmt.Errorf("%w: weekday %d is out of range %d-%d",
				ErrInvalidWeekday, wd, domain.MinWeekday, domain.MaxWeekday)
		}
	}

	if !domain.IsValidSlotMode(req.AllowedMode) {
		return fmt.Errorf("%w: %q", ErrInvalidMode, req.AllowedMode)
	}

	return nil
}
