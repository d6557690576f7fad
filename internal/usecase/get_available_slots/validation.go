package get_available_slots

import (
	"fmt"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.DateFrom.IsZero() || req.DateTo.IsZero() {
		return fmt.Errorf("%w: dateFrom and dateTo are required", ErrInvalidDateRange)
	}

	if req.DateFrom.After(req.DateTo) {
		return fmt.Errorf("%w: dateFrom is after dateTo", ErrInvalidDateRange)
	}

	// Пустой фильтр эквивалентен "both"
	if req.Mode != "" && !domain.IsValidSlotMode(req.Mode) {
		return fmt.Errorf("%w: %q", ErrInvalidMode, req.Mode)
	}

	return nil
}
