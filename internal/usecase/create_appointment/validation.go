package create_appointment

import (
	"fmt"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.SlotID == "" {
		return fmt.Errorf("%w: slotId", ErrMissingRequiredField)
	}

	if req.ClientID == "" {
		return fmt.Errorf("%w: clientId", ErrMissingRequiredField)
	}

	if req.ClientName == "" {
		return fmt.Errorf("%w: clientName", ErrMissingRequiredField)
	}

	if req.Mode == "" {
		return fmt.Errorf("%w: mode", ErrMissingRequiredField)
	}

	if !domain.IsValidAppointmentMode(req.Mode) {
		return fmt.Errorf("%w: mode must be online or in_person, got %q", ErrInvalidInput, req.Mode)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	if req.Origin != "" && req.Origin != domain.OriginSite && req.Origin != domain.OriginAdmin {
		return fmt.Errorf("%w: unknown origin %q", ErrInvalidInput, req.Origin)
	}

	return nil
}
