package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers"
	"github.com/consultarprocessos/CP-SchedulingService/internal/api/middleware"
	appointmentsService "github.com/consultarprocessos/CP-SchedulingService/internal/service/appointments"
	"github.com/consultarprocessos/CP-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidRequestBody  = "corpo da requisição inválido"
	msgMissingID           = "identificador do agendamento ausente"
	msgAppointmentNotFound = "agendamento não encontrado"
	msgCannotCancel        = "agendamento não pode ser cancelado"
	msgForbidden           = "cancelamento permitido apenas ao próprio cliente"
	msgInvalidReason       = "motivo do cancelamento inválido"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
// Клиент может отменить только свой агендамент, админ - любой.
// Слот при отмене не освобождается
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointmentId"]
	if appointmentID == "" {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Missing appointment id")
		handlers.RespondBadRequest(w, msgMissingID)
		return
	}

	var req models.CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Проверяем владельца до отмены
	requesterID := middleware.UserID(r.Context())
	if middleware.UserRole(r.Context()) != middleware.RoleAdmin {
		appointment, err := h.service.GetByID(r.Context(), appointmentID)
		if err != nil {
			if errors.Is(err, appointmentsService.ErrAppointmentNotFound) {
				h.logger.Warn("PATCH /appointments/{id}/cancel - Not found: appointment_id=%s", appointmentID)
				handlers.RespondNotFound(w, msgAppointmentNotFound)
				return
			}
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to load: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
			return
		}

		if appointment.ClientID != requesterID {
			h.logger.Warn("PATCH /appointments/{id}/cancel - Forbidden: requester=%s, appointment_id=%s",
				requesterID, appointmentID)
			handlers.RespondError(w, http.StatusForbidden, msgForbidden)
			return
		}
	}

	if err := h.service.Cancel(r.Context(), appointmentID, &req); err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Not found: appointment_id=%s", appointmentID)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointmentsService.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: appointment_id=%s", appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid reason: appointment_id=%s", appointmentID)
			handlers.RespondBadRequest(w, msgInvalidReason)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel: appointment_id=%s, error=%v",
				appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled: appointment_id=%s, by=%s",
		appointmentID, requesterID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
