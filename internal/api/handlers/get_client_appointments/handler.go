package get_client_appointments

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
	msgMissingClientID = "identificador do cliente ausente"
	msgForbidden       = "acesso permitido apenas aos próprios agendamentos"
	msgInvalidStatus   = "status de agendamento inválido"
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

// Handle GET /api/v1/clients/{clientId}/appointments
// Клиент видит только собственные агендаменты, админ - любые
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]
	if clientID == "" {
		h.logger.Warn("GET /clients/{clientId}/appointments - Missing client id")
		handlers.RespondBadRequest(w, msgMissingClientID)
		return
	}

	requesterID := middleware.UserID(r.Context())
	if middleware.UserRole(r.Context()) != middleware.RoleAdmin && requesterID != clientID {
		h.logger.Warn("GET /clients/{clientId}/appointments - Forbidden: requester=%s, client_id=%s",
			requesterID, clientID)
		handlers.RespondError(w, http.StatusForbidden, msgForbidden)
		return
	}

	req := &models.ListAppointmentsRequest{
		ClientID: &clientID,
	}
	if v := r.URL.Query().Get("status"); v != "" {
		req.Status = &v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /clients/{clientId}/appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /clients/{clientId}/appointments - Failed to list: client_id=%s, error=%v",
				clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /clients/{clientId}/appointments - Found %d appointments: client_id=%s",
		result.Total, clientID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
