package get_admin_appointments

import (
	"errors"
	"net/http"
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers"
	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	appointmentsService "github.com/consultarprocessos/CP-SchedulingService/internal/service/appointments"
	"github.com/consultarprocessos/CP-SchedulingService/internal/service/appointments/models"
)

const (
	msgInvalidDate   = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidFilter = "parâmetros de filtro inválidos"
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

// Handle GET /api/v1/admin/appointments
// Фильтры: startDate, endDate, status, clientId - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListAppointmentsRequest{}

	if v := query.Get("startDate"); v != "" {
		startDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid startDate: %s", v)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.StartDate = &startDate
	}

	if v := query.Get("endDate"); v != "" {
		endDate, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /admin/appointments - Invalid endDate: %s", v)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.EndDate = &endDate
	}

	if v := query.Get("status"); v != "" {
		req.Status = &v
	}

	if v := query.Get("clientId"); v != "" {
		req.ClientID = &v
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/appointments - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFilter)

		default:
			h.logger.Error("GET /admin/appointments - Failed to list appointments: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/appointments - Found %d appointments", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
