package list_slots

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers"
	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	slotsService "github.com/consultarprocessos/CP-SchedulingService/internal/service/slots"
	"github.com/consultarprocessos/CP-SchedulingService/internal/service/slots/models"
)

const (
	msgInvalidDate   = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidMode   = "tipo de consulta inválido"
	msgInvalidParams = "parâmetros de filtro inválidos"
)

type Handler struct {
	service SlotsService
	logger  Logger
}

func NewHandler(service SlotsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/slots
// Фильтры: dateFrom, dateTo, mode, onlyAvailable - все опциональны
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListSlotsRequest{}

	if v := query.Get("dateFrom"); v != "" {
		dateFrom, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /admin/slots - Invalid dateFrom: %s", v)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.DateFrom = &dateFrom
	}

	if v := query.Get("dateTo"); v != "" {
		dateTo, err := time.Parse(domain.DateFormat, v)
		if err != nil {
			h.logger.Warn("GET /admin/slots - Invalid dateTo: %s", v)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.DateTo = &dateTo
	}

	if v := query.Get("mode"); v != "" {
		req.Mode = &v
	}

	if v := query.Get("onlyAvailable"); v != "" {
		onlyAvailable, err := strconv.ParseBool(v)
		if err != nil {
			h.logger.Warn("GET /admin/slots - Invalid onlyAvailable: %s", v)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		req.OnlyAvailable = onlyAvailable
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("GET /admin/slots - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidMode)

		default:
			h.logger.Error("GET /admin/slots - Failed to list slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/slots - Found %d slots", result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
