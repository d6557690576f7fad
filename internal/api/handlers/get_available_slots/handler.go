package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers"
	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	getAvailableSlots "github.com/consultarprocessos/CP-SchedulingService/internal/usecase/get_available_slots"
)

const (
	msgMissingDateRange = "parâmetros dateFrom e dateTo são obrigatórios"
	msgInvalidDate      = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidDateRange = "intervalo de datas inválido"
	msgInvalidMode      = "tipo de consulta inválido"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/available?dateFrom=...&dateTo=...&mode=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateFromStr := query.Get("dateFrom")
	dateToStr := query.Get("dateTo")
	if dateFromStr == "" || dateToStr == "" {
		h.logger.Warn("GET /slots/available - Missing date range")
		handlers.RespondBadRequest(w, msgMissingDateRange)
		return
	}

	dateFrom, err := time.Parse(domain.DateFormat, dateFromStr)
	if err != nil {
		h.logger.Warn("GET /slots/available - Invalid dateFrom: %s", dateFromStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	dateTo, err := time.Parse(domain.DateFormat, dateToStr)
	if err != nil {
		h.logger.Warn("GET /slots/available - Invalid dateTo: %s", dateToStr)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	useCaseReq := &getAvailableSlots.Request{
		DateFrom: dateFrom,
		DateTo:   dateTo,
		Mode:     domain.ConsultationMode(query.Get("mode")),
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDateRange):
			h.logger.Warn("GET /slots/available - Invalid date range: %s..%s", dateFromStr, dateToStr)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, getAvailableSlots.ErrInvalidMode):
			h.logger.Warn("GET /slots/available - Invalid mode: %s", query.Get("mode"))
			handlers.RespondBadRequest(w, msgInvalidMode)

		default:
			h.logger.Error("GET /slots/available - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /slots/available - Found %d slots (%s..%s)",
		result.TotalCount, dateFromStr, dateToStr)
	handlers.RespondJSON(w, http.StatusOK, response)
}
