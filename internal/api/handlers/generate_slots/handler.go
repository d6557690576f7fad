package generate_slots

import (
	"errors"
	"net/http"

	"github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers"
	generateSlots "github.com/consultarprocessos/CP-SchedulingService/internal/usecase/generate_slots"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDateFormat  = "formato de data inválido, esperado YYYY-MM-DD"
	msgInvalidDateRange   = "intervalo de datas inválido"
	msgInvalidTimeWindow  = "janela de horário inválida, esperado HH:MM"
	msgInvalidDuration    = "duração inválida, permitido 30 ou 60 minutos"
	msgEmptyWeekdays      = "informe ao menos um dia da semana"
	msgInvalidWeekday     = "dia da semana inválido, esperado 1 (segunda) a 7 (domingo)"
	msgInvalidMode        = "tipo de consulta inválido"
)

type Handler struct {
	useCase GenerateSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GenerateSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/slots/batch
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req GenerateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/slots/batch - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом дат и времени)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /admin/slots/batch - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateFormat)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, generateSlots.ErrInvalidDateRange):
			h.logger.Warn("POST /admin/slots/batch - Invalid date range: %s..%s", req.DateStart, req.DateEnd)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, generateSlots.ErrInvalidTimeWindow):
			h.logger.Warn("POST /admin/slots/batch - Invalid time window: %s..%s", req.TimeStart, req.TimeEnd)
			handlers.RespondBadRequest(w, msgInvalidTimeWindow)

		case errors.Is(err, generateSlots.ErrInvalidDuration):
			h.logger.Warn("POST /admin/slots/batch - Invalid duration: %d", req.DurationMinutes)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, generateSlots.ErrEmptyWeekdays):
			h.logger.Warn("POST /admin/slots/batch - Empty weekdays")
			handlers.RespondBadRequest(w, msgEmptyWeekdays)

		case errors.Is(err, generateSlots.ErrInvalidWeekday):
			h.logger.Warn("POST /admin/slots/batch - Invalid weekday: %v", req.Weekdays)
			handlers.RespondBadRequest(w, msgInvalidWeekday)

		case errors.Is(err, generateSlots.ErrInvalidMode):
			h.logger.Warn("POST /admin/slots/batch - Invalid mode: %s", req.AllowedMode)
			handlers.RespondBadRequest(w, msgInvalidMode)

		default:
			h.logger.Error("POST /admin/slots/batch - Failed to generate slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /admin/slots/batch - Generated %d slots (%s..%s)",
		result.CreatedCount, req.DateStart, req.DateEnd)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
