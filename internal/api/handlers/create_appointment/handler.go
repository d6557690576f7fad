package create_appointment

import (
	"errors"
	"net/http"

	"github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers"
	"github.com/consultarprocessos/CP-SchedulingService/internal/api/middleware"
	createAppointment "github.com/consultarprocessos/CP-SchedulingService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgSlotNotFound       = "horário não encontrado"
	msgSlotAlreadyBooked  = "horário já reservado, escolha outro"
	msgModeNotAllowed     = "tipo de consulta não permitido para este horário"
	msgMissingField       = "campos obrigatórios ausentes: slotId, clientName e mode"
	msgInvalidInput       = "dados da solicitação inválidos"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	clientID := middleware.UserID(r.Context())
	role := middleware.UserRole(r.Context())
	useCaseReq := req.ToUseCaseRequest(clientID, role)

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotFound):
			h.logger.Warn("POST /appointments - Slot not found: slot_id=%s, client_id=%s", req.SlotID, clientID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createAppointment.ErrSlotAlreadyBooked):
			h.logger.Warn("POST /appointments - Slot already booked: slot_id=%s, client_id=%s", req.SlotID, clientID)
			handlers.RespondError(w, http.StatusConflict, msgSlotAlreadyBooked)

		case errors.Is(err, createAppointment.ErrModeNotAllowed):
			h.logger.Warn("POST /appointments - Mode not allowed: slot_id=%s, mode=%s", req.SlotID, req.Mode)
			handlers.RespondError(w, http.StatusConflict, msgModeNotAllowed)

		case errors.Is(err, createAppointment.ErrMissingRequiredField):
			h.logger.Warn("POST /appointments - Missing required field: client_id=%s", clientID)
			handlers.RespondBadRequest(w, msgMissingField)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: client_id=%s, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: slot_id=%s, client_id=%s, error=%v",
				req.SlotID, clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created: appointment_id=%s, slot_id=%s, client_id=%s",
		result.ID, req.SlotID, clientID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
