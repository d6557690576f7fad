package delete_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/consultarprocessos/CP-SchedulingService/internal/api/handlers"
	slotsService "github.com/consultarprocessos/CP-SchedulingService/internal/service/slots"
)

const (
	msgMissingSlotID = "identificador do horário ausente"
	msgSlotNotFound  = "horário não encontrado"
	msgSlotInUse     = "horário reservado não pode ser excluído"
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

// Handle DELETE /api/v1/admin/slots/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID := mux.Vars(r)["slotId"]
	if slotID == "" {
		h.logger.Warn("DELETE /admin/slots - Missing slot id")
		handlers.RespondBadRequest(w, msgMissingSlotID)
		return
	}

	if err := h.service.Delete(r.Context(), slotID); err != nil {
		switch {
		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("DELETE /admin/slots - Slot not found: slot_id=%s", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, slotsService.ErrSlotInUse):
			h.logger.Warn("DELETE /admin/slots - Slot in use: slot_id=%s", slotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotInUse)

		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/slots - Invalid slot id: %s", slotID)
			handlers.RespondBadRequest(w, msgMissingSlotID)

		default:
			h.logger.Error("DELETE /admin/slots - Failed to delete slot: slot_id=%s, error=%v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/slots - Slot deleted: slot_id=%s", slotID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
