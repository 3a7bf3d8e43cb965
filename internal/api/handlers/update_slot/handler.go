package update_slot

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	slotsService "github.com/m04kA/TurfBookingService/internal/service/slots"
	"github.com/m04kA/TurfBookingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSlotID      = "invalid slot id"
	msgInvalidUpdate      = "invalid slot update"
	msgSlotNotFound       = "slot not found"
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

// Handle PUT /api/v1/slots/id/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	slotID, err := strconv.ParseInt(mux.Vars(r)["slotId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidSlotID)
		return
	}

	var req models.UpdateSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /slots/id - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /slots/id - validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUpdate)
		return
	}

	result, err := h.service.UpdateSlot(r.Context(), slotID, &req)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("PUT /slots/id - invalid update for slot=%d: %v", slotID, err)
			handlers.RespondBadRequest(w, msgInvalidUpdate)

		case errors.Is(err, slotsService.ErrSlotNotFound):
			h.logger.Warn("PUT /slots/id - slot not found: %d", slotID)
			handlers.RespondNotFound(w, msgSlotNotFound)

		default:
			h.logger.Error("PUT /slots/id - failed for slot=%d: %v", slotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /slots/id - slot=%d updated", slotID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
