package create_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	slotsService "github.com/m04kA/TurfBookingService/internal/service/slots"
	"github.com/m04kA/TurfBookingService/internal/service/slots/models"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidSlots       = "invalid slot definitions"
	msgDuplicateSlot      = "a slot already exists for that date and time"
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

// Handle POST /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSlotsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /slots - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /slots - validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlots)
		return
	}

	result, err := h.service.CreateSlots(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, slotsService.ErrInvalidInput):
			h.logger.Warn("POST /slots - invalid slots: %v", err)
			handlers.RespondBadRequest(w, msgInvalidSlots)

		case errors.Is(err, slotsService.ErrDuplicateSlot):
			h.logger.Info("POST /slots - duplicate slot: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateSlot)

		default:
			h.logger.Error("POST /slots - failed to create slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /slots - created %d slots", result.Total)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
