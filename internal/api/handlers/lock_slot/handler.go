package lock_slot

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	lockSlot "github.com/m04kA/TurfBookingService/internal/usecase/lock_slot"
)

const (
	msgInvalidSlotRef  = "invalid slot id"
	msgSlotNotFound    = "slot not found"
	msgSlotUnavailable = "slot is no longer available"
	msgPastSlot        = "slot start time has already passed"
)

type Handler struct {
	useCase LockSlotUseCase
	logger  Logger
}

func NewHandler(useCase LockSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/lock/{slotId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	slotRef := mux.Vars(r)["slotId"]

	result, err := h.useCase.Execute(r.Context(), &lockSlot.Request{
		SlotRef: slotRef,
		UserID:  user.ID,
		Role:    user.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, lockSlot.ErrInvalidInput):
			h.logger.Warn("POST /bookings/lock - invalid slot ref %q: %v", slotRef, err)
			handlers.RespondBadRequest(w, msgInvalidSlotRef)

		case errors.Is(err, lockSlot.ErrSlotNotFound):
			h.logger.Warn("POST /bookings/lock - slot not found: %s", slotRef)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, lockSlot.ErrSlotUnavailable):
			h.logger.Info("POST /bookings/lock - slot unavailable: %s, user=%d", slotRef, user.ID)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		case errors.Is(err, lockSlot.ErrPastSlot):
			h.logger.Info("POST /bookings/lock - past slot: %s, user=%d", slotRef, user.ID)
			handlers.RespondBadRequest(w, msgPastSlot)

		default:
			h.logger.Error("POST /bookings/lock - failed to lock %s for user=%d: %v", slotRef, user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
