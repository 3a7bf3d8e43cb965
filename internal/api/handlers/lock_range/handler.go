package lock_range

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	lockRange "github.com/m04kA/TurfBookingService/internal/usecase/lock_range"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRange       = "invalid slot range"
	msgRangeUnavailable   = "one or more slots in the range are unavailable"
	msgPastRange          = "range start time has already passed"
)

type Handler struct {
	useCase LockRangeUseCase
	logger  Logger
}

func NewHandler(useCase LockRangeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/lock-range
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	var req LockRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/lock-range - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /bookings/lock-range - validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRange)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user.ID, user.Role))
	if err != nil {
		switch {
		case errors.Is(err, lockRange.ErrInvalidInput):
			h.logger.Warn("POST /bookings/lock-range - invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, lockRange.ErrRangeUnavailable):
			h.logger.Info("POST /bookings/lock-range - range unavailable: date=%s, hours=[%d, %d), user=%d",
				req.Date, req.StartHour, req.EndHour, user.ID)
			handlers.RespondError(w, http.StatusConflict, msgRangeUnavailable)

		case errors.Is(err, lockRange.ErrPastSlot):
			h.logger.Info("POST /bookings/lock-range - past range: date=%s, user=%d", req.Date, user.ID)
			handlers.RespondBadRequest(w, msgPastRange)

		default:
			h.logger.Error("POST /bookings/lock-range - failed for user=%d: %v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
