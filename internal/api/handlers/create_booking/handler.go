package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	createBooking "github.com/m04kA/TurfBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRequest     = "invalid booking request"
	msgSlotNotFound       = "one or more slots not found"
	msgSlotNotHeld        = "one or more slots are not locked by you"
	msgLockExpired        = "slot lock has expired, please lock again"
	msgPaymentGateway     = "payment gateway unavailable, please retry"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /bookings - validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user.ID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createBooking.ErrSlotNotFound):
			h.logger.Warn("POST /bookings - slots not found: user=%d, slots=%v", user.ID, req.SlotIDs)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, createBooking.ErrSlotNotHeld):
			h.logger.Info("POST /bookings - slots not held: user=%d, slots=%v", user.ID, req.SlotIDs)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotHeld)

		case errors.Is(err, createBooking.ErrLockExpired):
			h.logger.Info("POST /bookings - lock expired: user=%d, slots=%v", user.ID, req.SlotIDs)
			handlers.RespondError(w, http.StatusConflict, msgLockExpired)

		case errors.Is(err, createBooking.ErrPaymentGateway):
			h.logger.Error("POST /bookings - payment gateway error for user=%d: %v", user.ID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgPaymentGateway)

		default:
			h.logger.Error("POST /bookings - failed for user=%d: %v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - booking created: id=%d, user=%d", result.BookingID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
