package verify_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	verifyBooking "github.com/m04kA/TurfBookingService/internal/usecase/verify_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidStatus      = "status must be CONFIRMED or CANCELLED"
	msgBookingNotFound    = "booking not found"
	msgWrongState         = "transition not allowed from the current booking state"
)

type Handler struct {
	useCase VerifyBookingUseCase
	logger  Logger
}

func NewHandler(useCase VerifyBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/bookings/verify-status/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req VerifyBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /bookings/verify-status - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("PUT /bookings/verify-status - validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStatus)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, verifyBooking.ErrInvalidInput):
			h.logger.Warn("PUT /bookings/verify-status - invalid status %q for booking=%d",
				req.Status, bookingID)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, verifyBooking.ErrBookingNotFound):
			h.logger.Warn("PUT /bookings/verify-status - booking not found: %d", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, verifyBooking.ErrWrongState):
			h.logger.Info("PUT /bookings/verify-status - wrong state: booking=%d, target=%s",
				bookingID, req.Status)
			handlers.RespondError(w, http.StatusConflict, msgWrongState)

		default:
			h.logger.Error("PUT /bookings/verify-status - failed for booking=%d: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /bookings/verify-status - booking=%d moved to %s", bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
