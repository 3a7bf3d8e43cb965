package submit_upi

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	submitUPI "github.com/m04kA/TurfBookingService/internal/usecase/submit_upi_payment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRequest     = "invalid UPI submission"
	msgSlotNotFound       = "one or more slots not found"
	msgSlotNotHeld        = "one or more slots are not locked by you"
	msgWrongState         = "one or more slots are not locked"
	msgDuplicateUTR       = "this UTR has already been submitted"
)

type Handler struct {
	useCase SubmitUPIPaymentUseCase
	logger  Logger
}

func NewHandler(useCase SubmitUPIPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/submit-upi
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	var req SubmitUPIRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/submit-upi - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /bookings/submit-upi - validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user.ID, user.Role))
	if err != nil {
		switch {
		case errors.Is(err, submitUPI.ErrInvalidInput):
			h.logger.Warn("POST /bookings/submit-upi - invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, submitUPI.ErrSlotNotFound):
			h.logger.Warn("POST /bookings/submit-upi - slots not found: user=%d, slots=%v", user.ID, req.SlotIDs)
			handlers.RespondNotFound(w, msgSlotNotFound)

		case errors.Is(err, submitUPI.ErrSlotNotHeld):
			h.logger.Warn("POST /bookings/submit-upi - slots not held: user=%d, slots=%v", user.ID, req.SlotIDs)
			handlers.RespondForbidden(w, msgSlotNotHeld)

		case errors.Is(err, submitUPI.ErrWrongState):
			h.logger.Info("POST /bookings/submit-upi - wrong slot state: user=%d, slots=%v", user.ID, req.SlotIDs)
			handlers.RespondError(w, http.StatusConflict, msgWrongState)

		case errors.Is(err, submitUPI.ErrDuplicateUTR):
			h.logger.Info("POST /bookings/submit-upi - duplicate UTR: user=%d", user.ID)
			handlers.RespondError(w, http.StatusConflict, msgDuplicateUTR)

		default:
			h.logger.Error("POST /bookings/submit-upi - failed for user=%d: %v", user.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/submit-upi - booking created: id=%d, user=%d", result.BookingID, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
