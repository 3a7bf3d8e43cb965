package verify_payment

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	verifyPayment "github.com/m04kA/TurfBookingService/internal/usecase/verify_payment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRequest     = "order id, payment id and signature are required"
	msgBookingNotFound    = "booking not found"
	msgNotOwner           = "booking belongs to another user"
	msgWrongState         = "booking is not awaiting payment"
	msgInvalidSignature   = "payment signature verification failed"
)

type Handler struct {
	useCase VerifyPaymentUseCase
	logger  Logger
}

func NewHandler(useCase VerifyPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	var req VerifyPaymentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/verify - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /bookings/verify - validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user.ID, user.Role))
	if err != nil {
		switch {
		case errors.Is(err, verifyPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/verify - invalid request for booking=%d", req.BookingID)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, verifyPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/verify - booking not found: %d", req.BookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, verifyPayment.ErrNotOwner):
			h.logger.Warn("POST /bookings/verify - access denied: booking=%d, user=%d",
				req.BookingID, user.ID)
			handlers.RespondForbidden(w, msgNotOwner)

		case errors.Is(err, verifyPayment.ErrWrongState):
			h.logger.Info("POST /bookings/verify - wrong state: booking=%d", req.BookingID)
			handlers.RespondError(w, http.StatusConflict, msgWrongState)

		case errors.Is(err, verifyPayment.ErrInvalidSignature):
			h.logger.Warn("POST /bookings/verify - invalid signature: booking=%d, user=%d",
				req.BookingID, user.ID)
			handlers.RespondBadRequest(w, msgInvalidSignature)

		default:
			h.logger.Error("POST /bookings/verify - failed for booking=%d: %v", req.BookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/verify - booking confirmed: id=%d, payment=%s",
		result.BookingID, result.PaymentID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
