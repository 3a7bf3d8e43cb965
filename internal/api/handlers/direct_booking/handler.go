package direct_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/TurfBookingService/internal/api/handlers"
	"github.com/m04kA/TurfBookingService/internal/api/middleware"
	directBooking "github.com/m04kA/TurfBookingService/internal/usecase/create_direct_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidRequest     = "invalid direct booking request"
	msgSlotUnavailable    = "one or more requested hours are unavailable"
)

type Handler struct {
	useCase CreateDirectBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateDirectBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/direct
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "missing bearer token")
		return
	}

	var req DirectBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/direct - invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if err := handlers.ValidateStruct(&req); err != nil {
		h.logger.Warn("POST /bookings/direct - validation failed: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequest)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(user.ID))
	if err != nil {
		switch {
		case errors.Is(err, directBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings/direct - invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, directBooking.ErrSlotUnavailable):
			h.logger.Info("POST /bookings/direct - slots unavailable: date=%s, hours=[%d, %d)",
				req.Date, req.StartHour, req.EndHour)
			handlers.RespondError(w, http.StatusConflict, msgSlotUnavailable)

		default:
			h.logger.Error("POST /bookings/direct - failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/direct - booking created: id=%d, guest=%s, admin=%d",
		result.BookingID, req.GuestName, user.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
