package update_slot

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/service/slots/models"
)

// SlotsService is the admin slot management service behind the handler.
type SlotsService interface {
	UpdateSlot(ctx context.Context, id int64, req *models.UpdateSlotRequest) (*models.SlotResponse, error)
}

// Logger is the logging surface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
