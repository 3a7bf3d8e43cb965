package create_slots

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/service/slots/models"
)

// SlotsService is the admin slot management service behind the handler.
type SlotsService interface {
	CreateSlots(ctx context.Context, req *models.CreateSlotsRequest) (*models.SlotListResponse, error)
}

// Logger is the logging surface the handler needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
