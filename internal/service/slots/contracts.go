package slots

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// SlotRepository is the storage surface the service needs.
type SlotRepository interface {
	Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error)
	CreateBatch(ctx context.Context, slots []*domain.Slot, skipDuplicates bool) error
	GetByID(ctx context.Context, id int64) (*domain.Slot, error)
	GetByDate(ctx context.Context, date string) ([]*domain.Slot, error)
	UpdateStatusAndPrice(ctx context.Context, id int64, status *domain.SlotStatus, price *int) (*domain.Slot, error)
}

// Logger is the logging surface the service needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
