package verify_payment

import (
	"context"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/integrations/sheets"
)

// BookingRepository is the storage surface the use case needs.
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ConfirmPayment(ctx context.Context, id int64, paymentID string) error
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error
}

// SlotRepository advances or releases the booked slots.
type SlotRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Slot, error)
	BookByIDs(ctx context.Context, ids []int64, userID int64) error
	ReleaseByIDs(ctx context.Context, ids []int64) error
}

// SignatureVerifier checks the gateway's payment signature.
type SignatureVerifier interface {
	VerifyPaymentSignature(orderID, paymentID, signature string) error
}

// SheetExporter appends confirmed bookings to the export sink.
type SheetExporter interface {
	AppendRow(ctx context.Context, row sheets.Row) error
}

// TxManager runs a function inside a database transaction.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger is the logging surface the use case needs.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
