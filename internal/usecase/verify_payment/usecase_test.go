package verify_payment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	bookingstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/booking"
	"github.com/m04kA/TurfBookingService/internal/integrations/sheets"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

type stubBookingRepo struct {
	booking *domain.Booking
	getErr  error

	confirmedID        int64
	confirmedPaymentID string

	statusID  int64
	statusSet domain.BookingStatus
}

func (s *stubBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	if s.getErr != nil {
		return nil, s.getErr
	}
	return s.booking, nil
}

func (s *stubBookingRepo) ConfirmPayment(_ context.Context, id int64, paymentID string) error {
	s.confirmedID = id
	s.confirmedPaymentID = paymentID
	return nil
}

func (s *stubBookingRepo) UpdateStatus(_ context.Context, id int64, status domain.BookingStatus) error {
	s.statusID = id
	s.statusSet = status
	return nil
}

type stubSlotRepo struct {
	booked   []int64
	bookedBy int64
	released []int64
}

func (s *stubSlotRepo) GetByIDs(_ context.Context, ids []int64) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0, len(ids))
	for _, id := range ids {
		slots = append(slots, &domain.Slot{
			ID:        id,
			Date:      "2025-07-20",
			StartTime: types.NewTimeStringFromHour(18),
			EndTime:   types.NewTimeStringFromHour(19),
			Price:     400,
			Status:    domain.SlotBooked,
		})
	}
	return slots, nil
}

func (s *stubSlotRepo) BookByIDs(_ context.Context, ids []int64, userID int64) error {
	s.booked = ids
	s.bookedBy = userID
	return nil
}

func (s *stubSlotRepo) ReleaseByIDs(_ context.Context, ids []int64) error {
	s.released = ids
	return nil
}

type stubVerifier struct{ err error }

func (s *stubVerifier) VerifyPaymentSignature(_, _, _ string) error { return s.err }

type stubExporter struct {
	rows []sheets.Row
	err  error
}

func (s *stubExporter) AppendRow(_ context.Context, row sheets.Row) error {
	if s.err != nil {
		return s.err
	}
	s.rows = append(s.rows, row)
	return nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func razorpayBooking(userID int64) *domain.Booking {
	orderID := "order_abc123"
	return &domain.Booking{
		ID:              30,
		UserID:          &userID,
		SlotIDs:         []int64{1, 2},
		TotalAmount:     700,
		Status:          domain.BookingPending,
		PaymentMethod:   domain.PaymentRazorpay,
		RazorpayOrderID: &orderID,
		UpdatedAt:       time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC),
	}
}

func validRequest() *Request {
	return &Request{
		BookingID:         30,
		UserID:            7,
		Role:              domain.RoleUser,
		RazorpayOrderID:   "order_abc123",
		RazorpayPaymentID: "pay_xyz789",
		RazorpaySignature: "deadbeef",
	}
}

func TestExecute_ValidSignatureConfirms(t *testing.T) {
	bookings := &stubBookingRepo{booking: razorpayBooking(7)}
	slots := &stubSlotRepo{}
	exporter := &stubExporter{}
	uc := NewUseCase(bookings, slots, &stubVerifier{}, exporter, passthroughTx{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, domain.BookingConfirmed, resp.Status)
	assert.Equal(t, "pay_xyz789", resp.PaymentID)

	assert.Equal(t, int64(30), bookings.confirmedID)
	assert.Equal(t, "pay_xyz789", bookings.confirmedPaymentID)
	assert.Equal(t, []int64{1, 2}, slots.booked)
	assert.Equal(t, int64(7), slots.bookedBy)
	assert.Empty(t, slots.released)

	// One export row per slot.
	require.Len(t, exporter.rows, 2)
	assert.Equal(t, "user-7", exporter.rows[0].Name)
	assert.Equal(t, "2025-07-20", exporter.rows[0].Date)
}

func TestExecute_InvalidSignatureFailsBooking(t *testing.T) {
	bookings := &stubBookingRepo{booking: razorpayBooking(7)}
	slots := &stubSlotRepo{}
	uc := NewUseCase(bookings, slots, &stubVerifier{err: errors.New("signature mismatch")},
		&stubExporter{}, passthroughTx{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInvalidSignature)

	assert.Equal(t, domain.BookingFailed, bookings.statusSet)
	assert.Equal(t, []int64{1, 2}, slots.released)
	assert.Empty(t, slots.booked)
}

func TestExecute_ExportFailureDoesNotFailBooking(t *testing.T) {
	bookings := &stubBookingRepo{booking: razorpayBooking(7)}
	uc := NewUseCase(bookings, &stubSlotRepo{}, &stubVerifier{},
		&stubExporter{err: errors.New("sheet unreachable")}, passthroughTx{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, resp.Status)
}

func TestExecute_OrderMismatch(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{booking: razorpayBooking(7)}, &stubSlotRepo{},
		&stubVerifier{}, &stubExporter{}, passthroughTx{}, noopLogger{})

	req := validRequest()
	req.RazorpayOrderID = "order_other"

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrWrongState)
}

func TestExecute_WrongState(t *testing.T) {
	booking := razorpayBooking(7)
	booking.Status = domain.BookingConfirmed
	uc := NewUseCase(&stubBookingRepo{booking: booking}, &stubSlotRepo{},
		&stubVerifier{}, &stubExporter{}, passthroughTx{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrWrongState)
}

func TestExecute_NotOwner(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{booking: razorpayBooking(99)}, &stubSlotRepo{},
		&stubVerifier{}, &stubExporter{}, passthroughTx{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestExecute_BookingNotFound(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{getErr: bookingstorage.ErrBookingNotFound}, &stubSlotRepo{},
		&stubVerifier{}, &stubExporter{}, passthroughTx{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_MissingFields(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{booking: razorpayBooking(7)}, &stubSlotRepo{},
		&stubVerifier{}, &stubExporter{}, passthroughTx{}, noopLogger{})

	req := validRequest()
	req.RazorpaySignature = ""

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
