package verify_booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/integrations/sheets"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

type stubBookingRepo struct {
	booking *domain.Booking

	statusID  int64
	statusSet domain.BookingStatus
}

func (s *stubBookingRepo) GetByID(_ context.Context, _ int64) (*domain.Booking, error) {
	return s.booking, nil
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
			StartTime: types.NewTimeStringFromHour(10),
			EndTime:   types.NewTimeStringFromHour(11),
			Price:     300,
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

type stubExporter struct{ rows []sheets.Row }

func (s *stubExporter) AppendRow(_ context.Context, row sheets.Row) error {
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

func bookingInState(status domain.BookingStatus) *domain.Booking {
	userID := int64(7)
	return &domain.Booking{
		ID:            40,
		UserID:        &userID,
		SlotIDs:       []int64{3, 4},
		TotalAmount:   600,
		Status:        status,
		PaymentMethod: domain.PaymentUPI,
		UpdatedAt:     time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC),
	}
}

func TestExecute_ApproveBooksSlots(t *testing.T) {
	bookings := &stubBookingRepo{booking: bookingInState(domain.BookingPendingVerification)}
	slots := &stubSlotRepo{}
	exporter := &stubExporter{}
	uc := NewUseCase(bookings, slots, exporter, passthroughTx{}, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		BookingID: 40,
		Target:    domain.BookingConfirmed,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.BookingConfirmed, resp.Status)
	assert.Equal(t, domain.BookingConfirmed, bookings.statusSet)
	assert.Equal(t, []int64{3, 4}, slots.booked)
	assert.Equal(t, int64(7), slots.bookedBy)
	assert.Empty(t, slots.released)
	assert.Len(t, exporter.rows, 2)
}

func TestExecute_CancelReleasesSlots(t *testing.T) {
	for _, from := range []domain.BookingStatus{
		domain.BookingPending,
		domain.BookingPendingVerification,
		domain.BookingConfirmed,
	} {
		t.Run(string(from), func(t *testing.T) {
			bookings := &stubBookingRepo{booking: bookingInState(from)}
			slots := &stubSlotRepo{}
			exporter := &stubExporter{}
			uc := NewUseCase(bookings, slots, exporter, passthroughTx{}, noopLogger{})

			resp, err := uc.Execute(context.Background(), &Request{
				BookingID: 40,
				Target:    domain.BookingCancelled,
			})
			require.NoError(t, err)

			assert.Equal(t, domain.BookingCancelled, resp.Status)
			assert.Equal(t, []int64{3, 4}, slots.released)
			assert.Empty(t, slots.booked)
			assert.Empty(t, exporter.rows)
		})
	}
}

func TestExecute_ApproveRequiresPendingVerification(t *testing.T) {
	for _, from := range []domain.BookingStatus{
		domain.BookingPending,
		domain.BookingConfirmed,
		domain.BookingCancelled,
		domain.BookingFailed,
	} {
		t.Run(string(from), func(t *testing.T) {
			uc := NewUseCase(&stubBookingRepo{booking: bookingInState(from)}, &stubSlotRepo{},
				&stubExporter{}, passthroughTx{}, noopLogger{})

			_, err := uc.Execute(context.Background(), &Request{
				BookingID: 40,
				Target:    domain.BookingConfirmed,
			})
			assert.ErrorIs(t, err, ErrWrongState)
		})
	}
}

func TestExecute_CancelSettledBookingRejected(t *testing.T) {
	for _, from := range []domain.BookingStatus{domain.BookingCancelled, domain.BookingFailed} {
		t.Run(string(from), func(t *testing.T) {
			uc := NewUseCase(&stubBookingRepo{booking: bookingInState(from)}, &stubSlotRepo{},
				&stubExporter{}, passthroughTx{}, noopLogger{})

			_, err := uc.Execute(context.Background(), &Request{
				BookingID: 40,
				Target:    domain.BookingCancelled,
			})
			assert.ErrorIs(t, err, ErrWrongState)
		})
	}
}

func TestExecute_InvalidTarget(t *testing.T) {
	uc := NewUseCase(&stubBookingRepo{booking: bookingInState(domain.BookingPending)}, &stubSlotRepo{},
		&stubExporter{}, passthroughTx{}, noopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		BookingID: 40,
		Target:    domain.BookingPending,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
