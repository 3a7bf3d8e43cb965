package submit_upi_payment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	bookingstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/booking"
)

type stubSlotRepo struct {
	slots []*domain.Slot

	statusCalls []statusCall
}

type statusCall struct {
	ids    []int64
	status domain.SlotStatus
}

func (s *stubSlotRepo) GetByIDs(_ context.Context, _ []int64) ([]*domain.Slot, error) {
	return s.slots, nil
}

func (s *stubSlotRepo) SetStatusByIDs(_ context.Context, ids []int64, status domain.SlotStatus) error {
	s.statusCalls = append(s.statusCalls, statusCall{ids: ids, status: status})
	return nil
}

type stubBookingRepo struct {
	createErr error
	created   *domain.Booking
}

func (s *stubBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	b.ID = 20
	s.created = b
	return b, nil
}

type passthroughTx struct{}

func (passthroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func lockedSlots(userID int64) []*domain.Slot {
	lockedAt := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
	return []*domain.Slot{
		{ID: 1, Price: 300, Status: domain.SlotLocked, LockedAt: &lockedAt, BookedBy: &userID},
		{ID: 2, Price: 400, Status: domain.SlotLocked, LockedAt: &lockedAt, BookedBy: &userID},
	}
}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		Role:      domain.RoleUser,
		SlotIDs:   []int64{1, 2},
		UTRNumber: "123456789012",
	}
}

func TestExecute_CreatesBookingAwaitingVerification(t *testing.T) {
	slots := &stubSlotRepo{slots: lockedSlots(7)}
	bookings := &stubBookingRepo{}
	uc := NewUseCase(slots, bookings, passthroughTx{}, noopLogger{})

	shot := "https://cdn.example.com/payment.png"
	req := validRequest()
	req.UTRNumber = " 123456789012 "
	req.Screenshot = &shot

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, int64(20), resp.BookingID)
	assert.Equal(t, 700, resp.TotalAmount)
	assert.Equal(t, domain.BookingPendingVerification, resp.Status)

	require.NotNil(t, bookings.created)
	assert.Equal(t, domain.PaymentUPI, bookings.created.PaymentMethod)
	require.NotNil(t, bookings.created.UTRNumber)
	// Whitespace is trimmed before validation and storage.
	assert.Equal(t, "123456789012", *bookings.created.UTRNumber)
	assert.Equal(t, &shot, bookings.created.Screenshot)

	// The slots move out of LOCKED in the same transaction.
	require.Len(t, slots.statusCalls, 1)
	assert.Equal(t, []int64{1, 2}, slots.statusCalls[0].ids)
	assert.Equal(t, domain.SlotPendingConfirmation, slots.statusCalls[0].status)
}

func TestExecute_RejectsMalformedUTR(t *testing.T) {
	uc := NewUseCase(&stubSlotRepo{slots: lockedSlots(7)}, &stubBookingRepo{}, passthroughTx{}, noopLogger{})

	for _, utr := range []string{"", "12345", "1234567890123", "12345678901a"} {
		req := validRequest()
		req.UTRNumber = utr
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput, "utr %q", utr)
	}
}

func TestExecute_SlotNotLocked(t *testing.T) {
	for _, status := range []domain.SlotStatus{
		domain.SlotAvailable,
		domain.SlotPendingConfirmation,
		domain.SlotBooked,
		domain.SlotBlocked,
	} {
		t.Run(string(status), func(t *testing.T) {
			userID := int64(7)
			slots := &stubSlotRepo{slots: []*domain.Slot{
				{ID: 1, Price: 300, Status: status, BookedBy: &userID},
			}}
			bookings := &stubBookingRepo{}
			uc := NewUseCase(slots, bookings, passthroughTx{}, noopLogger{})

			req := validRequest()
			req.SlotIDs = []int64{1}

			_, err := uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrWrongState)

			assert.Nil(t, bookings.created)
			assert.Empty(t, slots.statusCalls)
		})
	}
}

func TestExecute_SlotHeldByAnotherUser(t *testing.T) {
	uc := NewUseCase(&stubSlotRepo{slots: lockedSlots(99)}, &stubBookingRepo{}, passthroughTx{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotHeld)
}

func TestExecute_AdminMaySubmitOverAnyHold(t *testing.T) {
	slots := &stubSlotRepo{slots: lockedSlots(99)}
	uc := NewUseCase(slots, &stubBookingRepo{}, passthroughTx{}, noopLogger{})

	req := validRequest()
	req.UserID = 1
	req.Role = domain.RoleAdmin

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, slots.statusCalls, 1)
}

func TestExecute_DuplicateUTRLeavesSlotsUntouched(t *testing.T) {
	slots := &stubSlotRepo{slots: lockedSlots(7)}
	bookings := &stubBookingRepo{createErr: bookingstorage.ErrDuplicateUTR}
	uc := NewUseCase(slots, bookings, passthroughTx{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDuplicateUTR)

	// The insert failed first, so no slot transition happened.
	assert.Empty(t, slots.statusCalls)
}

func TestExecute_MissingSlot(t *testing.T) {
	uc := NewUseCase(&stubSlotRepo{slots: lockedSlots(7)[:1]}, &stubBookingRepo{}, passthroughTx{}, noopLogger{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_EmptySlotList(t *testing.T) {
	uc := NewUseCase(&stubSlotRepo{}, &stubBookingRepo{}, passthroughTx{}, noopLogger{})

	req := validRequest()
	req.SlotIDs = nil

	_, err := uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
