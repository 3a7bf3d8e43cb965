package booking

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestCreate_ReturnsGeneratedFields(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(20), now, now))

	userID := int64(7)
	utr := "123456789012"
	created, err := repo.Create(context.Background(), &domain.Booking{
		UserID:        &userID,
		SlotIDs:       []int64{1, 2},
		TotalAmount:   700,
		Status:        domain.BookingPendingVerification,
		PaymentMethod: domain.PaymentUPI,
		UTRNumber:     &utr,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(20), created.ID)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DuplicateUTR(t *testing.T) {
	repo, mock := newMockRepo(t)

	// The partial unique index on utr_number rejects the insert.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO bookings")).
		WillReturnError(&pq.Error{Code: pqUniqueViolation})

	userID := int64(7)
	utr := "123456789012"
	_, err := repo.Create(context.Background(), &domain.Booking{
		UserID:        &userID,
		SlotIDs:       []int64{1},
		Status:        domain.BookingPendingVerification,
		PaymentMethod: domain.PaymentUPI,
		UTRNumber:     &utr,
	})
	assert.ErrorIs(t, err, ErrDuplicateUTR)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUserID_ScansSlotArray(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(bookingColumns).
		AddRow(int64(20), int64(7), "{1,2}", nil, nil, 700,
			string(domain.BookingPendingVerification), "123456789012",
			string(domain.PaymentUPI), nil, nil, nil, now, now).
		AddRow(int64(19), int64(7), "{3}", nil, nil, 300,
			string(domain.BookingConfirmed), nil,
			string(domain.PaymentRazorpay), "order_abc123", "pay_xyz789", nil, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	bookings, err := repo.GetByUserID(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, []int64{1, 2}, bookings[0].SlotIDs)
	require.NotNil(t, bookings[0].UTRNumber)
	assert.Equal(t, "123456789012", *bookings[0].UTRNumber)
	assert.Nil(t, bookings[0].PaymentID)

	assert.Equal(t, []int64{3}, bookings[1].SlotIDs)
	require.NotNil(t, bookings[1].RazorpayOrderID)
	assert.Equal(t, "order_abc123", *bookings[1].RazorpayOrderID)
	assert.Nil(t, bookings[1].UTRNumber)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatus_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), 999, domain.BookingCancelled)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestConfirmPayment_StampsPaymentID(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE bookings")).
		WithArgs(string(domain.BookingConfirmed), "pay_xyz789", int64(20)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ConfirmPayment(context.Background(), 20, "pay_xyz789")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
