package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/psqlbuilder"
)

const pqUniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"user_id",
	"slot_ids",
	"guest_name",
	"guest_phone",
	"total_amount",
	"status",
	"utr_number",
	"payment_method",
	"razorpay_order_id",
	"payment_id",
	"screenshot",
	"created_at",
	"updated_at",
}

// Repository persists bookings. Slot references are stored as a BIGINT array
// preserving chronological insertion order.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking.
// A UTR uniqueness violation surfaces as ErrDuplicateUTR.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"slot_ids",
			"guest_name",
			"guest_phone",
			"total_amount",
			"status",
			"utr_number",
			"payment_method",
			"razorpay_order_id",
			"payment_id",
			"screenshot",
		).
		Values(
			b.UserID,
			pq.Array(b.SlotIDs),
			b.GuestName,
			b.GuestPhone,
			b.TotalAmount,
			b.Status,
			b.UTRNumber,
			b.PaymentMethod,
			b.RazorpayOrderID,
			b.PaymentID,
			b.Screenshot,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateUTR
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID fetches a booking by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanBookingRow(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByUserID fetches all bookings of a user, newest first.
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// GetAll fetches every booking, newest first. Admin projection.
func (r *Repository) GetAll(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("created_at DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// UpdateStatus moves a booking into the target status.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// ConfirmPayment stamps the payment id and moves the booking to CONFIRMED.
func (r *Repository) ConfirmPayment(ctx context.Context, id int64, paymentID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.BookingConfirmed).
		Set("payment_id", paymentID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ConfirmPayment - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: ConfirmPayment - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: ConfirmPayment - get rows affected: %v", ErrExecQuery, err)
	}
	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

func (r *Repository) scanBookingRow(row *sql.Row, method string) (*domain.Booking, error) {
	var b domain.Booking
	var userID sql.NullInt64
	var slotIDs pq.Int64Array
	var guestName, guestPhone, utrNumber, razorpayOrderID, paymentID, screenshot sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&b.ID,
		&userID,
		&slotIDs,
		&guestName,
		&guestPhone,
		&b.TotalAmount,
		&b.Status,
		&utrNumber,
		&b.PaymentMethod,
		&razorpayOrderID,
		&paymentID,
		&screenshot,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan booking: %v", ErrScanRow, method, err)
	}

	fillBooking(&b, userID, slotIDs, guestName, guestPhone, utrNumber, razorpayOrderID, paymentID, screenshot, createdAt, updatedAt)

	return &b, nil
}

func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var b domain.Booking
		var userID sql.NullInt64
		var slotIDs pq.Int64Array
		var guestName, guestPhone, utrNumber, razorpayOrderID, paymentID, screenshot sql.NullString
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&userID,
			&slotIDs,
			&guestName,
			&guestPhone,
			&b.TotalAmount,
			&b.Status,
			&utrNumber,
			&b.PaymentMethod,
			&razorpayOrderID,
			&paymentID,
			&screenshot,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}

		fillBooking(&b, userID, slotIDs, guestName, guestPhone, utrNumber, razorpayOrderID, paymentID, screenshot, createdAt, updatedAt)

		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

func fillBooking(
	b *domain.Booking,
	userID sql.NullInt64,
	slotIDs pq.Int64Array,
	guestName, guestPhone, utrNumber, razorpayOrderID, paymentID, screenshot sql.NullString,
	createdAt, updatedAt sql.NullTime,
) {
	if userID.Valid {
		b.UserID = &userID.Int64
	}
	b.SlotIDs = slotIDs
	if guestName.Valid {
		b.GuestName = &guestName.String
	}
	if guestPhone.Valid {
		b.GuestPhone = &guestPhone.String
	}
	if utrNumber.Valid {
		b.UTRNumber = &utrNumber.String
	}
	if razorpayOrderID.Valid {
		b.RazorpayOrderID = &razorpayOrderID.String
	}
	if paymentID.Valid {
		b.PaymentID = &paymentID.String
	}
	if screenshot.Valid {
		b.Screenshot = &screenshot.String
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
