package slot

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/dbmetrics"
	"github.com/m04kA/TurfBookingService/pkg/psqlbuilder"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

const pqUniqueViolation = "23505"

var slotColumns = []string{
	"id",
	"date",
	"start_time",
	"end_time",
	"price",
	"status",
	"locked_at",
	"booked_by",
	"created_at",
	"updated_at",
}

// Repository persists slots. All mutations use single-statement conditional
// writes so the database stays the arbiter of concurrent transitions.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a slot repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new slot.
// A (date, start_time) uniqueness violation surfaces as ErrDuplicateSlot.
func (r *Repository) Create(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns("date", "start_time", "end_time", "price", "status", "locked_at", "booked_by").
		Values(s.Date, s.StartTime, s.EndTime, s.Price, s.Status, s.LockedAt, s.BookedBy).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicateSlot
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// CreateIfAbsent inserts a slot only when no row exists for its
// (date, start_time). On conflict no row is returned and the loser receives
// ErrDuplicateSlot, making materialize-and-lock a single atomic statement.
func (r *Repository) CreateIfAbsent(ctx context.Context, s *domain.Slot) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("slots").
		Columns("date", "start_time", "end_time", "price", "status", "locked_at", "booked_by").
		Values(s.Date, s.StartTime, s.EndTime, s.Price, s.Status, s.LockedAt, s.BookedBy).
		Suffix("ON CONFLICT (date, start_time) DO NOTHING RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateIfAbsent - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		// Another request materialized this slot first.
		return nil, ErrDuplicateSlot
	}
	if err != nil {
		return nil, fmt.Errorf("%w: CreateIfAbsent - execute insert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}

// CreateBatch inserts several slots at once.
// With skipDuplicates the statement ignores rows violating the
// (date, start_time) constraint instead of failing the whole batch.
func (r *Repository) CreateBatch(ctx context.Context, slots []*domain.Slot, skipDuplicates bool) error {
	if len(slots) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insert := psqlbuilder.Insert("slots").
		Columns("date", "start_time", "end_time", "price", "status")
	for _, s := range slots {
		insert = insert.Values(s.Date, s.StartTime, s.EndTime, s.Price, s.Status)
	}
	if skipDuplicates {
		insert = insert.Suffix("ON CONFLICT (date, start_time) DO NOTHING")
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("%w: CreateBatch - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateSlot
		}
		return fmt.Errorf("%w: CreateBatch - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetByID fetches a slot by primary key.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlotRow(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// GetByIDs fetches several slots, ordered chronologically.
func (r *Repository) GetByIDs(ctx context.Context, ids []int64) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("date ASC, start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetByDate fetches all persisted slots for a date, ordered by start time.
func (r *Repository) GetByDate(ctx context.Context, date string) ([]*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"date": date}).
		OrderBy("start_time ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanSlots(rows)
}

// GetByDateAndStartTime fetches the slot for one (date, startTime) pair.
// Rows are locked FOR UPDATE when called inside a transaction.
func (r *Repository) GetByDateAndStartTime(ctx context.Context, date string, startTime types.TimeString) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(slotColumns...).
		From("slots").
		Where(squirrel.Eq{"date": date, "start_time": startTime})

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndStartTime - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanSlotRow(executor.QueryRowContext(ctx, query, args...), "GetByDateAndStartTime")
}

// Lock transitions a slot into LOCKED with a single conditional update.
// The WHERE clause re-checks the current status, so a concurrent lock loser
// matches zero rows and receives ErrSlotNotLockable.
func (r *Repository) Lock(ctx context.Context, id int64, userID int64, now time.Time, allowBlocked bool) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	allowed := []string{string(domain.SlotAvailable)}
	if allowBlocked {
		allowed = append(allowed, string(domain.SlotBlocked))
	}

	query, args, err := psqlbuilder.Update("slots").
		Set("status", domain.SlotLocked).
		Set("locked_at", now).
		Set("booked_by", userID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Where(squirrel.Eq{"status": allowed}).
		Suffix("RETURNING " + strings.Join(slotColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Lock - build update query: %v", ErrBuildQuery, err)
	}

	locked, err := r.scanSlotRow(executor.QueryRowContext(ctx, query, args...), "Lock")
	if errors.Is(err, ErrSlotNotFound) {
		return nil, ErrSlotNotLockable
	}
	return locked, err
}

// SetStatusByIDs moves all given slots into the target status.
func (r *Repository) SetStatusByIDs(ctx context.Context, ids []int64, status domain.SlotStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: SetStatusByIDs - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetStatusByIDs - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// BookByIDs marks all given slots BOOKED for the given owner.
func (r *Repository) BookByIDs(ctx context.Context, ids []int64, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", domain.SlotBooked).
		Set("booked_by", userID).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: BookByIDs - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: BookByIDs - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// ReleaseByIDs reverts all given slots to AVAILABLE, clearing the lock fields.
func (r *Repository) ReleaseByIDs(ctx context.Context, ids []int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", domain.SlotAvailable).
		Set("locked_at", nil).
		Set("booked_by", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReleaseByIDs - build update query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ReleaseByIDs - execute update: %v", ErrExecQuery, err)
	}

	return nil
}

// ReclaimExpiredLocks reverts every LOCKED slot whose lock is strictly older
// than cutoff back to AVAILABLE. Slots in PENDING_CONFIRMATION or BOOKED are
// never touched. Returns the number of reclaimed slots.
func (r *Repository) ReclaimExpiredLocks(ctx context.Context, cutoff time.Time) (int64, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("slots").
		Set("status", domain.SlotAvailable).
		Set("locked_at", nil).
		Set("booked_by", nil).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"status": domain.SlotLocked}).
		Where(squirrel.Lt{"locked_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: ReclaimExpiredLocks - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: ReclaimExpiredLocks - execute update: %v", ErrExecQuery, err)
	}

	reclaimed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: ReclaimExpiredLocks - get rows affected: %v", ErrExecQuery, err)
	}

	return reclaimed, nil
}

// UpdateStatusAndPrice applies an admin edit. Nil fields stay unchanged.
func (r *Repository) UpdateStatusAndPrice(ctx context.Context, id int64, status *domain.SlotStatus, price *int) (*domain.Slot, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	update := psqlbuilder.Update("slots").
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})
	if status != nil {
		update = update.Set("status", *status)
	}
	if price != nil {
		update = update.Set("price", *price)
	}

	query, args, err := update.
		Suffix("RETURNING " + strings.Join(slotColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: UpdateStatusAndPrice - build update query: %v", ErrBuildQuery, err)
	}

	return r.scanSlotRow(executor.QueryRowContext(ctx, query, args...), "UpdateStatusAndPrice")
}

func (r *Repository) scanSlotRow(row *sql.Row, method string) (*domain.Slot, error) {
	var s domain.Slot
	var lockedAt sql.NullTime
	var bookedBy sql.NullInt64
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&s.ID,
		&s.Date,
		&s.StartTime,
		&s.EndTime,
		&s.Price,
		&s.Status,
		&lockedAt,
		&bookedBy,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan slot: %v", ErrScanRow, method, err)
	}

	if lockedAt.Valid {
		s.LockedAt = &lockedAt.Time
	}
	if bookedBy.Valid {
		s.BookedBy = &bookedBy.Int64
	}
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

func (r *Repository) scanSlots(rows *sql.Rows) ([]*domain.Slot, error) {
	slots := make([]*domain.Slot, 0)

	for rows.Next() {
		var s domain.Slot
		var lockedAt sql.NullTime
		var bookedBy sql.NullInt64
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&s.ID,
			&s.Date,
			&s.StartTime,
			&s.EndTime,
			&s.Price,
			&s.Status,
			&lockedAt,
			&bookedBy,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanSlots - scan row: %v", ErrScanRow, err)
		}

		if lockedAt.Valid {
			s.LockedAt = &lockedAt.Time
		}
		if bookedBy.Valid {
			s.BookedBy = &bookedBy.Int64
		}
		s.CreatedAt = createdAt.Time
		s.UpdatedAt = updatedAt.Time

		slots = append(slots, &s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanSlots - rows error: %v", ErrScanRow, err)
	}

	return slots, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}
