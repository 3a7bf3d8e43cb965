package slot

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
	"github.com/m04kA/TurfBookingService/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func slotRows(id int64, status domain.SlotStatus) *sqlmock.Rows {
	now := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(slotColumns).
		AddRow(id, "2025-07-20", "10:00", "11:00", 300, string(status), nil, nil, now, now)
}

func TestCreateIfAbsent_WinsInsert(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO slots")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(11), now, now))

	lockedAt := now
	userID := int64(7)
	created, err := repo.CreateIfAbsent(context.Background(), &domain.Slot{
		Date:      "2025-07-20",
		StartTime: types.NewTimeStringFromHour(10),
		EndTime:   types.NewTimeStringFromHour(11),
		Price:     300,
		Status:    domain.SlotLocked,
		LockedAt:  &lockedAt,
		BookedBy:  &userID,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAbsent_LosesInsertRace(t *testing.T) {
	repo, mock := newMockRepo(t)

	// ON CONFLICT DO NOTHING returns no row for the loser.
	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO slots")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.CreateIfAbsent(context.Background(), &domain.Slot{
		Date:      "2025-07-20",
		StartTime: types.NewTimeStringFromHour(10),
	})
	assert.ErrorIs(t, err, ErrDuplicateSlot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_UniqueViolation(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO slots")).
		WillReturnError(&pq.Error{Code: pqUniqueViolation})

	_, err := repo.Create(context.Background(), &domain.Slot{
		Date:      "2025-07-20",
		StartTime: types.NewTimeStringFromHour(10),
	})
	assert.ErrorIs(t, err, ErrDuplicateSlot)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLock_ConditionalUpdate(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE slots")).
		WithArgs(string(domain.SlotLocked), now, int64(7), int64(11), string(domain.SlotAvailable)).
		WillReturnRows(slotRows(11, domain.SlotLocked))

	locked, err := repo.Lock(context.Background(), 11, 7, now, false)
	require.NoError(t, err)

	assert.Equal(t, int64(11), locked.ID)
	assert.Equal(t, domain.SlotLocked, locked.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLock_NotLockable(t *testing.T) {
	repo, mock := newMockRepo(t)

	// The conditional WHERE matched nothing: somebody else holds the slot.
	mock.ExpectQuery(regexp.QuoteMeta("UPDATE slots")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Lock(context.Background(), 11, 7, time.Now(), false)
	assert.ErrorIs(t, err, ErrSlotNotLockable)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReclaimExpiredLocks_CountsReclaimed(t *testing.T) {
	repo, mock := newMockRepo(t)

	cutoff := time.Date(2025, 7, 14, 8, 50, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE slots")).
		WithArgs(string(domain.SlotAvailable), nil, nil, string(domain.SlotLocked), cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	reclaimed, err := repo.ReclaimExpiredLocks(context.Background(), cutoff)
	require.NoError(t, err)

	assert.Equal(t, int64(3), reclaimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), 999)
	assert.ErrorIs(t, err, ErrSlotNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByDate_ScansLockFields(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(slotColumns).
		AddRow(int64(1), "2025-07-20", "10:00", "11:00", 300, string(domain.SlotLocked), now, int64(7), now, now).
		AddRow(int64(2), "2025-07-20", "17:00", "18:00", 400, string(domain.SlotAvailable), nil, nil, now, now)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT")).
		WithArgs("2025-07-20").
		WillReturnRows(rows)

	slots, err := repo.GetByDate(context.Background(), "2025-07-20")
	require.NoError(t, err)
	require.Len(t, slots, 2)

	require.NotNil(t, slots[0].LockedAt)
	assert.Equal(t, now, *slots[0].LockedAt)
	require.NotNil(t, slots[0].BookedBy)
	assert.Equal(t, int64(7), *slots[0].BookedBy)

	assert.Nil(t, slots[1].LockedAt)
	assert.Nil(t, slots[1].BookedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}
