package lock_slot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/TurfBookingService/internal/domain"
	slotstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/slot"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

type stubSlotRepo struct {
	createResult *domain.Slot
	createErr    error

	getByID    map[int64]*domain.Slot
	getByTime  *domain.Slot
	getTimeErr error

	lockResult *domain.Slot
	lockErr    error
	lockCalls  []lockCall
}

type lockCall struct {
	id           int64
	userID       int64
	allowBlocked bool
}

func (s *stubSlotRepo) CreateIfAbsent(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if s.createResult != nil {
		return s.createResult, nil
	}
	out := *slot
	out.ID = 101
	return &out, nil
}

func (s *stubSlotRepo) GetByID(_ context.Context, id int64) (*domain.Slot, error) {
	if slot, ok := s.getByID[id]; ok {
		return slot, nil
	}
	return nil, slotstorage.ErrSlotNotFound
}

func (s *stubSlotRepo) GetByDateAndStartTime(_ context.Context, _ string, _ types.TimeString) (*domain.Slot, error) {
	if s.getTimeErr != nil {
		return nil, s.getTimeErr
	}
	return s.getByTime, nil
}

func (s *stubSlotRepo) Lock(_ context.Context, id, userID int64, now time.Time, allowBlocked bool) (*domain.Slot, error) {
	s.lockCalls = append(s.lockCalls, lockCall{id: id, userID: userID, allowBlocked: allowBlocked})
	if s.lockErr != nil {
		return nil, s.lockErr
	}
	if s.lockResult != nil {
		return s.lockResult, nil
	}
	return &domain.Slot{ID: id, Status: domain.SlotLocked, LockedAt: &now, BookedBy: &userID}, nil
}

func (s *stubSlotRepo) ReclaimExpiredLocks(_ context.Context, _ time.Time) (int64, error) {
	return 0, nil
}

type fixedTime struct{ t time.Time }

func (f *fixedTime) Now() time.Time { return f.t }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

// 09:00 UTC = 14:30 IST.
var testNow = time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)

func newTestUseCase(repo *stubSlotRepo) *UseCase {
	uc := NewUseCase(
		repo,
		domain.DefaultBusinessWindow(),
		domain.DefaultPricing(),
		domain.NewBusinessClock(330),
		10*time.Minute,
		noopLogger{},
	)
	uc.timeProvider = &fixedTime{t: testNow}
	return uc
}

func TestExecute_VirtualSlotMaterializedLocked(t *testing.T) {
	repo := &stubSlotRepo{}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		SlotRef: "virtual-2025-07-20-18:00",
		UserID:  7,
		Role:    domain.RoleUser,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(101), resp.SlotID)
	assert.Equal(t, "2025-07-20", resp.Date)
	assert.Equal(t, 400, resp.Price)
	assert.Equal(t, domain.SlotLocked, resp.Status)
	assert.Equal(t, testNow.Add(10*time.Minute), resp.LockExpiresAt)

	// The insert won, so no conditional lock was needed.
	assert.Empty(t, repo.lockCalls)
}

func TestExecute_VirtualSlotLostInsertRace(t *testing.T) {
	repo := &stubSlotRepo{
		createErr: slotstorage.ErrDuplicateSlot,
		getByTime: &domain.Slot{
			ID:        55,
			Date:      "2025-07-20",
			StartTime: types.NewTimeStringFromHour(10),
			Status:    domain.SlotAvailable,
		},
	}
	uc := newTestUseCase(repo)

	resp, err := uc.Execute(context.Background(), &Request{
		SlotRef: "virtual-2025-07-20-10:00",
		UserID:  7,
		Role:    domain.RoleUser,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(55), resp.SlotID)
	require.Len(t, repo.lockCalls, 1)
	assert.Equal(t, int64(55), repo.lockCalls[0].id)
	assert.False(t, repo.lockCalls[0].allowBlocked)
}

func TestExecute_PersistedSlotNotLockable(t *testing.T) {
	repo := &stubSlotRepo{
		getByID: map[int64]*domain.Slot{
			42: {
				ID:        42,
				Date:      "2025-07-20",
				StartTime: types.NewTimeStringFromHour(10),
				Status:    domain.SlotBooked,
			},
		},
		lockErr: slotstorage.ErrSlotNotLockable,
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{SlotRef: "42", UserID: 7, Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrSlotUnavailable)
}

func TestExecute_AdminMayLockBlocked(t *testing.T) {
	repo := &stubSlotRepo{
		getByID: map[int64]*domain.Slot{
			42: {
				ID:        42,
				Date:      "2025-07-20",
				StartTime: types.NewTimeStringFromHour(10),
				Status:    domain.SlotBlocked,
			},
		},
	}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{SlotRef: "42", UserID: 1, Role: domain.RoleAdmin})
	require.NoError(t, err)

	require.Len(t, repo.lockCalls, 1)
	assert.True(t, repo.lockCalls[0].allowBlocked)
}

func TestExecute_PastSlot(t *testing.T) {
	uc := newTestUseCase(&stubSlotRepo{})

	// Business time is 14:30, 14:00 has already started.
	_, err := uc.Execute(context.Background(), &Request{
		SlotRef: "virtual-2025-07-14-14:00",
		UserID:  7,
		Role:    domain.RoleUser,
	})
	assert.ErrorIs(t, err, ErrPastSlot)
}

func TestExecute_VirtualSlotOutsideWindow(t *testing.T) {
	uc := newTestUseCase(&stubSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{
		SlotRef: "virtual-2025-07-20-03:00",
		UserID:  7,
		Role:    domain.RoleUser,
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_PersistedSlotNotFound(t *testing.T) {
	uc := newTestUseCase(&stubSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{SlotRef: "999", UserID: 7, Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrSlotNotFound)
}

func TestExecute_MalformedRef(t *testing.T) {
	uc := newTestUseCase(&stubSlotRepo{})

	_, err := uc.Execute(context.Background(), &Request{SlotRef: "not-a-slot", UserID: 7, Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
