package lock_range

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
	nextID int64

	// failHour makes CreateIfAbsent report a duplicate for that hour and the
	// follow-up conditional lock fail, simulating a slot held by someone else.
	failHour int

	released [][]int64
}

func (s *stubSlotRepo) CreateIfAbsent(_ context.Context, slot *domain.Slot) (*domain.Slot, error) {
	if s.failHour != 0 && slot.StartTime.Hour() == s.failHour {
		return nil, slotstorage.ErrDuplicateSlot
	}
	s.nextID++
	out := *slot
	out.ID = s.nextID
	return &out, nil
}

func (s *stubSlotRepo) GetByDateAndStartTime(_ context.Context, date string, startTime types.TimeString) (*domain.Slot, error) {
	return &domain.Slot{ID: 900, Date: date, StartTime: startTime, Status: domain.SlotLocked}, nil
}

func (s *stubSlotRepo) Lock(_ context.Context, _ int64, _ int64, _ time.Time, _ bool) (*domain.Slot, error) {
	return nil, slotstorage.ErrSlotNotLockable
}

func (s *stubSlotRepo) ReleaseByIDs(_ context.Context, ids []int64) error {
	s.released = append(s.released, ids)
	return nil
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

func TestExecute_LocksWholeRange(t *testing.T) {
	repo := &stubSlotRepo{}
	uc := newTestUseCase(repo)

	// Hours 16, 17, 18: one off-peak, two peak.
	resp, err := uc.Execute(context.Background(), &Request{
		Date:      "2025-07-20",
		StartHour: 16,
		EndHour:   19,
		UserID:    7,
		Role:      domain.RoleUser,
	})
	require.NoError(t, err)

	require.Len(t, resp.Slots, 3)
	assert.Equal(t, 300+400+400, resp.TotalAmount)
	assert.Equal(t, testNow.Add(10*time.Minute), resp.LockExpiresAt)
	assert.Equal(t, "16:00", resp.Slots[0].StartTime.String())
	assert.Equal(t, "19:00", resp.Slots[2].EndTime.String())
	assert.Empty(t, repo.released)
}

func TestExecute_MidRangeConflictRollsBack(t *testing.T) {
	repo := &stubSlotRepo{failHour: 18}
	uc := newTestUseCase(repo)

	_, err := uc.Execute(context.Background(), &Request{
		Date:      "2025-07-20",
		StartHour: 16,
		EndHour:   20,
		UserID:    7,
		Role:      domain.RoleUser,
	})
	assert.ErrorIs(t, err, ErrRangeUnavailable)

	// Hours 16 and 17 were acquired before 18 failed; both must be released.
	require.Len(t, repo.released, 1)
	assert.Equal(t, []int64{1, 2}, repo.released[0])
}

func TestExecute_PastRange(t *testing.T) {
	uc := newTestUseCase(&stubSlotRepo{})

	// Business time is 14:30, hour 14 has already started.
	_, err := uc.Execute(context.Background(), &Request{
		Date:      "2025-07-14",
		StartHour: 14,
		EndHour:   16,
		UserID:    7,
		Role:      domain.RoleUser,
	})
	assert.ErrorIs(t, err, ErrPastSlot)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&stubSlotRepo{})

	cases := []struct {
		name string
		req  Request
	}{
		{"bad date", Request{Date: "20-07-2025", StartHour: 10, EndHour: 12}},
		{"empty range", Request{Date: "2025-07-20", StartHour: 12, EndHour: 12}},
		{"inverted range", Request{Date: "2025-07-20", StartHour: 14, EndHour: 12}},
		{"before opening", Request{Date: "2025-07-20", StartHour: 3, EndHour: 6}},
		{"past closing", Request{Date: "2025-07-20", StartHour: 22, EndHour: 25}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.req.UserID = 7
			tc.req.Role = domain.RoleUser
			_, err := uc.Execute(context.Background(), &tc.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}
