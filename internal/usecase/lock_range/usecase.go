package lock_range

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	slotstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/slot"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// UseCase locks a contiguous range of hourly slots on one date. Each slot is
// acquired with its own conditional write; if any acquisition fails, the
// locks already taken are released before the error is returned, so the
// range is held all-or-nothing.
type UseCase struct {
	slotRepo     SlotRepository
	window       domain.BusinessWindow
	pricing      domain.Pricing
	clock        domain.BusinessClock
	lockTTL      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the range lock use case.
func NewUseCase(
	slotRepo SlotRepository,
	window domain.BusinessWindow,
	pricing domain.Pricing,
	clock domain.BusinessClock,
	lockTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		window:       window,
		pricing:      pricing,
		clock:        clock,
		lockTTL:      lockTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute locks every slot of the requested range for the user.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LockRange: date=%s, hours=[%d, %d), userID=%d",
		req.Date, req.StartHour, req.EndHour, req.UserID)

	// 1. Validate the range.
	if err := uc.validate(req); err != nil {
		uc.logger.Warn("LockRange: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	if uc.isPastStart(req.Date, req.StartHour, now) {
		return nil, ErrPastSlot
	}

	// 2. Sweep expired locks so a stale hold never blocks the range.
	if _, err := uc.slotRepo.ReclaimExpiredLocks(ctx, now.Add(-uc.lockTTL)); err != nil {
		uc.logger.Error("LockRange: failed to reclaim expired locks: %v", err)
		return nil, fmt.Errorf("%w: failed to reclaim expired locks: %v", ErrInternal, err)
	}

	// 3. Acquire slot by slot, remembering what we hold for the rollback.
	acquired := make([]*domain.Slot, 0, req.EndHour-req.StartHour)
	for hour := req.StartHour; hour < req.EndHour; hour++ {
		locked, err := uc.lockHour(ctx, req, hour, now)
		if err != nil {
			uc.rollback(ctx, acquired)
			return nil, err
		}
		acquired = append(acquired, locked)
	}

	resp := &Response{
		Date:          req.Date,
		Slots:         make([]LockedSlot, 0, len(acquired)),
		LockExpiresAt: now.Add(uc.lockTTL),
	}
	for _, s := range acquired {
		resp.Slots = append(resp.Slots, LockedSlot{
			SlotID:    s.ID,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Price:     s.Price,
		})
		resp.TotalAmount += s.Price
	}

	uc.logger.Info("LockRange: date=%s, locked %d slots for userID=%d, total=%d",
		req.Date, len(resp.Slots), req.UserID, resp.TotalAmount)

	return resp, nil
}

func (uc *UseCase) validate(req *Request) error {
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		return fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	if req.StartHour >= req.EndHour {
		return fmt.Errorf("%w: start hour must precede end hour", ErrInvalidInput)
	}
	if req.StartHour < uc.window.OpenHour || req.EndHour-1 > uc.window.LastStartHour {
		return fmt.Errorf("%w: range outside business window %02d:00-%02d:00",
			ErrInvalidInput, uc.window.OpenHour, uc.window.LastStartHour+1)
	}
	return nil
}

// lockHour acquires one hour of the range: materialize-and-lock for a slot
// with no persisted row, conditional lock otherwise.
func (uc *UseCase) lockHour(ctx context.Context, req *Request, hour int, now time.Time) (*domain.Slot, error) {
	startTime := types.NewTimeStringFromHour(hour)

	candidate := &domain.Slot{
		Date:      req.Date,
		StartTime: startTime,
		EndTime:   domain.SlotEndTime(hour),
		Price:     uc.pricing.PriceForHour(hour),
		Status:    domain.SlotLocked,
		LockedAt:  &now,
		BookedBy:  &req.UserID,
	}

	created, err := uc.slotRepo.CreateIfAbsent(ctx, candidate)
	if err == nil {
		return created, nil
	}
	if !errors.Is(err, slotstorage.ErrDuplicateSlot) {
		uc.logger.Error("LockRange: failed to materialize slot %s %s: %v", req.Date, startTime, err)
		return nil, fmt.Errorf("%w: failed to materialize slot: %v", ErrInternal, err)
	}

	existing, err := uc.slotRepo.GetByDateAndStartTime(ctx, req.Date, startTime)
	if err != nil {
		if errors.Is(err, slotstorage.ErrSlotNotFound) {
			return nil, ErrRangeUnavailable
		}
		uc.logger.Error("LockRange: failed to fetch slot %s %s: %v", req.Date, startTime, err)
		return nil, fmt.Errorf("%w: failed to fetch slot: %v", ErrInternal, err)
	}

	allowBlocked := req.Role == domain.RoleAdmin
	locked, err := uc.slotRepo.Lock(ctx, existing.ID, req.UserID, now, allowBlocked)
	if err != nil {
		if errors.Is(err, slotstorage.ErrSlotNotLockable) {
			uc.logger.Info("LockRange: slot %s %s held by another user", req.Date, startTime)
			return nil, ErrRangeUnavailable
		}
		uc.logger.Error("LockRange: failed to lock slot %d: %v", existing.ID, err)
		return nil, fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
	}

	return locked, nil
}

// rollback releases the locks acquired before the failure. A rollback
// failure is logged but not surfaced: the expired-lock sweep reclaims
// anything left behind within the lock TTL.
func (uc *UseCase) rollback(ctx context.Context, acquired []*domain.Slot) {
	if len(acquired) == 0 {
		return
	}

	ids := make([]int64, 0, len(acquired))
	for _, s := range acquired {
		ids = append(ids, s.ID)
	}

	if err := uc.slotRepo.ReleaseByIDs(ctx, ids); err != nil {
		uc.logger.Error("LockRange: rollback failed for slots %v: %v", ids, err)
		return
	}

	uc.logger.Info("LockRange: rolled back %d acquired locks", len(ids))
}

func (uc *UseCase) isPastStart(date string, startHour int, now time.Time) bool {
	today := uc.clock.Today(now)
	if date < today {
		return true
	}
	return date == today && startHour <= uc.clock.CurrentHour(now)
}
