package lock_slot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	slotstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/slot"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// UseCase places a 10-minute hold on a single slot. Virtual slots are
// materialized and locked in one atomic insert; persisted slots go through a
// conditional status update. Either way the database arbitrates races.
type UseCase struct {
	slotRepo     SlotRepository
	window       domain.BusinessWindow
	pricing      domain.Pricing
	clock        domain.BusinessClock
	lockTTL      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the slot lock use case.
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

// Execute locks the referenced slot for the requesting user.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("LockSlot: ref=%s, userID=%d", req.SlotRef, req.UserID)

	now := uc.timeProvider.Now()

	// 1. Sweep expired locks so a stale hold never blocks a fresh one.
	if _, err := uc.slotRepo.ReclaimExpiredLocks(ctx, now.Add(-uc.lockTTL)); err != nil {
		uc.logger.Error("LockSlot: failed to reclaim expired locks: %v", err)
		return nil, fmt.Errorf("%w: failed to reclaim expired locks: %v", ErrInternal, err)
	}

	// 2. Resolve the slot reference and lock.
	var (
		locked *domain.Slot
		err    error
	)
	if domain.IsVirtualSlotID(req.SlotRef) {
		locked, err = uc.lockVirtual(ctx, req, now)
	} else {
		locked, err = uc.lockPersisted(ctx, req, now)
	}
	if err != nil {
		return nil, err
	}

	uc.logger.Info("LockSlot: slotID=%d locked by userID=%d until %s",
		locked.ID, req.UserID, locked.LockedAt.Add(uc.lockTTL).Format(time.RFC3339))

	return newResponse(locked, uc.lockTTL), nil
}

// lockVirtual materializes the slot directly in LOCKED state. If another
// request wins the insert, the existing row is locked conditionally instead.
func (uc *UseCase) lockVirtual(ctx context.Context, req *Request, now time.Time) (*domain.Slot, error) {
	date, startTime, err := domain.ParseVirtualSlotID(req.SlotRef)
	if err != nil {
		uc.logger.Warn("LockSlot: malformed virtual id %q: %v", req.SlotRef, err)
		return nil, fmt.Errorf("%w: malformed virtual slot id", ErrInvalidInput)
	}

	hour := startTime.Hour()
	if !uc.window.Contains(hour) {
		return nil, fmt.Errorf("%w: start hour %02d:00 outside business window", ErrInvalidInput, hour)
	}
	if uc.isPastStart(date, startTime, now) {
		return nil, ErrPastSlot
	}

	candidate := &domain.Slot{
		Date:      date,
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
		uc.logger.Error("LockSlot: failed to materialize slot %s %s: %v", date, startTime, err)
		return nil, fmt.Errorf("%w: failed to materialize slot: %v", ErrInternal, err)
	}

	// Lost the insert race: the slot already exists, fall back to a
	// conditional lock on the persisted row.
	existing, err := uc.slotRepo.GetByDateAndStartTime(ctx, date, startTime)
	if err != nil {
		if errors.Is(err, slotstorage.ErrSlotNotFound) {
			return nil, ErrSlotUnavailable
		}
		uc.logger.Error("LockSlot: failed to fetch slot %s %s: %v", date, startTime, err)
		return nil, fmt.Errorf("%w: failed to fetch slot: %v", ErrInternal, err)
	}

	return uc.lockByID(ctx, existing.ID, req, now)
}

func (uc *UseCase) lockPersisted(ctx context.Context, req *Request, now time.Time) (*domain.Slot, error) {
	id, err := strconv.ParseInt(req.SlotRef, 10, 64)
	if err != nil {
		uc.logger.Warn("LockSlot: malformed slot id %q", req.SlotRef)
		return nil, fmt.Errorf("%w: malformed slot id", ErrInvalidInput)
	}

	existing, err := uc.slotRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, slotstorage.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		uc.logger.Error("LockSlot: failed to fetch slot %d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to fetch slot: %v", ErrInternal, err)
	}

	if uc.isPastStart(existing.Date, existing.StartTime, now) {
		return nil, ErrPastSlot
	}

	return uc.lockByID(ctx, id, req, now)
}

func (uc *UseCase) lockByID(ctx context.Context, id int64, req *Request, now time.Time) (*domain.Slot, error) {
	allowBlocked := req.Role == domain.RoleAdmin

	locked, err := uc.slotRepo.Lock(ctx, id, req.UserID, now, allowBlocked)
	if err != nil {
		if errors.Is(err, slotstorage.ErrSlotNotLockable) {
			uc.logger.Info("LockSlot: slotID=%d not lockable for userID=%d", id, req.UserID)
			return nil, ErrSlotUnavailable
		}
		uc.logger.Error("LockSlot: failed to lock slot %d: %v", id, err)
		return nil, fmt.Errorf("%w: failed to lock slot: %v", ErrInternal, err)
	}

	return locked, nil
}

// isPastStart reports whether the slot start hour has already begun in
// business time.
func (uc *UseCase) isPastStart(date string, startTime types.TimeString, now time.Time) bool {
	today := uc.clock.Today(now)
	if date < today {
		return true
	}
	return date == today && startTime.Hour() <= uc.clock.CurrentHour(now)
}
