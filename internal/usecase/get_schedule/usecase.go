package get_schedule

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// UseCase materializes a full day schedule: persisted slots merged with
// virtual default slots, after reclaiming expired locks.
type UseCase struct {
	slotRepo     SlotRepository
	window       domain.BusinessWindow
	pricing      domain.Pricing
	clock        domain.BusinessClock
	lockTTL      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the schedule use case.
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

// Execute builds the schedule for the requested date.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetSchedule: date=%s", req.Date)

	// 1. Validate the date format.
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		uc.logger.Warn("GetSchedule: invalid date %q: %v", req.Date, err)
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 2. Reclaim expired locks before reading availability. Every schedule
	// fetch performs this sweep, so a stale lock never outlives the next read.
	cutoff := now.Add(-uc.lockTTL)
	reclaimed, err := uc.slotRepo.ReclaimExpiredLocks(ctx, cutoff)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to reclaim expired locks: %v", err)
		return nil, fmt.Errorf("%w: failed to reclaim expired locks: %v", ErrInternal, err)
	}
	if reclaimed > 0 {
		uc.logger.Info("GetSchedule: reclaimed %d expired slot locks", reclaimed)
	}

	// 3. Load persisted slots for the date, indexed by start time.
	persisted, err := uc.slotRepo.GetByDate(ctx, req.Date)
	if err != nil {
		uc.logger.Error("GetSchedule: failed to load slots for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: failed to load slots: %v", ErrInternal, err)
	}

	byStartTime := make(map[types.TimeString]*domain.Slot, len(persisted))
	for _, s := range persisted {
		byStartTime[s.StartTime] = s
	}

	// 4. Emit one entry per default-window hour: the persisted record when
	// present, otherwise a virtual AVAILABLE slot priced by policy.
	views := make([]SlotView, 0, uc.window.LastStartHour-uc.window.OpenHour+1)
	for hour := uc.window.OpenHour; hour <= uc.window.LastStartHour; hour++ {
		startTime := types.NewTimeStringFromHour(hour)

		if s, ok := byStartTime[startTime]; ok {
			views = append(views, newSlotView(s))
			continue
		}

		views = append(views, newSlotView(&domain.Slot{
			Date:      req.Date,
			StartTime: startTime,
			EndTime:   domain.SlotEndTime(hour),
			Price:     uc.pricing.PriceForHour(hour),
			Status:    domain.SlotAvailable,
			Virtual:   true,
		}))
	}

	// 5. Append admin-added slots outside the default window.
	for _, s := range persisted {
		if !uc.window.Contains(s.StartTime.Hour()) {
			views = append(views, newSlotView(s))
		}
	}

	// 6. Temporal override, view-only: past dates are fully blocked, today's
	// started hours are blocked. Storage is never mutated here.
	applyTemporalOverride(views, req.Date, uc.clock.Today(now), uc.clock.CurrentHour(now))

	// 7. Zero-padded HH:00 keys make the lexicographic order chronological.
	sort.Slice(views, func(i, j int) bool {
		return views[i].StartTime < views[j].StartTime
	})

	uc.logger.Info("GetSchedule: date=%s, %d entries", req.Date, len(views))

	return &Response{Date: req.Date, Slots: views}, nil
}

// applyTemporalOverride forces BLOCKED onto entries whose hour already
// started in business time. It overrides even BOOKED/LOCKED for display.
func applyTemporalOverride(views []SlotView, date, today string, currentHour int) {
	switch {
	case date < today:
		for i := range views {
			views[i].Status = domain.SlotBlocked
		}
	case date == today:
		for i := range views {
			if views[i].StartTime.Hour() <= currentHour {
				views[i].Status = domain.SlotBlocked
			}
		}
	}
}
