package create_direct_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	slotstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/slot"
	"github.com/m04kA/TurfBookingService/internal/integrations/sheets"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// UseCase settles a walk-in booking in one SERIALIZABLE transaction: every
// slot of the requested range is materialized or row-locked, checked
// AVAILABLE, moved to BOOKED, and the CONFIRMED booking is inserted. Any
// conflict aborts the whole transaction, leaving no partial state behind.
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	exporter     SheetExporter
	txManager    TxManager
	window       domain.BusinessWindow
	pricing      domain.Pricing
	lockTTL      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the direct booking use case.
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	exporter SheetExporter,
	txManager TxManager,
	window domain.BusinessWindow,
	pricing domain.Pricing,
	lockTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		exporter:     exporter,
		txManager:    txManager,
		window:       window,
		pricing:      pricing,
		lockTTL:      lockTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute books the requested hours for the walk-in customer.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateDirectBooking: date=%s, hours=[%d, %d), guest=%s",
		req.Date, req.StartHour, req.EndHour, req.GuestName)

	// 1. Validate the request.
	if err := uc.validate(req); err != nil {
		uc.logger.Warn("CreateDirectBooking: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	// 2. Sweep expired locks first: a lapsed hold counts as free at the
	// counter, but only by going through AVAILABLE.
	if _, err := uc.slotRepo.ReclaimExpiredLocks(ctx, now.Add(-uc.lockTTL)); err != nil {
		uc.logger.Error("CreateDirectBooking: failed to reclaim expired locks: %v", err)
		return nil, fmt.Errorf("%w: failed to reclaim expired locks: %v", ErrInternal, err)
	}

	booking := &domain.Booking{
		GuestName:     &req.GuestName,
		GuestPhone:    &req.GuestPhone,
		Status:        domain.BookingConfirmed,
		PaymentMethod: domain.PaymentDirect,
	}

	var bookedSlots []*domain.Slot

	// 3. Acquire and book every slot, then insert the booking, all under
	// SERIALIZABLE isolation.
	err := uc.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		bookedSlots = bookedSlots[:0]
		slotIDs := make([]int64, 0, req.EndHour-req.StartHour)
		totalAmount := 0

		for hour := req.StartHour; hour < req.EndHour; hour++ {
			s, err := uc.acquireSlot(ctx, req.Date, hour)
			if err != nil {
				return err
			}
			bookedSlots = append(bookedSlots, s)
			slotIDs = append(slotIDs, s.ID)
			totalAmount += s.Price
		}

		if err := uc.slotRepo.BookByIDs(ctx, slotIDs, req.AdminID); err != nil {
			return fmt.Errorf("%w: failed to book slots: %v", ErrInternal, err)
		}

		if req.AmountOverride != nil {
			totalAmount = *req.AmountOverride
		}
		booking.SlotIDs = slotIDs
		booking.TotalAmount = totalAmount

		if _, err := uc.bookingRepo.Create(ctx, booking); err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotUnavailable) || errors.Is(err, ErrInvalidInput) {
			return nil, err
		}
		uc.logger.Error("CreateDirectBooking: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateDirectBooking: bookingID=%d confirmed for guest=%s, total=%d",
		booking.ID, req.GuestName, booking.TotalAmount)

	// 4. Export best-effort after commit.
	uc.export(ctx, booking, bookedSlots)

	return &Response{
		BookingID:   booking.ID,
		SlotIDs:     booking.SlotIDs,
		TotalAmount: booking.TotalAmount,
		Status:      booking.Status,
	}, nil
}

// acquireSlot fetches the slot row FOR UPDATE, materializing it first when
// absent. Only an AVAILABLE slot can be booked over: held, pending, booked
// and blocked slots all abort the transaction.
func (uc *UseCase) acquireSlot(ctx context.Context, date string, hour int) (*domain.Slot, error) {
	startTime := types.NewTimeStringFromHour(hour)

	s, err := uc.slotRepo.GetByDateAndStartTime(ctx, date, startTime)
	if errors.Is(err, slotstorage.ErrSlotNotFound) {
		created, createErr := uc.slotRepo.Create(ctx, &domain.Slot{
			Date:      date,
			StartTime: startTime,
			EndTime:   domain.SlotEndTime(hour),
			Price:     uc.pricing.PriceForHour(hour),
			Status:    domain.SlotAvailable,
		})
		if errors.Is(createErr, slotstorage.ErrDuplicateSlot) {
			// A concurrent request materialized it; the serializable
			// transaction will sort out who wins.
			return nil, ErrSlotUnavailable
		}
		if createErr != nil {
			return nil, fmt.Errorf("%w: failed to materialize slot: %v", ErrInternal, createErr)
		}
		return created, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to fetch slot: %v", ErrInternal, err)
	}

	if s.Status != domain.SlotAvailable {
		uc.logger.Info("CreateDirectBooking: slot %s %s not available (status=%s)",
			date, startTime, s.Status)
		return nil, ErrSlotUnavailable
	}

	return s, nil
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
	if req.GuestName == "" || req.GuestPhone == "" {
		return fmt.Errorf("%w: guest name and phone are required", ErrInvalidInput)
	}
	if req.AmountOverride != nil && *req.AmountOverride < 0 {
		return fmt.Errorf("%w: amount override must not be negative", ErrInvalidInput)
	}
	return nil
}

func (uc *UseCase) export(ctx context.Context, booking *domain.Booking, slots []*domain.Slot) {
	for _, s := range slots {
		row := sheets.Row{
			Name:      *booking.GuestName,
			Phone:     *booking.GuestPhone,
			Date:      s.Date,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Price:     s.Price,
			BookedAt:  booking.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := uc.exporter.AppendRow(ctx, row); err != nil && !errors.Is(err, sheets.ErrDisabled) {
			uc.logger.Warn("CreateDirectBooking: sheet export failed for bookingID=%d slotID=%d: %v",
				booking.ID, s.ID, err)
		}
	}
}
