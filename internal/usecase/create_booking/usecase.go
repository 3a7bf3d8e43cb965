package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/TurfBookingService/internal/domain"
)

// UseCase converts a set of locked slots into a PENDING booking awaiting
// gateway payment. The slots themselves stay LOCKED: they advance only when
// the payment settles (verify flow) and are reclaimed by the expiry sweep if
// it never does.
type UseCase struct {
	slotRepo     SlotRepository
	bookingRepo  BookingRepository
	gateway      PaymentGateway
	txManager    TxManager
	lockTTL      time.Duration
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the booking creation use case.
func NewUseCase(
	slotRepo SlotRepository,
	bookingRepo BookingRepository,
	gateway PaymentGateway,
	txManager TxManager,
	lockTTL time.Duration,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:     slotRepo,
		bookingRepo:  bookingRepo,
		gateway:      gateway,
		txManager:    txManager,
		lockTTL:      lockTTL,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute creates a booking over the user's locked slots.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: userID=%d, slots=%v", req.UserID, req.SlotIDs)

	// 1. Validate the request.
	if len(req.SlotIDs) == 0 {
		uc.logger.Warn("CreateBooking: empty slot list from userID=%d", req.UserID)
		return nil, fmt.Errorf("%w: at least one slot id is required", ErrInvalidInput)
	}

	now := uc.timeProvider.Now()

	// 2. Pre-read the slots to price the booking before any side effects.
	slots, err := uc.slotRepo.GetByIDs(ctx, req.SlotIDs)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to fetch slots %v: %v", req.SlotIDs, err)
		return nil, fmt.Errorf("%w: failed to fetch slots: %v", ErrInternal, err)
	}
	if err := uc.verifyHeld(slots, req, now); err != nil {
		return nil, err
	}

	totalAmount := 0
	for _, s := range slots {
		totalAmount += s.Price
	}

	// 3. Create the payment order before touching storage, so a gateway
	// outage leaves the slots untouched (still LOCKED, reclaimable).
	receipt := fmt.Sprintf("turf-%d-%s", req.UserID, uuid.NewString()[:8])
	order, err := uc.gateway.CreateOrder(ctx, totalAmount*100, receipt)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to create payment order: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrPaymentGateway, err)
	}

	booking := &domain.Booking{
		UserID:          &req.UserID,
		SlotIDs:         req.SlotIDs,
		TotalAmount:     totalAmount,
		Status:          domain.BookingPending,
		PaymentMethod:   domain.PaymentRazorpay,
		RazorpayOrderID: &order.ID,
	}

	// 4. Atomically re-verify the holds and insert the booking. The slots are
	// deliberately not transitioned here: they stay LOCKED until the payment
	// is verified.
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := uc.slotRepo.GetByIDs(ctx, req.SlotIDs)
		if err != nil {
			return fmt.Errorf("%w: failed to re-read slots: %v", ErrInternal, err)
		}
		if err := uc.verifyHeld(current, req, now); err != nil {
			return err
		}

		if _, err := uc.bookingRepo.Create(ctx, booking); err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if isKnown(err) {
			return nil, err
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: bookingID=%d created for userID=%d, total=%d, orderID=%s",
		booking.ID, req.UserID, totalAmount, order.ID)

	return &Response{
		BookingID:       booking.ID,
		SlotIDs:         booking.SlotIDs,
		TotalAmount:     booking.TotalAmount,
		Status:          booking.Status,
		RazorpayOrderID: booking.RazorpayOrderID,
	}, nil
}

// verifyHeld checks that every requested slot exists, is LOCKED by the
// requesting user and the hold has not lapsed.
func (uc *UseCase) verifyHeld(slots []*domain.Slot, req *Request, now time.Time) error {
	if len(slots) != len(req.SlotIDs) {
		return ErrSlotNotFound
	}

	for _, s := range slots {
		if s.Status != domain.SlotLocked || !s.IsLockedBy(req.UserID) {
			uc.logger.Info("CreateBooking: slotID=%d not held by userID=%d (status=%s)",
				s.ID, req.UserID, s.Status)
			return ErrSlotNotHeld
		}
		if s.IsLockExpired(now, uc.lockTTL) {
			uc.logger.Info("CreateBooking: slotID=%d lock expired for userID=%d", s.ID, req.UserID)
			return ErrLockExpired
		}
	}

	return nil
}

func isKnown(err error) bool {
	return errors.Is(err, ErrSlotNotFound) ||
		errors.Is(err, ErrSlotNotHeld) ||
		errors.Is(err, ErrLockExpired)
}
