package verify_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
	bookingstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/booking"
	"github.com/m04kA/TurfBookingService/internal/integrations/sheets"
)

// UseCase applies the admin verdict on a manually paid booking. Approval
// books the slots, rejection or cancellation releases them; booking and
// slot updates commit in one transaction.
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	exporter    SheetExporter
	txManager   TxManager
	logger      Logger
}

// NewUseCase creates the booking verification use case.
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	exporter SheetExporter,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		exporter:    exporter,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute moves the booking to the admin's target status.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("VerifyBooking: bookingID=%d, target=%s", req.BookingID, req.Target)

	// 1. Validate the target.
	if req.Target != domain.BookingConfirmed && req.Target != domain.BookingCancelled {
		return nil, fmt.Errorf("%w: target must be %s or %s",
			ErrInvalidInput, domain.BookingConfirmed, domain.BookingCancelled)
	}

	// 2. Load the booking and check the transition.
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("VerifyBooking: failed to fetch booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to fetch booking: %v", ErrInternal, err)
	}

	if !allowedTransition(booking.Status, req.Target) {
		uc.logger.Info("VerifyBooking: transition %s -> %s rejected for bookingID=%d",
			booking.Status, req.Target, req.BookingID)
		return nil, ErrWrongState
	}

	// 3. Atomically update booking and slots.
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, req.Target); err != nil {
			return fmt.Errorf("%w: failed to update booking status: %v", ErrInternal, err)
		}

		if req.Target == domain.BookingConfirmed {
			owner := int64(0)
			if booking.UserID != nil {
				owner = *booking.UserID
			}
			if err := uc.slotRepo.BookByIDs(ctx, booking.SlotIDs, owner); err != nil {
				return fmt.Errorf("%w: failed to book slots: %v", ErrInternal, err)
			}
			return nil
		}

		if err := uc.slotRepo.ReleaseByIDs(ctx, booking.SlotIDs); err != nil {
			return fmt.Errorf("%w: failed to release slots: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("VerifyBooking: transaction failed for bookingID=%d: %v", booking.ID, err)
		return nil, err
	}

	uc.logger.Info("VerifyBooking: bookingID=%d moved to %s", booking.ID, req.Target)

	if req.Target == domain.BookingConfirmed {
		uc.export(ctx, booking)
	}

	return &Response{
		BookingID: booking.ID,
		Status:    req.Target,
	}, nil
}

// allowedTransition encodes the admin verdict matrix: approve only what is
// awaiting verification, cancel anything not already settled as CANCELLED
// or FAILED.
func allowedTransition(from, to domain.BookingStatus) bool {
	switch to {
	case domain.BookingConfirmed:
		return from == domain.BookingPendingVerification
	case domain.BookingCancelled:
		return from == domain.BookingPending ||
			from == domain.BookingPendingVerification ||
			from == domain.BookingConfirmed
	default:
		return false
	}
}

func (uc *UseCase) export(ctx context.Context, booking *domain.Booking) {
	slots, err := uc.slotRepo.GetByIDs(ctx, booking.SlotIDs)
	if err != nil {
		uc.logger.Warn("VerifyBooking: skipping sheet export for bookingID=%d: %v", booking.ID, err)
		return
	}

	name := ""
	if booking.GuestName != nil {
		name = *booking.GuestName
	} else if booking.UserID != nil {
		name = fmt.Sprintf("user-%d", *booking.UserID)
	}
	phone := ""
	if booking.GuestPhone != nil {
		phone = *booking.GuestPhone
	}

	for _, s := range slots {
		row := sheets.Row{
			Name:      name,
			Phone:     phone,
			Date:      s.Date,
			StartTime: s.StartTime.String(),
			EndTime:   s.EndTime.String(),
			Price:     s.Price,
			BookedAt:  booking.UpdatedAt.Format("2006-01-02 15:04:05"),
		}
		if err := uc.exporter.AppendRow(ctx, row); err != nil && !errors.Is(err, sheets.ErrDisabled) {
			uc.logger.Warn("VerifyBooking: sheet export failed for bookingID=%d slotID=%d: %v",
				booking.ID, s.ID, err)
		}
	}
}
