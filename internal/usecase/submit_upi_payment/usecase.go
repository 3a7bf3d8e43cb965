package submit_upi_payment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/TurfBookingService/internal/domain"
	bookingstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/booking"
)

// utrLength is the fixed length of an Indian UPI transaction reference.
const utrLength = 12

// UseCase records a manually paid UPI transaction: it creates the booking in
// PENDING_VERIFICATION over the user's locked slots and advances those slots
// to PENDING_CONFIRMATION, atomically, leaving the admin verdict as the only
// remaining step.
type UseCase struct {
	slotRepo    SlotRepository
	bookingRepo BookingRepository
	txManager   TxManager
	logger      Logger
}

// NewUseCase creates the UPI submission use case.
func NewUseCase(slotRepo SlotRepository, bookingRepo BookingRepository, txManager TxManager, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute creates the booking for the submitted UTR.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitUPIPayment: userID=%d, slots=%v", req.UserID, req.SlotIDs)

	// 1. Validate the request shape before touching storage.
	utr := strings.TrimSpace(req.UTRNumber)
	if err := validateUTR(utr); err != nil {
		uc.logger.Warn("SubmitUPIPayment: invalid UTR from userID=%d: %v", req.UserID, err)
		return nil, err
	}
	if len(req.SlotIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one slot id is required", ErrInvalidInput)
	}

	booking := &domain.Booking{
		UserID:        &req.UserID,
		SlotIDs:       req.SlotIDs,
		Status:        domain.BookingPendingVerification,
		PaymentMethod: domain.PaymentUPI,
		UTRNumber:     &utr,
		Screenshot:    req.Screenshot,
	}

	// 2. Atomically check the holds, create the booking and advance the
	// slots. The UTR uniqueness constraint fires on the insert, so a reused
	// reference aborts before any slot moves.
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		slots, err := uc.slotRepo.GetByIDs(ctx, req.SlotIDs)
		if err != nil {
			return fmt.Errorf("%w: failed to fetch slots: %v", ErrInternal, err)
		}
		if err := uc.verifyHeld(slots, req); err != nil {
			return err
		}

		totalAmount := 0
		for _, s := range slots {
			totalAmount += s.Price
		}
		booking.TotalAmount = totalAmount

		if _, err := uc.bookingRepo.Create(ctx, booking); err != nil {
			if errors.Is(err, bookingstorage.ErrDuplicateUTR) {
				uc.logger.Info("SubmitUPIPayment: duplicate UTR from userID=%d", req.UserID)
				return ErrDuplicateUTR
			}
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		if err := uc.slotRepo.SetStatusByIDs(ctx, req.SlotIDs, domain.SlotPendingConfirmation); err != nil {
			return fmt.Errorf("%w: failed to advance slots: %v", ErrInternal, err)
		}

		return nil
	})
	if err != nil {
		if isKnown(err) {
			return nil, err
		}
		uc.logger.Error("SubmitUPIPayment: transaction failed for userID=%d: %v", req.UserID, err)
		return nil, err
	}

	uc.logger.Info("SubmitUPIPayment: bookingID=%d awaiting verification, userID=%d, total=%d",
		booking.ID, req.UserID, booking.TotalAmount)

	return &Response{
		BookingID:   booking.ID,
		SlotIDs:     booking.SlotIDs,
		TotalAmount: booking.TotalAmount,
		Status:      booking.Status,
	}, nil
}

// verifyHeld checks that every referenced slot exists, is LOCKED and is held
// by the requesting user. Admins may submit over any locked slot.
func (uc *UseCase) verifyHeld(slots []*domain.Slot, req *Request) error {
	if len(slots) != len(req.SlotIDs) {
		return ErrSlotNotFound
	}

	for _, s := range slots {
		if s.Status != domain.SlotLocked {
			uc.logger.Info("SubmitUPIPayment: slotID=%d in state %s, UTR rejected", s.ID, s.Status)
			return ErrWrongState
		}
		if req.Role != domain.RoleAdmin && !s.IsLockedBy(req.UserID) {
			uc.logger.Warn("SubmitUPIPayment: slotID=%d not held by userID=%d", s.ID, req.UserID)
			return ErrSlotNotHeld
		}
	}

	return nil
}

func validateUTR(utr string) error {
	if len(utr) != utrLength {
		return fmt.Errorf("%w: UTR must be exactly %d digits", ErrInvalidInput, utrLength)
	}
	for _, r := range utr {
		if r < '0' || r > '9' {
			return fmt.Errorf("%w: UTR must contain only digits", ErrInvalidInput)
		}
	}
	return nil
}

func isKnown(err error) bool {
	return errors.Is(err, ErrSlotNotFound) ||
		errors.Is(err, ErrSlotNotHeld) ||
		errors.Is(err, ErrWrongState) ||
		errors.Is(err, ErrDuplicateUTR)
}
