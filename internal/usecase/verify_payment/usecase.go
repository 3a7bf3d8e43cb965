package verify_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
	bookingstorage "github.com/m04kA/TurfBookingService/internal/infra/storage/booking"
	"github.com/m04kA/TurfBookingService/internal/integrations/sheets"
)

// UseCase settles a gateway-backed booking. The signature is always checked
// against the gateway secret: a mismatch fails the booking and releases its
// slots, a match books the slots and confirms the payment atomically.
type UseCase struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	verifier    SignatureVerifier
	exporter    SheetExporter
	txManager   TxManager
	logger      Logger
}

// NewUseCase creates the payment verification use case.
func NewUseCase(
	bookingRepo BookingRepository,
	slotRepo SlotRepository,
	verifier SignatureVerifier,
	exporter SheetExporter,
	txManager TxManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		verifier:    verifier,
		exporter:    exporter,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute verifies the gateway signature and settles the booking.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("VerifyPayment: bookingID=%d, orderID=%s", req.BookingID, req.RazorpayOrderID)

	// 1. Validate the request.
	if req.RazorpayOrderID == "" || req.RazorpayPaymentID == "" || req.RazorpaySignature == "" {
		return nil, fmt.Errorf("%w: order id, payment id and signature are required", ErrInvalidInput)
	}

	// 2. Load the booking and check ownership and state.
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingstorage.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("VerifyPayment: failed to fetch booking %d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to fetch booking: %v", ErrInternal, err)
	}

	if !uc.mayModify(booking, req) {
		return nil, ErrNotOwner
	}
	if booking.Status != domain.BookingPending ||
		booking.PaymentMethod != domain.PaymentRazorpay ||
		booking.RazorpayOrderID == nil ||
		*booking.RazorpayOrderID != req.RazorpayOrderID {
		uc.logger.Info("VerifyPayment: bookingID=%d in state %s not awaiting order %s",
			req.BookingID, booking.Status, req.RazorpayOrderID)
		return nil, ErrWrongState
	}

	// 3. Check the HMAC signature. Never trust the client's word for a
	// successful payment.
	if err := uc.verifier.VerifyPaymentSignature(req.RazorpayOrderID, req.RazorpayPaymentID, req.RazorpaySignature); err != nil {
		uc.logger.Warn("VerifyPayment: signature mismatch for bookingID=%d: %v", req.BookingID, err)
		return nil, uc.failBooking(ctx, booking)
	}

	// 4. Atomically confirm the booking and book the slots.
	err = uc.txManager.Do(ctx, func(ctx context.Context) error {
		if err := uc.bookingRepo.ConfirmPayment(ctx, booking.ID, req.RazorpayPaymentID); err != nil {
			return fmt.Errorf("%w: failed to confirm payment: %v", ErrInternal, err)
		}
		if err := uc.slotRepo.BookByIDs(ctx, booking.SlotIDs, *booking.UserID); err != nil {
			return fmt.Errorf("%w: failed to book slots: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("VerifyPayment: settlement failed for bookingID=%d: %v", booking.ID, err)
		return nil, err
	}

	uc.logger.Info("VerifyPayment: bookingID=%d confirmed, paymentID=%s",
		booking.ID, req.RazorpayPaymentID)

	// 5. Export best-effort, never failing the confirmed booking.
	uc.export(ctx, booking)

	return &Response{
		BookingID: booking.ID,
		Status:    domain.BookingConfirmed,
		PaymentID: req.RazorpayPaymentID,
	}, nil
}

// failBooking moves the booking to FAILED and releases its slots, then
// reports the signature error.
func (uc *UseCase) failBooking(ctx context.Context, booking *domain.Booking) error {
	err := uc.txManager.Do(ctx, func(ctx context.Context) error {
		if err := uc.bookingRepo.UpdateStatus(ctx, booking.ID, domain.BookingFailed); err != nil {
			return fmt.Errorf("%w: failed to fail booking: %v", ErrInternal, err)
		}
		if err := uc.slotRepo.ReleaseByIDs(ctx, booking.SlotIDs); err != nil {
			return fmt.Errorf("%w: failed to release slots: %v", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		uc.logger.Error("VerifyPayment: failed to mark bookingID=%d FAILED: %v", booking.ID, err)
		return err
	}

	uc.logger.Info("VerifyPayment: bookingID=%d marked FAILED, slots released", booking.ID)
	return ErrInvalidSignature
}

func (uc *UseCase) mayModify(b *domain.Booking, req *Request) bool {
	if req.Role == domain.RoleAdmin {
		return true
	}
	return b.UserID != nil && *b.UserID == req.UserID
}

func (uc *UseCase) export(ctx context.Context, booking *domain.Booking) {
	slots, err := uc.slotRepo.GetByIDs(ctx, booking.SlotIDs)
	if err != nil {
		uc.logger.Warn("VerifyPayment: skipping sheet export for bookingID=%d: %v", booking.ID, err)
		return
	}

	name := fmt.Sprintf("user-%d", *booking.UserID)
	if booking.GuestName != nil {
		name = *booking.GuestName
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
			uc.logger.Warn("VerifyPayment: sheet export failed for bookingID=%d slotID=%d: %v",
				booking.ID, s.ID, err)
		}
	}
}
