package bookings

import (
	"context"
	"fmt"

	"github.com/m04kA/TurfBookingService/internal/domain"
	"github.com/m04kA/TurfBookingService/internal/service/bookings/models"
)

// Service is the read side of bookings: user history and the admin ledger,
// with slot references resolved into full slot records.
type Service struct {
	bookingRepo BookingRepository
	slotRepo    SlotRepository
	logger      Logger
}

// NewService creates the bookings read service.
func NewService(bookingRepo BookingRepository, slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		logger:      logger,
	}
}

// GetUserBookings returns the booking history of one user, newest first.
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	resp, err := s.toListResponse(ctx, bookings)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", resp.Total, userID)
	return resp, nil
}

// GetAllBookings returns every booking, newest first. Admin projection.
func (s *Service) GetAllBookings(ctx context.Context) (*models.BookingListResponse, error) {
	s.logger.Info("GetAllBookings: fetching all bookings")

	bookings, err := s.bookingRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAllBookings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAllBookings - repository error: %v", ErrInternal, err)
	}

	resp, err := s.toListResponse(ctx, bookings)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetAllBookings: fetched %d bookings", resp.Total)
	return resp, nil
}

// toListResponse resolves all slot references with a single batched read.
func (s *Service) toListResponse(ctx context.Context, bookings []*domain.Booking) (*models.BookingListResponse, error) {
	ids := make([]int64, 0, len(bookings))
	seen := make(map[int64]bool)
	for _, b := range bookings {
		for _, id := range b.SlotIDs {
			if !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}

	byID := make(map[int64]*domain.Slot, len(ids))
	if len(ids) > 0 {
		slots, err := s.slotRepo.GetByIDs(ctx, ids)
		if err != nil {
			s.logger.Error("toListResponse: failed to resolve slots: %v", err)
			return nil, fmt.Errorf("%w: toListResponse - failed to resolve slots: %v", ErrInternal, err)
		}
		for _, slot := range slots {
			byID[slot.ID] = slot
		}
	}

	resp := &models.BookingListResponse{
		Bookings: make([]models.BookingResponse, 0, len(bookings)),
		Total:    len(bookings),
	}
	for _, b := range bookings {
		resolved := make([]*domain.Slot, 0, len(b.SlotIDs))
		for _, id := range b.SlotIDs {
			if slot, ok := byID[id]; ok {
				resolved = append(resolved, slot)
			}
		}
		resp.Bookings = append(resp.Bookings, *models.FromDomainBooking(b, resolved))
	}

	return resp, nil
}
