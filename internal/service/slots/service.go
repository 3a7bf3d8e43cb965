package slots

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/TurfBookingService/internal/domain"
	slotRepo "github.com/m04kA/TurfBookingService/internal/infra/storage/slot"
	"github.com/m04kA/TurfBookingService/internal/service/slots/models"
	"github.com/m04kA/TurfBookingService/pkg/types"
)

// Service is the admin side of slot management: explicit slot creation,
// per-slot edits and bulk generation of a day's default window.
type Service struct {
	slotRepo SlotRepository
	window   domain.BusinessWindow
	pricing  domain.Pricing
	logger   Logger
}

// NewService creates the slot management service.
func NewService(slotRepo SlotRepository, window domain.BusinessWindow, pricing domain.Pricing, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		window:   window,
		pricing:  pricing,
		logger:   logger,
	}
}

// CreateSlots persists explicit slot records, including ones outside the
// default business window.
func (s *Service) CreateSlots(ctx context.Context, req *models.CreateSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("CreateSlots: creating %d slots", len(req.Slots))

	created := make([]*domain.Slot, 0, len(req.Slots))
	for _, input := range req.Slots {
		candidate, err := s.toDomainSlot(input)
		if err != nil {
			s.logger.Warn("CreateSlots: invalid slot input: %v", err)
			return nil, err
		}

		persisted, err := s.slotRepo.Create(ctx, candidate)
		if err != nil {
			if errors.Is(err, slotRepo.ErrDuplicateSlot) {
				s.logger.Warn("CreateSlots: slot %s %s already exists", input.Date, candidate.StartTime)
				return nil, fmt.Errorf("%w: %s %s", ErrDuplicateSlot, input.Date, candidate.StartTime)
			}
			s.logger.Error("CreateSlots: repository error: %v", err)
			return nil, fmt.Errorf("%w: CreateSlots - repository error: %v", ErrInternal, err)
		}
		created = append(created, persisted)
	}

	s.logger.Info("CreateSlots: created %d slots", len(created))
	return models.FromDomainSlotList(created), nil
}

// UpdateSlot applies an admin edit to one slot.
func (s *Service) UpdateSlot(ctx context.Context, id int64, req *models.UpdateSlotRequest) (*models.SlotResponse, error) {
	s.logger.Info("UpdateSlot: updating slot id=%d", id)

	if req.Status == nil && req.Price == nil {
		return nil, fmt.Errorf("%w: nothing to update", ErrInvalidInput)
	}

	var status *domain.SlotStatus
	if req.Status != nil {
		candidate := domain.SlotStatus(*req.Status)
		if !domain.ValidSlotStatus(candidate) {
			s.logger.Warn("UpdateSlot: invalid status %q for slot id=%d", *req.Status, id)
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *req.Status)
		}
		status = &candidate
	}
	if req.Price != nil && *req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
	}

	updated, err := s.slotRepo.UpdateStatusAndPrice(ctx, id, status, req.Price)
	if err != nil {
		if errors.Is(err, slotRepo.ErrSlotNotFound) {
			s.logger.Warn("UpdateSlot: slot id=%d not found", id)
			return nil, ErrSlotNotFound
		}
		s.logger.Error("UpdateSlot: repository error for slot id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateSlot - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateSlot: slot id=%d updated", id)
	return models.FromDomainSlot(updated), nil
}

// GenerateSlotsForDate persists every default-window slot of one date that
// does not exist yet, then returns the full persisted day.
func (s *Service) GenerateSlotsForDate(ctx context.Context, req *models.GenerateSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("GenerateSlotsForDate: date=%s", req.Date)

	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		s.logger.Warn("GenerateSlotsForDate: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}

	batch := make([]*domain.Slot, 0, s.window.LastStartHour-s.window.OpenHour+1)
	for hour := s.window.OpenHour; hour <= s.window.LastStartHour; hour++ {
		batch = append(batch, &domain.Slot{
			Date:      req.Date,
			StartTime: types.NewTimeStringFromHour(hour),
			EndTime:   domain.SlotEndTime(hour),
			Price:     s.pricing.PriceForHour(hour),
			Status:    domain.SlotAvailable,
		})
	}

	// Existing rows stay untouched: the insert skips duplicates.
	if err := s.slotRepo.CreateBatch(ctx, batch, true); err != nil {
		s.logger.Error("GenerateSlotsForDate: repository error for date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: GenerateSlotsForDate - repository error: %v", ErrInternal, err)
	}

	persisted, err := s.slotRepo.GetByDate(ctx, req.Date)
	if err != nil {
		s.logger.Error("GenerateSlotsForDate: failed to read back date=%s: %v", req.Date, err)
		return nil, fmt.Errorf("%w: GenerateSlotsForDate - failed to read back: %v", ErrInternal, err)
	}

	s.logger.Info("GenerateSlotsForDate: date=%s now has %d persisted slots", req.Date, len(persisted))
	return models.FromDomainSlotList(persisted), nil
}

func (s *Service) toDomainSlot(input models.SlotInput) (*domain.Slot, error) {
	if _, err := time.Parse(domain.DateFormat, input.Date); err != nil {
		return nil, fmt.Errorf("%w: invalid date format, expected YYYY-MM-DD", ErrInvalidInput)
	}
	if input.StartHour < 0 || input.StartHour > 23 {
		return nil, fmt.Errorf("%w: start hour %d out of range", ErrInvalidInput, input.StartHour)
	}

	price := s.pricing.PriceForHour(input.StartHour)
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, fmt.Errorf("%w: price must not be negative", ErrInvalidInput)
		}
		price = *input.Price
	}

	status := domain.SlotAvailable
	if input.Status != nil {
		status = domain.SlotStatus(*input.Status)
		if !domain.ValidSlotStatus(status) {
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *input.Status)
		}
	}

	return &domain.Slot{
		Date:      input.Date,
		StartTime: types.NewTimeStringFromHour(input.StartHour),
		EndTime:   domain.SlotEndTime(input.StartHour),
		Price:     price,
		Status:    status,
	}, nil
}
