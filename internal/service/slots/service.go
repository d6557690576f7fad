package slots

import (
	"context"
	"errors"
	"fmt"

	slotRepo "github.com/consultarprocessos/CP-SchedulingService/internal/infra/storage/slot"
	"github.com/consultarprocessos/CP-SchedulingService/internal/service/slots/models"
)

// Service сервис управления слотами доступности (админская сторона)
type Service struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса слотов
func NewService(slotRepo SlotRepository, logger Logger) *Service {
	return &Service{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// List возвращает слоты с фильтрацией по периоду, доступности и типу
func (s *Service) List(ctx context.Context, req *models.ListSlotsRequest) (*models.SlotListResponse, error) {
	s.logger.Info("ListSlots: onlyAvailable=%v", req.OnlyAvailable)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("ListSlots: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	slots, err := s.slotRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("ListSlots: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSlots: successfully fetched %d slots", len(slots))
	return models.FromDomainSlotList(slots), nil
}

// Delete удаляет слот, только если он еще доступен
// Попытка удалить занятый слот отклоняется с ErrSlotInUse и ничего не меняет
func (s *Service) Delete(ctx context.Context, slotID string) error {
	s.logger.Info("DeleteSlot: deleting slot id=%s", slotID)

	if slotID == "" {
		return fmt.Errorf("%w: slotId is required", ErrInvalidInput)
	}

	if err := s.slotRepo.Delete(ctx, slotID); err != nil {
		switch {
		case errors.Is(err, slotRepo.ErrSlotNotFound):
			s.logger.Warn("DeleteSlot: slot id=%s not found", slotID)
			return ErrSlotNotFound
		case errors.Is(err, slotRepo.ErrSlotInUse):
			s.logger.Warn("DeleteSlot: slot id=%s is booked, refusing to delete", slotID)
			return ErrSlotInUse
		default:
			s.logger.Error("DeleteSlot: repository error for slot id=%s: %v", slotID, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("DeleteSlot: successfully deleted slot id=%s", slotID)
	return nil
}
