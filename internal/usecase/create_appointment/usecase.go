package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	slotRepo "github.com/consultarprocessos/CP-SchedulingService/internal/infra/storage/slot"
	"github.com/consultarprocessos/CP-SchedulingService/internal/notifier"
)

// UseCase use case создания агендамента (бронирования слота)
type UseCase struct {
	slotRepo  SlotRepository
	apptRepo  AppointmentRepository
	txManager TransactionManager
	notifier  Notifier
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	slotRepo SlotRepository,
	apptRepo AppointmentRepository,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		apptRepo:  apptRepo,
		txManager: txManager,
		notifier:  notifier,
		logger:    logger,
	}
}

// Execute выполняет use case бронирования
// Переход слота available: true -> false и создание агендамента выполняются
// в одной сериализуемой транзакции: из конкурентных попыток забронировать
// один слот ровно одна получает агендамент, остальные - ErrSlotAlreadyBooked
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: slot=%s, client=%s, mode=%s, origin=%s",
		req.SlotID, req.ClientID, req.Mode, req.Origin)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	origin := req.Origin
	if origin == "" {
		origin = domain.OriginSite
	}

	var result *domain.Appointment

	// 2. Бронируем слот и создаем агендамент атомарно
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Читаем слот по стабильному ID
		slot, err := uc.slotRepo.GetByID(txCtx, req.SlotID)
		if err != nil {
			if errors.Is(err, slotRepo.ErrSlotNotFound) {
				uc.logger.Warn("CreateAppointment: slot id=%s not found", req.SlotID)
				return ErrSlotNotFound
			}
			uc.logger.Error("CreateAppointment: failed to get slot id=%s: %v", req.SlotID, err)
			return fmt.Errorf("%w: failed to get slot: %v", ErrInternal, err)
		}

		// 2.2. Проверяем совместимость типа консультации
		if !slot.AllowsMode(req.Mode) {
			uc.logger.Warn("CreateAppointment: mode %s not allowed for slot id=%s (allowed=%s)",
				req.Mode, slot.ID, slot.AllowedMode)
			return ErrModeNotAllowed
		}

		// 2.3. Помечаем слот занятым; guard в самом UPDATE гарантирует
		// не более одного победителя
		if err := uc.slotRepo.Claim(txCtx, req.SlotID); err != nil {
			switch {
			case errors.Is(err, slotRepo.ErrSlotNotFound):
				return ErrSlotNotFound
			case errors.Is(err, slotRepo.ErrSlotAlreadyBooked):
				uc.logger.Info("CreateAppointment: slot id=%s already booked", req.SlotID)
				return ErrSlotAlreadyBooked
			default:
				uc.logger.Error("CreateAppointment: failed to claim slot id=%s: %v", req.SlotID, err)
				return fmt.Errorf("%w: failed to claim slot: %v", ErrInternal, err)
			}
		}

		// 2.4. Создаем агендамент с денормализованными датой и временем слота
		appt := &domain.Appointment{
			ID:               uuid.NewString(),
			SlotID:           slot.ID,
			ClientID:         req.ClientID,
			ClientName:       req.ClientName,
			ProcessReference: req.ProcessReference,
			Date:             slot.Date,
			StartTime:        slot.StartTime,
			EndTime:          slot.EndTime,
			Mode:             req.Mode,
			Notes:            req.Notes,
			Origin:           origin,
			Status:           domain.StatusScheduled,
		}

		created, err := uc.apptRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%s for slot=%s",
		result.ID, result.SlotID)

	// 3. Подтверждение - best effort: бронирование уже зафиксировано,
	// неуспех доставки не откатывает его
	contact := notifier.Contact{Phone: req.ContactPhone, Email: req.ContactEmail}
	if err := uc.notifier.SendBookingConfirmation(ctx, result, contact); err != nil {
		uc.logger.Warn("CreateAppointment: confirmation delivery failed for appointment id=%s: %v",
			result.ID, err)
	}

	return fromDomainAppointment(result), nil
}
