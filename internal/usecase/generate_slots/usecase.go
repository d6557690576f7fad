package generate_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

// UseCase use case пакетной генерации слотов доступности
type UseCase struct {
	slotRepo  SlotRepository
	txManager TransactionManager
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, txManager TransactionManager, logger Logger) *UseCase {
	return &UseCase{
		slotRepo:  slotRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// Execute выполняет use case генерации слотов
// Пакет валидируется целиком до записи и вставляется в одной транзакции:
// либо создаются все слоты, либо ни одного
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GenerateSlots: range=%s..%s, window=%s-%s, duration=%d, weekdays=%v, mode=%s",
		req.DateStart.Format(domain.DateFormat), req.DateEnd.Format(domain.DateFormat),
		req.TimeStart, req.TimeEnd, req.DurationMinutes, req.Weekdays, req.AllowedMode)

	// 1. Валидация запроса как единого целого
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Генерируем слоты по всем подходящим дням
	slots, remainder, err := buildSlots(req)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	if remainder > 0 {
		uc.logger.Warn("GenerateSlots: window %s-%s leaves %d minutes uncovered by %d-minute slots",
			req.TimeStart, req.TimeEnd, remainder, req.DurationMinutes)
	}

	// 3. Вставляем пакет в одной транзакции (всё или ничего)
	var created int
	err = uc.txManager.Do(ctx, func(txCtx context.Context) error {
		count, err := uc.slotRepo.CreateBatch(txCtx, slots)
		if err != nil {
			return fmt.Errorf("%w: failed to create batch: %v", ErrInternal, err)
		}
		created = count
		return nil
	})
	if err != nil {
		uc.logger.Error("GenerateSlots: batch insert failed, 0 of %d slots created: %v", len(slots), err)
		return nil, err
	}

	uc.logger.Info("GenerateSlots: successfully created %d slots", created)

	return &Response{
		CreatedCount:     created,
		Slots:            fromDomainSlots(slots),
		RemainderMinutes: remainder,
	}, nil
}

// buildSlots обходит диапазон дат и для каждого подходящего дня недели
// нарезает окно [timeStart, timeEnd) шагами durationMinutes
// Возвращает слоты в порядке (дата, время начала) и остаток окна в минутах
func buildSlots(req *Request) ([]*domain.Slot, int, error) {
	weekdaySet := make(map[int]bool, len(req.Weekdays))
	for _, wd := range req.Weekdays {
		weekdaySet[wd] = true
	}

	// Нарезка окна одинакова для каждого дня, считаем её один раз
	type timePair struct {
		start types.TimeString
		end   types.TimeString
	}

	pairs := make([]timePair, 0)
	cursor := req.TimeStart
	for {
		end, err := cursor.AddMinutes(req.DurationMinutes)
		if err != nil {
			// Вышли за пределы суток - окно закончилось
			break
		}
		if end.IsAfter(req.TimeEnd) {
			break
		}
		pairs = append(pairs, timePair{start: cursor, end: end})
		cursor = end
	}

	slots := make([]*domain.Slot, 0, len(pairs))

	dateStart := truncateToDay(req.DateStart)
	dateEnd := truncateToDay(req.DateEnd)

	for date := dateStart; !date.After(dateEnd); date = date.AddDate(0, 0, 1) {
		if !weekdaySet[isoWeekday(date)] {
			continue
		}

		for _, p := range pairs {
			slots = append(slots, &domain.Slot{
				ID:              uuid.NewString(),
				Date:            date,
				StartTime:       p.start,
				EndTime:         p.end,
				DurationMinutes: req.DurationMinutes,
				AllowedMode:     req.AllowedMode,
				Available:       true,
			})
		}
	}

	remainder, err := windowRemainder(req.TimeStart, req.TimeEnd, req.DurationMinutes)
	if err != nil {
		return nil, 0, err
	}

	return slots, remainder, nil
}

// windowRemainder возвращает количество минут окна, не покрытых целым числом слотов
func windowRemainder(start, end types.TimeString, duration int) (int, error) {
	startMin, err := start.Minutes()
	if err != nil {
		return 0, err
	}
	endMin, err := end.Minutes()
	if err != nil {
		return 0, err
	}
	return (endMin - startMin) % duration, nil
}

// isoWeekday возвращает день недели в нумерации ISO 8601: 1 (пн) .. 7 (вс)
func isoWeekday(date time.Time) int {
	wd := int(date.Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
