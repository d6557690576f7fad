package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
)

// UseCase use case получения доступных слотов для бронирования
type UseCase struct {
	slotRepo SlotRepository
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(slotRepo SlotRepository, logger Logger) *UseCase {
	return &UseCase{
		slotRepo: slotRepo,
		logger:   logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Возвращает только слоты с available = true; занятые слоты невидимы
// для бронирующих. Чтение идёт без блокировок - результат может устареть
// к моменту бронирования, это ожидаемо (вызывающая сторона обрабатывает
// отказ slot_already_booked повторным запросом доступности)
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: range=%s..%s, mode=%q",
		req.DateFrom.Format(domain.DateFormat), req.DateTo.Format(domain.DateFormat), req.Mode)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Выбираем доступные слоты за период
	filter := domain.SlotsFilter{
		DateFrom:      &req.DateFrom,
		DateTo:        &req.DateTo,
		OnlyAvailable: true,
	}
	if req.Mode != "" && req.Mode != domain.ModeBoth {
		mode := req.Mode
		filter.Mode = &mode
	}

	slots, err := uc.slotRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to list slots: %v", err)
		return nil, fmt.Errorf("%w: failed to list slots: %v", ErrInternal, err)
	}

	// 3. Группируем по дате; репозиторий возвращает слоты отсортированными
	// по (дата, время начала), порядок групп и слотов внутри дня сохраняется
	days := groupByDate(slots)

	uc.logger.Info("GetAvailableSlots: %d slots over %d days", len(slots), len(days))

	return &Response{
		Days:       days,
		TotalCount: len(slots),
	}, nil
}

// groupByDate группирует отсортированные слоты в дневные корзины
func groupByDate(slots []*domain.Slot) []DaySlots {
	days := make([]DaySlots, 0)

	for _, s := range slots {
		dto := Slot{
			ID:              s.ID,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DurationMinutes: s.DurationMinutes,
			AllowedMode:     s.AllowedMode,
		}

		if n := len(days); n > 0 && sameDay(days[n-1].Date, s.Date) {
			days[n-1].Slots = append(days[n-1].Slots, dto)
			continue
		}

		days = append(days, DaySlots{
			Date:  s.Date,
			Slots: []Slot{dto},
		})
	}

	return days
}

// sameDay проверяет, что две даты относятся к одному и тому же дню
func sameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
