package generate_slots

import (
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

// Request модель запроса на пакетную генерацию слотов
type Request struct {
	DateStart       time.Time               // Первый день диапазона (включительно)
	DateEnd         time.Time               // Последний день диапазона (включительно)
	TimeStart       types.TimeString        // Начало окна в течение дня (например, "09:00")
	TimeEnd         types.TimeString        // Конец окна в течение дня (например, "18:00")
	DurationMinutes int                     // Длительность слота: 30 или 60
	Weekdays        []int                   // Дни недели 1 (пн) .. 7 (вс)
	AllowedMode     domain.ConsultationMode // Разрешенный тип консультации
}

// Response модель ответа с созданными слотами
type Response struct {
	CreatedCount int    // Количество созданных слотов
	Slots        []Slot // Созданные слоты в порядке (дата, время начала)

	// RemainderMinutes остаток окна, не покрытый целым числом слотов
	// (например, окно 09:00-18:30 с шагом 60 оставляет 30 минут).
	// Ноль, когда длительность делит окно нацело.
	RemainderMinutes int
}

// Slot модель созданного слота
type Slot struct {
	ID              string
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	AllowedMode     domain.ConsultationMode
}

// fromDomainSlots конвертирует domain модели в DTO ответа
func fromDomainSlots(slots []*domain.Slot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			ID:              s.ID,
			Date:            s.Date,
			StartTime:       s.StartTime,
			EndTime:         s.EndTime,
			DurationMinutes: s.DurationMinutes,
			AllowedMode:     s.AllowedMode,
		}
	}
	return result
}
