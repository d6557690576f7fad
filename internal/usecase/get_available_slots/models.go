package get_available_slots

import (
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

// Request модель запроса доступных слотов
type Request struct {
	DateFrom time.Time               // Начало периода (включительно)
	DateTo   time.Time               // Конец периода (включительно)
	Mode     domain.ConsultationMode // Фильтр по типу консультации; пустой или "both" - без фильтра
}

// Response модель ответа со слотами, сгруппированными по дате
type Response struct {
	Days       []DaySlots // Дни с доступными слотами по возрастанию даты
	TotalCount int        // Общее количество слотов во всех днях
}

// DaySlots слоты одного календарного дня
type DaySlots struct {
	Date  time.Time // Календарная дата
	Slots []Slot    // Слоты дня по возрастанию времени начала
}

// Slot модель доступного слота
type Slot struct {
	ID              string
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int
	AllowedMode     domain.ConsultationMode
}
