package models

import (
	"errors"
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
)

var (
	// ErrInvalidMode возвращается при некорректном типе консультации
	ErrInvalidMode = errors.New("invalid consultation mode")
)

// Request модели

// ListSlotsRequest запрос на получение слотов (админский список)
type ListSlotsRequest struct {
	DateFrom      *time.Time // Начало периода (опционально)
	DateTo        *time.Time // Конец периода (опционально)
	Mode          *string    // Фильтр по типу консультации (опционально)
	OnlyAvailable bool       // Только незабронированные слоты
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListSlotsRequest) ToDomainFilter() (domain.SlotsFilter, error) {
	filter := domain.SlotsFilter{
		DateFrom:      r.DateFrom,
		DateTo:        r.DateTo,
		OnlyAvailable: r.OnlyAvailable,
	}

	if r.Mode != nil {
		mode := domain.ConsultationMode(*r.Mode)
		if !domain.IsValidSlotMode(mode) {
			return filter, ErrInvalidMode
		}
		filter.Mode = &mode
	}

	return filter, nil
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`      // "2024-12-02"
	StartTime       string `json:"startTime"` // "10:00"
	EndTime         string `json:"endTime"`   // "11:00"
	DurationMinutes int    `json:"durationMinutes"`
	AllowedMode     string `json:"allowedMode"`
	Available       bool   `json:"available"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
	Total int            `json:"total"`
}

// Методы конвертации

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	if s == nil {
		return nil
	}

	return &SlotResponse{
		ID:              s.ID,
		Date:            s.Date.Format(domain.DateFormat),
		StartTime:       s.StartTime.String(),
		EndTime:         s.EndTime.String(),
		DurationMinutes: s.DurationMinutes,
		AllowedMode:     string(s.AllowedMode),
		Available:       s.Available,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, s := range slots {
		if dto := FromDomainSlot(s); dto != nil {
			resp.Slots = append(resp.Slots, *dto)
		}
	}

	resp.Total = len(resp.Slots)
	return resp
}
