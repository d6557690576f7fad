package get_available_slots

import (
	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	getAvailableSlots "github.com/consultarprocessos/CP-SchedulingService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Days       []DayResponse `json:"days"`
	TotalCount int           `json:"totalCount"`
}

// DayResponse слоты одного календарного дня
type DayResponse struct {
	Date  string         `json:"date"` // "2024-12-02"
	Slots []SlotResponse `json:"slots"`
}

// SlotResponse доступный слот
type SlotResponse struct {
	ID              string `json:"id"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	AllowedMode     string `json:"allowedMode"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	out := &AvailableSlotsResponse{
		Days:       make([]DayResponse, 0, len(resp.Days)),
		TotalCount: resp.TotalCount,
	}

	for _, day := range resp.Days {
		dayResp := DayResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: make([]SlotResponse, 0, len(day.Slots)),
		}
		for _, s := range day.Slots {
			dayResp.Slots = append(dayResp.Slots, SlotResponse{
				ID:              s.ID,
				StartTime:       s.StartTime.String(),
				EndTime:         s.EndTime.String(),
				DurationMinutes: s.DurationMinutes,
				AllowedMode:     string(s.AllowedMode),
			})
		}
		out.Days = append(out.Days, dayResp)
	}

	return out
}
