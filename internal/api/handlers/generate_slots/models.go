package generate_slots

import (
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
	generateSlots "github.com/consultarprocessos/CP-SchedulingService/internal/usecase/generate_slots"
	"github.com/consultarprocessos/CP-SchedulingService/pkg/types"
)

// GenerateSlotsRequest HTTP request model
type GenerateSlotsRequest struct {
	DateStart       string `json:"dateStart"` // "2024-12-02"
	DateEnd         string `json:"dateEnd"`   // "2024-12-06"
	TimeStart       string `json:"timeStart"` // "09:00"
	TimeEnd         string `json:"timeEnd"`   // "18:00"
	DurationMinutes int    `json:"durationMinutes"`
	Weekdays        []int  `json:"weekdays"` // 1 (seg) .. 7 (dom)
	AllowedMode     string `json:"allowedMode"`
}

// GenerateSlotsResponse HTTP response model
type GenerateSlotsResponse struct {
	CreatedCount     int            `json:"createdCount"`
	RemainderMinutes int            `json:"remainderMinutes,omitempty"`
	Slots            []SlotResponse `json:"slots"`
}

// SlotResponse созданный слот
type SlotResponse struct {
	ID              string `json:"id"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
	AllowedMode     string `json:"allowedMode"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *GenerateSlotsRequest) ToUseCaseRequest() (*generateSlots.Request, error) {
	dateStart, err := time.Parse(domain.DateFormat, r.DateStart)
	if err != nil {
		return nil, err
	}

	dateEnd, err := time.Parse(domain.DateFormat, r.DateEnd)
	if err != nil {
		return nil, err
	}

	timeStart, err := types.NewTimeStringFromString(r.TimeStart)
	if err != nil {
		return nil, err
	}

	timeEnd, err := types.NewTimeStringFromString(r.TimeEnd)
	if err != nil {
		return nil, err
	}

	return &generateSlots.Request{
		DateStart:       dateStart,
		DateEnd:         dateEnd,
		TimeStart:       timeStart,
		TimeEnd:         timeEnd,
		DurationMinutes: r.DurationMinutes,
		Weekdays:        r.Weekdays,
		AllowedMode:     domain.ConsultationMode(r.AllowedMode),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *generateSlots.Response) *GenerateSlotsResponse {
	out := &GenerateSlotsResponse{
		CreatedCount:     resp.CreatedCount,
		RemainderMinutes: resp.RemainderMinutes,
		Slots:            make([]SlotResponse, 0, len(resp.Slots)),
	}

	for _, s := range resp.Slots {
		out.Slots = append(out.Slots, SlotResponse{
			ID:              s.ID,
			Date:            s.Date.Format(domain.DateFormat),
			StartTime:       s.StartTime.String(),
			EndTime:         s.EndTime.String(),
			DurationMinutes: s.DurationMinutes,
			AllowedMode:     string(s.AllowedMode),
		})
	}

	return out
}
