package models

import (
	"errors"
	"time"

	"github.com/consultarprocessos/CP-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid appointment status")
)

// Request модели

// ListAppointmentsRequest запрос на получение агендаментов
type ListAppointmentsRequest struct {
	ClientID  *string    // Фильтр по клиенту (опционально)
	StartDate *time.Time // Начало периода (опционально)
	EndDate   *time.Time // Конец периода (опционально)
	Status    *string    // Фильтр по статусу (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		ClientID:  r.ClientID,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
	}

	if r.Status != nil {
		status, err := ToDomainAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// UpdateStatusRequest запрос на обновление статуса агендамента
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// CancelAppointmentRequest запрос на отмену агендамента
type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// Response модели

// AppointmentResponse ответ с данными агендамента
type AppointmentResponse struct {
	ID               string  `json:"id"`
	SlotID           string  `json:"slotId"`
	ClientID         string  `json:"clientId"`
	ClientName       string  `json:"clientName"`
	ProcessReference *string `json:"processReference,omitempty"`
	Date             string  `json:"date"`      // "2024-12-02"
	StartTime        string  `json:"startTime"` // "10:00"
	EndTime          string  `json:"endTime"`   // "11:00"
	Mode             string  `json:"mode"`
	Notes            *string `json:"notes,omitempty"`
	Origin           string  `json:"origin"`
	Status           string  `json:"status"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AppointmentListResponse ответ со списком агендаментов
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// Методы конвертации

// FromDomainAppointment конвертирует domain модель в DTO
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}

	resp := &AppointmentResponse{
		ID:                 a.ID,
		SlotID:             a.SlotID,
		ClientID:           a.ClientID,
		ClientName:         a.ClientName,
		ProcessReference:   a.ProcessReference,
		Date:               a.Date.Format(domain.DateFormat),
		StartTime:          a.StartTime.String(),
		EndTime:            a.EndTime.String(),
		Mode:               string(a.Mode),
		Notes:              a.Notes,
		Origin:             string(a.Origin),
		Status:             string(a.Status),
		CancellationReason: a.CancellationReason,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}

	if a.CancelledAt != nil {
		cancelledStr := a.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainAppointmentList конвертирует список domain моделей в DTO
func FromDomainAppointmentList(appointments []*domain.Appointment) *AppointmentListResponse {
	resp := &AppointmentListResponse{
		Appointments: make([]AppointmentResponse, 0, len(appointments)),
	}

	for _, a := range appointments {
		if dto := FromDomainAppointment(a); dto != nil {
			resp.Appointments = append(resp.Appointments, *dto)
		}
	}

	resp.Total = len(resp.Appointments)
	return resp
}

// ToDomainAppointmentStatus конвертирует строку в domain.AppointmentStatus с валидацией
func ToDomainAppointmentStatus(status string) (domain.AppointmentStatus, error) {
	s := domain.AppointmentStatus(status)

	validStatuses := []domain.AppointmentStatus{
		domain.StatusScheduled,
		domain.StatusCompleted,
		domain.StatusCancelled,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
